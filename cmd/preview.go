package cmd

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/features"
	"github.com/ceapwatch/ceapwatch/internal/gate"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the gated subscriber section",
	Long: `Render the subscriber section as the dashboard would show it for the
current feature flags:

  subscriber_preview off           section hidden entirely
  subscriber_preview on, unlock off  teaser + obscured content + call-to-action
  both on                          everything visible, no call-to-action`,
	GroupID: "subscriber",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := features.ResolveFlags(getBaseDir())
		blocks := gate.Compose(flags)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			if blocks == nil {
				blocks = []gate.Block{}
			}
			return output.JSON(blocks)
		}

		if len(blocks) == 0 {
			fmt.Println(output.Subtle("Subscriber section hidden (subscriber_preview is off)"))
			return nil
		}

		fmt.Print(output.FormatBlocks(blocks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addJSONFlag(previewCmd.Flags())
}
