package cmd

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/dataset"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/spf13/cobra"
)

var methodologyCmd = &cobra.Command{
	Use:     "methodology",
	Aliases: []string{"method"},
	Short:   "Explain the risk indicators (HHI, Benford, z-scores)",
	GroupID: "explore",
	RunE: func(cmd *cobra.Command, args []string) error {
		md := dataset.MethodologyMarkdown()

		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			fmt.Print(md)
			return nil
		}

		rendered, err := output.RenderMarkdown(md)
		if err != nil {
			output.Error("rendering methodology: %v", err)
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodologyCmd)
	methodologyCmd.Flags().Bool("raw", false, "Print raw markdown without styling")
}
