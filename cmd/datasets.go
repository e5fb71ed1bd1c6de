package cmd

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/dataset"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:     "datasets",
	Aliases: []string{"ds"},
	Short:   "Describe the pipeline output files",
	Long: `Describe the JSON files generated by the analysis pipeline: record
counts, sizes and what each file contains. The files themselves are served
to the web dashboard; ceapwatch only documents them.`,
	GroupID: "explore",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.JSON(dataset.Outputs)
		}

		for _, d := range dataset.Outputs {
			marker := " "
			if d.Subscriber {
				marker = output.FormatBadge("A")
			}
			fmt.Printf("%-18s %8s  %7s records %s\n",
				output.Title(d.File),
				humanSize(d.SizeBytes),
				dataset.GroupDigits(d.Records),
				marker)
			fmt.Println(output.Subtle("  " + d.Description))
		}

		fmt.Println()
		fmt.Println(output.Subtle(fmt.Sprintf("Source: %s, %s records, %s to %s",
			dataset.SourceFile,
			dataset.GroupDigits(dataset.SourceRecords),
			dataset.SourcePeriodStart,
			dataset.SourcePeriodEnd)))
		return nil
	},
}

// humanSize formats a byte count with a binary unit suffix.
func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	addJSONFlag(datasetsCmd.Flags())
}
