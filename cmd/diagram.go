package cmd

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/diagram"
	"github.com/spf13/cobra"
)

var diagramCmd = &cobra.Command{
	Use:     "diagram",
	Aliases: []string{"er"},
	Short:   "Show the entity-relationship diagram of the datasets",
	GroupID: "explore",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(diagram.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)
}
