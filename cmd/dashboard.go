package cmd

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/features"
	"github.com/ceapwatch/ceapwatch/pkg/dashboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Full-screen dashboard TUI",
	Long: `Launch the full-screen dashboard with tabs for the field glossary,
the entity diagram, the subscriber section and the risk methodology.

Key bindings:
  1-4, Tab     Switch tabs
  /            Focus glossary search
  Esc          Clear search / blur input
  Ctrl+E       Cycle entity filter
  ↑/↓, j/k     Move glossary cursor
  ?            Toggle help
  q            Quit`,
	GroupID: "explore",
	RunE: func(cmd *cobra.Command, args []string) error {
		model := dashboard.NewModel(features.ResolveFlags(getBaseDir()), version)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
