package dashboard

import (
	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")

	// Tab bar
	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	// Panel around the tab body
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// Text styles
	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	tableHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))

	// Selected row style - inverted colors for visibility
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255"))

	// Gated section
	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Background(warningColor).
			Foreground(lipgloss.Color("16")).
			Padding(0, 1)

	ctaBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor).
			Padding(0, 2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Background(primaryColor).
			Foreground(lipgloss.Color("16")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(errorColor)

	// Entity tag colors, matching the CLI output palette
	entityStyles = map[string]lipgloss.Style{
		catalog.EntityDeputy:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		catalog.EntitySupplier:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		catalog.EntityFraudFlag:   lipgloss.NewStyle().Foreground(errorColor),
		catalog.EntityMismatch:    lipgloss.NewStyle().Foreground(warningColor),
		catalog.EntityAggregation: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		catalog.EntityManifest:    lipgloss.NewStyle().Foreground(mutedColor),
	}
)

// formatEntity renders an entity name with its color
func formatEntity(entity string) string {
	style, ok := entityStyles[entity]
	if !ok {
		return entity
	}
	return style.Render(entity)
}
