// Package diagram renders a fixed entity-relationship picture of the
// dashboard datasets. The layout is static: the entities and their
// relations are compile-time facts of the pipeline output, so nothing here
// is computed from data.
package diagram

import (
	"strings"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	boxTitleStyle = lipgloss.NewStyle().Bold(true)

	keyFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	connectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// entityBox holds the static content of one diagram box: the entity name
// and the key fields worth showing at a glance.
type entityBox struct {
	entity string
	fields []string
}

var boxes = []entityBox{
	{catalog.EntityDeputy, []string{"name", "party / uf", "riskScore", "hhi.value"}},
	{catalog.EntitySupplier, []string{"cnpj", "value", "pct"}},
	{catalog.EntityFraudFlag, []string{"flags", "details.benfordChi2"}},
	{catalog.EntityMismatch, []string{"cnpj", "cnaePrincipal", "reason"}},
	{catalog.EntityAggregation, []string{"meta.totalSpending", "byParty / byState"}},
}

// Render draws the fixed diagram. Layout:
//
//	Deputy ──1:N── FraudFlag
//	  │ N:M (topSuppliers)
//	Supplier ──1:N── Mismatch
//	Aggregation (derived from every expense record)
func Render() string {
	deputy := renderBox(boxes[0])
	supplier := renderBox(boxes[1])
	fraud := renderBox(boxes[2])
	mismatch := renderBox(boxes[3])
	agg := renderBox(boxes[4])

	row1 := lipgloss.JoinHorizontal(lipgloss.Center,
		deputy,
		connectorStyle.Render(" ──1:N── "),
		fraud,
	)
	bridge := connectorStyle.Render("   │ N:M (topSuppliers)")
	row2 := lipgloss.JoinHorizontal(lipgloss.Center,
		supplier,
		connectorStyle.Render(" ──1:N── "),
		mismatch,
	)
	row3 := lipgloss.JoinHorizontal(lipgloss.Center,
		agg,
		captionStyle.Render("  derived from every expense record"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, row1, bridge, row2, "", row3)
}

// renderBox draws one bordered entity box.
func renderBox(b entityBox) string {
	var content strings.Builder
	content.WriteString(boxTitleStyle.Render(b.entity))
	for _, f := range b.fields {
		content.WriteString("\n")
		content.WriteString(keyFieldStyle.Render(f))
	}
	return boxStyle.Render(content.String())
}

// Entities returns the entity names shown in the diagram, in layout order.
func Entities() []string {
	names := make([]string, len(boxes))
	for i, b := range boxes {
		names[i] = b.entity
	}
	return names
}
