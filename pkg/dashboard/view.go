package dashboard

import (
	"fmt"
	"strings"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/diagram"
	"github.com/ceapwatch/ceapwatch/internal/gate"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Glossary table column widths; description takes the rest.
const (
	colField  = 28
	colType   = 15
	colEntity = 12
)

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	// Handle small terminal sizes gracefully
	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	tabBar := m.renderTabBar()

	// Tab bar and footer take one line each, the panel border two.
	bodyHeight := m.Height - 4

	var body string
	switch m.ActiveTab {
	case TabGlossary:
		body = m.renderGlossary(bodyHeight)
	case TabDiagram:
		body = diagram.Render()
	case TabSubscriber:
		body = m.renderSubscriber()
	case TabMethodology:
		body = m.renderMethodology(bodyHeight)
	}

	panel := panelStyle.Width(m.Width - 2).Height(bodyHeight).Render(body)
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, panel, footer)
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder

	s.WriteString("ceapwatch dashboard (resize for full view)\n\n")
	s.WriteString(fmt.Sprintf("Fields: %d | Entities: %d\n", catalog.Len(), len(catalog.Entities())-1))
	s.WriteString(fmt.Sprintf("Subscriber section: %s\n", m.Mode))
	s.WriteString("\nq:quit ?:help")

	return s.String()
}

// renderHelp renders the key binding reference
func (m Model) renderHelp() string {
	help := `ceapwatch dashboard

  1-4, Tab/Shift+Tab   Switch tabs
  /                    Focus glossary search
  Enter, Esc           Leave search input
  Esc                  Clear the search term
  e, Ctrl+E            Cycle entity filter
  j/k, up/down         Move glossary cursor
  ?                    Close this help
  q, Ctrl+C            Quit

Search matches field path, description and entity name,
case-insensitively. The entity filter is exact.`

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		panelStyle.Render(help))
}

// renderTabBar renders the numbered tab titles
func (m Model) renderTabBar() string {
	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t.Title())
		if t == m.ActiveTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderGlossary renders the searchable glossary table
func (m Model) renderGlossary(height int) string {
	var s strings.Builder

	s.WriteString(m.Search.View())
	s.WriteString("\n")
	s.WriteString(subtleStyle.Render("entity: "))
	s.WriteString(formatEntity(m.EntityFilter()))
	s.WriteString(subtleStyle.Render("  (e to cycle)"))
	s.WriteString("\n\n")

	// Input, filter and header lines plus the count line at the bottom.
	maxRows := height - 5
	if maxRows < 1 {
		maxRows = 1
	}

	rows := m.FilteredRows(maxRows)
	total := len(m.FilteredRows(0))

	if total == 0 {
		s.WriteString(subtleStyle.Render("No fields match"))
		s.WriteString("\n\n")
		s.WriteString(subtleStyle.Render("Esc clears the search, e cycles the entity filter"))
		return s.String()
	}

	descWidth := m.Width - colField - colType - colEntity - 8
	if descWidth < 10 {
		descWidth = 10
	}

	s.WriteString(tableHeadStyle.Render(fmt.Sprintf("  %-*s %-*s %-*s %s",
		colField, "FIELD", colType, "TYPE", colEntity, "ENTITY", "DESCRIPTION")))
	s.WriteString("\n")

	for i, fd := range rows {
		line := fmt.Sprintf("%-*s %-*s %-*s %s",
			colField, ansi.Truncate(fd.Field, colField, "…"),
			colType, ansi.Truncate(fd.Type, colType, "…"),
			colEntity, ansi.Truncate(fd.Entity, colEntity, "…"),
			ansi.Truncate(fd.Description, descWidth, "…"))

		if i == m.Cursor {
			s.WriteString(selectedRowStyle.Render("> " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	if total > len(rows) {
		s.WriteString(subtleStyle.Render(fmt.Sprintf("showing %d of %d matches", len(rows), total)))
	} else {
		s.WriteString(subtleStyle.Render(fmt.Sprintf("%d of %d fields", total, catalog.Len())))
	}

	return s.String()
}

// renderSubscriber renders the gated section for the flags resolved at
// startup. The composition is pure; this only maps blocks to styles.
func (m Model) renderSubscriber() string {
	blocks := gate.Compose(m.Flags)
	if blocks == nil {
		return subtleStyle.Render("Subscriber section hidden (subscriber_preview is off)")
	}

	textWidth := m.Width - 6
	if textWidth < 20 {
		textWidth = 20
	}
	wrap := lipgloss.NewStyle().Width(textWidth)

	var s strings.Builder
	for _, b := range blocks {
		switch b.Kind {
		case gate.BlockTitle:
			s.WriteString(titleStyle.Render(b.Text))
			if b.Badge != "" {
				s.WriteString(" ")
				s.WriteString(badgeStyle.Render(b.Badge))
			}
			s.WriteString("\n\n")
		case gate.BlockTeaser:
			s.WriteString(wrap.Render(b.Text))
			s.WriteString("\n\n")
		case gate.BlockLocked:
			if b.Obscured {
				s.WriteString(wrap.Render(output.Obscure(b.Text)))
			} else {
				s.WriteString(wrap.Render(b.Text))
			}
			s.WriteString("\n")
		case gate.BlockCTA:
			s.WriteString("\n")
			s.WriteString(lipgloss.Place(textWidth, lipgloss.Height(m.renderCTA(b.CTA)),
				lipgloss.Center, lipgloss.Center, m.renderCTA(b.CTA)))
		}
	}
	return s.String()
}

// renderCTA renders the call-to-action box layered over locked content
func (m Model) renderCTA(cta gate.CTA) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(cta.Title))
	s.WriteString("\n")
	s.WriteString(cta.Description)
	s.WriteString("\n\n")
	s.WriteString(buttonStyle.Render(cta.ButtonLabel))
	if cta.Href != "" {
		s.WriteString("  ")
		s.WriteString(subtleStyle.Render(cta.Href))
	}
	return ctaBoxStyle.Render(s.String())
}

// renderMethodology shows the cached markdown render, clipped to the panel
func (m Model) renderMethodology(height int) string {
	if m.methodologyErr != "" {
		return errorStyle.Render("Could not render methodology: " + m.methodologyErr)
	}
	if m.methodology == "" {
		return subtleStyle.Render("Rendering...")
	}

	lines := strings.Split(m.methodology, "\n")
	if len(lines) <= height {
		return m.methodology
	}

	clipped := strings.Join(lines[:height-1], "\n")
	return clipped + "\n" + subtleStyle.Render("… run `ceapwatch methodology` for the full page")
}

// renderFooter renders key hints plus gate mode and version
func (m Model) renderFooter() string {
	left := helpStyle.Render("1-4 tabs • / search • e entity • ? help • q quit")
	right := subtleStyle.Render(fmt.Sprintf("gate: %s • %s", m.Mode, m.Version))

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
