// Package output provides styled terminal output helpers (success, error,
// glossary and gate formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/gate"
	"github.com/ceapwatch/ceapwatch/internal/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("214")).
			Foreground(lipgloss.Color("16")).
			Padding(0, 1)

	obscuredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	ctaBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("212")).
			Foreground(lipgloss.Color("16")).
			Padding(0, 1)

	entityStyles = map[string]lipgloss.Style{
		catalog.EntityDeputy:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		catalog.EntitySupplier:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		catalog.EntityFraudFlag:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		catalog.EntityMismatch:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		catalog.EntityAggregation: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		catalog.EntityManifest:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}

	riskStyles = map[models.RiskLevel]lipgloss.Style{
		models.RiskLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.RiskMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.RiskHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.RiskCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Title renders bold section text.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Subtle renders muted helper text.
func Subtle(s string) string {
	return subtleStyle.Render(s)
}

// FormatEntityTag renders an entity name with its color.
func FormatEntityTag(entity string) string {
	style, ok := entityStyles[entity]
	if !ok {
		return "[" + entity + "]"
	}
	return style.Render("[" + entity + "]")
}

// FormatRiskLevel renders a risk band with its color.
func FormatRiskLevel(level models.RiskLevel) string {
	style, ok := riskStyles[level]
	if !ok {
		return string(level)
	}
	return style.Render(string(level))
}

// FormatFieldShort renders one glossary row: entity tag, field path, type.
func FormatFieldShort(fd *catalog.FieldDefinition) string {
	return fmt.Sprintf("%s %s %s",
		FormatEntityTag(fd.Entity),
		titleStyle.Render(fd.Field),
		typeStyle.Render(fd.Type))
}

// FormatFieldLong renders a glossary entry with description and, when
// present, an example line. An absent example is a normal state and simply
// omits the line.
func FormatFieldLong(fd *catalog.FieldDefinition) string {
	var b strings.Builder
	b.WriteString(FormatFieldShort(fd))
	b.WriteString("\n  ")
	b.WriteString(fd.Description)
	b.WriteString("\n")
	if fd.Example != "" {
		b.WriteString(subtleStyle.Render("  e.g. " + fd.Example))
		b.WriteString("\n")
	}
	return b.String()
}

// Obscure replaces the visible runes of s with a block glyph, keeping
// spaces, so locked content shows its shape but not its words.
func Obscure(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			b.WriteRune(r)
		} else {
			b.WriteRune('░')
		}
	}
	return obscuredStyle.Render(b.String())
}

// FormatBadge renders the subscriber badge next to a section title.
func FormatBadge(text string) string {
	return badgeStyle.Render(text)
}

// FormatCTA renders the call-to-action box shown over locked content.
func FormatCTA(cta gate.CTA) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(cta.Title))
	b.WriteString("\n")
	b.WriteString(cta.Description)
	b.WriteString("\n\n")
	b.WriteString(buttonStyle.Render(cta.ButtonLabel))
	if cta.Href != "" {
		b.WriteString("  ")
		b.WriteString(subtleStyle.Render(cta.Href))
	}
	return ctaBoxStyle.Render(b.String())
}

// FormatBlocks renders a gated section's block list for plain stdout use.
func FormatBlocks(blocks []gate.Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case gate.BlockTitle:
			b.WriteString(titleStyle.Render(blk.Text))
			if blk.Badge != "" {
				b.WriteString(" ")
				b.WriteString(FormatBadge(blk.Badge))
			}
			b.WriteString("\n\n")
		case gate.BlockTeaser:
			b.WriteString(blk.Text)
			b.WriteString("\n\n")
		case gate.BlockLocked:
			if blk.Obscured {
				b.WriteString(Obscure(blk.Text))
			} else {
				b.WriteString(blk.Text)
			}
			b.WriteString("\n\n")
		case gate.BlockCTA:
			b.WriteString(FormatCTA(blk.CTA))
			b.WriteString("\n")
		}
	}
	return b.String()
}
