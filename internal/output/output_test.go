package output

import (
	"strings"
	"testing"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/gate"
)

func TestObscureKeepsShape(t *testing.T) {
	got := Obscure("CNPJ 123 incompatível")
	plain := stripANSI(got)

	if strings.Count(plain, " ") != 2 {
		t.Errorf("Obscure changed word boundaries: %q", plain)
	}
	for _, word := range []string{"CNPJ", "123", "incompat"} {
		if strings.Contains(plain, word) {
			t.Errorf("Obscure leaked %q in %q", word, plain)
		}
	}
	if !strings.Contains(plain, "░") {
		t.Errorf("Obscure produced no block glyphs: %q", plain)
	}
}

func TestFormatFieldLongOmitsMissingExample(t *testing.T) {
	fd := catalog.FieldDefinition{
		Field:       "reason",
		Type:        "string",
		Entity:      catalog.EntityMismatch,
		Description: "Incompatibility reason",
	}
	if got := stripANSI(FormatFieldLong(&fd)); strings.Contains(got, "e.g.") {
		t.Errorf("long format shows example line for field without example: %q", got)
	}

	fd.Example = "Categoria alimentação x CNAE transporte"
	if got := stripANSI(FormatFieldLong(&fd)); !strings.Contains(got, "e.g.") {
		t.Errorf("long format missing example line: %q", got)
	}
}

func TestFormatBlocksLockedSection(t *testing.T) {
	blocks := gate.Render(gate.ModeLockedWithTeaser, gate.Section{
		Title:  "Análise completa",
		Teaser: []string{"public summary"},
		Locked: []string{"secret detail"},
		CTA:    gate.CTA{Title: "Assine", ButtonLabel: "Assinar newsletter", Href: "#newsletter"},
	})

	got := stripANSI(FormatBlocks(blocks))
	if !strings.Contains(got, "public summary") {
		t.Error("teaser text missing from locked section output")
	}
	if strings.Contains(got, "secret detail") {
		t.Error("locked text visible in locked section output")
	}
	if !strings.Contains(got, gate.DefaultBadge) {
		t.Error("badge missing from locked section output")
	}
	if !strings.Contains(got, "Assinar newsletter") {
		t.Error("CTA button missing from locked section output")
	}
}

func TestFormatBlocksUnlockedSection(t *testing.T) {
	blocks := gate.Render(gate.ModeUnlockedFull, gate.Section{
		Title:  "Análise completa",
		Teaser: []string{"public summary"},
		Locked: []string{"secret detail"},
		CTA:    gate.CTA{ButtonLabel: "Assinar newsletter"},
	})

	got := stripANSI(FormatBlocks(blocks))
	if !strings.Contains(got, "secret detail") {
		t.Error("locked text not visible in unlocked output")
	}
	if strings.Contains(got, gate.DefaultBadge) {
		t.Error("badge present in unlocked output")
	}
	if strings.Contains(got, "Assinar newsletter") {
		t.Error("CTA present in unlocked output")
	}
}

// stripANSI removes escape sequences so tests compare visible text only.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
