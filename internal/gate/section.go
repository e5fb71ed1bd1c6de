package gate

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/dataset"
	"github.com/ceapwatch/ceapwatch/internal/features"
)

// lockedGlossaryRows bounds the glossary excerpt embedded in the locked
// content so the section stays scannable.
const lockedGlossaryRows = 6

// Compose resolves the display mode and renders the subscriber section.
// The preview flag is checked here, before any gate input is built: when it
// is off the gate is never consulted and the result is nil.
func Compose(f features.Flags) []Block {
	mode := ModeFor(f)
	if mode == ModeHidden {
		return nil
	}
	return Render(mode, SubscriberSection())
}

// SubscriberSection builds the gated deep-dive section: a teaser summarizing
// the public indicators, and locked content covering the subscriber-only
// datasets, including a glossary excerpt of their fields.
func SubscriberSection() Section {
	teaser := []string{
		fmt.Sprintf("%d deputies analyzed across %s expense records (%s to %s).",
			dataset.ActiveDeputies, dataset.GroupDigits(dataset.SourceRecords), dataset.SourcePeriodStart, dataset.SourcePeriodEnd),
		fmt.Sprintf("%d deputies scored CRITICO and %d ALTO on the composite risk index.",
			dataset.FlaggedCritical, dataset.FlaggedHigh),
	}

	locked := []string{
		fmt.Sprintf("Full fraud matrix: per-deputy red flags with Benford chi-squared values, HHI breakdowns and weekend spending rates (%s).",
			subscriberFileList()),
		fmt.Sprintf("CNPJ activity mismatches worth R$ %s: suppliers whose registered activity is incompatible with what they were paid for.",
			dataset.GroupDigits(dataset.MismatchedValueBRL)),
	}
	locked = append(locked, "Subscriber dataset fields:")
	for _, fd := range catalog.Filter(catalog.All(), "", catalog.EntityMismatch, lockedGlossaryRows) {
		locked = append(locked, fmt.Sprintf("%s (%s): %s", fd.Field, fd.Type, fd.Description))
	}

	return Section{
		Title:  "Análise completa",
		Teaser: teaser,
		Locked: locked,
		CTA: CTA{
			Title:       "Conteúdo para assinantes",
			Description: "Receba a análise completa de risco, bandeiras de fraude e incompatibilidades de CNPJ na newsletter.",
			ButtonLabel: "Assinar newsletter",
			Href:        "#newsletter",
		},
	}
}

func subscriberFileList() string {
	subs := dataset.SubscriberOutputs()
	out := ""
	for i, d := range subs {
		if i > 0 {
			out += ", "
		}
		out += d.File
	}
	return out
}
