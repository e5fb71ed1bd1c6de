package dataset

import "fmt"

// Concentration thresholds over the HHI scale (0-10000).
const (
	HHIModerate = 1500
	HHIHigh     = 2500
	HHICritical = 3000
)

// Benford chi-squared critical values at df=8.
const (
	BenfordChi2P05 = 15.51
	BenfordChi2P01 = 20.09
)

// Risk score increments applied by the scoring pass.
const (
	WeightBenfordDeviation = 0.15
	WeightRoundValues      = 0.10
	WeightTopSupplier      = 0.10
	WeightZScoreOutlier    = 0.08
)

// MethodologyMarkdown returns the risk-methodology explainer shown by the
// `methodology` command and the dashboard tab.
func MethodologyMarkdown() string {
	return fmt.Sprintf(`# Risk methodology

How the analysis pipeline turns %s expense records
(%s to %s) into per-deputy risk indicators.

## Supplier concentration (HHI)

The Herfindahl-Hirschman Index is computed over each deputy's supplier
spending shares. Bands:

| HHI | Band |
|---|---|
| < %d | BAIXO |
| %d - %d | MEDIO |
| %d - %d | ALTO |
| > %d | CRITICO |

## Benford's Law

First digits of expense values are compared against the Benford expected
distribution with a chi-squared test (df=8). Critical values: %.2f for
p<0.05, %.2f for p<0.01. Deputies need at least 50 usable values before
the test is considered meaningful.

## Z-scores

Each deputy's total spending is standardized against their party mean and
their state mean. Only positive outliers (spending above average) are
penalized.

## Composite risk score

Starting from the HHI base score, the pipeline adds:

- **+%.2f** when the Benford deviation is significant
- **+%.2f** when more than 20%% of values are round amounts
- **+%.2f** when the top supplier captures over half of all spending
- **+%.2f** per z-score above 2 sigma (party and state count separately)

The score is capped at 1.0 and mapped to bands at 0.35 (MEDIO),
0.55 (ALTO) and 0.75 (CRITICO).

## CNPJ activity mismatches

Supplier CNPJs are cross-checked against the federal company registry.
A payment is flagged when the supplier's primary CNAE activity is
incompatible with the CEAP category it was paid under (for example a
grocery store paid for "aircraft charter").
`,
		GroupDigits(SourceRecords), SourcePeriodStart, SourcePeriodEnd,
		HHIModerate, HHIModerate, HHIHigh, HHIHigh, HHICritical, HHICritical,
		BenfordChi2P05, BenfordChi2P01,
		WeightBenfordDeviation, WeightRoundValues, WeightTopSupplier, WeightZScoreOutlier,
	)
}

// GroupDigits formats n with dot separators, Brazilian style.
func GroupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out)
}
