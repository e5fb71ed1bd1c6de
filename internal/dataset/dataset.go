// Package dataset describes the JSON files produced by the analysis
// pipeline. The descriptors are display copy: record counts, sizes and
// provenance notes shown in the dashboard. The files themselves are never
// opened by this tool.
package dataset

// Dataset describes one pipeline output file.
type Dataset struct {
	File        string `json:"file"`
	Records     int    `json:"records"`
	SizeBytes   int64  `json:"sizeBytes"`
	Description string `json:"description"`
	// Subscriber marks files whose detail views sit behind the content gate.
	Subscriber bool `json:"subscriber,omitempty"`
}

// Outputs lists the generated files in pipeline order.
var Outputs = []Dataset{
	{
		File:        "deputies.json",
		Records:     513,
		SizeBytes:   4_812_377,
		Description: "Per-deputy spending, supplier concentration (HHI), Benford deviation, z-scores and composite risk score",
	},
	{
		File:        "aggregations.json",
		Records:     1,
		SizeBytes:   96_404,
		Description: "Chamber-wide totals plus monthly, category, party and state breakdowns",
	},
	{
		File:        "fraud-flags.json",
		Records:     513,
		SizeBytes:   402_118,
		Description: "Red flag details per deputy from the full fraud matrix",
		Subscriber:  true,
	},
	{
		File:        "mismatches.json",
		Records:     287,
		SizeBytes:   198_566,
		Description: "Suppliers whose registered CNAE activity is incompatible with the expense category they were paid under",
		Subscriber:  true,
	},
	{
		File:        "manifest.json",
		Records:     1,
		SizeBytes:   2_931,
		Description: "Provenance: source CSV hash, period, record counts and generator version",
	},
}

// Source spending copy, from the combined 2023-2025 CEAP extract.
const (
	SourceFile         = "despesas_combined_2023_2025.csv"
	SourceRecords      = 630_552
	SourcePeriodStart  = "2023-01"
	SourcePeriodEnd    = "2025-12"
	TotalSpendingBRL   = 681_700_000
	TotalSuppliers     = 40_113
	ActiveDeputies     = 513
	FlaggedCritical    = 22
	FlaggedHigh        = 67
	MismatchedValueBRL = 14_230_000
)

// ByName returns the descriptor for a file name, if present.
func ByName(name string) (Dataset, bool) {
	for _, d := range Outputs {
		if d.File == name {
			return d, true
		}
	}
	return Dataset{}, false
}

// SubscriberOutputs returns only the gated files.
func SubscriberOutputs() []Dataset {
	var out []Dataset
	for _, d := range Outputs {
		if d.Subscriber {
			out = append(out, d)
		}
	}
	return out
}
