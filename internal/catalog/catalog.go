// Package catalog holds the static field glossary for the CEAP dashboard
// datasets. The catalog is compiled into the binary: it is created once at
// package init, never mutated afterwards, and shared read-only by every
// command and TUI instance.
package catalog

import "fmt"

// FieldDefinition describes one field of a pipeline output file.
// Identity is the (Entity, Field) pair; duplicates are rejected at init.
type FieldDefinition struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Entity      string `json:"entity"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

// Logical entities of the dataset.
const (
	EntityDeputy      = "Deputy"
	EntitySupplier    = "Supplier"
	EntityFraudFlag   = "FraudFlag"
	EntityMismatch    = "Mismatch"
	EntityAggregation = "Aggregation"
	EntityManifest    = "Manifest"
)

// EntityAll is the synthetic filter option matching every entity.
const EntityAll = "all"

// fields is the canonical glossary, in display order. Field paths use the
// dotted notation of the JSON files produced by the analysis pipeline.
var fields = []FieldDefinition{
	// deputies.json
	{Field: "id", Type: "number", Entity: EntityDeputy, Description: "Sequential deputy identifier assigned by the pipeline", Example: "42"},
	{Field: "name", Type: "string", Entity: EntityDeputy, Description: "Parliamentary name as published by the Chamber of Deputies", Example: "Fulano de Tal"},
	{Field: "party", Type: "string", Entity: EntityDeputy, Description: "Party acronym at the time of the expense (mode across records)", Example: "PT"},
	{Field: "uf", Type: "string", Entity: EntityDeputy, Description: "Federative unit (state) the deputy represents", Example: "SP"},
	{Field: "totalSpending", Type: "currency (BRL)", Entity: EntityDeputy, Description: "Sum of net expense values over the whole period", Example: "1834201.77"},
	{Field: "transactionCount", Type: "number", Entity: EntityDeputy, Description: "Number of expense records attributed to the deputy"},
	{Field: "avgTicket", Type: "currency (BRL)", Entity: EntityDeputy, Description: "Average value per expense record"},
	{Field: "supplierCount", Type: "number", Entity: EntityDeputy, Description: "Count of distinct suppliers paid by the deputy"},
	{Field: "supplierCnpjs", Type: "string[]", Entity: EntityDeputy, Description: "Distinct supplier CNPJs, used for cross-dataset filtering"},
	{Field: "hhi.value", Type: "number", Entity: EntityDeputy, Description: "Herfindahl-Hirschman concentration index over supplier spending shares (0-10000)", Example: "2731"},
	{Field: "hhi.level", Type: "string", Entity: EntityDeputy, Description: "Concentration band derived from HHI thresholds (BAIXO/MEDIO/ALTO/CRITICO)", Example: "ALTO"},
	{Field: "benford.chi2", Type: "number", Entity: EntityDeputy, Description: "Chi-squared statistic of the first-digit distribution against Benford's Law (df=8)", Example: "22.4"},
	{Field: "benford.pValue", Type: "number", Entity: EntityDeputy, Description: "Approximate p-value bucket for the chi-squared statistic", Example: "0.01"},
	{Field: "benford.significant", Type: "boolean", Entity: EntityDeputy, Description: "True when the Benford deviation passes the p<0.05 critical value"},
	{Field: "benford.digitDistribution", Type: "object[]", Entity: EntityDeputy, Description: "Observed vs expected percentage per leading digit 1-9"},
	{Field: "roundValuePct", Type: "percent", Entity: EntityDeputy, Description: "Share of expense values that are round amounts (multiples of 100)", Example: "23.5"},
	{Field: "riskScore", Type: "number", Entity: EntityDeputy, Description: "Composite risk score in [0,1] combining HHI, Benford, round-value and z-score signals", Example: "0.62"},
	{Field: "riskLevel", Type: "string", Entity: EntityDeputy, Description: "Risk band derived from riskScore (BAIXO/MEDIO/ALTO/CRITICO)", Example: "ALTO"},
	{Field: "zScoreParty", Type: "number", Entity: EntityDeputy, Description: "Spending z-score relative to the deputy's party mean", Example: "2.3"},
	{Field: "zScoreState", Type: "number", Entity: EntityDeputy, Description: "Spending z-score relative to the deputy's state mean"},
	{Field: "redFlags", Type: "string[]", Entity: EntityDeputy, Description: "Human-readable red flag sentences accumulated by the scoring pass"},
	{Field: "byCategory", Type: "object[]", Entity: EntityDeputy, Description: "Per-category spending breakdown with value, share and record count"},
	{Field: "byMonth", Type: "object[]", Entity: EntityDeputy, Description: "Monthly spending breakdown ordered by YYYY-MM key"},
	{Field: "attendance.rate", Type: "percent", Entity: EntityDeputy, Description: "Average committee/plenary attendance rate from the enrichment dataset"},
	{Field: "education", Type: "string", Entity: EntityDeputy, Description: "Declared education level from the enrichment dataset; may be absent"},

	// topSuppliers embedded records
	{Field: "topSuppliers[].name", Type: "string", Entity: EntitySupplier, Description: "Supplier trade name as written on the expense record"},
	{Field: "topSuppliers[].cnpj", Type: "string", Entity: EntitySupplier, Description: "Supplier CNPJ (14-digit company tax id) or CPF for individuals", Example: "12345678000190"},
	{Field: "topSuppliers[].value", Type: "currency (BRL)", Entity: EntitySupplier, Description: "Total paid to the supplier by this deputy"},
	{Field: "topSuppliers[].pct", Type: "percent", Entity: EntitySupplier, Description: "Share of the deputy's total spending captured by this supplier", Example: "54.2"},

	// fraud-flags.json
	{Field: "deputyName", Type: "string", Entity: EntityFraudFlag, Description: "Deputy the flag record refers to"},
	{Field: "flags", Type: "string[]", Entity: EntityFraudFlag, Description: "Triggered red flag labels for the deputy"},
	{Field: "details.benfordChi2", Type: "number", Entity: EntityFraudFlag, Description: "Chi-squared value backing the Benford deviation flag"},
	{Field: "details.hhiValue", Type: "number", Entity: EntityFraudFlag, Description: "HHI value backing the supplier concentration flag"},
	{Field: "details.cnpjMismatches", Type: "number", Entity: EntityFraudFlag, Description: "Count of supplier CNPJs whose declared activity is incompatible with the expense category"},
	{Field: "details.weekendPct", Type: "percent", Entity: EntityFraudFlag, Description: "Share of expenses dated on weekends"},
	{Field: "riskScore", Type: "number", Entity: EntityFraudFlag, Description: "Final risk score from the full fraud matrix"},
	{Field: "riskLevel", Type: "string", Entity: EntityFraudFlag, Description: "Risk category from the full fraud matrix", Example: "CRITICO"},

	// mismatches.json
	{Field: "cnpj", Type: "string", Entity: EntityMismatch, Description: "CNPJ of the supplier with an activity mismatch"},
	{Field: "supplierName", Type: "string", Entity: EntityMismatch, Description: "Supplier name as written on CEAP expense records"},
	{Field: "razaoSocial", Type: "string", Entity: EntityMismatch, Description: "Registered legal name from the federal CNPJ registry"},
	{Field: "cnaePrincipal", Type: "string", Entity: EntityMismatch, Description: "Primary registered economic activity (CNAE) of the company", Example: "4711-3/02 Minimercados"},
	{Field: "expenseCategory", Type: "string", Entity: EntityMismatch, Description: "CEAP expense category the supplier was paid under"},
	{Field: "reason", Type: "string", Entity: EntityMismatch, Description: "Why the registered activity is considered incompatible with the category"},
	{Field: "totalValue", Type: "currency (BRL)", Entity: EntityMismatch, Description: "Total paid to the mismatched supplier across all deputies"},
	{Field: "deputyCount", Type: "number", Entity: EntityMismatch, Description: "Number of distinct deputies who paid this supplier"},

	// aggregations.json
	{Field: "meta.totalTransactions", Type: "number", Entity: EntityAggregation, Description: "Expense record count across the whole period", Example: "630552"},
	{Field: "meta.totalSpending", Type: "currency (BRL)", Entity: EntityAggregation, Description: "Total CEAP spending across the whole period"},
	{Field: "meta.totalDeputies", Type: "number", Entity: EntityAggregation, Description: "Distinct deputies with at least one expense record"},
	{Field: "meta.totalSuppliers", Type: "number", Entity: EntityAggregation, Description: "Distinct supplier CNPJ/CPF identifiers"},
	{Field: "meta.period", Type: "object", Entity: EntityAggregation, Description: "Covered period as start/end YYYY-MM keys", Example: "2023-01 .. 2025-12"},
	{Field: "byCategory[].pct", Type: "percent", Entity: EntityAggregation, Description: "Category share of total spending"},
	{Field: "byParty[].avgPerDeputy", Type: "currency (BRL)", Entity: EntityAggregation, Description: "Average spending per deputy within the party"},
	{Field: "byState[].uf", Type: "string", Entity: EntityAggregation, Description: "State key of the per-state aggregation rows"},

	// manifest.json
	{Field: "sourceData.sha256", Type: "string", Entity: EntityManifest, Description: "SHA-256 of the combined source CSV, for reproducibility audits"},
	{Field: "outputFiles[].recordCount", Type: "number", Entity: EntityManifest, Description: "Record count of each generated JSON file"},
	{Field: "generatedAt", Type: "string", Entity: EntityManifest, Description: "ISO timestamp of the pipeline run that produced the files"},
}

// entityOptions is the distinct entity list in first-appearance order,
// prefixed with the synthetic "all" option. Computed once at init; the
// catalog never changes, so no later recomputation is needed.
var entityOptions []string

func init() {
	seen := make(map[[2]string]bool, len(fields))
	entities := []string{EntityAll}
	known := make(map[string]bool)

	for _, fd := range fields {
		key := [2]string{fd.Entity, fd.Field}
		if seen[key] {
			panic(fmt.Sprintf("catalog: duplicate field definition %s.%s", fd.Entity, fd.Field))
		}
		seen[key] = true

		if !known[fd.Entity] {
			known[fd.Entity] = true
			entities = append(entities, fd.Entity)
		}
	}

	entityOptions = entities
}

// All returns the full catalog in display order.
func All() []FieldDefinition {
	out := make([]FieldDefinition, len(fields))
	copy(out, fields)
	return out
}

// Len returns the number of field definitions in the catalog.
func Len() int {
	return len(fields)
}

// Entities returns the distinct entity names present in the catalog,
// prefixed with the "all" option, in first-appearance order.
func Entities() []string {
	out := make([]string, len(entityOptions))
	copy(out, entityOptions)
	return out
}

// IsKnownEntity reports whether name is "all" or an entity present in the
// catalog. Unknown names are not an error for filtering; they simply match
// nothing.
func IsKnownEntity(name string) bool {
	for _, e := range entityOptions {
		if e == name {
			return true
		}
	}
	return false
}
