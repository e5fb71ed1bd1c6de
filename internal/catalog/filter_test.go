package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func sampleCatalog() []FieldDefinition {
	return []FieldDefinition{
		{Field: "riskScore", Type: "number", Entity: EntityDeputy, Description: "Composite risk score"},
		{Field: "benford.chi2", Type: "number", Entity: EntityDeputy, Description: "Benford chi-squared statistic"},
		{Field: "cnpj", Type: "string", Entity: EntityMismatch, Description: "Supplier company tax id"},
		{Field: "reason", Type: "string", Entity: EntityMismatch, Description: "Incompatibility reason"},
		{Field: "meta.totalSpending", Type: "currency (BRL)", Entity: EntityAggregation, Description: "Total spending"},
	}
}

func fieldNames(defs []FieldDefinition) []string {
	names := make([]string, len(defs))
	for i, fd := range defs {
		names[i] = fd.Field
	}
	return names
}

func TestFilterIdentityWhenUnfiltered(t *testing.T) {
	c := sampleCatalog()
	got := Filter(c, "", EntityAll, 0)
	if !reflect.DeepEqual(got, c) {
		t.Errorf("Filter with no criteria = %v, want original catalog", fieldNames(got))
	}
}

func TestFilterUnknownEntityReturnsEmpty(t *testing.T) {
	got := Filter(sampleCatalog(), "", "Senator", 0)
	if len(got) != 0 {
		t.Errorf("Filter with unknown entity returned %v, want empty", fieldNames(got))
	}
}

func TestFilterEntityExactMatch(t *testing.T) {
	got := Filter(sampleCatalog(), "", EntityMismatch, 0)
	want := []string{"cnpj", "reason"}
	if !reflect.DeepEqual(fieldNames(got), want) {
		t.Errorf("Filter by entity = %v, want %v", fieldNames(got), want)
	}

	// Entity matching is case-sensitive: lowercased name matches nothing.
	if got := Filter(sampleCatalog(), "", "mismatch", 0); len(got) != 0 {
		t.Errorf("lowercased entity filter matched %v, want empty", fieldNames(got))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	c := sampleCatalog()
	upper := Filter(c, "BENFORD", EntityAll, 0)
	lower := Filter(c, "benford", EntityAll, 0)
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("case-sensitive search results differ: %v vs %v", fieldNames(upper), fieldNames(lower))
	}
	if len(upper) != 1 || upper[0].Field != "benford.chi2" {
		t.Errorf("search %q = %v, want [benford.chi2]", "BENFORD", fieldNames(upper))
	}
}

func TestFilterSearchMatchesAnyOfThreeFields(t *testing.T) {
	// "Mismatch" appears only in the entity name of the cnpj/reason rows;
	// the OR semantics must still surface them.
	got := Filter(sampleCatalog(), "mismatch", EntityAll, 0)
	want := []string{"cnpj", "reason"}
	if !reflect.DeepEqual(fieldNames(got), want) {
		t.Errorf("search by entity substring = %v, want %v", fieldNames(got), want)
	}

	// Description-only match.
	got = Filter(sampleCatalog(), "tax id", EntityAll, 0)
	if !reflect.DeepEqual(fieldNames(got), []string{"cnpj"}) {
		t.Errorf("search by description substring = %v, want [cnpj]", fieldNames(got))
	}
}

func TestFilterMaxRowsKeepsPrefix(t *testing.T) {
	c := sampleCatalog()
	got := Filter(c, "", EntityAll, 3)
	want := fieldNames(c[:3])
	if !reflect.DeepEqual(fieldNames(got), want) {
		t.Errorf("Filter maxRows=3 = %v, want first three %v", fieldNames(got), want)
	}
}

func TestFilterMaxRowsAppliesAfterMatching(t *testing.T) {
	// Entity filter runs before truncation, so the Aggregation row survives
	// even though it sits past position 1 in the raw catalog.
	got := Filter(sampleCatalog(), "", EntityAggregation, 1)
	if !reflect.DeepEqual(fieldNames(got), []string{"meta.totalSpending"}) {
		t.Errorf("Filter entity+maxRows = %v, want [meta.totalSpending]", fieldNames(got))
	}
}

func TestFilterNonPositiveMaxRowsMeansUnlimited(t *testing.T) {
	c := sampleCatalog()
	for _, maxRows := range []int{0, -1} {
		if got := Filter(c, "", EntityAll, maxRows); len(got) != len(c) {
			t.Errorf("Filter maxRows=%d returned %d rows, want %d", maxRows, len(got), len(c))
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	c := sampleCatalog()
	first := Filter(c, "risk", EntityDeputy, 10)
	second := Filter(c, "risk", EntityDeputy, 10)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated identical filter calls differ: %v vs %v", fieldNames(first), fieldNames(second))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	c := sampleCatalog()
	want := sampleCatalog()
	Filter(c, "cnpj", EntityMismatch, 1)
	if !reflect.DeepEqual(c, want) {
		t.Error("Filter mutated its input catalog")
	}
}

func TestFilterWholeCatalogSmoke(t *testing.T) {
	// Substring OR semantics over the real catalog: every Deputy row comes
	// back when searching the entity name.
	got := Filter(All(), "Deputy", EntityAll, 0)
	for _, fd := range got {
		if fd.Entity != EntityDeputy && !containsFold(fd.Field, "deputy") && !containsFold(fd.Description, "deputy") {
			t.Errorf("row %s.%s matched %q without containing it", fd.Entity, fd.Field, "Deputy")
		}
	}
	deputyRows := Filter(All(), "", EntityDeputy, 0)
	if len(got) < len(deputyRows) {
		t.Errorf("entity-name search returned %d rows, want at least the %d Deputy rows", len(got), len(deputyRows))
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
