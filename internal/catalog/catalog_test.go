package catalog

import "testing"

func TestCatalogUniqueIdentity(t *testing.T) {
	seen := make(map[string]bool)
	for _, fd := range All() {
		key := fd.Entity + "." + fd.Field
		if seen[key] {
			t.Errorf("duplicate field definition %s", key)
		}
		seen[key] = true
	}
}

func TestCatalogRequiredAttributes(t *testing.T) {
	for _, fd := range All() {
		if fd.Field == "" || fd.Type == "" || fd.Entity == "" || fd.Description == "" {
			t.Errorf("field %q/%q missing required attribute", fd.Entity, fd.Field)
		}
	}
}

func TestEntitiesStartsWithAll(t *testing.T) {
	entities := Entities()
	if len(entities) == 0 || entities[0] != EntityAll {
		t.Fatalf("Entities() = %v, want %q first", entities, EntityAll)
	}
}

func TestEntitiesFirstAppearanceOrder(t *testing.T) {
	want := []string{
		EntityAll,
		EntityDeputy,
		EntitySupplier,
		EntityFraudFlag,
		EntityMismatch,
		EntityAggregation,
		EntityManifest,
	}
	got := Entities()
	if len(got) != len(want) {
		t.Fatalf("Entities() has %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entities()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEntitiesReturnsCopy(t *testing.T) {
	first := Entities()
	first[0] = "mutated"
	if Entities()[0] != EntityAll {
		t.Error("Entities() exposed internal state to mutation")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Field = "mutated"
	if All()[0].Field == "mutated" {
		t.Error("All() exposed internal state to mutation")
	}
}

func TestIsKnownEntity(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{EntityAll, true},
		{EntityDeputy, true},
		{EntityMismatch, true},
		{"deputy", false}, // entity matching is case-sensitive
		{"Senator", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsKnownEntity(tc.name); got != tc.want {
			t.Errorf("IsKnownEntity(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
