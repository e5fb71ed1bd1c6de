package cmd

import (
	"testing"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
)

func TestCountByEntityCoversWholeCatalog(t *testing.T) {
	counts := countByEntity(catalog.All())

	total := 0
	for entity, n := range counts {
		if entity == catalog.EntityAll {
			t.Error("countByEntity produced a tally for the synthetic \"all\" option")
		}
		if n <= 0 {
			t.Errorf("entity %q has non-positive count %d", entity, n)
		}
		total += n
	}
	if total != catalog.Len() {
		t.Errorf("per-entity counts sum to %d, want %d", total, catalog.Len())
	}

	// Every catalog entity (minus "all") must be present.
	for _, entity := range catalog.Entities() {
		if entity == catalog.EntityAll {
			continue
		}
		if _, ok := counts[entity]; !ok {
			t.Errorf("entity %q missing from counts", entity)
		}
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{96_404, "94.1 KB"},
		{4_812_377, "4.6 MB"},
	}
	for _, tc := range tests {
		if got := humanSize(tc.n); got != tc.want {
			t.Errorf("humanSize(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
