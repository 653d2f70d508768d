package consolidation

import (
	"testing"

	"catalogserver/catalog"
)

func TestBuildAssignmentIndex(t *testing.T) {
	records := []catalog.ProductRecord{
		{
			SKU:                    "P-RING",
			ProductType:            catalog.TypeConfigurable,
			ConfigurableVariations: "sku=RING-SM,size=SM|sku=RING-ML,size=ML",
			AssociatedSkus:         []string{"RING-SM", "RING-LXL"},
		},
		{SKU: "RING-SM", ProductType: catalog.TypeSimple},
		{
			// Simple-запись с заполненным сопоставлением не вносит ничего
			SKU:                    "NOISE-SM",
			ProductType:            catalog.TypeSimple,
			ConfigurableVariations: "sku=GHOST-SM,size=SM",
		},
	}

	index := BuildAssignmentIndex(records)

	for _, sku := range []string{"RING-SM", "RING-ML", "RING-LXL"} {
		if !index.Contains(sku) {
			t.Errorf("index missing assigned SKU %q", sku)
		}
	}
	if index.Contains("GHOST-SM") {
		t.Error("index picked up variations from a simple record")
	}
	if len(index) != 3 {
		t.Errorf("index size = %d, want 3", len(index))
	}
}

func TestBuildAssignmentIndexMalformedMapping(t *testing.T) {
	records := []catalog.ProductRecord{
		{
			SKU:                    "P-BROKEN",
			ProductType:            catalog.TypeConfigurable,
			ConfigurableVariations: "size=SM|garbage",
		},
	}

	index := BuildAssignmentIndex(records)
	if len(index) != 0 {
		t.Errorf("malformed mapping produced %d entries, want 0", len(index))
	}
}

func TestBuildAssignmentIndexEmpty(t *testing.T) {
	index := BuildAssignmentIndex(nil)
	if len(index) != 0 {
		t.Errorf("empty input produced %d entries, want 0", len(index))
	}
	if index.Contains("ANY") {
		t.Error("empty index claims to contain a SKU")
	}
}
