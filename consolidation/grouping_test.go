package consolidation

import (
	"testing"

	"catalogserver/catalog"
)

func variant(sku, baseSKU, baseName, size string, rank int) UnlinkedVariant {
	return UnlinkedVariant{
		Record:   catalog.ProductRecord{SKU: sku, Name: baseName},
		BaseSKU:  baseSKU,
		BaseName: baseName,
		Size:     size,
		SizeRank: rank,
	}
}

func TestGroupFamiliesBySKU(t *testing.T) {
	eligible := []UnlinkedVariant{
		variant("RING-ML", "RING", "ring", "ML", 1),
		variant("BAND-SM", "BAND", "band", "SM", 0),
		variant("RING-SM", "RING", "ring", "SM", 0),
	}

	families, singles, err := GroupFamilies(eligible, IdentityBySKU)
	if err != nil {
		t.Fatalf("GroupFamilies() error = %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("families = %d, want 1", len(families))
	}
	if len(singles) != 1 || singles[0].Record.SKU != "BAND-SM" {
		t.Fatalf("singles = %v, want [BAND-SM]", singles)
	}

	family := families[0]
	if family.Identity != "RING" {
		t.Errorf("Identity = %q, want RING", family.Identity)
	}
	skus := family.MemberSKUs()
	if len(skus) != 2 || skus[0] != "RING-SM" || skus[1] != "RING-ML" {
		t.Errorf("MemberSKUs() = %v, want [RING-SM RING-ML]", skus)
	}
}

func TestGroupFamiliesByNameJoinsDifferentPrefixes(t *testing.T) {
	// Разные SKU-префиксы, одно отображаемое название: именная
	// идентичность собирает все три варианта в одно семейство
	eligible := []UnlinkedVariant{
		variant("A1-SM", "A1", "gold ring", "SM", 0),
		variant("A1-ML", "A1", "gold ring", "ML", 1),
		variant("B2-SM", "B2", "gold ring", "SM", 0),
	}

	families, singles, err := GroupFamilies(eligible, IdentityByName)
	if err != nil {
		t.Fatalf("GroupFamilies() error = %v", err)
	}
	if len(singles) != 0 {
		t.Fatalf("singles = %d, want 0", len(singles))
	}
	if len(families) != 1 || len(families[0].Members) != 3 {
		t.Fatalf("families = %v, want one family of 3", families)
	}

	// Равный ранг разрешается лексикографически меньшим SKU
	skus := families[0].MemberSKUs()
	want := []string{"A1-SM", "B2-SM", "A1-ML"}
	for i := range want {
		if skus[i] != want[i] {
			t.Errorf("MemberSKUs()[%d] = %q, want %q", i, skus[i], want[i])
		}
	}
}

func TestGroupFamiliesSingletonNeverPromoted(t *testing.T) {
	eligible := []UnlinkedVariant{
		variant("RING-SM", "RING", "ring", "SM", 0),
	}

	families, singles, err := GroupFamilies(eligible, IdentityBySKU)
	if err != nil {
		t.Fatalf("GroupFamilies() error = %v", err)
	}
	if len(families) != 0 {
		t.Errorf("singleton promoted to family: %v", families)
	}
	if len(singles) != 1 {
		t.Errorf("singles = %d, want 1", len(singles))
	}
}

func TestGroupFamiliesEmptyIdentity(t *testing.T) {
	eligible := []UnlinkedVariant{
		variant("X-SM", "X", "", "SM", 0),
		variant("Y-SM", "Y", "", "SM", 0),
	}

	families, singles, err := GroupFamilies(eligible, IdentityByName)
	if err != nil {
		t.Fatalf("GroupFamilies() error = %v", err)
	}
	if len(families) != 0 {
		t.Errorf("variants without identity grouped together: %v", families)
	}
	if len(singles) != 2 {
		t.Errorf("singles = %d, want 2", len(singles))
	}
}

func TestGroupFamiliesDeterministicOrder(t *testing.T) {
	eligible := []UnlinkedVariant{
		variant("ZED-SM", "ZED", "zed", "SM", 0),
		variant("ZED-ML", "ZED", "zed", "ML", 1),
		variant("ACE-SM", "ACE", "ace", "SM", 0),
		variant("ACE-ML", "ACE", "ace", "ML", 1),
	}

	families, _, err := GroupFamilies(eligible, IdentityBySKU)
	if err != nil {
		t.Fatalf("GroupFamilies() error = %v", err)
	}
	if len(families) != 2 || families[0].Identity != "ACE" || families[1].Identity != "ZED" {
		t.Errorf("families not sorted by identity: %v", families)
	}
}

func TestGroupFamiliesUnknownMode(t *testing.T) {
	if _, _, err := GroupFamilies(nil, IdentityMode("mixed")); err == nil {
		t.Error("GroupFamilies() with unknown mode did not return an error")
	}
}
