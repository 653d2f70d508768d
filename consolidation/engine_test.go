package consolidation

import (
	"errors"
	"reflect"
	"testing"

	"catalogserver/catalog"
)

func newTestEngine(t *testing.T, mode IdentityMode) *Engine {
	t.Helper()
	config := DefaultConfig()
	config.IdentityMode = mode
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestEngineRunSynthesizesParent(t *testing.T) {
	records := []catalog.ProductRecord{
		simpleVariant("RING-SM", "GOLD RING SM"),
		simpleVariant("RING-ML", "GOLD RING ML"),
	}
	snapshot := catalog.NewSnapshot(records, defaultColumns)

	result, err := newTestEngine(t, IdentityByName).Run(snapshot)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.Eligible != 2 || result.Stats.Families != 1 || result.Stats.Parents != 1 {
		t.Fatalf("Stats = %+v", result.Stats)
	}
	parent := result.Parents[0]
	if parent.Record.SKU != "P-RING" {
		t.Errorf("parent SKU = %q, want P-RING", parent.Record.SKU)
	}
	if parent.Record.ConfigurableVariations != "sku=RING-SM,size=SM|sku=RING-ML,size=ML" {
		t.Errorf("variations = %q", parent.Record.ConfigurableVariations)
	}
}

func TestEngineRunLoneVariantProducesNoParent(t *testing.T) {
	records := []catalog.ProductRecord{
		simpleVariant("RING-SM", "GOLD RING SM"),
	}
	snapshot := catalog.NewSnapshot(records, defaultColumns)

	result, err := newTestEngine(t, IdentityByName).Run(snapshot)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.Eligible != 1 {
		t.Errorf("Eligible = %d, want 1 (lone variant stays in the eligible set)", result.Stats.Eligible)
	}
	if result.Stats.Parents != 0 || result.Stats.Families != 0 {
		t.Errorf("Stats = %+v, want no families and no parents", result.Stats)
	}
	if result.Stats.Singles != 1 {
		t.Errorf("Singles = %d, want 1", result.Stats.Singles)
	}
}

func TestEngineRunSkipsAssignedVariants(t *testing.T) {
	records := []catalog.ProductRecord{
		{
			SKU:                    "P-EXISTING",
			Name:                   "EXISTING PARENT",
			ProductType:            catalog.TypeConfigurable,
			ProductOnline:          catalog.OnlineEnabled,
			ConfigurableVariations: "sku=RING-SM,size=SM",
		},
		simpleVariant("RING-SM", "GOLD RING SM"),
		simpleVariant("BAND-SM", "SILVER BAND SM"),
		simpleVariant("BAND-ML", "SILVER BAND ML"),
	}
	snapshot := catalog.NewSnapshot(records, defaultColumns)

	result, err := newTestEngine(t, IdentityByName).Run(snapshot)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, v := range result.Eligible {
		if v.Record.SKU == "RING-SM" {
			t.Error("assigned variant RING-SM leaked into eligible set")
		}
	}
	if result.Stats.Parents != 1 || result.Parents[0].Record.SKU != "P-BAND" {
		t.Errorf("Parents = %v, want [P-BAND]", result.Parents)
	}
}

func TestEngineRunAssignmentExclusivity(t *testing.T) {
	// Каждый подходящий вариант попадает ровно в одно семейство
	records := []catalog.ProductRecord{
		simpleVariant("A1-SM", "GOLD RING SM"),
		simpleVariant("A1-ML", "GOLD RING ML"),
		simpleVariant("B2-SM", "GOLD RING SM"),
		simpleVariant("C3-SM", "SILVER BAND SM"),
		simpleVariant("C3-ML", "SILVER BAND ML"),
	}
	snapshot := catalog.NewSnapshot(records, defaultColumns)

	result, err := newTestEngine(t, IdentityByName).Run(snapshot)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	seen := make(map[string]int)
	for _, family := range result.Families {
		for _, sku := range family.MemberSKUs() {
			seen[sku]++
		}
	}
	for _, single := range result.Singles {
		seen[single.Record.SKU]++
	}
	for sku, count := range seen {
		if count != 1 {
			t.Errorf("SKU %q appears in %d partitions, want 1", sku, count)
		}
	}
	if len(seen) != result.Stats.Eligible {
		t.Errorf("partitioned %d SKUs, eligible %d", len(seen), result.Stats.Eligible)
	}
}

func TestEngineRunDeterministic(t *testing.T) {
	build := func() *catalog.Snapshot {
		return catalog.NewSnapshot([]catalog.ProductRecord{
			simpleVariant("ZED-ML", "ZED RING ML"),
			simpleVariant("ACE-SM", "ACE BAND SM"),
			simpleVariant("ZED-SM", "ZED RING SM"),
			simpleVariant("ACE-ML", "ACE BAND ML"),
			simpleVariant("LONER-SM", "LONER SM"),
		}, defaultColumns)
	}

	engine := newTestEngine(t, IdentityByName)
	first, err := engine.Run(build())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := engine.Run(build())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if !reflect.DeepEqual(first.Parents, second.Parents) {
		t.Error("parents differ between identical runs")
	}
	if !reflect.DeepEqual(first.Families, second.Families) {
		t.Error("families differ between identical runs")
	}
	if !reflect.DeepEqual(first.AssignedSKUs(), second.AssignedSKUs()) {
		t.Error("assignment index listing differs between identical runs")
	}
}

func TestEngineRunEmptyResultIsSuccess(t *testing.T) {
	records := []catalog.ProductRecord{
		simpleVariant("PLAIN-01", "PLAIN PRODUCT"),
	}
	snapshot := catalog.NewSnapshot(records, defaultColumns)

	result, err := newTestEngine(t, IdentityByName).Run(snapshot)
	if err != nil {
		t.Fatalf("Run() error = %v, want success with empty result", err)
	}
	if result.Stats.Eligible != 0 || result.Stats.Parents != 0 {
		t.Errorf("Stats = %+v, want empty result", result.Stats)
	}
}

func TestEngineRunRejectsBadSnapshot(t *testing.T) {
	empty := catalog.NewSnapshot(nil, defaultColumns)
	if _, err := newTestEngine(t, IdentityByName).Run(empty); !errors.Is(err, catalog.ErrEmptySnapshot) {
		t.Errorf("Run(empty) error = %v, want ErrEmptySnapshot", err)
	}

	noName := catalog.NewSnapshot([]catalog.ProductRecord{{SKU: "X"}}, []string{"sku"})
	var missing *catalog.ErrMissingColumn
	if _, err := newTestEngine(t, IdentityByName).Run(noName); !errors.As(err, &missing) {
		t.Errorf("Run(no name column) error = %v, want ErrMissingColumn", err)
	}
}

func TestNewEngineValidation(t *testing.T) {
	config := DefaultConfig()
	config.SizeTokens = nil
	if _, err := NewEngine(config); err == nil {
		t.Error("NewEngine() with empty vocabulary did not return an error")
	}

	config = DefaultConfig()
	config.IdentityMode = IdentityMode("mixed")
	if _, err := NewEngine(config); err == nil {
		t.Error("NewEngine() with unknown identity mode did not return an error")
	}
}
