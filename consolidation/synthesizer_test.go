package consolidation

import (
	"testing"

	"catalogserver/catalog"
)

func ringFamily() VariantFamily {
	sm := variant("RING-SM", "RING", "gold ring", "SM", 0)
	sm.Record.Attributes = map[string]string{
		"price":             "49.00",
		"base_image":        "/media/ring-sm.jpg",
		"additional_images": "/media/alt1.jpg,/media/alt2.jpg",
	}
	ml := variant("RING-ML", "RING", "gold ring", "ML", 1)
	ml.Record.Attributes = map[string]string{
		"price":             "59.00",
		"base_image":        "/media/ring-ml.jpg",
		"additional_images": "/media/alt2.jpg,/media/alt3.jpg",
	}
	return VariantFamily{Identity: "gold ring", Members: []UnlinkedVariant{sm, ml}}
}

func TestSynthesizeParentRecord(t *testing.T) {
	family := ringFamily()
	template := &family.Members[0]

	parent := NewSynthesizer(DefaultSynthesizerConfig()).Synthesize(&family, template)

	if parent.Record.SKU != "P-RING" {
		t.Errorf("SKU = %q, want P-RING", parent.Record.SKU)
	}
	if parent.Record.Name != "GOLD RING" {
		t.Errorf("Name = %q, want GOLD RING", parent.Record.Name)
	}
	if parent.Record.ProductType != catalog.TypeConfigurable {
		t.Errorf("ProductType = %q, want configurable", parent.Record.ProductType)
	}
	if parent.Record.ProductOnline != catalog.OnlineEnabled {
		t.Errorf("ProductOnline = %q, want enabled", parent.Record.ProductOnline)
	}
	if parent.Record.Visibility != "Catalog, Search" {
		t.Errorf("Visibility = %q", parent.Record.Visibility)
	}

	wantVariations := "sku=RING-SM,size=SM|sku=RING-ML,size=ML"
	if parent.Record.ConfigurableVariations != wantVariations {
		t.Errorf("ConfigurableVariations = %q, want %q", parent.Record.ConfigurableVariations, wantVariations)
	}

	if len(parent.Record.AssociatedSkus) != 2 || parent.Record.AssociatedSkus[0] != "RING-SM" || parent.Record.AssociatedSkus[1] != "RING-ML" {
		t.Errorf("AssociatedSkus = %v", parent.Record.AssociatedSkus)
	}

	if parent.TemplateSKU != "RING-SM" || parent.Identity != "gold ring" {
		t.Errorf("TemplateSKU/Identity = %q/%q", parent.TemplateSKU, parent.Identity)
	}
}

func TestSynthesizeAggregatesMediaColumns(t *testing.T) {
	family := ringFamily()
	template := &family.Members[0]

	parent := NewSynthesizer(DefaultSynthesizerConfig()).Synthesize(&family, template)

	// Объединение дедуплицировано, порядок — первое появление по членам
	if got := parent.Record.Attributes["additional_images"]; got != "/media/alt1.jpg,/media/alt2.jpg,/media/alt3.jpg" {
		t.Errorf("additional_images = %q", got)
	}
	if got := parent.Record.Attributes["base_image"]; got != "/media/ring-sm.jpg,/media/ring-ml.jpg" {
		t.Errorf("base_image = %q", got)
	}
	// Неагрегируемый атрибут берется из шаблона
	if got := parent.Record.Attributes["price"]; got != "49.00" {
		t.Errorf("price = %q, want template value", got)
	}
}

func TestSynthesizeDoesNotShareTemplateAttributes(t *testing.T) {
	family := ringFamily()
	template := &family.Members[0]

	parent := NewSynthesizer(DefaultSynthesizerConfig()).Synthesize(&family, template)
	parent.Record.Attributes["price"] = "0.00"

	if template.Record.Attributes["price"] != "49.00" {
		t.Error("synthesized parent shares attribute map with template")
	}
}

func TestSynthesizeSmallestBaseSKU(t *testing.T) {
	// Именная идентичность: базовый SKU родителя — наименьший среди
	// членов, а не обязательно шаблонный
	zed := variant("ZED-SM", "ZED", "gold ring", "SM", 0)
	ace := variant("ACE-ML", "ACE", "gold ring", "ML", 1)
	family := VariantFamily{Identity: "gold ring", Members: []UnlinkedVariant{zed, ace}}

	parent := NewSynthesizer(DefaultSynthesizerConfig()).Synthesize(&family, &family.Members[0])
	if parent.Record.SKU != "P-ACE" {
		t.Errorf("SKU = %q, want P-ACE", parent.Record.SKU)
	}
	if parent.TemplateSKU != "ZED-SM" {
		t.Errorf("TemplateSKU = %q, want ZED-SM", parent.TemplateSKU)
	}
}

func TestSynthesizeDisplayCasing(t *testing.T) {
	family := ringFamily()
	template := &family.Members[0]

	tests := []struct {
		casing string
		want   string
	}{
		{CasingUpper, "GOLD RING"},
		{CasingTitle, "Gold Ring"},
		{CasingLower, "gold ring"},
	}

	for _, tt := range tests {
		config := DefaultSynthesizerConfig()
		config.DisplayCasing = tt.casing
		parent := NewSynthesizer(config).Synthesize(&family, template)
		if parent.Record.Name != tt.want {
			t.Errorf("casing %q: Name = %q, want %q", tt.casing, parent.Record.Name, tt.want)
		}
	}
}
