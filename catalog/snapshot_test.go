package catalog

import (
	"errors"
	"testing"
)

func TestSnapshotValidate(t *testing.T) {
	good := NewSnapshot([]ProductRecord{{SKU: "A", Name: "PRODUCT"}}, []string{"sku", "name"})
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	empty := NewSnapshot(nil, []string{"sku", "name"})
	if err := empty.Validate(); !errors.Is(err, ErrEmptySnapshot) {
		t.Errorf("Validate() error = %v, want ErrEmptySnapshot", err)
	}

	noSKU := NewSnapshot([]ProductRecord{{SKU: "A"}}, []string{"name"})
	var missing *ErrMissingColumn
	if err := noSKU.Validate(); !errors.As(err, &missing) || missing.Column != "sku" {
		t.Errorf("Validate() error = %v, want missing sku column", err)
	}
}

func TestSnapshotColumnsAndSets(t *testing.T) {
	records := []ProductRecord{
		{SKU: "A", ProductType: "simple"},
		{SKU: "B", ProductType: "configurable"},
		{SKU: "C", ProductType: "Configurable"},
	}
	s := NewSnapshot(records, []string{"sku", "name", "product_type"})

	if !s.HasColumn("sku") || s.HasColumn("price") {
		t.Errorf("HasColumn misreports declared columns")
	}

	set := s.SKUSet()
	if len(set) != 3 {
		t.Errorf("SKUSet() size = %d, want 3", len(set))
	}

	if got := len(s.Configurables()); got != 2 {
		t.Errorf("Configurables() = %d, want 2 (type match is case-insensitive)", got)
	}
	if got := len(s.Simples()); got != 1 {
		t.Errorf("Simples() = %d, want 1", got)
	}
}

func TestRecordAttribute(t *testing.T) {
	record := ProductRecord{
		SKU:            "RING-SM",
		Name:           "GOLD RING",
		AssociatedSkus: []string{"A", "B"},
		Attributes:     map[string]string{"price": "49.00"},
	}

	if v, ok := record.Attribute("sku"); !ok || v != "RING-SM" {
		t.Errorf("Attribute(sku) = %q, %v", v, ok)
	}
	if v, ok := record.Attribute("associated_skus"); !ok || v != "A,B" {
		t.Errorf("Attribute(associated_skus) = %q, %v", v, ok)
	}
	if v, ok := record.Attribute("price"); !ok || v != "49.00" {
		t.Errorf("Attribute(price) = %q, %v", v, ok)
	}
	if _, ok := record.Attribute("missing"); ok {
		t.Error("Attribute(missing) reported presence")
	}
}

func TestCloneAttributes(t *testing.T) {
	record := ProductRecord{Attributes: map[string]string{"price": "49.00"}}
	clone := record.CloneAttributes()
	clone["price"] = "0.00"

	if record.Attributes["price"] != "49.00" {
		t.Error("CloneAttributes() shares the underlying map")
	}
}
