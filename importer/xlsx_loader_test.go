package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("failed to set sheet row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "export_catalog_product_test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeTempXLSX(t, [][]string{
		{"SKU", "Name", "product_type", "price"},
		{"RING-SM", "GOLD RING SM", "simple", "49.00"},
		{"", "NO SKU", "simple", ""},
		{"RING-ML", "GOLD RING ML", "simple", "59.00"},
	})

	snapshot, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX() error = %v", err)
	}

	if len(snapshot.Records) != 2 {
		t.Fatalf("records = %d, want 2 (row without sku dropped)", len(snapshot.Records))
	}
	if !snapshot.HasColumn("sku") || !snapshot.HasColumn("price") {
		t.Errorf("columns = %v, header not normalized", snapshot.Columns)
	}
	if snapshot.Records[0].SKU != "RING-SM" || snapshot.Records[1].SKU != "RING-ML" {
		t.Errorf("records out of order: %v, %v", snapshot.Records[0].SKU, snapshot.Records[1].SKU)
	}
	if price, _ := snapshot.Records[1].Attribute("price"); price != "59.00" {
		t.Errorf("price = %q, want 59.00", price)
	}
}

func TestLoadXLSXMissingFile(t *testing.T) {
	if _, err := LoadXLSX(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("LoadXLSX() on missing file did not return an error")
	}
}
