package quality

import (
	"testing"

	"catalogserver/catalog"
)

func TestAnalyzeCollectsIssues(t *testing.T) {
	records := []catalog.ProductRecord{
		{SKU: "RING-SM", Name: "GOLD RING", ProductType: "simple"},
		{SKU: "RING-SM", Name: "GOLD RING COPY", ProductType: "simple"},
		{SKU: "NONAME-01", Name: "", ProductType: "simple"},
		{SKU: "CLEAN-01", Name: "CLEAN PRODUCT", ProductType: "simple"},
	}
	snapshot := catalog.NewSnapshot(records, []string{"sku", "name", "product_type"})

	report := NewAnalyzer().Analyze(snapshot)

	if report.Errors != 2 {
		t.Errorf("Errors = %d, want 2 (duplicate sku + missing name)", report.Errors)
	}
	if report.Warnings != 0 {
		t.Errorf("Warnings = %d, want 0", report.Warnings)
	}

	checks := make(map[string]int)
	for _, issue := range report.Issues {
		checks[issue.Check]++
	}
	if checks[CheckDuplicateSKU] != 1 || checks[CheckMissingName] != 1 {
		t.Errorf("issue checks = %v", checks)
	}
}

func TestAnalyzeScore(t *testing.T) {
	records := []catalog.ProductRecord{
		{SKU: "A", Name: "PRODUCT A"},
		{SKU: "B", Name: ""},
		{SKU: "C", Name: "PRODUCT C"},
		{SKU: "D", Name: "PRODUCT D"},
	}
	snapshot := catalog.NewSnapshot(records, []string{"sku", "name"})

	report := NewAnalyzer().Analyze(snapshot)
	if report.Score != 75.0 {
		t.Errorf("Score = %.1f, want 75.0", report.Score)
	}
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	snapshot := catalog.NewSnapshot(nil, []string{"sku", "name"})
	report := NewAnalyzer().Analyze(snapshot)
	if len(report.Issues) != 0 || report.Score != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}
