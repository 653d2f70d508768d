package quality

import (
	"fmt"

	"catalogserver/catalog"
)

// Report итог анализа качества снимка
type Report struct {
	Issues   []Issue `json:"issues"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
	// Score доля записей без единой проблемы, 0..100
	Score float64 `json:"score"`
}

// Analyzer прогоняет проверки качества по всему снимку. Анализ
// диагностический: он ничего не исправляет и не влияет на консолидацию,
// его выход — лист отчета и полезная нагрузка API.
type Analyzer struct{}

// NewAnalyzer создает анализатор
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze проверяет каждую запись снимка и собирает сводный отчет
func (a *Analyzer) Analyze(snapshot *catalog.Snapshot) *Report {
	report := &Report{}
	hasImageColumn := snapshot.HasColumn(catalog.ColBaseImage)

	seenSKUs := make(map[string]int)
	problemRecords := make(map[string]struct{})

	record := func(issue *Issue) {
		if issue == nil {
			return
		}
		report.Issues = append(report.Issues, *issue)
		problemRecords[issue.SKU] = struct{}{}
		switch issue.Severity {
		case SeverityError:
			report.Errors++
		case SeverityWarning:
			report.Warnings++
		}
	}

	for i := range snapshot.Records {
		rec := &snapshot.Records[i]

		if firstRow, seen := seenSKUs[rec.SKU]; seen {
			record(&Issue{
				SKU:      rec.SKU,
				Check:    CheckDuplicateSKU,
				Severity: SeverityError,
				Message:  fmt.Sprintf("sku already seen earlier in the file (first at data row %d)", firstRow),
			})
		} else {
			seenSKUs[rec.SKU] = i + 1
		}

		record(ValidateName(rec))
		record(ValidateVariations(rec))
		record(ValidatePrice(rec))
		record(ValidateBaseImage(rec, hasImageColumn))
		record(ValidateDescription(rec))
	}

	if total := len(snapshot.Records); total > 0 {
		clean := total - len(problemRecords)
		report.Score = float64(clean) / float64(total) * 100
	}
	return report
}
