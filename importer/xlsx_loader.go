package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"catalogserver/catalog"
)

// LoadXLSX читает Excel-экспорт каталога: первый лист, первая строка —
// заголовок. Правила обработки строк те же, что у CSV-загрузчика.
func LoadXLSX(path string) (*catalog.Snapshot, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file %s", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	columns := normalizeHeader(rows[0])
	var records []catalog.ProductRecord
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		record, ok := buildRecord(columns, rows[rowIdx], rowIdx+1)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return catalog.NewSnapshot(records, columns), nil
}
