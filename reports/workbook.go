package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"catalogserver/catalog"
	"catalogserver/consolidation"
	"catalogserver/quality"
)

// Имена листов книги отчета
const (
	SheetUnassigned   = "Unassigned Variants"
	SheetParents      = "Generated Parents"
	SheetIndex        = "Assignment Index"
	SheetNearMisses   = "Possible Matches"
	SheetQuality      = "Quality Issues"
	SheetUpdated      = "Updated Parents"
	SheetEmptyParents = "Parents With Empty Columns"
)

// DefaultVariantColumns подмножество колонок таблиц вариантов и родителей
var DefaultVariantColumns = []string{
	catalog.ColSKU,
	catalog.ColName,
	catalog.ColVisibility,
	catalog.ColProductOnline,
	catalog.ColBaseImage,
}

// Config настройки экспортера отчетов
type Config struct {
	// VariantColumns колонки таблиц вариантов и сгенерированных родителей
	VariantColumns []string
	// ParentColumns полный набор колонок листа родителей; пустой —
	// используется VariantColumns
	ParentColumns []string
}

// Exporter пишет результаты запуска в книгу Excel: отдельный лист на
// таблицу, стилизованный заголовок, фиксированные ширины колонок.
// Пустая таблица — валидный результат: лист пишется с одним заголовком.
type Exporter struct {
	config Config
}

// NewExporter создает экспортер отчетов
func NewExporter(config Config) *Exporter {
	if len(config.VariantColumns) == 0 {
		config.VariantColumns = DefaultVariantColumns
	}
	if len(config.ParentColumns) == 0 {
		config.ParentColumns = config.VariantColumns
	}
	return &Exporter{config: config}
}

// WorkbookData данные для книги консолидации. NearMisses и Quality
// опциональны: nil просто не дает соответствующего листа.
type WorkbookData struct {
	Result     *consolidation.Result
	Snapshot   *catalog.Snapshot
	NearMisses []consolidation.NearMiss
	Quality    *quality.Report
}

// WriteConsolidation пишет книгу результатов консолидации
func (e *Exporter) WriteConsolidation(path string, data WorkbookData) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := e.writeVariantSheet(f, headerStyle, SheetUnassigned, data.Result.Eligible); err != nil {
		return err
	}
	if err := e.writeParentSheet(f, headerStyle, data.Result.Parents); err != nil {
		return err
	}
	if err := e.writeIndexSheet(f, headerStyle, data); err != nil {
		return err
	}
	if data.NearMisses != nil {
		if err := e.writeNearMissSheet(f, headerStyle, data.NearMisses); err != nil {
			return err
		}
	}
	if data.Quality != nil {
		if err := e.writeQualitySheet(f, headerStyle, data.Quality); err != nil {
			return err
		}
	}

	// Лист по умолчанию больше не нужен
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteEnrichment пишет книгу результатов обогащения родителей
func (e *Exporter) WriteEnrichment(path string, result *consolidation.EnrichmentResult, facetColumns []string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	updatedHeader := append([]string{catalog.ColSKU, catalog.ColName, "variant_source_sku"}, facetColumns...)
	updatedRows := make([][]string, 0, len(result.Updated))
	for _, parent := range result.Updated {
		row := []string{parent.SKU, parent.Name, parent.SourceSKU}
		for _, column := range facetColumns {
			row = append(row, parent.Facets[column])
		}
		updatedRows = append(updatedRows, row)
	}
	if err := writeSheet(f, headerStyle, SheetUpdated, updatedHeader, updatedRows); err != nil {
		return err
	}

	emptyHeader := append([]string{catalog.ColSKU, catalog.ColName}, facetColumns...)
	emptyRows := make([][]string, 0, len(result.EmptyParents))
	for i := range result.EmptyParents {
		record := &result.EmptyParents[i]
		row := []string{record.SKU, record.Name}
		for _, column := range facetColumns {
			value, _ := record.Attribute(column)
			row = append(row, value)
		}
		emptyRows = append(emptyRows, row)
	}
	if err := writeSheet(f, headerStyle, SheetEmptyParents, emptyHeader, emptyRows); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeVariantSheet(f *excelize.File, style int, sheet string, variants []consolidation.UnlinkedVariant) error {
	rows := make([][]string, 0, len(variants))
	for i := range variants {
		rows = append(rows, recordRow(&variants[i].Record, e.config.VariantColumns))
	}
	return writeSheet(f, style, sheet, e.config.VariantColumns, rows)
}

func (e *Exporter) writeParentSheet(f *excelize.File, style int, parents []consolidation.SynthesizedParent) error {
	rows := make([][]string, 0, len(parents))
	for i := range parents {
		rows = append(rows, recordRow(&parents[i].Record, e.config.ParentColumns))
	}
	return writeSheet(f, style, SheetParents, e.config.ParentColumns, rows)
}

// writeIndexSheet диагностическая таблица индекса привязок: SKU плюс
// название, если SKU есть в снимке
func (e *Exporter) writeIndexSheet(f *excelize.File, style int, data WorkbookData) error {
	nameBySKU := make(map[string]string, len(data.Snapshot.Records))
	for i := range data.Snapshot.Records {
		record := &data.Snapshot.Records[i]
		if _, seen := nameBySKU[record.SKU]; !seen {
			nameBySKU[record.SKU] = record.Name
		}
	}

	skus := data.Result.AssignedSKUs()
	rows := make([][]string, 0, len(skus))
	for _, sku := range skus {
		rows = append(rows, []string{sku, nameBySKU[sku]})
	}
	return writeSheet(f, style, SheetIndex, []string{catalog.ColSKU, catalog.ColName}, rows)
}

func (e *Exporter) writeNearMissSheet(f *excelize.File, style int, misses []consolidation.NearMiss) error {
	rows := make([][]string, 0, len(misses))
	for _, miss := range misses {
		rows = append(rows, []string{
			miss.Identity,
			miss.Candidate,
			fmt.Sprintf("%.3f", miss.Similarity),
			miss.Method,
		})
	}
	return writeSheet(f, style, SheetNearMisses, []string{"identity", "candidate", "similarity", "method"}, rows)
}

func (e *Exporter) writeQualitySheet(f *excelize.File, style int, report *quality.Report) error {
	rows := make([][]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		rows = append(rows, []string{issue.SKU, issue.Check, string(issue.Severity), issue.Message})
	}
	return writeSheet(f, style, SheetQuality, []string{"sku", "check", "severity", "message"}, rows)
}

// recordRow значения записи в порядке настроенных колонок
func recordRow(record *catalog.ProductRecord, columns []string) []string {
	row := make([]string, len(columns))
	for i, column := range columns {
		value, _ := record.Attribute(column)
		row[i] = value
	}
	return row
}

// newHeaderStyle жирный заголовок на светлой заливке
func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
}

// writeSheet пишет один лист: заголовок со стилем, строки данных,
// фиксированная ширина колонок
func writeSheet(f *excelize.File, headerStyle int, sheet string, header []string, rows [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header of sheet %s: %w", sheet, err)
		}
	}
	if len(header) > 0 {
		lastCell, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(sheet, "A1", lastCell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header of sheet %s: %w", sheet, err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(header))
		if err := f.SetColWidth(sheet, "A", lastCol, 24); err != nil {
			return fmt.Errorf("failed to set column widths of sheet %s: %w", sheet, err)
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write sheet %s: %w", sheet, err)
			}
		}
	}
	return nil
}
