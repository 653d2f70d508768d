package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"catalogserver/catalog"
	"catalogserver/extractors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV читает CSV-экспорт каталога и строит снимок. Кодировка
// определяется автоматически: UTF-8 BOM, валидный UTF-8, иначе
// Windows-1252 (экспорты со старых витрин). Строки без sku
// отбрасываются с предупреждением и не прерывают загрузку; рваные
// строки дополняются или усекаются до ширины заголовка.
func LoadCSV(path string) (*catalog.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	decoded, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode export file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	columns := normalizeHeader(header)

	var records []catalog.ProductRecord
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			log.Printf("Warning: row %d is unreadable, skipped: %v", rowNum, err)
			continue
		}

		record, ok := buildRecord(columns, row, rowNum)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return catalog.NewSnapshot(records, columns), nil
}

// decodeText приводит содержимое файла к UTF-8
func decodeText(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):], nil
	}
	if utf8.Valid(data) {
		return data, nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("windows-1252 decode failed: %w", err)
	}
	return decoded, nil
}

// normalizeHeader имена колонок в нижнем регистре без краевых пробелов
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return columns
}

// buildRecord собирает запись каталога из строки файла. Известные
// колонки ложатся в типизированные поля, все прочие — в пассивные
// атрибуты без интерпретации.
func buildRecord(columns []string, row []string, rowNum int) (catalog.ProductRecord, bool) {
	record := catalog.ProductRecord{Attributes: make(map[string]string)}

	for i, column := range columns {
		value := ""
		if i < len(row) {
			value = strings.TrimSpace(row[i])
		}
		switch column {
		case catalog.ColSKU:
			record.SKU = value
		case catalog.ColName:
			record.Name = value
		case catalog.ColProductType:
			record.ProductType = value
		case catalog.ColProductOnline:
			record.ProductOnline = value
		case catalog.ColVisibility:
			record.Visibility = value
		case catalog.ColConfigurableVariations:
			record.ConfigurableVariations = value
		case catalog.ColAssociatedSkus:
			record.AssociatedSkus = extractors.AssociatedSKUList(value)
		default:
			record.Attributes[column] = value
		}
	}

	if len(row) > len(columns) {
		log.Printf("Warning: row %d has %d extra cells, truncated", rowNum, len(row)-len(columns))
	}
	if record.SKU == "" {
		log.Printf("Warning: row %d has no sku, dropped", rowNum)
		return catalog.ProductRecord{}, false
	}
	return record, true
}
