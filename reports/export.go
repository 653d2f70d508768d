package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"catalogserver/consolidation"
)

// ExportCSV пишет таблицу непривязанных вариантов в CSV: одна таблица
// на файл, колонки — настроенное подмножество
func (e *Exporter) ExportCSV(path string, result *consolidation.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(e.config.VariantColumns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i := range result.Eligible {
		if err := writer.Write(recordRow(&result.Eligible[i].Record, e.config.VariantColumns)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// jsonParent представление синтезированного родителя в JSON-экспорте
type jsonParent struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Identity    string   `json:"identity"`
	TemplateSKU string   `json:"template_sku"`
	MemberSKUs  []string `json:"member_skus"`
	Variations  string   `json:"configurable_variations"`
}

// ExportJSON пишет весь результат запуска в JSON для программных потребителей
func (e *Exporter) ExportJSON(path string, result *consolidation.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	parents := make([]jsonParent, 0, len(result.Parents))
	for i := range result.Parents {
		parent := &result.Parents[i]
		parents = append(parents, jsonParent{
			SKU:         parent.Record.SKU,
			Name:        parent.Record.Name,
			Identity:    parent.Identity,
			TemplateSKU: parent.TemplateSKU,
			MemberSKUs:  parent.MemberSKUs,
			Variations:  parent.Record.ConfigurableVariations,
		})
	}

	eligible := make([]map[string]string, 0, len(result.Eligible))
	for i := range result.Eligible {
		row := make(map[string]string, len(e.config.VariantColumns))
		for _, column := range e.config.VariantColumns {
			value, _ := result.Eligible[i].Record.Attribute(column)
			row[column] = value
		}
		eligible = append(eligible, row)
	}

	payload := map[string]interface{}{
		"exported_at":       time.Now().Format(time.RFC3339),
		"stats":             result.Stats,
		"flags":             result.Flags,
		"eligible_variants": eligible,
		"generated_parents": parents,
		"assignment_index":  result.AssignedSKUs(),
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
