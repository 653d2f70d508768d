package consolidation

import (
	"strings"

	"catalogserver/catalog"
)

// DefaultFacetColumns кастомные фасеты каталога, переносимые с варианта
// на родителя при обогащении
var DefaultFacetColumns = []string{
	"rd_ca_angel_numbers", "rd_ca_cat_name", "rd_ca_collection", "rd_ca_dept_name",
	"rd_ca_div_name", "rd_ca_finish", "rd_ca_gauge", "rd_ca_gemstone",
	"rd_ca_horoscope", "rd_ca_initials", "rd_ca_material", "rd_ca_metal",
	"rd_ca_plating", "rd_ca_sub_category", "hh_web_plating",
}

// DefaultProbeSuffixes суффиксы вариантных SKU, пробуемые по порядку
// при поиске записи-источника фасетов
var DefaultProbeSuffixes = []string{"-SM", "-S-M", "-NS", "-Adjustable"}

// EnricherConfig параметры обогащения существующих родителей
type EnricherConfig struct {
	// ParentPrefix префикс родительского SKU ("P-")
	ParentPrefix string
	// TriggerColumn фасет, пустота которого означает необогащенного родителя
	TriggerColumn string
	// FacetColumns копируемые колонки
	FacetColumns []string
	// ProbeSuffixes суффиксы кандидатных вариантных SKU в порядке приоритета
	ProbeSuffixes []string
}

// DefaultEnricherConfig параметры обогащения по умолчанию
func DefaultEnricherConfig() EnricherConfig {
	return EnricherConfig{
		ParentPrefix:  "P-",
		TriggerColumn: "rd_ca_div_name",
		FacetColumns:  DefaultFacetColumns,
		ProbeSuffixes: DefaultProbeSuffixes,
	}
}

// EnrichedParent результат обогащения одного родителя: его SKU и
// название, SKU варианта-источника (пустой, если кандидат не нашелся)
// и значения фасетов
type EnrichedParent struct {
	SKU       string
	Name      string
	SourceSKU string
	Facets    map[string]string
}

// EnrichmentResult результат запуска обогащения
type EnrichmentResult struct {
	// Updated строки для импорта: по одной на необогащенного родителя
	Updated []EnrichedParent
	// EmptyParents исходные родители с пустым триггерным фасетом, как есть
	EmptyParents []catalog.ProductRecord
}

// Enricher дополняет существующие configurable-записи фасетами их
// вариантов. Родители, созданные без атрибутики, получают фасеты первого
// найденного простого варианта "базовый SKU + суффикс". Снимок не
// мутируется: обогащение — отдельный выход, как и синтез.
type Enricher struct {
	config EnricherConfig
}

// NewEnricher создает обогатитель
func NewEnricher(config EnricherConfig) *Enricher {
	if config.TriggerColumn == "" {
		config.TriggerColumn = "rd_ca_div_name"
	}
	if len(config.FacetColumns) == 0 {
		config.FacetColumns = DefaultFacetColumns
	}
	if len(config.ProbeSuffixes) == 0 {
		config.ProbeSuffixes = DefaultProbeSuffixes
	}
	return &Enricher{config: config}
}

// Enrich обходит родителей с префиксом соглашения и пустым триггерным
// фасетом и подбирает каждому запись-источник среди простых вариантов
func (e *Enricher) Enrich(snapshot *catalog.Snapshot) *EnrichmentResult {
	simpleBySKU := make(map[string]*catalog.ProductRecord)
	for i := range snapshot.Records {
		record := &snapshot.Records[i]
		if record.IsSimple() {
			if _, seen := simpleBySKU[record.SKU]; !seen {
				simpleBySKU[record.SKU] = record
			}
		}
	}

	result := &EnrichmentResult{}
	for i := range snapshot.Records {
		parent := &snapshot.Records[i]
		if !e.needsEnrichment(parent) {
			continue
		}
		result.EmptyParents = append(result.EmptyParents, *parent)

		base := strings.TrimPrefix(parent.SKU, e.config.ParentPrefix)
		enriched := EnrichedParent{
			SKU:    parent.SKU,
			Name:   parent.Name,
			Facets: make(map[string]string, len(e.config.FacetColumns)),
		}
		for _, column := range e.config.FacetColumns {
			enriched.Facets[column] = ""
		}

		for _, suffix := range e.config.ProbeSuffixes {
			source, ok := simpleBySKU[base+suffix]
			if !ok {
				continue
			}
			enriched.SourceSKU = source.SKU
			for _, column := range e.config.FacetColumns {
				value, _ := source.Attribute(column)
				enriched.Facets[column] = strings.TrimSpace(value)
			}
			break
		}

		result.Updated = append(result.Updated, enriched)
	}
	return result
}

// needsEnrichment родитель по соглашению об именовании с пустым триггерным фасетом
func (e *Enricher) needsEnrichment(record *catalog.ProductRecord) bool {
	if !record.IsConfigurable() {
		return false
	}
	if e.config.ParentPrefix != "" && !strings.HasPrefix(record.SKU, e.config.ParentPrefix) {
		return false
	}
	trigger, _ := record.Attribute(e.config.TriggerColumn)
	return strings.TrimSpace(trigger) == ""
}
