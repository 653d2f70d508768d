package consolidation

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"catalogserver/catalog"
)

// Варианты отображения названия синтезированного родителя
const (
	CasingUpper = "upper"
	CasingTitle = "title"
	CasingLower = "lower"
)

// SynthesizerConfig параметры синтеза родительских записей
type SynthesizerConfig struct {
	// ParentPrefix префикс родительского SKU по соглашению каталога ("P-")
	ParentPrefix string
	// VariationAxis метка оси вариации в сопоставлении ("size")
	VariationAxis string
	// DisplayCasing регистр отображаемого названия родителя
	DisplayCasing string
	// SearchableVisibility значение видимости "искомый/просматриваемый"
	SearchableVisibility string
	// AggregatedColumns колонки, агрегируемые объединением по всем членам
	// семейства (медиа-поля); остальные атрибуты берутся из шаблона
	AggregatedColumns []string
}

// DefaultSynthesizerConfig параметры по соглашениям Magento-каталога
func DefaultSynthesizerConfig() SynthesizerConfig {
	return SynthesizerConfig{
		ParentPrefix:         "P-",
		VariationAxis:        "size",
		DisplayCasing:        CasingUpper,
		SearchableVisibility: "Catalog, Search",
		AggregatedColumns:    []string{catalog.ColBaseImage, catalog.ColAdditionalImages},
	}
}

// SynthesizedParent новая родительская запись, построенная по семейству.
// После создания не мутируется и не записывается обратно в исходный
// каталог — она существует только как новый выход запуска.
type SynthesizedParent struct {
	Record      catalog.ProductRecord
	Identity    string
	TemplateSKU string
	MemberSKUs  []string
}

// Synthesizer строит родительские записи из семейств вариантов
type Synthesizer struct {
	config SynthesizerConfig
	titler cases.Caser
}

// NewSynthesizer создает синтезатор с заданными параметрами
func NewSynthesizer(config SynthesizerConfig) *Synthesizer {
	if config.VariationAxis == "" {
		config.VariationAxis = "size"
	}
	return &Synthesizer{
		config: config,
		titler: cases.Title(language.English),
	}
}

// Synthesize строит одну родительскую запись по семейству и его
// каноническому шаблону:
//   - SKU = префикс + лексикографически наименьший базовый SKU среди
//     членов (не обязательно шаблонного) — SKU выводится из содержимого
//     семейства и не зависит от порядка входа;
//   - название = базовое название шаблона в настроенном регистре;
//   - видимость принудительно "искомый/просматриваемый", статус включен;
//   - медиа-колонки агрегируются дедуплицированным объединением по всем
//     членам в порядке первого появления, остальные атрибуты копируются
//     из шаблона;
//   - сопоставление вариаций и associated_skus сериализуются по одному
//     элементу на члена в каноническом порядке семейства.
func (s *Synthesizer) Synthesize(family *VariantFamily, template *UnlinkedVariant) SynthesizedParent {
	attributes := template.Record.CloneAttributes()
	for _, column := range s.config.AggregatedColumns {
		if value := s.aggregateColumn(family, column); value != "" {
			attributes[column] = value
		}
	}

	memberSKUs := family.MemberSKUs()
	record := catalog.ProductRecord{
		SKU:                    s.config.ParentPrefix + smallestBaseSKU(family),
		Name:                   s.displayName(template.BaseName),
		ProductType:            catalog.TypeConfigurable,
		ProductOnline:          catalog.OnlineEnabled,
		Visibility:             s.config.SearchableVisibility,
		ConfigurableVariations: s.serializeVariations(family),
		AssociatedSkus:         memberSKUs,
		Attributes:             attributes,
	}

	return SynthesizedParent{
		Record:      record,
		Identity:    family.Identity,
		TemplateSKU: template.Record.SKU,
		MemberSKUs:  memberSKUs,
	}
}

// smallestBaseSKU лексикографически наименьший базовый SKU семейства
func smallestBaseSKU(family *VariantFamily) string {
	bases := make([]string, len(family.Members))
	for i := range family.Members {
		bases[i] = family.Members[i].BaseSKU
	}
	sort.Strings(bases)
	return bases[0]
}

// serializeVariations сериализует сопоставление вариаций: по одной
// записи "sku=<SKU>,<ось>=<ТОКЕН>" на члена, через вертикальную черту,
// в каноническом порядке членов
func (s *Synthesizer) serializeVariations(family *VariantFamily) string {
	entries := make([]string, len(family.Members))
	for i := range family.Members {
		member := &family.Members[i]
		entries[i] = "sku=" + member.Record.SKU + "," + s.config.VariationAxis + "=" + member.Size
	}
	return strings.Join(entries, "|")
}

// aggregateColumn дедуплицированное объединение значений колонки по всем
// членам семейства в порядке первого появления
func (s *Synthesizer) aggregateColumn(family *VariantFamily, column string) string {
	seen := make(map[string]struct{})
	var values []string
	for i := range family.Members {
		raw, ok := family.Members[i].Record.Attribute(column)
		if !ok {
			continue
		}
		for _, value := range strings.Split(raw, ",") {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}
	return strings.Join(values, ",")
}

// displayName рендерит нормализованное название в настроенном регистре
func (s *Synthesizer) displayName(baseName string) string {
	switch s.config.DisplayCasing {
	case CasingTitle:
		return s.titler.String(baseName)
	case CasingLower:
		return strings.ToLower(baseName)
	default:
		return strings.ToUpper(baseName)
	}
}
