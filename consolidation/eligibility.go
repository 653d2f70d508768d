package consolidation

import (
	"strings"

	"catalogserver/catalog"
)

// OnlinePolicy политика отбора по статусу и видимости. Отсутствующее
// на записи поле проходит любую проверку: опциональные колонки
// по умолчанию разрешающие, строже их делает только политика запуска.
type OnlinePolicy struct {
	// ExcludedOnline значения product_online, исключающие запись
	// (в Magento "2" — отключенный продукт)
	ExcludedOnline []string
	// RequiredVisibility если непусто — допустимые значения visibility;
	// пустой список означает "любая видимость"
	RequiredVisibility []string
}

// DefaultOnlinePolicy исключает отключенные продукты и не ограничивает видимость
func DefaultOnlinePolicy() OnlinePolicy {
	return OnlinePolicy{ExcludedOnline: []string{catalog.OnlineDisabled}}
}

// Passes проверяет запись против политики
func (p OnlinePolicy) Passes(record *catalog.ProductRecord) bool {
	online := strings.TrimSpace(record.ProductOnline)
	if online != "" {
		for _, excluded := range p.ExcludedOnline {
			if online == excluded {
				return false
			}
		}
	}

	visibility := strings.TrimSpace(record.Visibility)
	if visibility != "" && len(p.RequiredVisibility) > 0 {
		allowed := false
		for _, required := range p.RequiredVisibility {
			if strings.EqualFold(visibility, required) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	return true
}

// UnlinkedVariant кандидат в непривязанные варианты: запись плюс
// однажды вычисленные базовый SKU, базовое название и размер. Поля
// кэшируются при отборе и дальше по конвейеру не пересчитываются —
// нормализатор идемпотентен, пересчет дал бы то же самое.
type UnlinkedVariant struct {
	Record   catalog.ProductRecord
	BaseSKU  string
	BaseName string
	Size     string
	SizeRank int
}

// EligibilityFilter отбирает записи, являющиеся непривязанными
// вариантами. Все правила конъюнктивны, порядок их проверки на
// результат не влияет.
type EligibilityFilter struct {
	normalizer   *Normalizer
	vocab        *SizeVocabulary
	parentPrefix string
	policy       OnlinePolicy
	exclusions   map[string]struct{}
}

// NewEligibilityFilter создает фильтр. exclusions — операционный
// денилист базовых SKU (ручные исключения известных ложных совпадений),
// загружается из сервисной БД или конфигурации, может быть nil.
func NewEligibilityFilter(normalizer *Normalizer, vocab *SizeVocabulary, parentPrefix string, policy OnlinePolicy, exclusions map[string]struct{}) *EligibilityFilter {
	return &EligibilityFilter{
		normalizer:   normalizer,
		vocab:        vocab,
		parentPrefix: parentPrefix,
		policy:       policy,
		exclusions:   exclusions,
	}
}

// FilterEligible возвращает непривязанные варианты снимка в порядке файла.
// Запись проходит, только если выполняются все правила:
//  1. SKU оканчивается распознанным размерным суффиксом;
//  2. SKU сам не выглядит как родительский (префикс соглашения);
//  3. SKU не привязан ни к одному существующему configurable;
//  4. в снимке нет записи с SKU "префикс + базовый SKU";
//  5. нормализованное название не совпадает с нормализованным названием
//     какого-либо существующего configurable;
//  6. запись проходит политику статуса/видимости;
//  7. базовый SKU не в списке ручных исключений.
func (f *EligibilityFilter) FilterEligible(snapshot *catalog.Snapshot, index AssignmentIndex) []UnlinkedVariant {
	allSKUs := snapshot.SKUSet()
	parentNames := f.configurableNameSet(snapshot)

	var eligible []UnlinkedVariant
	for i := range snapshot.Records {
		record := &snapshot.Records[i]
		if !f.hasSizeSuffix(record) {
			continue
		}
		if f.looksLikeParent(record) {
			continue
		}
		if f.alreadyAssigned(record, index) {
			continue
		}
		if f.parentExistsBySKU(record, allSKUs) {
			continue
		}
		if f.parentExistsByName(record, parentNames) {
			continue
		}
		if !f.policy.Passes(record) {
			continue
		}
		if f.excluded(record) {
			continue
		}

		size := f.normalizer.SKUSize(record.SKU)
		eligible = append(eligible, UnlinkedVariant{
			Record:   *record,
			BaseSKU:  f.normalizer.BaseSKU(record.SKU),
			BaseName: f.normalizer.BaseName(record.Name),
			Size:     size,
			SizeRank: f.vocab.Rank(size),
		})
	}
	return eligible
}

// hasSizeSuffix правило 1
func (f *EligibilityFilter) hasSizeSuffix(record *catalog.ProductRecord) bool {
	return f.normalizer.HasSizeSuffix(record.SKU)
}

// looksLikeParent правило 2
func (f *EligibilityFilter) looksLikeParent(record *catalog.ProductRecord) bool {
	return f.parentPrefix != "" && strings.HasPrefix(record.SKU, f.parentPrefix)
}

// alreadyAssigned правило 3
func (f *EligibilityFilter) alreadyAssigned(record *catalog.ProductRecord, index AssignmentIndex) bool {
	return index.Contains(record.SKU)
}

// parentExistsBySKU правило 4: родитель по соглашению об именовании уже
// есть в снимке, даже если его сопоставление вариаций пусто
func (f *EligibilityFilter) parentExistsBySKU(record *catalog.ProductRecord, allSKUs map[string]struct{}) bool {
	if f.parentPrefix == "" {
		return false
	}
	conventional := f.parentPrefix + f.normalizer.BaseSKU(record.SKU)
	_, ok := allSKUs[conventional]
	return ok
}

// parentExistsByName правило 5: родитель может быть опознан по названию,
// а не по соглашению о SKU
func (f *EligibilityFilter) parentExistsByName(record *catalog.ProductRecord, parentNames map[string]struct{}) bool {
	normalized := f.normalizer.BaseName(record.Name)
	if normalized == "" {
		return false
	}
	_, ok := parentNames[normalized]
	return ok
}

// excluded правило 7
func (f *EligibilityFilter) excluded(record *catalog.ProductRecord) bool {
	if len(f.exclusions) == 0 {
		return false
	}
	_, ok := f.exclusions[f.normalizer.BaseSKU(record.SKU)]
	return ok
}

// configurableNameSet нормализованные названия существующих configurable-записей
func (f *EligibilityFilter) configurableNameSet(snapshot *catalog.Snapshot) map[string]struct{} {
	names := make(map[string]struct{})
	for i := range snapshot.Records {
		record := &snapshot.Records[i]
		if !record.IsConfigurable() {
			continue
		}
		if normalized := f.normalizer.BaseName(record.Name); normalized != "" {
			names[normalized] = struct{}{}
		}
	}
	return names
}
