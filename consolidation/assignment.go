package consolidation

import (
	"catalogserver/catalog"
	"catalogserver/extractors"
)

// AssignmentIndex множество SKU, уже привязанных к какому-либо
// существующему configurable-продукту. Перестраивается заново на каждый
// запуск и используется только для отсечения кандидатов — запись из
// индекса никогда не становится непривязанным вариантом повторно.
type AssignmentIndex map[string]struct{}

// Contains проверяет наличие SKU в индексе
func (idx AssignmentIndex) Contains(sku string) bool {
	_, ok := idx[sku]
	return ok
}

// BuildAssignmentIndex строит индекс привязанных SKU по снимку каталога:
// чистая свертка записей с типом configurable в множество. Из каждой
// берутся все пары sku= из сопоставления вариаций плюс список
// associated_skus. Неразбираемый текст сопоставления не дает ничего и
// не считается ошибкой — индекс строится по принципу best effort,
// одна запись не может уронить весь запуск.
func BuildAssignmentIndex(records []catalog.ProductRecord) AssignmentIndex {
	index := make(AssignmentIndex)
	for i := range records {
		record := &records[i]
		if !record.IsConfigurable() {
			continue
		}
		for _, sku := range extractors.VariationSKUs(record.ConfigurableVariations) {
			index[sku] = struct{}{}
		}
		for _, sku := range record.AssociatedSkus {
			if sku != "" {
				index[sku] = struct{}{}
			}
		}
	}
	return index
}
