package extractors

import (
	"regexp"
	"strings"
)

// skuPairPattern выражение для пар sku=<значение> в тексте
// configurable_variations: ключ без учета регистра, значение до запятой
// или вертикальной черты
var skuPairPattern = regexp.MustCompile(`(?i)sku=([^,|]+)`)

// VariationSKUs извлекает все SKU из текста сопоставления вариаций
// configurable-записи ("sku=RING-SM,size=SM|sku=RING-ML,size=ML").
// Текст без единой пары sku= дает пустой результат — извлечение
// максимально снисходительно и никогда не возвращает ошибку:
// одна кривая запись не должна ронять построение индекса.
func VariationSKUs(variations string) []string {
	if strings.TrimSpace(variations) == "" {
		return nil
	}

	matches := skuPairPattern.FindAllStringSubmatch(variations, -1)
	if len(matches) == 0 {
		return nil
	}

	skus := make([]string, 0, len(matches))
	for _, match := range matches {
		sku := strings.TrimSpace(match[1])
		if sku != "" {
			skus = append(skus, sku)
		}
	}
	return skus
}

// VariationAttribute извлекает значение атрибута вариации по имени ключа
// из одной записи сопоставления ("sku=RING-SM,size=SM" -> "SM" для "size")
func VariationAttribute(entry, key string) string {
	for _, pair := range strings.FieldsFunc(entry, func(r rune) bool { return r == ',' || r == '|' }) {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), key) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// AssociatedSKUList разбирает список associated_skus: значения через
// запятую или вертикальную черту, пустые элементы отбрасываются
func AssociatedSKUList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '|' })
	skus := make([]string, 0, len(parts))
	for _, part := range parts {
		if sku := strings.TrimSpace(part); sku != "" {
			skus = append(skus, sku)
		}
	}
	return skus
}
