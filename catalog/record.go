package catalog

import "strings"

// Типы продуктов в каталоге Magento
const (
	TypeSimple       = "simple"
	TypeConfigurable = "configurable"
)

// Статусы product_online в экспорте Magento: "1" — включен, "2" — отключен
const (
	OnlineEnabled  = "1"
	OnlineDisabled = "2"
)

// Названия обязательных и распознаваемых опциональных колонок экспорта
const (
	ColSKU                    = "sku"
	ColName                   = "name"
	ColProductType            = "product_type"
	ColProductOnline          = "product_online"
	ColVisibility             = "visibility"
	ColConfigurableVariations = "configurable_variations"
	ColAssociatedSkus         = "associated_skus"
	ColBaseImage              = "base_image"
	ColAdditionalImages       = "additional_images"
	ColPrice                  = "price"
	ColCategories             = "categories"
)

// ProductRecord одна строка каталога. После загрузки запись неизменяема:
// все стадии движка работают с производными коллекциями и никогда
// не модифицируют исходный снимок.
type ProductRecord struct {
	SKU                    string
	Name                   string
	ProductType            string
	ProductOnline          string
	Visibility             string
	ConfigurableVariations string
	AssociatedSkus         []string

	// Attributes пассивные атрибуты (цены, изображения, категории,
	// кастомные rd_* фасеты). Копируются в синтезированные записи
	// дословно, без интерпретации.
	Attributes map[string]string
}

// IsConfigurable проверяет, является ли запись родительским (configurable) продуктом
func (r *ProductRecord) IsConfigurable() bool {
	return strings.EqualFold(strings.TrimSpace(r.ProductType), TypeConfigurable)
}

// IsSimple проверяет, является ли запись простым продуктом
func (r *ProductRecord) IsSimple() bool {
	return strings.EqualFold(strings.TrimSpace(r.ProductType), TypeSimple)
}

// Attribute возвращает значение пассивного атрибута и признак его наличия.
// Основные поля (sku, name и т.д.) также доступны через этот метод,
// чтобы экспортеры могли работать с единым списком колонок.
func (r *ProductRecord) Attribute(column string) (string, bool) {
	switch column {
	case ColSKU:
		return r.SKU, true
	case ColName:
		return r.Name, true
	case ColProductType:
		return r.ProductType, true
	case ColProductOnline:
		return r.ProductOnline, true
	case ColVisibility:
		return r.Visibility, true
	case ColConfigurableVariations:
		return r.ConfigurableVariations, true
	case ColAssociatedSkus:
		return strings.Join(r.AssociatedSkus, ","), true
	}

	if r.Attributes == nil {
		return "", false
	}
	value, ok := r.Attributes[column]
	return value, ok
}

// CloneAttributes возвращает копию пассивных атрибутов записи.
// Используется синтезатором: шаблонная запись не должна делить
// карту атрибутов с новой родительской записью.
func (r *ProductRecord) CloneAttributes() map[string]string {
	clone := make(map[string]string, len(r.Attributes))
	for key, value := range r.Attributes {
		clone[key] = value
	}
	return clone
}
