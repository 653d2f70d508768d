package quality

import (
	"strconv"
	"strings"

	"catalogserver/catalog"
	"catalogserver/extractors"
)

// Severity важность найденной проблемы
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Коды проверок качества каталога
const (
	CheckDuplicateSKU        = "duplicate_sku"
	CheckMissingName         = "missing_name"
	CheckMalformedVariations = "malformed_variations"
	CheckInvalidPrice        = "invalid_price"
	CheckMissingBaseImage    = "missing_base_image"
	CheckHTMLInDescription   = "html_in_description"
)

// Issue одна проблема качества, привязанная к записи каталога
type Issue struct {
	SKU      string   `json:"sku"`
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidateName проверяет наличие непустого названия
func ValidateName(record *catalog.ProductRecord) *Issue {
	if strings.TrimSpace(record.Name) != "" {
		return nil
	}
	return &Issue{
		SKU:      record.SKU,
		Check:    CheckMissingName,
		Severity: SeverityError,
		Message:  "record has no name",
	}
}

// ValidateVariations проверяет, что непустое сопоставление вариаций
// configurable-записи содержит хотя бы одну пару sku=. Текст без пар
// бесполезен для индекса привязок и почти наверняка кривой.
func ValidateVariations(record *catalog.ProductRecord) *Issue {
	if !record.IsConfigurable() {
		return nil
	}
	if strings.TrimSpace(record.ConfigurableVariations) == "" {
		return nil
	}
	if len(extractors.VariationSKUs(record.ConfigurableVariations)) > 0 {
		return nil
	}
	return &Issue{
		SKU:      record.SKU,
		Check:    CheckMalformedVariations,
		Severity: SeverityWarning,
		Message:  "configurable_variations has no sku= pairs",
	}
}

// ValidatePrice проверяет, что непустая цена — число
func ValidatePrice(record *catalog.ProductRecord) *Issue {
	price, ok := record.Attribute(catalog.ColPrice)
	if !ok || strings.TrimSpace(price) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err == nil {
		return nil
	}
	return &Issue{
		SKU:      record.SKU,
		Check:    CheckInvalidPrice,
		Severity: SeverityWarning,
		Message:  "price is not numeric: " + price,
	}
}

// ValidateBaseImage проверяет наличие основного изображения у видимого
// простого продукта. Скрытым записям изображение не обязательно.
func ValidateBaseImage(record *catalog.ProductRecord, hasImageColumn bool) *Issue {
	if !hasImageColumn || !record.IsSimple() {
		return nil
	}
	visibility := strings.TrimSpace(record.Visibility)
	if visibility == "" || strings.EqualFold(visibility, "Not Visible Individually") {
		return nil
	}
	if image, _ := record.Attribute(catalog.ColBaseImage); strings.TrimSpace(image) != "" {
		return nil
	}
	return &Issue{
		SKU:      record.SKU,
		Check:    CheckMissingBaseImage,
		Severity: SeverityWarning,
		Message:  "visible simple product has no base image",
	}
}

// ValidateDescription помечает HTML-разметку в описании
func ValidateDescription(record *catalog.ProductRecord) *Issue {
	description, ok := record.Attribute("description")
	if !ok || strings.TrimSpace(description) == "" {
		return nil
	}
	if !extractors.ContainsMarkup(description) {
		return nil
	}
	return &Issue{
		SKU:      record.SKU,
		Check:    CheckHTMLInDescription,
		Severity: SeverityWarning,
		Message:  "description contains HTML markup: " + truncate(extractors.ExtractText(description), 60),
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
