package consolidation

import (
	"strings"
	"unicode"
)

// Normalizer выводит базовую идентичность записи из SKU или названия,
// отбрасывая распознанный размерный суффикс. Чистая функция от входа и
// словаря: одинаковый вход всегда дает одинаковый выход, повторная
// нормализация собственного результата ничего не меняет.
type Normalizer struct {
	vocab *SizeVocabulary
}

// NewNormalizer создает нормализатор поверх словаря размеров
func NewNormalizer(vocab *SizeVocabulary) *Normalizer {
	return &Normalizer{vocab: vocab}
}

// isSKUSeparator разделители сегментов внутри SKU
func isSKUSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '/'
}

// BaseSKU отрезает от SKU хвостовой размерный суффикс вместе с ведущим
// разделителем. Токен распознается только на конце строки: "PRISM-01"
// не теряет "SM" из середины слова. Если хвостового токена нет, SKU
// возвращается без изменений. Срез повторяется, пока хвостовой токен
// распознается, поэтому функция идемпотентна даже на входах вида "X-SM-SM".
func (n *Normalizer) BaseSKU(sku string) string {
	s := strings.TrimSpace(sku)
	for {
		base, ok := n.stripTrailingSKUToken(s)
		if !ok {
			return s
		}
		s = base
	}
}

// stripTrailingSKUToken пытается отрезать один хвостовой токен.
// Кандидаты перебираются от самого длинного (словарный максимум
// сегментов) к одному сегменту, чтобы "S-M" выигрывал у "M".
func (n *Normalizer) stripTrailingSKUToken(s string) (string, bool) {
	var separators []int
	for i, r := range s {
		if isSKUSeparator(r) {
			separators = append(separators, i)
		}
	}
	if len(separators) == 0 {
		return s, false
	}

	maxSegments := n.vocab.MaxSegments()
	for segments := maxSegments; segments >= 1; segments-- {
		if segments > len(separators) {
			continue
		}
		sepIdx := separators[len(separators)-segments]
		candidate := s[sepIdx+1:]
		if candidate == "" {
			continue
		}
		if _, ok := n.vocab.Match(candidate); ok && sepIdx > 0 {
			return s[:sepIdx], true
		}
	}
	return s, false
}

// SKUSize возвращает канонический размерный токен с конца SKU.
// Пустая строка — суффикс не распознан.
func (n *Normalizer) SKUSize(sku string) string {
	s := strings.TrimSpace(sku)
	var separators []int
	for i, r := range s {
		if isSKUSeparator(r) {
			separators = append(separators, i)
		}
	}
	for segments := n.vocab.MaxSegments(); segments >= 1; segments-- {
		if segments > len(separators) {
			continue
		}
		sepIdx := separators[len(separators)-segments]
		if sepIdx == 0 || sepIdx+1 >= len(s) {
			continue
		}
		if token, ok := n.vocab.Match(s[sepIdx+1:]); ok {
			return token
		}
	}
	return ""
}

// HasSizeSuffix сообщает, оканчивается ли SKU распознанным размерным суффиксом
func (n *Normalizer) HasSizeSuffix(sku string) bool {
	return n.SKUSize(sku) != ""
}

// BaseName нормализует название: нижний регистр, только буквы, цифры и
// пробелы, одиночные пробелы, без хвостового размерного токена.
// Токен в названии может быть записан несколькими хвостовыми словами
// ("GOLD RING - S M"); сопоставление идет по границам слов, поэтому
// "PRISM" никогда не теряет свой "sm". Идемпотентна.
func (n *Normalizer) BaseName(name string) string {
	cleaned := cleanNameText(name)
	words := strings.Fields(cleaned)

	for len(words) > 0 {
		stripped, ok := n.stripTrailingNameToken(words)
		if !ok {
			break
		}
		words = stripped
	}
	return strings.Join(words, " ")
}

// stripTrailingNameToken пытается отрезать токен, записанный 1..N
// хвостовыми словами, от длинного варианта к короткому
func (n *Normalizer) stripTrailingNameToken(words []string) ([]string, bool) {
	maxWords := n.vocab.MaxSegments()
	for count := maxWords; count >= 1; count-- {
		if count >= len(words) {
			// Название, состоящее из одного токена, не усекается до пустоты
			continue
		}
		tail := strings.Join(words[len(words)-count:], " ")
		if _, ok := n.vocab.Match(tail); ok {
			return words[:len(words)-count], true
		}
	}
	return words, false
}

// cleanNameText нижний регистр, не-алфавитно-цифровые символы заменяются
// пробелом, серии пробелов схлопываются
func cleanNameText(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
