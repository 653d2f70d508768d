package consolidation

import (
	"errors"
	"strings"
)

// DefaultSizeTokens словарь размерных суффиксов по умолчанию в порядке
// приоритета. Разные написания одного токена ("SM", "S-M", "S/M")
// схлопываются в одну каноническую форму при построении словаря.
var DefaultSizeTokens = []string{"SM", "S-M", "S/M", "ML", "M-L", "LXL"}

// DefaultUnknownRank ранг для нераспознанных размеров: заведомо дальше
// конца любого разумного словаря
const DefaultUnknownRank = 999

// ErrEmptyVocabulary словарь размеров не может быть пустым
var ErrEmptyVocabulary = errors.New("size vocabulary is empty")

// SizeVocabulary упорядоченный словарь размерных токенов. Порядок задает
// приоритет (меньше — приоритетнее). Сопоставление нечувствительно к
// регистру и разделителям: "S-M", "s/m" и "S M" разрешаются в один токен.
// Это явный токенизатор, построенный из конфигурации, — никакой
// зашитой в код грамматики суффиксов.
type SizeVocabulary struct {
	tokens      []string       // канонические формы в порядке приоритета
	ranks       map[string]int // каноническая форма -> ранг
	maxSegments int            // максимум сегментов в одном написании ("S-M" = 2)
	unknownRank int
}

// NewSizeVocabulary строит словарь из списка написаний. Написания,
// схлопывающиеся в одну каноническую форму, получают ранг первого
// вхождения.
func NewSizeVocabulary(spellings []string, unknownRank int) (*SizeVocabulary, error) {
	if len(spellings) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if unknownRank <= 0 {
		unknownRank = DefaultUnknownRank
	}

	v := &SizeVocabulary{
		ranks:       make(map[string]int),
		unknownRank: unknownRank,
	}

	for _, spelling := range spellings {
		canonical := CanonicalSize(spelling)
		if canonical == "" {
			continue
		}
		if segments := countSegments(spelling); segments > v.maxSegments {
			v.maxSegments = segments
		}
		if _, seen := v.ranks[canonical]; seen {
			continue
		}
		v.ranks[canonical] = len(v.tokens)
		v.tokens = append(v.tokens, canonical)
	}

	if len(v.tokens) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return v, nil
}

// DefaultVocabulary возвращает словарь, построенный из DefaultSizeTokens
func DefaultVocabulary() *SizeVocabulary {
	v, err := NewSizeVocabulary(DefaultSizeTokens, DefaultUnknownRank)
	if err != nil {
		// DefaultSizeTokens непустой, сюда попасть нельзя
		panic(err)
	}
	return v
}

// CanonicalSize приводит написание размера к канонической форме:
// верхний регистр без разделителей ("s/m" -> "SM")
func CanonicalSize(spelling string) string {
	var b strings.Builder
	for _, r := range spelling {
		switch r {
		case '-', '_', '/', ' ', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// countSegments считает сегменты написания, разделенные '-', '_', '/' или пробелом
func countSegments(spelling string) int {
	segments := strings.FieldsFunc(spelling, func(r rune) bool {
		return r == '-' || r == '_' || r == '/' || r == ' '
	})
	return len(segments)
}

// Match проверяет, является ли строка целиком одним из токенов словаря,
// и возвращает его каноническую форму
func (v *SizeVocabulary) Match(s string) (string, bool) {
	canonical := CanonicalSize(s)
	if canonical == "" {
		return "", false
	}
	if _, ok := v.ranks[canonical]; ok {
		return canonical, true
	}
	return "", false
}

// Rank возвращает приоритет токена; нераспознанный токен получает
// сторожевой ранг за концом словаря
func (v *SizeVocabulary) Rank(token string) int {
	if rank, ok := v.ranks[CanonicalSize(token)]; ok {
		return rank
	}
	return v.unknownRank
}

// UnknownRank возвращает сторожевой ранг словаря
func (v *SizeVocabulary) UnknownRank() int {
	return v.unknownRank
}

// MaxSegments максимальное количество сегментов среди написаний словаря.
// Нормализатор использует его как глубину поиска хвостового токена.
func (v *SizeVocabulary) MaxSegments() int {
	return v.maxSegments
}

// Tokens возвращает канонические формы в порядке приоритета
func (v *SizeVocabulary) Tokens() []string {
	result := make([]string, len(v.tokens))
	copy(result, v.tokens)
	return result
}
