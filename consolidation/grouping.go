package consolidation

import (
	"fmt"
	"sort"
)

// IdentityMode правило вычисления базовой идентичности семейства.
// Правило выбирается на запуск целиком: смешивание SKU- и именной
// идентичности в одном запуске не допускается.
type IdentityMode string

const (
	// IdentityByName группировка по нормализованному названию. Вариант
	// по умолчанию: он связывает варианты и тогда, когда их SKU-префиксы
	// различаются, а продукт один и тот же.
	IdentityByName IdentityMode = "name"
	// IdentityBySKU группировка по базовому SKU
	IdentityBySKU IdentityMode = "sku"
)

// Valid проверяет, что режим известен
func (m IdentityMode) Valid() bool {
	return m == IdentityByName || m == IdentityBySKU
}

// Identity возвращает базовую идентичность варианта в данном режиме
func (m IdentityMode) Identity(variant *UnlinkedVariant) string {
	if m == IdentityBySKU {
		return variant.BaseSKU
	}
	return variant.BaseName
}

// VariantFamily базовая идентичность плюс разделяющие ее варианты.
// Члены упорядочены по (ранг размера возр., SKU возр.), семейства в
// выдаче — по идентичности: повторный запуск на тех же данных дает
// байт-в-байт тот же результат.
type VariantFamily struct {
	Identity string
	Members  []UnlinkedVariant
}

// MemberSKUs возвращает SKU членов в каноническом порядке
func (f *VariantFamily) MemberSKUs() []string {
	skus := make([]string, len(f.Members))
	for i := range f.Members {
		skus[i] = f.Members[i].Record.SKU
	}
	return skus
}

// GroupFamilies разбивает отобранные варианты на семейства по базовой
// идентичности. Разделы с одним членом не становятся семействами —
// одинокий вариант не оправдывает синтез родителя — но возвращаются
// отдельно для диагностики почти-совпадений.
func GroupFamilies(eligible []UnlinkedVariant, mode IdentityMode) (families []VariantFamily, singles []UnlinkedVariant, err error) {
	if !mode.Valid() {
		return nil, nil, fmt.Errorf("unknown identity mode %q", mode)
	}

	partitions := make(map[string][]UnlinkedVariant)
	var order []string
	for _, variant := range eligible {
		identity := mode.Identity(&variant)
		if identity == "" {
			// Запись без идентичности не группируется ни с кем
			singles = append(singles, variant)
			continue
		}
		if _, seen := partitions[identity]; !seen {
			order = append(order, identity)
		}
		partitions[identity] = append(partitions[identity], variant)
	}

	sort.Strings(order)
	for _, identity := range order {
		members := partitions[identity]
		if len(members) < 2 {
			singles = append(singles, members...)
			continue
		}
		sortMembers(members)
		families = append(families, VariantFamily{Identity: identity, Members: members})
	}

	sort.Slice(singles, func(i, j int) bool {
		return singles[i].Record.SKU < singles[j].Record.SKU
	})
	return families, singles, nil
}

// sortMembers канонический порядок членов семейства: ранг размера по
// возрастанию, при равенстве — SKU лексикографически
func sortMembers(members []UnlinkedVariant) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].SizeRank != members[j].SizeRank {
			return members[i].SizeRank < members[j].SizeRank
		}
		return members[i].Record.SKU < members[j].Record.SKU
	})
}
