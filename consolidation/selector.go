package consolidation

import (
	"errors"
	"fmt"
)

// ErrEmptyFamily семейство без членов не должно доходить до селектора
var ErrEmptyFamily = errors.New("variant family has no members")

// AmbiguityError нарушение инварианта уникальности SKU: два члена
// семейства с равным рангом и одинаковым SKU. Уникальность SKU
// гарантируется выше по конвейеру, поэтому такая ситуация не
// разрешается молча, а поднимается как флаг.
type AmbiguityError struct {
	Identity string
	SKU      string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous canonical selection in family %q: duplicate member SKU %q", e.Identity, e.SKU)
}

// SelectTemplate выбирает каноническую запись-шаблон семейства: член с
// наименьшим рангом размера, при равенстве рангов — с лексикографически
// меньшим SKU. Шаблон поставляет все атрибуты, которые синтезатор не
// пересчитывает явно. Члены семейства уже в каноническом порядке,
// поэтому шаблон — первый член; функция дополнительно проверяет
// инвариант уникальности.
func SelectTemplate(family *VariantFamily) (*UnlinkedVariant, error) {
	if len(family.Members) == 0 {
		return nil, ErrEmptyFamily
	}

	// Члены отсортированы по (ранг, SKU) — дубликаты SKU соседствуют
	for i := 1; i < len(family.Members); i++ {
		prev, curr := &family.Members[i-1], &family.Members[i]
		if curr.SizeRank == prev.SizeRank && curr.Record.SKU == prev.Record.SKU {
			return nil, &AmbiguityError{Identity: family.Identity, SKU: curr.Record.SKU}
		}
	}
	return &family.Members[0], nil
}
