package domain

import (
	"cmp"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// AmountScale количество знаков после запятой, которое хранится в numeric колонках.
	AmountScale = 2
)

func checkScale(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(AmountScale)) {
		return NewValidationError(field, "must have at most 2 decimal places")
	}
	return nil
}

// NewMovement создает движение и проверяет сумму, валюту, тип и дату. Направление берется из типа
// движения, dir используется только для difference.
func NewMovement(
	cashboxID int64,
	kind MovementKind,
	dir DirectionType,
	amount decimal.Decimal,
	currency Currency,
	effectiveDate time.Time,
	description string,
) (CashMovement, error) {
	if !kind.IsValid() {
		return CashMovement{}, NewValidationError("kind", "unknown movement kind "+string(kind))
	}
	if !currency.IsValid() {
		return CashMovement{}, NewValidationError("currency", "unknown currency "+string(currency))
	}
	if !amount.IsPositive() {
		return CashMovement{}, NewValidationError("amount", "must be greater than zero")
	}
	if err := checkScale("amount", amount); err != nil {
		return CashMovement{}, err
	}
	if effectiveDate.IsZero() {
		return CashMovement{}, NewValidationError("effective_date", "is required")
	}

	if fixed, ok := kind.Direction(); ok {
		dir = fixed
	} else if dir != DirectionCredit && dir != DirectionDebit {
		return CashMovement{}, NewValidationError("direction", "difference movements need a direction")
	}

	return CashMovement{
		CashboxID:     cashboxID,
		Kind:          kind,
		Direction:     dir,
		Amount:        amount,
		Currency:      currency,
		EffectiveDate: effectiveDate,
		Description:   description,
	}, nil
}

// RunningBalance возвращает остаток по валюте: начальный остаток плюс сумма знаковых движений
// в порядке добавления. Аннулированные движения тоже учитываются, их гасит компенсирующая запись.
func RunningBalance(opening Balances, movements []CashMovement, currency Currency) decimal.Decimal {
	balance := opening.Get(currency)
	for _, m := range movements {
		if m.Currency != currency {
			continue
		}
		balance = balance.Add(m.Signed())
	}
	return balance
}

func RunningBalances(opening Balances, movements []CashMovement) Balances {
	var b Balances
	for _, c := range Currencies {
		b = b.With(c, RunningBalance(opening, movements, c))
	}
	return b
}

type HistoryFilter struct {
	Page      int
	Limit     int
	Kind      *MovementKind
	Currency  *Currency
	StartDate *time.Time
	EndDate   *time.Time
}

// Normalize приводит page и limit к допустимым границам вместо ошибки.
func (f HistoryFilter) Normalize() HistoryFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit < 1:
		f.Limit = DefaultPageLimit
	case f.Limit > MaxPageLimit:
		f.Limit = MaxPageLimit
	}
	return f
}

func (f HistoryFilter) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.Limit
}

func (f HistoryFilter) Match(m CashMovement) bool {
	if f.Kind != nil && m.Kind != *f.Kind {
		return false
	}
	if f.Currency != nil && m.Currency != *f.Currency {
		return false
	}
	if f.StartDate != nil && m.EffectiveDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && m.EffectiveDate.After(*f.EndDate) {
		return false
	}
	return true
}

// History возвращает ленивую последовательность движений, подходящих под фильтр, отсортированную
// по дате по убыванию; при равной дате - по порядку добавления, тоже по убыванию.
// movements должны быть в порядке добавления. Пагинацию не применяет, обходить можно многократно.
func History(movements []CashMovement, filter HistoryFilter) iter.Seq[CashMovement] {
	return func(yield func(CashMovement) bool) {
		idx := make([]int, 0, len(movements))
		for i, m := range movements {
			if filter.Match(m) {
				idx = append(idx, i)
			}
		}
		slices.SortFunc(idx, func(a, b int) int {
			if c := movements[b].EffectiveDate.Compare(movements[a].EffectiveDate); c != 0 {
				return c
			}
			return cmp.Compare(b, a)
		})
		for _, i := range idx {
			if !yield(movements[i]) {
				return
			}
		}
	}
}

type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}
