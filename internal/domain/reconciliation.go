package domain

import (
	"strings"
	"time"
)

type Reconciliation struct {
	Expected   Balances
	Declared   Balances
	Difference Balances
	// Approved true только при нулевом расхождении по всем валютам.
	Approved bool
}

// Reconcile сверяет заявленный остаток на закрытии с остатком по движениям.
// Остаток по движениям уже включает начальный остаток, поэтому expected = RunningBalance.
// Результат зависит только от аргументов (без текущего времени и случайности).
func Reconcile(cb *Cashbox, movements []CashMovement, declared Balances, date time.Time) (Reconciliation, error) {
	if err := cb.CheckClose(date); err != nil {
		return Reconciliation{}, err
	}
	for _, c := range Currencies {
		field := "declared_" + strings.ToLower(string(c))
		if declared.Get(c).IsNegative() {
			return Reconciliation{}, NewValidationError(field, "must not be negative")
		}
		if err := checkScale(field, declared.Get(c)); err != nil {
			return Reconciliation{}, err
		}
	}

	expected := RunningBalances(cb.Opening, movements)
	var diff Balances
	for _, c := range Currencies {
		diff = diff.With(c, declared.Get(c).Sub(expected.Get(c)))
	}

	return Reconciliation{
		Expected:   expected,
		Declared:   declared,
		Difference: diff,
		Approved:   diff.IsZero(),
	}, nil
}
