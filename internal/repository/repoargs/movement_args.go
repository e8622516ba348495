package repoargs

import (
	"time"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/shopspring/decimal"
)

type MovementCreate struct {
	CashboxID     int64
	Kind          domain.MovementKind
	Direction     domain.DirectionType
	Amount        decimal.Decimal
	Currency      domain.Currency
	EffectiveDate time.Time
	Description   string
	ExpenseID     *int64
	IncomeID      *int64
	CorrectsID    *int64
}

// NewMovementCreate собирает аргументы вставки из доменного движения.
func NewMovementCreate(m domain.CashMovement) MovementCreate {
	return MovementCreate{
		CashboxID:     m.CashboxID,
		Kind:          m.Kind,
		Direction:     m.Direction,
		Amount:        m.Amount,
		Currency:      m.Currency,
		EffectiveDate: m.EffectiveDate,
		Description:   m.Description,
		ExpenseID:     m.ExpenseID,
		IncomeID:      m.IncomeID,
		CorrectsID:    m.CorrectsID,
	}
}

type MovementVoid struct {
	ID       int64
	VoidedAt time.Time
	Reason   string
}

type MovementQuery struct {
	CashboxID int64
	Kind      *domain.MovementKind
	Currency  *domain.Currency
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// LedgerAggregation суммы движений кассы, сгруппированные по валюте и направлению.
type LedgerAggregation struct {
	Credit domain.Balances
	Debit  domain.Balances
}
