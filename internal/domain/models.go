package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balances суммы по каждой валюте. Поля соответствуют колонкам *_ars / *_usd.
type Balances struct {
	ARS decimal.Decimal `json:"ars"`
	USD decimal.Decimal `json:"usd"`
}

func (b Balances) Get(c Currency) decimal.Decimal {
	switch c {
	case CurrencyARS:
		return b.ARS
	case CurrencyUSD:
		return b.USD
	default:
		return decimal.Zero
	}
}

// With возвращает копию b с замененной суммой по валюте.
func (b Balances) With(c Currency, amount decimal.Decimal) Balances {
	switch c {
	case CurrencyARS:
		b.ARS = amount
	case CurrencyUSD:
		b.USD = amount
	}
	return b
}

func (b Balances) IsZero() bool {
	return b.ARS.IsZero() && b.USD.IsZero()
}

// Cashbox период кассы одного ответственного пользователя.
type Cashbox struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Status      CashboxStatus
	OpeningDate time.Time
	ClosingDate *time.Time
	Opening     Balances
	Closing     *Balances
	Difference  *Balances

	DifferenceApproved     bool
	DifferenceApprovedByID *int64
	DifferenceApprovedAt   *time.Time
	RejectionReason        *string
	RejectedAt             *time.Time

	// Version увеличивается при каждой записи в кассу, используется для оптимистичной блокировки.
	Version int64
}

// CashMovement неизменяемое движение по кассе. Amount всегда неотрицательный, знак задает Direction.
type CashMovement struct {
	ID            int64
	CreatedAt     time.Time
	CashboxID     int64
	Kind          MovementKind
	Direction     DirectionType
	Amount        decimal.Decimal
	Currency      Currency
	EffectiveDate time.Time
	Description   string
	ExpenseID     *int64
	IncomeID      *int64

	// CorrectsID ссылка на движение, которое компенсирует эта запись.
	CorrectsID *int64
	VoidedAt   *time.Time
	VoidReason *string
}

func (m CashMovement) Signed() decimal.Decimal {
	if m.Direction == DirectionDebit {
		return m.Amount.Neg()
	}
	return m.Amount
}

// ExplanationRequest запрос объяснения расхождения, адресованный ответственному за кассу.
// Доставляется асинхронно.
type ExplanationRequest struct {
	ID          int64
	CreatedAt   time.Time
	CashboxID   int64
	UserID      int64
	Message     string
	Status      ExplanationStatus
	Attempts    int
	DeliveredAt *time.Time
}

// AuditEntry снимок кассы до и после изменения с движением, если оно было проведено.
type AuditEntry struct {
	Action    string
	CashboxID int64
	ActorID   int64
	At        time.Time
	Before    *Cashbox
	After     *Cashbox
	Movement  *CashMovement
}
