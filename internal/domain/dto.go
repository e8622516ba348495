package domain

type CashboxStatus string

const (
	CashboxStatusOpen   CashboxStatus = "open"
	CashboxStatusClosed CashboxStatus = "closed"
)

type MovementKind string

const (
	MovementKindIncome     MovementKind = "income"
	MovementKindExpense    MovementKind = "expense"
	MovementKindRefill     MovementKind = "refill"
	MovementKindDifference MovementKind = "difference"
)

func (k MovementKind) IsValid() bool {
	switch k {
	case MovementKindIncome, MovementKindExpense, MovementKindRefill, MovementKindDifference:
		return true
	}
	return false
}

// Direction возвращает направление, которое определяется типом движения. Для difference
// направление задается явно, поэтому ok == false.
func (k MovementKind) Direction() (dir DirectionType, ok bool) {
	switch k {
	case MovementKindIncome, MovementKindRefill:
		return DirectionCredit, true
	case MovementKindExpense:
		return DirectionDebit, true
	default:
		return "", false
	}
}

// DirectionType знак движения: credit увеличивает остаток кассы, debit уменьшает.
type DirectionType string

const (
	DirectionDebit  DirectionType = "debit"
	DirectionCredit DirectionType = "credit"
)

func (d DirectionType) Opposite() DirectionType {
	if d == DirectionCredit {
		return DirectionDebit
	}
	return DirectionCredit
}

type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// Currencies валюты, которые ведет каждая касса.
var Currencies = []Currency{CurrencyARS, CurrencyUSD}

func (c Currency) IsValid() bool {
	return c == CurrencyARS || c == CurrencyUSD
}

// ApprovalState состояние согласования расхождения закрытой кассы.
type ApprovalState string

const (
	ApprovalStateNone     ApprovalState = "NONE"
	ApprovalStatePending  ApprovalState = "PENDING"
	ApprovalStateApproved ApprovalState = "APPROVED"
	ApprovalStateRejected ApprovalState = "REJECTED"
)

type ExplanationStatus string

const (
	ExplanationStatusPending   ExplanationStatus = "PENDING"
	ExplanationStatusDelivered ExplanationStatus = "DELIVERED"
)
