package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ActionOpen               = "open"
	ActionRefill             = "refill"
	ActionManualAdjustment   = "manual adjustment"
	ActionPostMovement       = "post movement"
	ActionCorrectMovement    = "correct movement"
	ActionClose              = "close"
	ActionRequestExplanation = "request explanation"
	ActionRejectDifference   = "reject difference"
	ActionApprove            = "approve difference"
)

// NewCashbox возвращает новую (еще не сохраненную) открытую кассу.
func NewCashbox(userID int64, opening Balances, date time.Time) (Cashbox, error) {
	if userID <= 0 {
		return Cashbox{}, NewValidationError("user_id", "is required")
	}
	if date.IsZero() {
		return Cashbox{}, NewValidationError("opening_date", "is required")
	}
	for _, c := range Currencies {
		field := "opening_" + strings.ToLower(string(c))
		if opening.Get(c).IsNegative() {
			return Cashbox{}, NewValidationError(field, "must not be negative")
		}
		if err := checkScale(field, opening.Get(c)); err != nil {
			return Cashbox{}, err
		}
	}
	return Cashbox{
		UserID:      userID,
		Status:      CashboxStatusOpen,
		OpeningDate: date,
		Opening:     opening,
	}, nil
}

func (cb *Cashbox) IsOpen() bool {
	return cb.Status == CashboxStatusOpen
}

// CheckAppend проверяет, можно ли добавить движение в кассу.
//
// Особенности:
//   - В открытую кассу можно добавить движение любого типа с датой не раньше даты открытия.
//   - В закрытую кассу - только движения типа difference внутри периода кассы и только после
//     согласования расхождения.
func (cb *Cashbox) CheckAppend(action string, m CashMovement) error {
	if !cb.IsOpen() {
		if m.Kind != MovementKindDifference {
			return NewConflictError(cb, action, "cashbox is closed")
		}
		if cb.ApprovalState() != ApprovalStateApproved {
			return NewConflictError(cb, action, "difference is not approved")
		}
	}

	if m.EffectiveDate.Before(cb.OpeningDate) {
		return NewValidationError("effective_date", "precedes the cashbox opening date")
	}
	if cb.ClosingDate != nil && m.EffectiveDate.After(*cb.ClosingDate) {
		return NewValidationError("effective_date", "is after the cashbox closing date")
	}
	return nil
}

// NewAdjustment создает движение ручной корректировки. Положительная сумма увеличивает остаток,
// отрицательная - уменьшает.
func NewAdjustment(
	cashboxID int64,
	amount decimal.Decimal,
	currency Currency,
	reason string,
	date time.Time,
) (CashMovement, error) {
	if amount.IsZero() {
		return CashMovement{}, NewValidationError("amount", "must not be zero")
	}
	dir := DirectionCredit
	if amount.IsNegative() {
		dir = DirectionDebit
	}
	return NewMovement(cashboxID, MovementKindDifference, dir, amount.Abs(), currency, date, reason)
}

func (cb *Cashbox) CheckClose(date time.Time) error {
	if !cb.IsOpen() {
		return NewConflictError(cb, ActionClose, "cashbox is already closed")
	}
	if date.IsZero() {
		return NewValidationError("closing_date", "is required")
	}
	if date.Before(cb.OpeningDate) {
		return NewValidationError("closing_date", "precedes the cashbox opening date")
	}
	return nil
}

// ApplyClose переводит кассу в статус closed вместе с результатом сверки.
func (cb *Cashbox) ApplyClose(rec Reconciliation, date time.Time) {
	declared := rec.Declared
	diff := rec.Difference
	cb.Status = CashboxStatusClosed
	cb.ClosingDate = &date
	cb.Closing = &declared
	cb.Difference = &diff
	cb.DifferenceApproved = rec.Approved
	cb.DifferenceApprovedByID = nil
	cb.DifferenceApprovedAt = nil
}

// CheckCorrect проверяет, можно ли аннулировать движение компенсирующей записью.
func (cb *Cashbox) CheckCorrect(m CashMovement) error {
	if m.CashboxID != cb.ID {
		return NewNotFoundError("movement", m.ID)
	}
	if !cb.IsOpen() {
		return NewConflictError(cb, ActionCorrectMovement, "cashbox is closed")
	}
	if m.VoidedAt != nil {
		return NewConflictError(cb, ActionCorrectMovement, "movement is already corrected")
	}
	if m.CorrectsID != nil {
		return NewConflictError(cb, ActionCorrectMovement, "compensating movements cannot be corrected")
	}
	return nil
}

// Compensation возвращает компенсирующее движение для m.
func Compensation(m CashMovement, reason string, date time.Time) CashMovement {
	id := m.ID
	if date.Before(m.EffectiveDate) {
		date = m.EffectiveDate
	}
	return CashMovement{
		CashboxID:     m.CashboxID,
		Kind:          MovementKindDifference,
		Direction:     m.Direction.Opposite(),
		Amount:        m.Amount,
		Currency:      m.Currency,
		EffectiveDate: date,
		Description:   reason,
		CorrectsID:    &id,
	}
}
