package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/service"
)

type BalancesResponse struct {
	ARS decimal.Decimal `json:"ars"`
	USD decimal.Decimal `json:"usd"`
}

func newBalancesResponse(b *domain.Balances) *BalancesResponse {
	if b == nil {
		return nil
	}
	return &BalancesResponse{ARS: b.ARS, USD: b.USD}
}

type CashboxResponse struct {
	ID                     int64                `json:"id"`
	UserID                 int64                `json:"user_id"`
	Status                 domain.CashboxStatus `json:"status"`
	ApprovalState          domain.ApprovalState `json:"approval_state"`
	OpeningDate            time.Time            `json:"opening_date"`
	ClosingDate            *time.Time           `json:"closing_date,omitempty"`
	OpeningBalance         *BalancesResponse    `json:"opening_balance"`
	ClosingBalance         *BalancesResponse    `json:"closing_balance,omitempty"`
	Difference             *BalancesResponse    `json:"difference,omitempty"`
	DifferenceApproved     bool                 `json:"difference_approved"`
	DifferenceApprovedByID *int64               `json:"difference_approved_by_id,omitempty"`
	DifferenceApprovedAt   *time.Time           `json:"difference_approved_at,omitempty"`
	RejectionReason        *string              `json:"rejection_reason,omitempty"`
	RejectedAt             *time.Time           `json:"rejected_at,omitempty"`
	Version                int64                `json:"version"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
}

func newCashboxResponse(cb *domain.Cashbox) *CashboxResponse {
	return &CashboxResponse{
		ID:                     cb.ID,
		UserID:                 cb.UserID,
		Status:                 cb.Status,
		ApprovalState:          cb.ApprovalState(),
		OpeningDate:            cb.OpeningDate,
		ClosingDate:            cb.ClosingDate,
		OpeningBalance:         newBalancesResponse(&cb.Opening),
		ClosingBalance:         newBalancesResponse(cb.Closing),
		Difference:             newBalancesResponse(cb.Difference),
		DifferenceApproved:     cb.DifferenceApproved,
		DifferenceApprovedByID: cb.DifferenceApprovedByID,
		DifferenceApprovedAt:   cb.DifferenceApprovedAt,
		RejectionReason:        cb.RejectionReason,
		RejectedAt:             cb.RejectedAt,
		Version:                cb.Version,
		CreatedAt:              cb.CreatedAt,
		UpdatedAt:              cb.UpdatedAt,
	}
}

type MovementResponse struct {
	ID            int64                `json:"id"`
	CashboxID     int64                `json:"cashbox_id"`
	Kind          domain.MovementKind  `json:"kind"`
	Direction     domain.DirectionType `json:"direction"`
	Amount        decimal.Decimal      `json:"amount"`
	Currency      domain.Currency      `json:"currency"`
	EffectiveDate time.Time            `json:"effective_date"`
	Description   string               `json:"description,omitempty"`
	ExpenseID     *int64               `json:"expense_id,omitempty"`
	IncomeID      *int64               `json:"income_id,omitempty"`
	CorrectsID    *int64               `json:"corrects_id,omitempty"`
	VoidedAt      *time.Time           `json:"voided_at,omitempty"`
	VoidReason    *string              `json:"void_reason,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func newMovementResponse(m *domain.CashMovement) *MovementResponse {
	return &MovementResponse{
		ID:            m.ID,
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
		VoidedAt:      m.VoidedAt,
		VoidReason:    m.VoidReason,
		CreatedAt:     m.CreatedAt,
	}
}

type BalanceResponse struct {
	CashboxID      int64                `json:"cashbox_id"`
	Status         domain.CashboxStatus `json:"status"`
	ApprovalState  domain.ApprovalState `json:"approval_state"`
	OpeningBalance *BalancesResponse    `json:"opening_balance"`
	RunningBalance *BalancesResponse    `json:"running_balance"`
	ClosingBalance *BalancesResponse    `json:"closing_balance,omitempty"`
	Difference     *BalancesResponse    `json:"difference,omitempty"`
}

func newBalanceResponse(b *service.BalanceSnapshot) *BalanceResponse {
	return &BalanceResponse{
		CashboxID:      b.CashboxID,
		Status:         b.Status,
		ApprovalState:  b.ApprovalState,
		OpeningBalance: newBalancesResponse(&b.Opening),
		RunningBalance: newBalancesResponse(&b.Running),
		ClosingBalance: newBalancesResponse(b.Closing),
		Difference:     newBalancesResponse(b.Difference),
	}
}

type HistoryResponse struct {
	Items []*MovementResponse `json:"items"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

type ExplanationResponse struct {
	ID        int64                    `json:"id"`
	CashboxID int64                    `json:"cashbox_id"`
	UserID    int64                    `json:"user_id"`
	Message   string                   `json:"message"`
	Status    domain.ExplanationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

func newExplanationResponse(r *domain.ExplanationRequest) *ExplanationResponse {
	return &ExplanationResponse{
		ID:        r.ID,
		CashboxID: r.CashboxID,
		UserID:    r.UserID,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
