package domain

import (
	"time"
)

// ApprovalState вычисляет состояние согласования расхождения. Для открытой кассы и для кассы,
// закрытой без расхождения, возвращает ApprovalStateNone.
func (cb *Cashbox) ApprovalState() ApprovalState {
	if cb.IsOpen() || cb.Difference == nil || cb.Difference.IsZero() {
		return ApprovalStateNone
	}
	switch {
	case cb.DifferenceApproved:
		return ApprovalStateApproved
	case cb.RejectedAt != nil:
		return ApprovalStateRejected
	default:
		return ApprovalStatePending
	}
}

func (cb *Cashbox) checkPending(action string) error {
	switch cb.ApprovalState() {
	case ApprovalStatePending:
		return nil
	case ApprovalStateApproved:
		return NewConflictError(cb, action, "difference is already approved")
	case ApprovalStateRejected:
		return NewConflictError(cb, action, "difference was rejected")
	default:
		return NewConflictError(cb, action, "no difference awaiting approval")
	}
}

func (cb *Cashbox) CheckRequestExplanation() error {
	return cb.checkPending(ActionRequestExplanation)
}

func (cb *Cashbox) CheckReject() error {
	return cb.checkPending(ActionRejectDifference)
}

func (cb *Cashbox) CheckApprove() error {
	return cb.checkPending(ActionApprove)
}

// ApplyApprove фиксирует согласование. Допустимость перехода проверяется заранее через CheckApprove.
func (cb *Cashbox) ApplyApprove(approverID int64, at time.Time) {
	cb.DifferenceApproved = true
	cb.DifferenceApprovedByID = &approverID
	cb.DifferenceApprovedAt = &at
}

// ApplyReject фиксирует отклонение. Флаг согласования навсегда остается false.
// Пустая причина не сохраняется.
func (cb *Cashbox) ApplyReject(reason string, at time.Time) {
	cb.DifferenceApproved = false
	cb.RejectionReason = nil
	if reason != "" {
		cb.RejectionReason = &reason
	}
	cb.RejectedAt = &at
}
