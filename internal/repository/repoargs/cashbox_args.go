package repoargs

import (
	"time"

	"github.com/obrasync/cashbox/internal/domain"
)

type CashboxCreate struct {
	UserID      int64
	OpeningDate time.Time
	Opening     domain.Balances
}

// CashboxClose все поля, которые меняются при закрытии кассы. Version - версия, прочитанная
// под блокировкой; если она уже изменилась, обновление не применяется.
type CashboxClose struct {
	ID                 int64
	Version            int64
	ClosingDate        time.Time
	Closing            domain.Balances
	Difference         domain.Balances
	DifferenceApproved bool
}

type CashboxApproval struct {
	ID                     int64
	Version                int64
	DifferenceApproved     bool
	DifferenceApprovedByID *int64
	DifferenceApprovedAt   *time.Time
	RejectionReason        *string
	RejectedAt             *time.Time
}
