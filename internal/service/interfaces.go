package service

import (
	"context"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CashboxRepository interface {
	Create(ctx context.Context, args repoargs.CashboxCreate) (*domain.Cashbox, error)
	FindByID(ctx context.Context, id int64) (*domain.Cashbox, error)
	FindForUpdate(ctx context.Context, id int64) (*domain.Cashbox, error)
	FindOpenByUserID(ctx context.Context, userID int64, lock bool) (*domain.Cashbox, error)
	Close(ctx context.Context, args repoargs.CashboxClose) (*domain.Cashbox, error)
	UpdateApproval(ctx context.Context, args repoargs.CashboxApproval) (*domain.Cashbox, error)
	BumpVersion(ctx context.Context, id, version int64) (int64, error)
}

type MovementRepository interface {
	Create(ctx context.Context, args repoargs.MovementCreate) (*domain.CashMovement, error)
	FindByID(ctx context.Context, id int64) (*domain.CashMovement, error)
	ListByCashboxID(ctx context.Context, cashboxID int64) ([]domain.CashMovement, error)
	Page(ctx context.Context, q repoargs.MovementQuery) ([]domain.CashMovement, int, error)
	Void(ctx context.Context, args repoargs.MovementVoid) error
	SumByCashboxID(ctx context.Context, cashboxID int64) (*repoargs.LedgerAggregation, error)
}

type ExplanationRepository interface {
	Create(ctx context.Context, args repoargs.ExplanationCreate) (*domain.ExplanationRequest, error)
	GetPending(ctx context.Context, limit uint) ([]domain.ExplanationRequest, error)
	BatchRecordDeliveries(
		ctx context.Context,
		results []repoargs.DeliveryResult,
		fn repoargs.ExplanationBatchExec,
	)
}

// UserDirectory внешний справочник пользователей.
type UserDirectory interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// AuditLogger получает снимки состояния кассы до и после каждого изменения. Сохранение журнала
// аудита - забота реализации.
type AuditLogger interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}
