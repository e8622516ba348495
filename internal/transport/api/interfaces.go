package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"iter"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/service"
)

type CashboxServicer interface {
	Open(ctx context.Context, args service.OpenArgs) (*domain.Cashbox, error)
	Get(ctx context.Context, cashboxID int64) (*domain.Cashbox, error)
	GetOpenForUser(ctx context.Context, userID int64) (*domain.Cashbox, error)
	GetBalance(ctx context.Context, cashboxID int64) (*service.BalanceSnapshot, error)
	Refill(ctx context.Context, args service.RefillArgs) (*domain.CashMovement, error)
	ManualAdjustment(ctx context.Context, args service.ManualAdjustmentArgs) (*domain.CashMovement, error)
	Close(ctx context.Context, args service.CloseArgs) (*domain.Cashbox, error)
	PostMovement(ctx context.Context, args service.PostMovementArgs) (*domain.CashMovement, error)
	CorrectMovement(ctx context.Context, args service.CorrectMovementArgs) (*domain.CashMovement, error)
}

type ApprovalServicer interface {
	RequestExplanation(ctx context.Context, args service.RequestExplanationArgs) (*domain.ExplanationRequest, error)
	RejectDifference(ctx context.Context, args service.RejectDifferenceArgs) (*domain.Cashbox, error)
	Approve(ctx context.Context, args service.ApproveArgs) (*domain.Cashbox, error)
}

type HistoryServicer interface {
	GetHistory(
		ctx context.Context,
		cashboxID int64,
		filter domain.HistoryFilter,
	) (*domain.Page[domain.CashMovement], error)
	Movements(
		ctx context.Context,
		cashboxID int64,
		filter domain.HistoryFilter,
	) (iter.Seq[domain.CashMovement], error)
}
