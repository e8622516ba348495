package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/internal/transport/notify/webhook"
)

type Client interface {
	Deliver(ctx context.Context, n webhook.Notification) error
}

type Servicer interface {
	ExplanationsForDelivery(ctx context.Context, limit uint) ([]domain.ExplanationRequest, error)
	RecordDeliveries(ctx context.Context, results []repoargs.DeliveryResult) error
}
