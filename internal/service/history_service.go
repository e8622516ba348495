package service

import (
	"context"
	"fmt"
	"iter"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

type HistoryService struct {
	cashboxRepo CashboxRepository
	movRepo     MovementRepository
}

func NewHistoryService(u uow.UOW) (*HistoryService, error) {
	cashboxRepo, err := uow.GetRepositoryAs[CashboxRepository](u, uow.RepositoryName(repoargs.CashboxRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	movRepo, err := uow.GetRepositoryAs[MovementRepository](u, uow.RepositoryName(repoargs.MovementRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &HistoryService{cashboxRepo: cashboxRepo, movRepo: movRepo}, nil
}

// GetHistory возвращает страницу движений кассы, самые поздние первыми. Некорректные page и limit
// приводятся к границам, перевернутый диапазон дат возвращает *domain.ValidationError.
func (s *HistoryService) GetHistory(
	ctx context.Context,
	cashboxID int64,
	filter domain.HistoryFilter,
) (*domain.Page[domain.CashMovement], error) {
	if err := checkDateRange(filter); err != nil {
		return nil, fmt.Errorf("getting history: %w", err)
	}
	if _, err := s.cashboxRepo.FindByID(ctx, cashboxID); err != nil {
		return nil, fmt.Errorf("getting history: %w", lookupErr(err, "cashbox", cashboxID))
	}

	f := filter.Normalize()
	items, total, err := s.movRepo.Page(ctx, repoargs.MovementQuery{
		CashboxID: cashboxID,
		Kind:      f.Kind,
		Currency:  f.Currency,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Limit:     f.Limit,
		Offset:    f.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("getting history: %w", err)
	}
	if items == nil {
		items = []domain.CashMovement{}
	}
	return &domain.Page[domain.CashMovement]{
		Items: items,
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}, nil
}

// Movements загружает все движения кассы и возвращает их в порядке истории без пагинации.
// Используется для выгрузки.
func (s *HistoryService) Movements(
	ctx context.Context,
	cashboxID int64,
	filter domain.HistoryFilter,
) (iter.Seq[domain.CashMovement], error) {
	if err := checkDateRange(filter); err != nil {
		return nil, fmt.Errorf("exporting history: %w", err)
	}
	if _, err := s.cashboxRepo.FindByID(ctx, cashboxID); err != nil {
		return nil, fmt.Errorf("exporting history: %w", lookupErr(err, "cashbox", cashboxID))
	}
	movements, err := s.movRepo.ListByCashboxID(ctx, cashboxID)
	if err != nil {
		return nil, fmt.Errorf("exporting history: %w", err)
	}
	return domain.History(movements, filter), nil
}

func checkDateRange(f domain.HistoryFilter) error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return domain.NewValidationError("start_date", "must not be after end_date")
	}
	return nil
}
