package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

// ApprovalService ведет рабочий процесс согласования расхождения закрытой кассы:
// PENDING -> APPROVED, PENDING -> REJECTED и запрос пояснений у владельца кассы.
type ApprovalService struct {
	uow             uow.UOW
	explanationRepo ExplanationRepository
	audit           AuditLogger
	now             func() time.Time
}

func NewApprovalService(u uow.UOW, audit AuditLogger) (*ApprovalService, error) {
	explanationRepo, err := uow.GetRepositoryAs[ExplanationRepository](
		u, uow.RepositoryName(repoargs.ExplanationRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ApprovalService{
		uow:             u,
		explanationRepo: explanationRepo,
		audit:           audit,
		now:             time.Now,
	}, nil
}

func (s *ApprovalService) SetClock(now func() time.Time) *ApprovalService {
	s.now = now
	return s
}

type RequestExplanationArgs struct {
	CashboxID int64
	ActorID   int64
	Message   string
}

// RequestExplanation ставит в очередь уведомление владельцу кассы с просьбой пояснить расхождение.
// Состояние согласования не меняется, но версия кассы увеличивается.
func (s *ApprovalService) RequestExplanation(
	ctx context.Context,
	args RequestExplanationArgs,
) (*domain.ExplanationRequest, error) {
	message := strings.TrimSpace(args.Message)
	if message == "" {
		return nil, fmt.Errorf("requesting explanation: %w", domain.NewValidationError("message", "is required"))
	}

	var (
		before, after *domain.Cashbox
		req           *domain.ExplanationRequest
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cb, err := lockCashbox(c, tx, args.CashboxID)
		if err != nil {
			return err
		}
		if err = cb.CheckRequestExplanation(); err != nil {
			return err //nolint:wrapcheck
		}

		explanationRepo, err := uow.GetAs[ExplanationRepository](tx, uow.RepositoryName(repoargs.ExplanationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		req, err = explanationRepo.Create(c, repoargs.ExplanationCreate{
			CashboxID: cb.ID,
			UserID:    cb.UserID,
			Message:   message,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		version, err := repo.BumpVersion(c, cb.ID, cb.Version)
		if err != nil {
			return writeErr(err, cb, domain.ActionRequestExplanation)
		}

		before = cb
		next := *cb
		next.Version = version
		after = &next
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("requesting explanation: %w", txErr)
	}

	s.record(ctx, domain.AuditEntry{
		Action:    domain.ActionRequestExplanation,
		CashboxID: args.CashboxID,
		ActorID:   args.ActorID,
		Before:    before,
		After:     after,
	})
	return req, nil
}

type RejectDifferenceArgs struct {
	CashboxID int64
	ActorID   int64
	Reason    string
}

// RejectDifference отклоняет расхождение. Причина необязательна. REJECTED конечное состояние:
// после него ни согласование, ни корректировки невозможны.
func (s *ApprovalService) RejectDifference(ctx context.Context, args RejectDifferenceArgs) (*domain.Cashbox, error) {
	reason := strings.TrimSpace(args.Reason)
	cb, err := s.transition(ctx, args.CashboxID, args.ActorID, domain.ActionRejectDifference,
		func(cb *domain.Cashbox, at time.Time) error {
			if err := cb.CheckReject(); err != nil {
				return err //nolint:wrapcheck
			}
			cb.ApplyReject(reason, at)
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("rejecting difference: %w", err)
	}
	return cb, nil
}

type ApproveArgs struct {
	CashboxID  int64
	ApproverID int64
}

// Approve согласовывает расхождение закрытой кассы от имени ApproverID.
func (s *ApprovalService) Approve(ctx context.Context, args ApproveArgs) (*domain.Cashbox, error) {
	if args.ApproverID <= 0 {
		return nil, fmt.Errorf("approving difference: %w",
			domain.NewValidationError("approver_id", "must be positive"))
	}

	cb, err := s.transition(ctx, args.CashboxID, args.ApproverID, domain.ActionApprove,
		func(cb *domain.Cashbox, at time.Time) error {
			if err := cb.CheckApprove(); err != nil {
				return err //nolint:wrapcheck
			}
			cb.ApplyApprove(args.ApproverID, at)
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("approving difference: %w", err)
	}
	return cb, nil
}

// transition блокирует кассу, применяет к копии переход apply и сохраняет результат условным UPDATE.
func (s *ApprovalService) transition(
	ctx context.Context,
	cashboxID, actorID int64,
	action string,
	apply func(cb *domain.Cashbox, at time.Time) error,
) (*domain.Cashbox, error) {
	var before, after *domain.Cashbox
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cb, err := lockCashbox(c, tx, cashboxID)
		if err != nil {
			return err
		}
		next := *cb
		if err = apply(&next, s.now()); err != nil {
			return err
		}

		repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		after, err = repo.UpdateApproval(c, repoargs.CashboxApproval{
			ID:                     cb.ID,
			Version:                cb.Version,
			DifferenceApproved:     next.DifferenceApproved,
			DifferenceApprovedByID: next.DifferenceApprovedByID,
			DifferenceApprovedAt:   next.DifferenceApprovedAt,
			RejectionReason:        next.RejectionReason,
			RejectedAt:             next.RejectedAt,
		})
		if err != nil {
			return writeErr(err, cb, action)
		}
		before = cb
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}

	s.record(ctx, domain.AuditEntry{
		Action:    action,
		CashboxID: cashboxID,
		ActorID:   actorID,
		Before:    before,
		After:     after,
	})
	return after, nil
}

// ExplanationsForDelivery возвращает запросы пояснений, ожидающие доставки.
func (s *ApprovalService) ExplanationsForDelivery(ctx context.Context, limit uint) ([]domain.ExplanationRequest, error) {
	requests, err := s.explanationRepo.GetPending(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

// RecordDeliveries сохраняет результаты попыток доставки. Если при батч запросе произошло несколько
// ошибок, вернется последняя.
func (s *ApprovalService) RecordDeliveries(ctx context.Context, results []repoargs.DeliveryResult) error {
	if len(results) == 0 {
		return nil
	}
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[ExplanationRepository](tx, uow.RepositoryName(repoargs.ExplanationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		var batchErr error
		repo.BatchRecordDeliveries(c, results, func(_ int, err error) {
			if err != nil {
				batchErr = err
			}
		})
		return batchErr
	})
	if txErr != nil {
		return fmt.Errorf("recording explanation deliveries: %w", txErr)
	}
	return nil
}

func (s *ApprovalService) record(ctx context.Context, entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	if entry.At.IsZero() {
		entry.At = s.now()
	}
	s.audit.Record(ctx, entry)
}
