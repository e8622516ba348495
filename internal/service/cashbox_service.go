package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

type CashboxService struct {
	uow         uow.UOW
	cashboxRepo CashboxRepository
	movRepo     MovementRepository
	audit       AuditLogger
	now         func() time.Time
}

func NewCashboxService(u uow.UOW, audit AuditLogger) (*CashboxService, error) {
	cashboxRepo, err := uow.GetRepositoryAs[CashboxRepository](u, uow.RepositoryName(repoargs.CashboxRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	movRepo, err := uow.GetRepositoryAs[MovementRepository](u, uow.RepositoryName(repoargs.MovementRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CashboxService{
		uow:         u,
		cashboxRepo: cashboxRepo,
		movRepo:     movRepo,
		audit:       audit,
		now:         time.Now,
	}, nil
}

// SetClock подменяет источник текущего времени.
func (s *CashboxService) SetClock(now func() time.Time) *CashboxService {
	s.now = now
	return s
}

type OpenArgs struct {
	UserID  int64
	ActorID int64
	Opening domain.Balances
	Date    time.Time
}

// Open открывает новую кассу пользователя. Если у пользователя уже есть открытая касса, возвращает
// *domain.ConflictError, если пользователь не найден - *domain.NotFoundError.
func (s *CashboxService) Open(ctx context.Context, args OpenArgs) (*domain.Cashbox, error) {
	cb, err := domain.NewCashbox(args.UserID, args.Opening, args.Date)
	if err != nil {
		return nil, fmt.Errorf("opening cashbox: %w", err)
	}

	var created *domain.Cashbox
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var openErr error
		created, openErr = s.openInTx(c, tx, cb)
		return openErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("opening cashbox: %w", txErr)
	}

	s.record(ctx, domain.AuditEntry{Action: domain.ActionOpen, CashboxID: created.ID, ActorID: args.ActorID, After: created})
	return created, nil
}

func (s *CashboxService) openInTx(ctx context.Context, tx uow.TX, cb domain.Cashbox) (*domain.Cashbox, error) {
	users, err := uow.GetAs[UserDirectory](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	exists, err := users.Exists(ctx, cb.UserID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !exists {
		return nil, domain.NewNotFoundError("user", cb.UserID)
	}

	current, err := repo.FindOpenByUserID(ctx, cb.UserID, false)
	switch {
	case err == nil:
		return nil, domain.NewConflictError(current, domain.ActionOpen, "user already has an open cashbox")
	case !errors.Is(err, domain.ErrRecordNotFound):
		return nil, err
	}

	created, err := repo.Create(ctx, repoargs.CashboxCreate{
		UserID:      cb.UserID,
		OpeningDate: cb.OpeningDate,
		Opening:     cb.Opening,
	})
	if err != nil {
		// частичный уникальный индекс срабатывает при гонке двух открытий.
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewConflictError(nil, domain.ActionOpen, "user already has an open cashbox")
		}
		return nil, err //nolint:wrapcheck
	}
	return created, nil
}

type RefillArgs struct {
	CashboxID   int64
	ActorID     int64
	Amount      decimal.Decimal
	Currency    domain.Currency
	Description string
	// EffectiveDate по умолчанию текущее время.
	EffectiveDate time.Time
}

// Refill пополняет открытую кассу движением типа refill.
func (s *CashboxService) Refill(ctx context.Context, args RefillArgs) (*domain.CashMovement, error) {
	m, err := s.appendToCashbox(ctx, args.CashboxID, args.ActorID, domain.ActionRefill,
		func(cb *domain.Cashbox) (domain.CashMovement, error) {
			return domain.NewMovement(cb.ID, domain.MovementKindRefill, "", args.Amount, args.Currency,
				s.dateOrNow(args.EffectiveDate), args.Description)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("refilling cashbox: %w", err)
	}
	return m, nil
}

type ManualAdjustmentArgs struct {
	CashboxID int64
	ActorID   int64
	// Amount со знаком: положительная сумма увеличивает остаток, отрицательная уменьшает.
	Amount   decimal.Decimal
	Currency domain.Currency
	Reason   string
	// EffectiveDate по умолчанию текущее время для открытой кассы и дата закрытия для закрытой.
	EffectiveDate time.Time
}

// ManualAdjustment проводит корректирующее движение типа difference. Для закрытой кассы допустимо
// только после согласования расхождения.
func (s *CashboxService) ManualAdjustment(ctx context.Context, args ManualAdjustmentArgs) (*domain.CashMovement, error) {
	m, err := s.appendToCashbox(ctx, args.CashboxID, args.ActorID, domain.ActionManualAdjustment,
		func(cb *domain.Cashbox) (domain.CashMovement, error) {
			date := args.EffectiveDate
			if date.IsZero() && cb.ClosingDate != nil {
				date = *cb.ClosingDate
			}
			return domain.NewAdjustment(cb.ID, args.Amount, args.Currency, args.Reason, s.dateOrNow(date))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("manual adjustment: %w", err)
	}
	return m, nil
}

type PostMovementArgs struct {
	UserID        int64
	ActorID       int64
	Kind          domain.MovementKind
	Amount        decimal.Decimal
	Currency      domain.Currency
	EffectiveDate time.Time
	Description   string
	ExpenseID     *int64
	IncomeID      *int64
}

// PostMovement проводит подтвержденный расход или доход в открытую кассу ответственного пользователя.
// Если открытой кассы нет, она открывается с нулевыми остатками на дату движения.
func (s *CashboxService) PostMovement(ctx context.Context, args PostMovementArgs) (*domain.CashMovement, error) {
	if err := validateSourceRef(args); err != nil {
		return nil, fmt.Errorf("posting movement: %w", err)
	}
	m, err := domain.NewMovement(0, args.Kind, "", args.Amount, args.Currency, args.EffectiveDate, args.Description)
	if err != nil {
		return nil, fmt.Errorf("posting movement: %w", err)
	}
	m.ExpenseID = args.ExpenseID
	m.IncomeID = args.IncomeID

	var (
		before, after *domain.Cashbox
		created       *domain.CashMovement
		opened        bool
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		cb, err := repo.FindOpenByUserID(c, args.UserID, true)
		if errors.Is(err, domain.ErrRecordNotFound) {
			fresh, newErr := domain.NewCashbox(args.UserID, domain.Balances{}, args.EffectiveDate)
			if newErr != nil {
				return newErr
			}
			cb, err = s.openInTx(c, tx, fresh)
			opened = err == nil
		}
		if err != nil {
			return err //nolint:wrapcheck
		}

		m.CashboxID = cb.ID
		before = cb
		created, after, err = s.appendInTx(c, tx, cb, domain.ActionPostMovement, m)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("posting movement: %w", txErr)
	}

	if opened {
		s.record(ctx, domain.AuditEntry{Action: domain.ActionOpen, CashboxID: before.ID, ActorID: args.ActorID, After: before})
	}
	s.record(ctx, domain.AuditEntry{
		Action:    domain.ActionPostMovement,
		CashboxID: after.ID,
		ActorID:   args.ActorID,
		Before:    before,
		After:     after,
		Movement:  created,
	})
	return created, nil
}

func validateSourceRef(args PostMovementArgs) error {
	switch args.Kind {
	case domain.MovementKindExpense:
		if args.ExpenseID == nil {
			return domain.NewValidationError("expense_id", "is required for expense movements")
		}
	case domain.MovementKindIncome:
		if args.IncomeID == nil {
			return domain.NewValidationError("income_id", "is required for income movements")
		}
	default:
		return domain.NewValidationError("kind", "only income and expense movements can be posted")
	}
	return nil
}

type CorrectMovementArgs struct {
	CashboxID  int64
	MovementID int64
	ActorID    int64
	Reason     string
}

// CorrectMovement аннулирует движение открытой кассы и проводит компенсирующую запись. Исходное
// движение не удаляется.
func (s *CashboxService) CorrectMovement(ctx context.Context, args CorrectMovementArgs) (*domain.CashMovement, error) {
	if args.Reason == "" {
		return nil, fmt.Errorf("correcting movement: %w", domain.NewValidationError("reason", "is required"))
	}

	var (
		before, after *domain.Cashbox
		comp          *domain.CashMovement
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cb, err := lockCashbox(c, tx, args.CashboxID)
		if err != nil {
			return err
		}
		movRepo, err := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		orig, err := movRepo.FindByID(c, args.MovementID)
		if err != nil {
			return lookupErr(err, "movement", args.MovementID)
		}
		if err = cb.CheckCorrect(*orig); err != nil {
			return err //nolint:wrapcheck
		}

		now := s.now()
		if err = movRepo.Void(c, repoargs.MovementVoid{ID: orig.ID, VoidedAt: now, Reason: args.Reason}); err != nil {
			return writeErr(err, cb, domain.ActionCorrectMovement)
		}
		before = cb
		comp, after, err = s.appendInTx(c, tx, cb, domain.ActionCorrectMovement,
			domain.Compensation(*orig, args.Reason, now))
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("correcting movement: %w", txErr)
	}

	s.record(ctx, domain.AuditEntry{
		Action:    domain.ActionCorrectMovement,
		CashboxID: after.ID,
		ActorID:   args.ActorID,
		Before:    before,
		After:     after,
		Movement:  comp,
	})
	return comp, nil
}

type CloseArgs struct {
	CashboxID int64
	ActorID   int64
	Declared  domain.Balances
	Date      time.Time
}

// Close закрывает кассу и сохраняет результат сверки.
//
// Алгоритм работы:
//  1. Блокирует строку кассы и загружает все ее движения.
//  2. Сверяет заявленные остатки с остатками по движениям.
//  3. Одним условным UPDATE переводит кассу в closed вместе с остатками, расхождениями и флагом
//     согласования.
//
// Повторное закрытие возвращает *domain.ConflictError, дата раньше даты открытия - *domain.ValidationError.
// При любой ошибке касса остается открытой.
func (s *CashboxService) Close(ctx context.Context, args CloseArgs) (*domain.Cashbox, error) {
	var before, closed *domain.Cashbox
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cb, err := lockCashbox(c, tx, args.CashboxID)
		if err != nil {
			return err
		}
		before = cb

		movRepo, err := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		movements, err := movRepo.ListByCashboxID(c, cb.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		rec, err := domain.Reconcile(cb, movements, args.Declared, args.Date)
		if err != nil {
			return err //nolint:wrapcheck
		}

		repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		closed, err = repo.Close(c, repoargs.CashboxClose{
			ID:                 cb.ID,
			Version:            cb.Version,
			ClosingDate:        args.Date,
			Closing:            rec.Declared,
			Difference:         rec.Difference,
			DifferenceApproved: rec.Approved,
		})
		return writeErr(err, cb, domain.ActionClose)
	})
	if txErr != nil {
		return nil, fmt.Errorf("closing cashbox: %w", txErr)
	}

	s.record(ctx, domain.AuditEntry{
		Action:    domain.ActionClose,
		CashboxID: closed.ID,
		ActorID:   args.ActorID,
		Before:    before,
		After:     closed,
	})
	return closed, nil
}

func (s *CashboxService) Get(ctx context.Context, cashboxID int64) (*domain.Cashbox, error) {
	cb, err := s.cashboxRepo.FindByID(ctx, cashboxID)
	if err != nil {
		return nil, fmt.Errorf("getting cashbox: %w", lookupErr(err, "cashbox", cashboxID))
	}
	return cb, nil
}

// GetOpenForUser возвращает текущую открытую кассу пользователя.
func (s *CashboxService) GetOpenForUser(ctx context.Context, userID int64) (*domain.Cashbox, error) {
	cb, err := s.cashboxRepo.FindOpenByUserID(ctx, userID, false)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting open cashbox: %w", &domain.NotFoundError{Entity: "open cashbox of user", ID: userID})
		}
		return nil, fmt.Errorf("getting open cashbox: %w", err)
	}
	return cb, nil
}

type BalanceSnapshot struct {
	CashboxID     int64
	Status        domain.CashboxStatus
	ApprovalState domain.ApprovalState
	Opening       domain.Balances
	Running       domain.Balances
	Closing       *domain.Balances
	Difference    *domain.Balances
}

// GetBalance возвращает текущие остатки кассы по валютам.
func (s *CashboxService) GetBalance(ctx context.Context, cashboxID int64) (*BalanceSnapshot, error) {
	cb, err := s.cashboxRepo.FindByID(ctx, cashboxID)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", lookupErr(err, "cashbox", cashboxID))
	}
	agg, err := s.movRepo.SumByCashboxID(ctx, cashboxID)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}

	var running domain.Balances
	for _, c := range domain.Currencies {
		running = running.With(c, cb.Opening.Get(c).Add(agg.Credit.Get(c)).Sub(agg.Debit.Get(c)))
	}
	return &BalanceSnapshot{
		CashboxID:     cb.ID,
		Status:        cb.Status,
		ApprovalState: cb.ApprovalState(),
		Opening:       cb.Opening,
		Running:       running,
		Closing:       cb.Closing,
		Difference:    cb.Difference,
	}, nil
}

// appendToCashbox общая часть Refill и ManualAdjustment: блокирует кассу, строит движение и проводит его.
func (s *CashboxService) appendToCashbox(
	ctx context.Context,
	cashboxID, actorID int64,
	action string,
	build func(cb *domain.Cashbox) (domain.CashMovement, error),
) (*domain.CashMovement, error) {
	var (
		before, after *domain.Cashbox
		created       *domain.CashMovement
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cb, err := lockCashbox(c, tx, cashboxID)
		if err != nil {
			return err
		}
		m, err := build(cb)
		if err != nil {
			return err
		}
		before = cb
		created, after, err = s.appendInTx(c, tx, cb, action, m)
		return err
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
		Movement:  created,
	})
	return created, nil
}

// appendInTx проверяет движение против состояния кассы, сохраняет его и увеличивает версию кассы.
// Возвращает созданное движение и кассу с новой версией.
func (s *CashboxService) appendInTx(
	ctx context.Context,
	tx uow.TX,
	cb *domain.Cashbox,
	action string,
	m domain.CashMovement,
) (*domain.CashMovement, *domain.Cashbox, error) {
	if err := cb.CheckAppend(action, m); err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	movRepo, err := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	created, err := movRepo.Create(ctx, repoargs.NewMovementCreate(m))
	if err != nil {
		return nil, nil, writeErr(err, cb, action)
	}
	version, err := repo.BumpVersion(ctx, cb.ID, cb.Version)
	if err != nil {
		return nil, nil, writeErr(err, cb, action)
	}

	after := *cb
	after.Version = version
	return created, &after, nil
}

// lockCashbox читает кассу с блокировкой строки до конца транзакции.
func lockCashbox(ctx context.Context, tx uow.TX, id int64) (*domain.Cashbox, error) {
	repo, err := uow.GetAs[CashboxRepository](tx, uow.RepositoryName(repoargs.CashboxRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	cb, err := repo.FindForUpdate(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "cashbox", id)
	}
	return cb, nil
}

func (s *CashboxService) dateOrNow(date time.Time) time.Time {
	if date.IsZero() {
		return s.now()
	}
	return date
}

func (s *CashboxService) record(ctx context.Context, entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	if entry.At.IsZero() {
		entry.At = s.now()
	}
	s.audit.Record(ctx, entry)
}
