package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

const cashboxColumns = `id, created_at, updated_at, user_id, status, opening_date, closing_date,
	opening_balance_ars, opening_balance_usd, closing_balance_ars, closing_balance_usd,
	difference_ars, difference_usd, difference_approved, difference_approved_by_id,
	difference_approved_at, rejection_reason, rejected_at, version`

type CashboxRepository struct {
	conn uow.DBTX
}

func NewCashboxRepository(conn uow.DBTX) *CashboxRepository {
	return &CashboxRepository{conn: conn}
}

// Create создает открытую кассу. Вторая открытая касса того же пользователя нарушает частичный
// уникальный индекс и возвращается как domain.ErrDuplicateKey.
func (r *CashboxRepository) Create(ctx context.Context, args repoargs.CashboxCreate) (*domain.Cashbox, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO cashboxes (user_id, status, opening_date, opening_balance_ars, opening_balance_usd)
		VALUES ($1, 'open', $2, $3, $4)
		RETURNING `+cashboxColumns,
		args.UserID, args.OpeningDate, args.Opening.ARS, args.Opening.USD,
	)
	cb, err := scanCashbox(row)
	if err != nil {
		return nil, convertErr(err, "creating cashbox for user %d", args.UserID)
	}
	return cb, nil
}

func (r *CashboxRepository) FindByID(ctx context.Context, id int64) (*domain.Cashbox, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+cashboxColumns+` FROM cashboxes WHERE id = $1`, id)
	cb, err := scanCashbox(row)
	if err != nil {
		return nil, convertErr(err, "finding cashbox %d", id)
	}
	return cb, nil
}

// FindForUpdate читает кассу и блокирует строку до конца транзакции.
func (r *CashboxRepository) FindForUpdate(ctx context.Context, id int64) (*domain.Cashbox, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+cashboxColumns+` FROM cashboxes WHERE id = $1 FOR UPDATE`, id)
	cb, err := scanCashbox(row)
	if err != nil {
		return nil, convertErr(err, "locking cashbox %d", id)
	}
	return cb, nil
}

// FindOpenByUserID возвращает открытую кассу пользователя. Если передан lock, строка блокируется.
func (r *CashboxRepository) FindOpenByUserID(ctx context.Context, userID int64, lock bool) (*domain.Cashbox, error) {
	query := `SELECT ` + cashboxColumns + ` FROM cashboxes WHERE user_id = $1 AND status = 'open'`
	if lock {
		query += ` FOR UPDATE`
	}
	cb, err := scanCashbox(r.conn.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, convertErr(err, "finding open cashbox of user %d", userID)
	}
	return cb, nil
}

// Close записывает результат сверки одним условным UPDATE. Если версия или статус уже изменились,
// возвращает domain.ErrConcurrentModification.
func (r *CashboxRepository) Close(ctx context.Context, args repoargs.CashboxClose) (*domain.Cashbox, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE cashboxes
		SET status              = 'closed',
		    closing_date        = $3,
		    closing_balance_ars = $4,
		    closing_balance_usd = $5,
		    difference_ars      = $6,
		    difference_usd      = $7,
		    difference_approved = $8,
		    version             = version + 1,
		    updated_at          = now()
		WHERE id = $1 AND version = $2 AND status = 'open'
		RETURNING `+cashboxColumns,
		args.ID, args.Version, args.ClosingDate,
		args.Closing.ARS, args.Closing.USD,
		args.Difference.ARS, args.Difference.USD,
		args.DifferenceApproved,
	)
	cb, err := scanCashbox(row)
	if err != nil {
		return nil, convertVersionedErr(err, "closing cashbox %d", args.ID)
	}
	return cb, nil
}

func (r *CashboxRepository) UpdateApproval(ctx context.Context, args repoargs.CashboxApproval) (*domain.Cashbox, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE cashboxes
		SET difference_approved       = $3,
		    difference_approved_by_id = $4,
		    difference_approved_at    = $5,
		    rejection_reason          = $6,
		    rejected_at               = $7,
		    version                   = version + 1,
		    updated_at                = now()
		WHERE id = $1 AND version = $2 AND status = 'closed'
		RETURNING `+cashboxColumns,
		args.ID, args.Version, args.DifferenceApproved,
		args.DifferenceApprovedByID, args.DifferenceApprovedAt,
		args.RejectionReason, args.RejectedAt,
	)
	cb, err := scanCashbox(row)
	if err != nil {
		return nil, convertVersionedErr(err, "updating approval of cashbox %d", args.ID)
	}
	return cb, nil
}

// BumpVersion увеличивает версию кассы после добавления движения и возвращает новую версию.
func (r *CashboxRepository) BumpVersion(ctx context.Context, id, version int64) (int64, error) {
	var next int64
	err := r.conn.QueryRow(ctx, `
		UPDATE cashboxes SET version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version`,
		id, version,
	).Scan(&next)
	if err != nil {
		return 0, convertVersionedErr(err, "bumping version of cashbox %d", id)
	}
	return next, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCashbox(row scanner) (*domain.Cashbox, error) {
	var (
		cb                                  domain.Cashbox
		status                              string
		closingDate, approvedAt, rejectedAt pgtype.Timestamptz
		closingARS, closingUSD              decimal.NullDecimal
		diffARS, diffUSD                    decimal.NullDecimal
		approvedBy                          pgtype.Int8
		rejectionReason                     pgtype.Text
	)
	err := row.Scan(
		&cb.ID, &cb.CreatedAt, &cb.UpdatedAt, &cb.UserID, &status, &cb.OpeningDate, &closingDate,
		&cb.Opening.ARS, &cb.Opening.USD, &closingARS, &closingUSD,
		&diffARS, &diffUSD, &cb.DifferenceApproved, &approvedBy,
		&approvedAt, &rejectionReason, &rejectedAt, &cb.Version,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	cb.Status = domain.CashboxStatus(status)
	cb.ClosingDate = timePtr(closingDate)
	cb.DifferenceApprovedAt = timePtr(approvedAt)
	cb.RejectedAt = timePtr(rejectedAt)
	if closingARS.Valid && closingUSD.Valid {
		cb.Closing = &domain.Balances{ARS: closingARS.Decimal, USD: closingUSD.Decimal}
	}
	if diffARS.Valid && diffUSD.Valid {
		cb.Difference = &domain.Balances{ARS: diffARS.Decimal, USD: diffUSD.Decimal}
	}
	cb.DifferenceApprovedByID = int64Ptr(approvedBy)
	if rejectionReason.Valid {
		cb.RejectionReason = &rejectionReason.String
	}
	return &cb, nil
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func int64Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}
