package pgrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

const movementColumns = `id, created_at, cashbox_id, kind, direction, amount, currency, effective_date,
	description, expense_id, income_id, corrects_id, voided_at, void_reason`

// movementFilter общий набор условий выборки истории. Фильтр не применяется, если параметр NULL.
const movementFilter = `cashbox_id = $1
	AND ($2::varchar IS NULL OR kind = $2)
	AND ($3::varchar IS NULL OR currency = $3)
	AND ($4::timestamptz IS NULL OR effective_date >= $4)
	AND ($5::timestamptz IS NULL OR effective_date <= $5)`

type MovementRepository struct {
	conn uow.DBTX
}

func NewMovementRepository(conn uow.DBTX) *MovementRepository {
	return &MovementRepository{conn: conn}
}

func (r *MovementRepository) Create(ctx context.Context, args repoargs.MovementCreate) (*domain.CashMovement, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO cash_movements (cashbox_id, kind, direction, amount, currency, effective_date,
		                            description, expense_id, income_id, corrects_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+movementColumns,
		args.CashboxID, string(args.Kind), string(args.Direction), args.Amount, string(args.Currency),
		args.EffectiveDate, args.Description, args.ExpenseID, args.IncomeID, args.CorrectsID,
	)
	m, err := scanMovement(row)
	if err != nil {
		return nil, convertErr(err, "creating %s movement for cashbox %d", args.Kind, args.CashboxID)
	}
	return m, nil
}

func (r *MovementRepository) FindByID(ctx context.Context, id int64) (*domain.CashMovement, error) {
	m, err := scanMovement(r.conn.QueryRow(ctx, `SELECT `+movementColumns+` FROM cash_movements WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding movement %d", id)
	}
	return m, nil
}

// ListByCashboxID возвращает все движения кассы в порядке добавления.
func (r *MovementRepository) ListByCashboxID(ctx context.Context, cashboxID int64) ([]domain.CashMovement, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+movementColumns+` FROM cash_movements WHERE cashbox_id = $1 ORDER BY id`,
		cashboxID,
	)
	if err != nil {
		return nil, convertErr(err, "listing movements of cashbox %d", cashboxID)
	}
	movements, err := collectMovements(rows)
	if err != nil {
		return nil, convertErr(err, "scanning movements of cashbox %d", cashboxID)
	}
	return movements, nil
}

// Page возвращает страницу истории и общее количество подходящих движений. Оба запроса уходят
// одним батчем.
func (r *MovementRepository) Page(ctx context.Context, q repoargs.MovementQuery) ([]domain.CashMovement, int, error) {
	var kind, currency *string
	if q.Kind != nil {
		k := string(*q.Kind)
		kind = &k
	}
	if q.Currency != nil {
		c := string(*q.Currency)
		currency = &c
	}
	filterArgs := []any{q.CashboxID, kind, currency, q.StartDate, q.EndDate}

	batch := new(pgx.Batch)
	batch.Queue(`SELECT count(*) FROM cash_movements WHERE `+movementFilter, filterArgs...)
	batch.Queue(
		`SELECT `+movementColumns+` FROM cash_movements WHERE `+movementFilter+`
		ORDER BY effective_date DESC, id DESC
		LIMIT $6 OFFSET $7`,
		append(filterArgs, q.Limit, q.Offset)...,
	)

	br := r.conn.SendBatch(ctx, batch)
	defer br.Close()

	var total int
	if err := br.QueryRow().Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting history of cashbox %d", q.CashboxID)
	}
	rows, err := br.Query()
	if err != nil {
		return nil, 0, convertErr(err, "querying history of cashbox %d", q.CashboxID)
	}
	movements, err := collectMovements(rows)
	if err != nil {
		return nil, 0, convertErr(err, "scanning history of cashbox %d", q.CashboxID)
	}
	return movements, total, nil
}

// Void помечает движение аннулированным. Повторное аннулирование возвращает
// domain.ErrConcurrentModification.
func (r *MovementRepository) Void(ctx context.Context, args repoargs.MovementVoid) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE cash_movements SET voided_at = $2, void_reason = $3
		WHERE id = $1 AND voided_at IS NULL`,
		args.ID, args.VoidedAt, args.Reason,
	)
	if err != nil {
		return convertErr(err, "voiding movement %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/voiding movement %d] %w", args.ID, domain.ErrConcurrentModification)
	}
	return nil
}

// SumByCashboxID агрегирует движения кассы по валюте и направлению.
func (r *MovementRepository) SumByCashboxID(ctx context.Context, cashboxID int64) (*repoargs.LedgerAggregation, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT currency, direction, COALESCE(SUM(amount), 0)
		FROM cash_movements
		WHERE cashbox_id = $1
		GROUP BY currency, direction`,
		cashboxID,
	)
	if err != nil {
		return nil, convertErr(err, "summing movements of cashbox %d", cashboxID)
	}
	defer rows.Close()

	var agg repoargs.LedgerAggregation
	for rows.Next() {
		var (
			currency, direction string
			amount              decimal.Decimal
		)
		if err = rows.Scan(&currency, &direction, &amount); err != nil {
			return nil, convertErr(err, "scanning movement sums of cashbox %d", cashboxID)
		}
		c := domain.Currency(currency)
		if domain.DirectionType(direction) == domain.DirectionCredit {
			agg.Credit = agg.Credit.With(c, amount)
		} else {
			agg.Debit = agg.Debit.With(c, amount)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, convertErr(err, "summing movements of cashbox %d", cashboxID)
	}
	return &agg, nil
}

func collectMovements(rows pgx.Rows) ([]domain.CashMovement, error) {
	defer rows.Close()
	var movements []domain.CashMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, *m)
	}
	return movements, rows.Err() //nolint:wrapcheck
}

func scanMovement(row scanner) (*domain.CashMovement, error) {
	var (
		m                             domain.CashMovement
		kind, direction, currency     string
		expenseID, incomeID, corrects pgtype.Int8
		voidedAt                      pgtype.Timestamptz
		voidReason                    pgtype.Text
	)
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.CashboxID, &kind, &direction, &m.Amount, &currency, &m.EffectiveDate,
		&m.Description, &expenseID, &incomeID, &corrects, &voidedAt, &voidReason,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Kind = domain.MovementKind(kind)
	m.Direction = domain.DirectionType(direction)
	m.Currency = domain.Currency(currency)
	m.ExpenseID = int64Ptr(expenseID)
	m.IncomeID = int64Ptr(incomeID)
	m.CorrectsID = int64Ptr(corrects)
	m.VoidedAt = timePtr(voidedAt)
	if voidReason.Valid {
		m.VoidReason = &voidReason.String
	}
	return &m, nil
}
