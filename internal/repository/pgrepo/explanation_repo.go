package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

// MaxDeliveryAttempts после стольких неудачных попыток запрос больше не выбирается на доставку.
const MaxDeliveryAttempts = 10

const explanationColumns = `id, created_at, cashbox_id, user_id, message, status, attempts, delivered_at`

type ExplanationRepository struct {
	conn uow.DBTX
}

func NewExplanationRepository(conn uow.DBTX) *ExplanationRepository {
	return &ExplanationRepository{conn: conn}
}

func (r *ExplanationRepository) Create(
	ctx context.Context,
	args repoargs.ExplanationCreate,
) (*domain.ExplanationRequest, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO explanation_requests (cashbox_id, user_id, message)
		VALUES ($1, $2, $3)
		RETURNING `+explanationColumns,
		args.CashboxID, args.UserID, args.Message,
	)
	req, err := scanExplanation(row)
	if err != nil {
		return nil, convertErr(err, "creating explanation request for cashbox %d", args.CashboxID)
	}
	return req, nil
}

// GetPending возвращает недоставленные запросы, самые старые первыми.
func (r *ExplanationRepository) GetPending(ctx context.Context, limit uint) ([]domain.ExplanationRequest, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+explanationColumns+`
		FROM explanation_requests
		WHERE status = 'PENDING' AND attempts < $1
		ORDER BY created_at, id
		LIMIT $2`,
		MaxDeliveryAttempts, limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending explanation requests")
	}
	defer rows.Close()

	var requests []domain.ExplanationRequest
	for rows.Next() {
		req, scanErr := scanExplanation(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning pending explanation requests")
		}
		requests = append(requests, *req)
	}
	if err = rows.Err(); err != nil {
		return nil, convertErr(err, "getting pending explanation requests")
	}
	return requests, nil
}

// BatchRecordDeliveries записывает результаты доставки одним батчем. fn вызывается для каждого
// результата в порядке results.
func (r *ExplanationRepository) BatchRecordDeliveries(
	ctx context.Context,
	results []repoargs.DeliveryResult,
	fn repoargs.ExplanationBatchExec,
) {
	batch := new(pgx.Batch)
	for _, res := range results {
		if res.Delivered {
			batch.Queue(`
				UPDATE explanation_requests
				SET status = 'DELIVERED', delivered_at = now(), attempts = attempts + 1
				WHERE id = $1`, res.ID)
		} else {
			batch.Queue(`UPDATE explanation_requests SET attempts = attempts + 1 WHERE id = $1`, res.ID)
		}
	}

	br := r.conn.SendBatch(ctx, batch)
	defer br.Close()

	for i, res := range results {
		_, err := br.Exec()
		fn(i, convertErr(err, "recording delivery of explanation request %d", res.ID))
	}
}

func scanExplanation(row scanner) (*domain.ExplanationRequest, error) {
	var (
		req         domain.ExplanationRequest
		status      string
		deliveredAt pgtype.Timestamptz
	)
	err := row.Scan(
		&req.ID, &req.CreatedAt, &req.CashboxID, &req.UserID, &req.Message, &status, &req.Attempts, &deliveredAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	req.Status = domain.ExplanationStatus(status)
	req.DeliveredAt = timePtr(deliveredAt)
	return &req, nil
}
