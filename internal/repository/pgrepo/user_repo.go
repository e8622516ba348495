package pgrepo

import (
	"context"

	"github.com/obrasync/cashbox/pkg/uow"
)

// UserRepository справочник пользователей. Учетные данные хранит внешняя система,
// здесь нужна только проверка существования.
type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking user %d", userID)
	}
	return exists, nil
}
