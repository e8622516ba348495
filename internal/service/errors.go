package service

import (
	"errors"

	"github.com/obrasync/cashbox/internal/domain"
)

// lookupErr переводит отсутствие записи в domain.NotFoundError, остальные ошибки не трогает.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity, id)
	}
	return err
}

// writeErr переводит конфликт версии в domain.ConflictError с текущим состоянием кассы.
func writeErr(err error, cb *domain.Cashbox, action string) error {
	switch {
	case errors.Is(err, domain.ErrConcurrentModification):
		return domain.NewConflictError(cb, action, "cashbox was modified concurrently")
	case errors.Is(err, domain.ErrDuplicateKey):
		return domain.NewConflictError(cb, action, "duplicate record")
	default:
		return err
	}
}
