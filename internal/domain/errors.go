package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound         = errors.New("record not found")
	ErrDuplicateKey           = errors.New("duplicate key")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrUnknown                = errors.New("unknown error")

	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// ValidationError некорректные входные данные. Field - имя поля с ошибкой.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError действие недопустимо в текущем состоянии кассы.
type ConflictError struct {
	Status CashboxStatus
	State  ApprovalState
	Action string
	Reason string
}

func NewConflictError(cb *Cashbox, action, reason string) error {
	e := &ConflictError{Action: action, Reason: reason}
	if cb != nil {
		e.Status = cb.Status
		e.State = cb.ApprovalState()
	}
	return e
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("cannot %s", e.Action)
	if e.Status != "" {
		msg += fmt.Sprintf(" (status %s, approval %s)", e.Status, e.State)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
