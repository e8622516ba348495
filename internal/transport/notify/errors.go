package notify

import "errors"

var (
	ErrNoExplanations = errors.New("no explanation requests")
	ErrUndelivered    = errors.New("explanation requests not delivered")
)
