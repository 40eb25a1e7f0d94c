package transaction

import "errors"

// Service errors
var (
	ErrSessionRequired = errors.New("session token is required")
	ErrInvalidType     = errors.New("transaction type must be credit or debit")
)
