package domain

import "errors"

// Domain errors (no external dependencies). Use cases wrap these with
// fmt.Errorf("%w: ...") so messages carry the offending name or quantity.
var (
	ErrValidation           = errors.New("invalid input")
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateName        = errors.New("name already in use")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrConfirmationRequired = errors.New("confirmation token required")
	ErrPartialFailure       = errors.New("product updated but ledger entry failed")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("access denied")
)
