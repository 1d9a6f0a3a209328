package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrCodeConflict    = errors.New("unique code already registered in college")
	ErrNoAvailableCopy = errors.New("no available copy")
	ErrInvalidState    = errors.New("invalid state transition")
	ErrForbidden       = errors.New("operation not allowed for role")
	ErrStudentRole     = errors.New("borrower must have student role")
	ErrDueDate         = errors.New("due date must be after issue date")

	// ErrInvariant means availableCount would leave [0, copies] or disagrees
	// with the copy ledger. Unlike the rest of the taxonomy this indicates a
	// bug, not a normal rejection.
	ErrInvariant = errors.New("availability invariant violated")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
