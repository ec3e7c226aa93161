/*
errors.go - Centralized error types for the ledger engine

PURPOSE:
  All validation failures in one place. The engine never surfaces raw
  parse errors or panics; every invalid input maps to one of the
  sentinels below, wrapped in a ValidationError that names the field.

ERROR CATEGORIES:
  1. Input errors   - malformed amount/date/kind strings
  2. Range errors   - start date after end date
  3. Content errors - blank description on a manual transaction

USAGE:
  Callers branch on sentinels with errors.Is:

    if errors.Is(err, ledger.ErrInvalidDate) { ... }

  and recover the offending field with errors.As:

    var verr *ledger.ValidationError
    if errors.As(err, &verr) { show(verr.Field) }

SEE ALSO:
  - types.go: ParseAmount, ParseKind
  - date.go: ParseDate
  - schedule.go, transaction.go: range/content validation
*/
package ledger

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidAmount is returned when an amount is not a positive decimal.
	ErrInvalidAmount = errors.New("amount must be a positive decimal")

	// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

	// ErrInvalidRange is returned when a schedule's start date is after
	// its end date.
	ErrInvalidRange = errors.New("start date must be before or equal to end date")

	// ErrEmptyDescription is returned when a manual transaction has a
	// blank description.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidKind is returned when a transaction type is neither
	// Charge nor Payment.
	ErrInvalidKind = errors.New("transaction type must be Charge or Payment")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the offending field
// =============================================================================

// ValidationError names the field that failed validation. It unwraps to
// one of the sentinels above.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation returns true if the error is due to invalid caller input
// rather than an internal failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
