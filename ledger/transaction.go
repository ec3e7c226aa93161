package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BuildTransaction creates a single manual ledger entry. A Charge
// populates the Charge column with the amount; a Payment populates the
// Payment column with the negated amount so balances are plain sums.
//
// No entry is created on validation failure.
func BuildTransaction(date Date, description string, amount decimal.Decimal, kind Kind) (Entry, error) {
	if strings.TrimSpace(description) == "" {
		return Entry{}, &ValidationError{Field: "description", Err: ErrEmptyDescription}
	}
	if !amount.IsPositive() {
		return Entry{}, &ValidationError{Field: "amount", Value: amount.String(), Err: ErrInvalidAmount}
	}

	entry := Entry{Date: date, Description: description}
	switch kind {
	case KindPayment:
		entry.Payment = amount.Neg()
	case KindCharge:
		entry.Charge = amount
	default:
		return Entry{}, &ValidationError{Field: "type", Value: string(kind), Err: ErrInvalidKind}
	}
	return entry, nil
}
