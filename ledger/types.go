/*
Package ledger is the core rent-ledger engine.

PURPOSE:
  This package contains the domain types and algorithms for building a
  rent-charge ledger: generating scheduled rent charges over a lease
  period, recording manual charge/payment transactions, and reconciling
  the full set of entries into a date-ordered ledger with a running
  balance.

KEY CONCEPTS IN THIS FILE (types.go):
  - Entry: A single ledger row (date, charge, description, payment,
    running balance)
  - Kind: Manual transaction type (Charge or Payment)
  - ParseAmount: Validated decimal parsing for user input

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Derived state: RunningBalance is never authored, only computed by
     Reconcile
  3. Purity: All operations are synchronous transformations with no
     hidden state; the caller owns the entry collection

USAGE:
  entries, err := ledger.GenerateSchedule(rent, start, end)
  tx, err := ledger.BuildTransaction(date, "Deposit", amount, ledger.KindPayment)
  entries = ledger.Reconcile(append(entries, tx))

SEE ALSO:
  - schedule.go: Scheduled rent-charge generation with 30-day proration
  - transaction.go: Manual charge/payment entries
  - reconcile.go: Sort + running-balance computation
  - date.go: Day-granularity dates and month rollover
*/
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENTRY - A single ledger row
// =============================================================================

// Entry is one row of the ledger. Exactly one of Charge/Payment is
// non-zero for rows produced by this package: generated schedule rows
// and manual charges populate Charge, manual payments populate Payment.
//
// Payment is stored as a negative value so that a running balance is a
// plain cumulative sum of Charge + Payment in date order.
//
// RunningBalance is derived. It is populated by Reconcile and
// overwritten on every call; entries are otherwise immutable.
type Entry struct {
	Date           Date
	Charge         decimal.Decimal
	Description    string
	Payment        decimal.Decimal
	RunningBalance decimal.Decimal
}

// Net returns the signed effect of this entry on the balance.
func (e Entry) Net() decimal.Decimal {
	return e.Charge.Add(e.Payment)
}

// Descriptions used by the schedule generator.
const (
	DescriptionRent        = "Rent"
	DescriptionProRateRent = "Pro-Rate Rent"
)

// =============================================================================
// KIND - Manual transaction type
// =============================================================================

type Kind string

const (
	KindCharge  Kind = "Charge"
	KindPayment Kind = "Payment"
)

// ParseKind converts a raw selector value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSpace(s)) {
	case KindCharge:
		return KindCharge, nil
	case KindPayment:
		return KindPayment, nil
	default:
		return "", &ValidationError{Field: "type", Value: s, Err: ErrInvalidKind}
	}
}

// =============================================================================
// AMOUNT PARSING
// =============================================================================

// ParseAmount parses a user-supplied amount string. The amount must be
// a valid decimal strictly greater than zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Err: ErrInvalidAmount}
	}
	return d, nil
}

// FormatMoney renders a monetary value with exactly two fractional
// digits, the only rendering this system uses.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
