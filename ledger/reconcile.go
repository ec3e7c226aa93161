/*
reconcile.go - Ledger ordering and running balance

PURPOSE:
  Turns the caller-owned, unordered collection of entries into the
  canonical displayable ledger: ascending by date, running balance
  populated. Callers re-reconcile after every mutation; the computation
  is cheap and always produces the same answer for the same multiset.

ORDERING:
  Stable sort ascending by date. Two entries on the same date keep
  their relative insertion order. An entry with an unset (zero) date
  sorts before every real date; that is the defined fallback for
  undated rows, not an error.

RUNNING BALANCE:
  A single pass over the sorted entries accumulates charge + payment
  (payments are stored negative, so this is charges minus payments).
  Balances carry full decimal precision; rounding to two places happens
  only at display and export.

SEE ALSO:
  - types.go: Entry and the sign convention
  - export/: Rendering the reconciled ledger to a file
*/
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Reconcile returns the entries sorted ascending by date with
// RunningBalance populated. The input slice is not modified; Reconcile
// is idempotent, so reconciling its own output changes nothing.
func Reconcile(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	balance := decimal.Zero
	for i := range out {
		balance = balance.Add(out[i].Net())
		out[i].RunningBalance = balance
	}
	return out
}

// Balance returns the net of all entries, equal to the last reconciled
// entry's RunningBalance.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Net())
	}
	return total
}
