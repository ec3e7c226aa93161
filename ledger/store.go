/*
store.go - Persistence interface for ledgers and their entries

PURPOSE:
  Defines the interface between the engine's callers and storage. The
  engine itself holds no state; the caller (the HTTP surface) owns
  named ledgers whose entry collections live behind this interface.

ORDERING CONTRACT:
  Entries() returns entries in insertion order. Insertion order is the
  tie-breaker for Reconcile's stable sort, so implementations must
  preserve it exactly, including across restarts.

IMPLEMENTATIONS:
  - store/memory: In-memory, for tests and dev
  - store/sqlite: SQLite-backed, for the server

SEE ALSO:
  - reconcile.go: Consumes the insertion-ordered entries
  - api/: The caller that owns ledgers through this interface
*/
package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrLedgerNotFound is returned when a ledger ID does not exist.
var ErrLedgerNotFound = errors.New("ledger not found")

// Ledger is a named collection of entries.
type Ledger struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Store persists ledgers and their entries.
type Store interface {
	// CreateLedger persists a new ledger record.
	CreateLedger(ctx context.Context, l Ledger) error

	// GetLedger returns a ledger by ID, or ErrLedgerNotFound.
	GetLedger(ctx context.Context, id string) (Ledger, error)

	// ListLedgers returns all ledgers, oldest first.
	ListLedgers(ctx context.Context) ([]Ledger, error)

	// AppendEntries adds entries to a ledger, preserving order.
	// All entries are written or none are.
	AppendEntries(ctx context.Context, ledgerID string, entries []Entry) error

	// Entries returns a ledger's entries in insertion order.
	Entries(ctx context.Context, ledgerID string) ([]Entry, error)

	// ClearEntries removes all entries from a ledger.
	ClearEntries(ctx context.Context, ledgerID string) error
}
