/*
Package sqlite provides a SQLite-backed implementation of ledger.Store.

PURPOSE:
  Persists ledgers and their entries so a server restart does not lose
  working state. The schema mirrors the ledger model: a ledgers table
  and an entries table keyed by ledger ID.

INSERTION ORDER:
  The entries table carries an AUTOINCREMENT sequence column, and
  Entries() orders by it. Insertion order is the tie-breaker for the
  engine's stable date sort, so it must survive the round trip.

MONEY COLUMNS:
  Monetary values are stored as their decimal string representation
  (never floats) and re-parsed on load, preserving exact values.

WAL MODE:
  The database is opened with WAL journaling for better concurrency:
  readers don't block the single writer.

USAGE:
  store, err := sqlite.New("./data/ledgers.db")   // or ":memory:"
  if err != nil { log.Fatal(err) }
  defer store.Close()

SEE ALSO:
  - ledger/store.go: Interface definition and ordering contract
  - store/memory: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/ledger-engine/ledger"
)

// Store implements ledger.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ledgers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- seq preserves insertion order, the stable-sort tie-breaker.
	CREATE TABLE IF NOT EXISTS entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		ledger_id TEXT NOT NULL REFERENCES ledgers(id),
		entry_date TEXT NOT NULL,
		charge TEXT NOT NULL,
		description TEXT NOT NULL,
		payment TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_ledger ON entries(ledger_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LEDGERS
// =============================================================================

func (s *Store) CreateLedger(ctx context.Context, l ledger.Ledger) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledgers (id, name, created_at) VALUES (?, ?, ?)`,
		l.ID, l.Name, l.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *Store) GetLedger(ctx context.Context, id string) (ledger.Ledger, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM ledgers WHERE id = ?`, id)

	l, err := scanLedger(row)
	if err == sql.ErrNoRows {
		return ledger.Ledger{}, ledger.ErrLedgerNotFound
	}
	return l, err
}

func (s *Store) ListLedgers(ctx context.Context) ([]ledger.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM ledgers ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ledgers []ledger.Ledger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLedger(row scanner) (ledger.Ledger, error) {
	var l ledger.Ledger
	var createdAt string
	if err := row.Scan(&l.ID, &l.Name, &createdAt); err != nil {
		return ledger.Ledger{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ledger.Ledger{}, fmt.Errorf("corrupt created_at %q: %w", createdAt, err)
	}
	l.CreatedAt = t
	return l, nil
}

// =============================================================================
// ENTRIES
// =============================================================================

func (s *Store) AppendEntries(ctx context.Context, ledgerID string, entries []ledger.Entry) error {
	if _, err := s.GetLedger(ctx, ledgerID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (ledger_id, entry_date, charge, description, payment)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx,
			ledgerID, e.Date.String(), e.Charge.String(), e.Description, e.Payment.String())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Entries(ctx context.Context, ledgerID string) ([]ledger.Entry, error) {
	if _, err := s.GetLedger(ctx, ledgerID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_date, charge, description, payment
		 FROM entries WHERE ledger_id = ? ORDER BY seq`, ledgerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var dateStr, chargeStr, paymentStr string
		var e ledger.Entry
		if err := rows.Scan(&dateStr, &chargeStr, &e.Description, &paymentStr); err != nil {
			return nil, err
		}

		if e.Date, err = ledger.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("corrupt entry_date %q: %w", dateStr, err)
		}
		if e.Charge, err = decimal.NewFromString(chargeStr); err != nil {
			return nil, fmt.Errorf("corrupt charge %q: %w", chargeStr, err)
		}
		if e.Payment, err = decimal.NewFromString(paymentStr); err != nil {
			return nil, fmt.Errorf("corrupt payment %q: %w", paymentStr, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ClearEntries(ctx context.Context, ledgerID string) error {
	if _, err := s.GetLedger(ctx, ledgerID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE ledger_id = ?`, ledgerID)
	return err
}
