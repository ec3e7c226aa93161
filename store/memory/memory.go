// Package memory provides an in-memory ledger.Store for tests and dev.
package memory

import (
	"context"
	"sync"

	"github.com/warp/ledger-engine/ledger"
)

// Store keeps ledgers and entries in maps. Entries are kept in
// insertion order, which Reconcile uses as its stable-sort tie-breaker.
type Store struct {
	mu      sync.RWMutex
	ledgers []ledger.Ledger
	entries map[string][]ledger.Entry
}

func New() *Store {
	return &Store{entries: make(map[string][]ledger.Entry)}
}

func (s *Store) CreateLedger(_ context.Context, l ledger.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers = append(s.ledgers, l)
	s.entries[l.ID] = nil
	return nil
}

func (s *Store) GetLedger(_ context.Context, id string) (ledger.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.ledgers {
		if l.ID == id {
			return l, nil
		}
	}
	return ledger.Ledger{}, ledger.ErrLedgerNotFound
}

func (s *Store) ListLedgers(_ context.Context) ([]ledger.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Ledger, len(s.ledgers))
	copy(out, s.ledgers)
	return out, nil
}

func (s *Store) AppendEntries(_ context.Context, ledgerID string, entries []ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[ledgerID]; !ok {
		return ledger.ErrLedgerNotFound
	}
	s.entries[ledgerID] = append(s.entries[ledgerID], entries...)
	return nil
}

func (s *Store) Entries(_ context.Context, ledgerID string) ([]ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.entries[ledgerID]
	if !ok {
		return nil, ledger.ErrLedgerNotFound
	}
	out := make([]ledger.Entry, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *Store) ClearEntries(_ context.Context, ledgerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[ledgerID]; !ok {
		return ledger.ErrLedgerNotFound
	}
	s.entries[ledgerID] = nil
	return nil
}
