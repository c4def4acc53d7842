package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/semtexzv/tproc/internal/domain"
)

// DisputeStore is the in-memory disputable-transaction ledger. It retains
// each deposit until the deposit's dispute lifecycle is provably closed.
// The lock mirrors AccountStore: replay is the only mutator, diagnostics
// may read sizes concurrently.
type DisputeStore struct {
	mu      sync.RWMutex
	entries map[uint32]*domain.DisputeEntry
	live    int
}

// NewDisputeStore creates an empty dispute ledger.
func NewDisputeStore() *DisputeStore {
	return &DisputeStore{
		entries: make(map[uint32]*domain.DisputeEntry),
	}
}

// Record inserts a new entry. A transaction id that was already recorded,
// even if since retired, is rejected with domain.ErrDuplicateTx.
func (s *DisputeStore) Record(txID uint32, clientID uint16, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[txID]; ok {
		return domain.ErrDuplicateTx
	}
	s.entries[txID] = &domain.DisputeEntry{
		TxID:     txID,
		ClientID: clientID,
		Amount:   amount,
	}
	s.live++
	return nil
}

// Lookup returns the entry for txID if it exists and has not been retired.
func (s *DisputeStore) Lookup(txID uint32) (*domain.DisputeEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[txID]
	if !ok || entry == nil {
		return nil, false
	}
	return entry, true
}

// MarkDisputed flags the entry as under dispute.
func (s *DisputeStore) MarkDisputed(txID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry := s.entries[txID]; entry != nil {
		entry.Disputed = true
	}
}

// MarkResolved clears the dispute flag.
func (s *DisputeStore) MarkResolved(txID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry := s.entries[txID]; entry != nil {
		entry.Disputed = false
	}
}

// Retire closes the entry. The tx id stays known so a later deposit can not
// reuse it, but the entry can no longer be disputed, resolved or charged
// back.
func (s *DisputeStore) Retire(txID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[txID]; ok && entry != nil {
		s.entries[txID] = nil
		s.live--
	}
}

// Len returns the number of live (non-retired) entries.
func (s *DisputeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}
