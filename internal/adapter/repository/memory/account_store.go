package memory

import (
	"sort"
	"sync"

	"github.com/semtexzv/tproc/internal/domain"
)

// AccountStore is the in-memory account table. The replay usecase is the
// only mutator; the lock exists for the diagnostics endpoint, which reads
// the table size while a replay is running. Balances are mutated on the
// *domain.Account outside the lock, so Snapshot must only be called once
// the replay has finished.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[uint16]*domain.Account
}

// NewAccountStore creates an empty account table.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[uint16]*domain.Account),
	}
}

// GetOrCreate returns the account for clientID, creating it lazily with
// zero balances and unlocked.
func (s *AccountStore) GetOrCreate(clientID uint16) *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.accounts[clientID]; ok {
		return acc
	}
	acc := domain.NewAccount(clientID)
	s.accounts[clientID] = acc
	return acc
}

// Snapshot returns every account as an output row, ordered by client id
// ascending. Map iteration order is not deterministic, so rows are sorted
// before emit.
func (s *AccountStore) Snapshot() []domain.AccountRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]domain.AccountRow, 0, len(s.accounts))
	for _, acc := range s.accounts {
		rows = append(rows, domain.AccountRow{
			ClientID:  acc.ClientID,
			Available: acc.Available,
			Held:      acc.Held,
			Total:     acc.Total(),
			Locked:    acc.Locked,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ClientID < rows[j].ClientID
	})
	return rows
}

// Len returns the number of accounts created so far.
func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
