package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentLedger is returned when the final account table
	// violates a balance invariant.
	ErrInconsistentLedger = errors.New("account table is inconsistent")
)

// ReconciliationUseCase audits the final account table against the balance
// invariants that hold for every account at every point of a replay:
// total equals available plus held, and held is never negative.
type ReconciliationUseCase struct {
	accounts AccountStore
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(accounts AccountStore) *ReconciliationUseCase {
	return &ReconciliationUseCase{accounts: accounts}
}

// Audit walks the snapshot and returns ErrInconsistentLedger (with the
// offending client id) on the first violation.
func (uc *ReconciliationUseCase) Audit() error {
	for _, row := range uc.accounts.Snapshot() {
		if !row.Total.Equal(row.Available.Add(row.Held)) {
			return fmt.Errorf("%w: client %d: total %s != available %s + held %s",
				ErrInconsistentLedger, row.ClientID, row.Total, row.Available, row.Held)
		}
		if row.Held.IsNegative() {
			return fmt.Errorf("%w: client %d: negative held funds %s",
				ErrInconsistentLedger, row.ClientID, row.Held)
		}
	}
	return nil
}
