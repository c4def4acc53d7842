package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/semtexzv/tproc/internal/domain"
)

// AccountStore holds the per-client account table.
type AccountStore interface {
	// GetOrCreate returns the account for clientID, creating an unlocked
	// zero-balance account on first reference.
	GetOrCreate(clientID uint16) *domain.Account
	// Snapshot returns all accounts ordered by client id ascending.
	Snapshot() []domain.AccountRow
	Len() int
}

// DisputeStore retains deposits while they can still be disputed, resolved
// or charged back.
type DisputeStore interface {
	// Record inserts a new entry. Returns domain.ErrDuplicateTx when the
	// transaction id was seen before.
	Record(txID uint32, clientID uint16, amount decimal.Decimal) error
	Lookup(txID uint32) (*domain.DisputeEntry, bool)
	MarkDisputed(txID uint32)
	MarkResolved(txID uint32)
	// Retire removes an entry whose dispute lifecycle is closed. Retired
	// transactions can never be disputed, resolved or charged back again.
	Retire(txID uint32)
	Len() int
}

// RecordSource yields transaction records in arrival order. Next returns
// io.EOF at end of stream and domain.ErrMalformedRecord (possibly wrapped)
// for rows that must be skipped without stopping the replay.
type RecordSource interface {
	Next() (domain.Record, error)
}

// AccountSink consumes the final account table.
type AccountSink interface {
	Write(rows []domain.AccountRow) error
}

// IDGenerator generates unique run identifiers.
type IDGenerator interface {
	Generate() string
}
