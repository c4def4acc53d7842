package domain

import (
	"github.com/shopspring/decimal"
)

// DisputeEntry is the retained memory of a deposit while it can still be
// disputed, resolved or charged back. An entry exists iff the deposit has
// not completed a chargeback.
type DisputeEntry struct {
	TxID     uint32
	ClientID uint16
	Amount   decimal.Decimal
	Disputed bool
}

// ValidateClaim checks that a dispute/resolve/chargeback record may act on
// this entry.
func (e *DisputeEntry) ValidateClaim(clientID uint16) error {
	if e.ClientID != clientID {
		return ErrClientMismatch
	}
	return nil
}

// ValidateDispute checks the entry can enter the disputed state. An entry
// that was resolved earlier may be disputed again.
func (e *DisputeEntry) ValidateDispute(clientID uint16) error {
	if err := e.ValidateClaim(clientID); err != nil {
		return err
	}
	if e.Disputed {
		return ErrAlreadyDisputed
	}
	return nil
}

// ValidateSettle checks the entry can be resolved or charged back.
func (e *DisputeEntry) ValidateSettle(clientID uint16) error {
	if err := e.ValidateClaim(clientID); err != nil {
		return err
	}
	if !e.Disputed {
		return ErrNotUnderDispute
	}
	return nil
}
