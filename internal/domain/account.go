package domain

import (
	"github.com/shopspring/decimal"
)

// Account is the per-client balance record. Total is always derived from
// Available and Held and never stored, so the two can not drift apart.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(clientID uint16) *Account {
	return &Account{
		ClientID:  clientID,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total returns the derived total balance.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// ValidateDeposit checks if amount can be credited to available funds.
func (a *Account) ValidateDeposit(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateWithdrawal checks if amount can be debited from available funds.
// Available funds may go negative through disputes but never through a
// withdrawal.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// Deposit credits available funds.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
}

// Withdraw debits available funds.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
}

// HoldFunds moves amount from available to held. Available may go negative
// here: the disputed deposit can already have been withdrawn.
func (a *Account) HoldFunds(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// ReleaseFunds moves amount from held back to available.
func (a *Account) ReleaseFunds(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// ChargeBack removes amount from held funds and freezes the account.
// Deposits and withdrawals are rejected from this point on; the dispute
// lifecycle of other transactions is still allowed to finish.
func (a *Account) ChargeBack(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}

// AccountRow is one row of the final account table snapshot.
type AccountRow struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
