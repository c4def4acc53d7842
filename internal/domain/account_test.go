package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccount_ValidateWithdrawal(t *testing.T) {
	tests := []struct {
		name      string
		available decimal.Decimal
		locked    bool
		amount    decimal.Decimal
		wantErr   error
	}{
		{
			name:      "sufficient funds",
			available: dec("100"),
			amount:    dec("50"),
		},
		{
			name:      "exact balance",
			available: dec("100"),
			amount:    dec("100"),
		},
		{
			name:      "insufficient funds",
			available: dec("100"),
			amount:    dec("100.0001"),
			wantErr:   ErrInsufficientFunds,
		},
		{
			name:      "locked account",
			available: dec("100"),
			locked:    true,
			amount:    dec("10"),
			wantErr:   ErrAccountLocked,
		},
		{
			name:      "zero amount",
			available: dec("100"),
			amount:    decimal.Zero,
			wantErr:   ErrInvalidAmount,
		},
		{
			name:      "negative amount",
			available: dec("100"),
			amount:    dec("-5"),
			wantErr:   ErrInvalidAmount,
		},
		{
			name:      "negative available rejects any withdrawal",
			available: dec("-2.5"),
			amount:    dec("0.0001"),
			wantErr:   ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{ClientID: 1, Available: tt.available, Held: decimal.Zero, Locked: tt.locked}

			err := acc.ValidateWithdrawal(tt.amount)
			if err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAccount_ValidateDeposit(t *testing.T) {
	tests := []struct {
		name    string
		locked  bool
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "positive amount", amount: dec("1")},
		{name: "locked account", locked: true, amount: dec("1"), wantErr: ErrAccountLocked},
		{name: "zero amount", amount: decimal.Zero, wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: dec("-1"), wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccount(1)
			acc.Locked = tt.locked

			err := acc.ValidateDeposit(tt.amount)
			if err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAccount_HoldAndRelease(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("5.0"))
	acc.Deposit(dec("2.0"))

	acc.HoldFunds(dec("2.0"))

	if !acc.Available.Equal(dec("5.0")) {
		t.Errorf("expected available 5.0, got %s", acc.Available)
	}
	if !acc.Held.Equal(dec("2.0")) {
		t.Errorf("expected held 2.0, got %s", acc.Held)
	}
	if !acc.Total().Equal(dec("7.0")) {
		t.Errorf("hold must not change total, got %s", acc.Total())
	}

	acc.ReleaseFunds(dec("2.0"))

	if !acc.Available.Equal(dec("7.0")) {
		t.Errorf("expected available 7.0 after release, got %s", acc.Available)
	}
	if !acc.Held.IsZero() {
		t.Errorf("expected held 0 after release, got %s", acc.Held)
	}
}

func TestAccount_HoldMayGoNegative(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("5.0"))
	acc.Withdraw(dec("4.0"))

	// The disputed deposit was already spent.
	acc.HoldFunds(dec("5.0"))

	if !acc.Available.Equal(dec("-4.0")) {
		t.Errorf("expected available -4.0, got %s", acc.Available)
	}
	if !acc.Total().Equal(dec("1.0")) {
		t.Errorf("expected total 1.0, got %s", acc.Total())
	}
}

func TestAccount_ChargeBack(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("5.0"))
	acc.HoldFunds(dec("5.0"))

	acc.ChargeBack(dec("5.0"))

	if !acc.Locked {
		t.Error("expected account to be locked after chargeback")
	}
	if !acc.Held.IsZero() {
		t.Errorf("expected held 0 after chargeback, got %s", acc.Held)
	}
	if !acc.Total().IsZero() {
		t.Errorf("expected total 0 after chargeback, got %s", acc.Total())
	}
}

func TestDisputeEntry_Validate(t *testing.T) {
	tests := []struct {
		name     string
		entry    DisputeEntry
		clientID uint16
		dispute  bool
		wantErr  error
	}{
		{
			name:     "dispute undisputed entry",
			entry:    DisputeEntry{TxID: 1, ClientID: 7},
			clientID: 7,
			dispute:  true,
		},
		{
			name:     "dispute wrong client",
			entry:    DisputeEntry{TxID: 1, ClientID: 7},
			clientID: 8,
			dispute:  true,
			wantErr:  ErrClientMismatch,
		},
		{
			name:     "dispute already disputed",
			entry:    DisputeEntry{TxID: 1, ClientID: 7, Disputed: true},
			clientID: 7,
			dispute:  true,
			wantErr:  ErrAlreadyDisputed,
		},
		{
			name:     "settle disputed entry",
			entry:    DisputeEntry{TxID: 1, ClientID: 7, Disputed: true},
			clientID: 7,
		},
		{
			name:     "settle undisputed entry",
			entry:    DisputeEntry{TxID: 1, ClientID: 7},
			clientID: 7,
			wantErr:  ErrNotUnderDispute,
		},
		{
			name:     "settle wrong client",
			entry:    DisputeEntry{TxID: 1, ClientID: 7, Disputed: true},
			clientID: 9,
			wantErr:  ErrClientMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.dispute {
				err = tt.entry.ValidateDispute(tt.clientID)
			} else {
				err = tt.entry.ValidateSettle(tt.clientID)
			}
			if err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{name: "deposit", record: Record{Op: OpDeposit, ClientID: 1, TxID: 1, Amount: dec("1.5")}},
		{name: "withdrawal", record: Record{Op: OpWithdrawal, ClientID: 1, TxID: 2, Amount: dec("1.5")}},
		{name: "dispute without amount", record: Record{Op: OpDispute, ClientID: 1, TxID: 1}},
		{name: "deposit without amount", record: Record{Op: OpDeposit, ClientID: 1, TxID: 1}, wantErr: ErrInvalidAmount},
		{name: "negative withdrawal", record: Record{Op: OpWithdrawal, ClientID: 1, TxID: 1, Amount: dec("-1")}, wantErr: ErrInvalidAmount},
		{name: "unknown op", record: Record{Op: "transfer", ClientID: 1, TxID: 1}, wantErr: ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.record.Validate(); err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
