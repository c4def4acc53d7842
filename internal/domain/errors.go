package domain

import "errors"

var (
	// Account errors
	ErrAccountLocked     = errors.New("account is locked")
	ErrInsufficientFunds = errors.New("insufficient available funds")

	// Record errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrUnknownOperation = errors.New("unknown operation type")

	// Dispute ledger errors
	ErrDuplicateTx     = errors.New("transaction id already recorded")
	ErrTxNotFound      = errors.New("transaction not found in dispute ledger")
	ErrClientMismatch  = errors.New("record client does not own the transaction")
	ErrAlreadyDisputed = errors.New("transaction is already under dispute")
	ErrNotUnderDispute = errors.New("transaction is not under dispute")
)
