package usecase

// Drop reasons classify why a record was skipped. They label the dropped
// records metric and the per-record debug logs.
const (
	DropMalformed         = "malformed"
	DropAccountLocked     = "account_locked"
	DropInvalidAmount     = "invalid_amount"
	DropInsufficientFunds = "insufficient_funds"
	DropDuplicateTx       = "duplicate_tx"
	DropTxNotFound        = "tx_not_found"
	DropClientMismatch    = "client_mismatch"
	DropAlreadyDisputed   = "already_disputed"
	DropNotUnderDispute   = "not_under_dispute"
	DropUnknownOperation  = "unknown_operation"
)
