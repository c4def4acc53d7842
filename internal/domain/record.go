package domain

import (
	"github.com/shopspring/decimal"
)

// Operation is the type of a transaction record.
type Operation string

const (
	OpDeposit    Operation = "deposit"
	OpWithdrawal Operation = "withdrawal"
	OpDispute    Operation = "dispute"
	OpResolve    Operation = "resolve"
	OpChargeback Operation = "chargeback"
)

// AmountScale is the maximum number of fractional digits an amount may
// carry. Input with more precision is malformed; output always renders at
// this scale.
const AmountScale = 4

// ParseOperation validates an operation name from the input stream.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OpDeposit, OpWithdrawal, OpDispute, OpResolve, OpChargeback:
		return Operation(s), nil
	default:
		return "", ErrUnknownOperation
	}
}

// HasAmount reports whether records of this operation carry an amount field.
func (op Operation) HasAmount() bool {
	return op == OpDeposit || op == OpWithdrawal
}

// Record is one input line of the transaction stream.
// Amount is meaningful only for deposit and withdrawal records.
type Record struct {
	Op       Operation
	ClientID uint16
	TxID     uint32
	Amount   decimal.Decimal
}

// Validate checks the record's intrinsic shape, before any account or
// ledger state is consulted.
func (r Record) Validate() error {
	if _, err := ParseOperation(string(r.Op)); err != nil {
		return err
	}
	if r.Op.HasAmount() && r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}
