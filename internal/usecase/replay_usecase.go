package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/semtexzv/tproc/internal/domain"
	"github.com/semtexzv/tproc/internal/infrastructure/metrics"
)

// Stats is a point-in-time view of replay progress. Counters are updated by
// the replay goroutine and may be read concurrently by the diagnostics
// endpoint.
type Stats struct {
	Processed int64 `json:"processed"`
	Dropped   int64 `json:"dropped"`
	Accounts  int   `json:"accounts"`
	Disputes  int   `json:"open_disputes"`
}

// ReplayUseCase applies transaction records to the account table and the
// dispute ledger, one at a time, in arrival order. It is the only mutator of
// both stores.
type ReplayUseCase struct {
	accounts AccountStore
	disputes DisputeStore
	metrics  *metrics.Metrics
	logger   zerolog.Logger

	// evictResolved also retires ledger entries on resolve, closing their
	// dispute lifecycle early. Off by default: a resolved deposit may be
	// disputed again.
	evictResolved bool

	processed atomic.Int64
	dropped   atomic.Int64
}

// ReplayOption configures a ReplayUseCase.
type ReplayOption func(*ReplayUseCase)

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) ReplayOption {
	return func(uc *ReplayUseCase) { uc.metrics = m }
}

// WithEvictResolved retires dispute ledger entries as soon as they resolve.
func WithEvictResolved(evict bool) ReplayOption {
	return func(uc *ReplayUseCase) { uc.evictResolved = evict }
}

// NewReplayUseCase creates a new ReplayUseCase.
func NewReplayUseCase(accounts AccountStore, disputes DisputeStore, logger zerolog.Logger, opts ...ReplayOption) *ReplayUseCase {
	uc := &ReplayUseCase{
		accounts: accounts,
		disputes: disputes,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Replay consumes the source until exhaustion. Record-level failures drop the
// single record and continue; source errors other than
// domain.ErrMalformedRecord are stream-level and abort the run.
func (uc *ReplayUseCase) Replay(ctx context.Context, source RecordSource) error {
	start := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, domain.ErrMalformedRecord) {
				uc.drop(rec, DropMalformed, err)
				continue
			}
			return err
		}

		if err := uc.Apply(rec); err != nil {
			uc.drop(rec, dropReason(err), err)
			continue
		}

		uc.processed.Add(1)
		if uc.metrics != nil {
			uc.metrics.RecordsProcessed.WithLabelValues(string(rec.Op)).Inc()
		}
	}

	if uc.metrics != nil {
		uc.metrics.ReplayDuration.Observe(time.Since(start).Seconds())
	}

	uc.logger.Info().
		Int64("processed", uc.processed.Load()).
		Int64("dropped", uc.dropped.Load()).
		Int("accounts", uc.accounts.Len()).
		Int("open_disputes", uc.disputes.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("replay finished")

	return nil
}

// Apply runs a single record through the state machine. On error no balance
// or ledger entry has changed; referencing a client still creates its empty
// account, whether or not the record is then dropped.
func (uc *ReplayUseCase) Apply(rec domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	switch rec.Op {
	case domain.OpDeposit:
		return uc.deposit(rec)
	case domain.OpWithdrawal:
		return uc.withdraw(rec)
	case domain.OpDispute:
		return uc.dispute(rec)
	case domain.OpResolve:
		return uc.resolve(rec)
	case domain.OpChargeback:
		return uc.chargeback(rec)
	default:
		return domain.ErrUnknownOperation
	}
}

// Snapshot returns the final account table in deterministic order.
func (uc *ReplayUseCase) Snapshot() []domain.AccountRow {
	return uc.accounts.Snapshot()
}

// Stats returns current replay progress.
func (uc *ReplayUseCase) Stats() Stats {
	return Stats{
		Processed: uc.processed.Load(),
		Dropped:   uc.dropped.Load(),
		Accounts:  uc.accounts.Len(),
		Disputes:  uc.disputes.Len(),
	}
}

func (uc *ReplayUseCase) deposit(rec domain.Record) error {
	acc := uc.accounts.GetOrCreate(rec.ClientID)
	if err := acc.ValidateDeposit(rec.Amount); err != nil {
		return err
	}
	// Recording the tx id must precede the balance change: a duplicate id
	// rejects the whole record.
	if err := uc.disputes.Record(rec.TxID, rec.ClientID, rec.Amount); err != nil {
		return err
	}
	acc.Deposit(rec.Amount)
	return nil
}

func (uc *ReplayUseCase) withdraw(rec domain.Record) error {
	acc := uc.accounts.GetOrCreate(rec.ClientID)
	if err := acc.ValidateWithdrawal(rec.Amount); err != nil {
		return err
	}
	acc.Withdraw(rec.Amount)
	return nil
}

func (uc *ReplayUseCase) dispute(rec domain.Record) error {
	acc := uc.accounts.GetOrCreate(rec.ClientID)

	entry, ok := uc.disputes.Lookup(rec.TxID)
	if !ok {
		return domain.ErrTxNotFound
	}
	if err := entry.ValidateDispute(rec.ClientID); err != nil {
		return err
	}

	// Disputes proceed even on a locked account.
	acc.HoldFunds(entry.Amount)
	uc.disputes.MarkDisputed(rec.TxID)

	if uc.metrics != nil {
		uc.metrics.DisputesOpened.Inc()
	}
	return nil
}

func (uc *ReplayUseCase) resolve(rec domain.Record) error {
	acc := uc.accounts.GetOrCreate(rec.ClientID)

	entry, ok := uc.disputes.Lookup(rec.TxID)
	if !ok {
		return domain.ErrTxNotFound
	}
	if err := entry.ValidateSettle(rec.ClientID); err != nil {
		return err
	}

	acc.ReleaseFunds(entry.Amount)
	uc.disputes.MarkResolved(rec.TxID)
	if uc.evictResolved {
		uc.disputes.Retire(rec.TxID)
	}

	if uc.metrics != nil {
		uc.metrics.DisputesResolved.Inc()
	}
	return nil
}

func (uc *ReplayUseCase) chargeback(rec domain.Record) error {
	acc := uc.accounts.GetOrCreate(rec.ClientID)

	entry, ok := uc.disputes.Lookup(rec.TxID)
	if !ok {
		return domain.ErrTxNotFound
	}
	if err := entry.ValidateSettle(rec.ClientID); err != nil {
		return err
	}

	acc.ChargeBack(entry.Amount)
	// Retiring the entry is what makes a second chargeback impossible.
	uc.disputes.Retire(rec.TxID)

	if uc.metrics != nil {
		uc.metrics.Chargebacks.Inc()
		uc.metrics.AccountsLocked.Inc()
	}
	return nil
}

func (uc *ReplayUseCase) drop(rec domain.Record, reason string, err error) {
	uc.dropped.Add(1)
	if uc.metrics != nil {
		uc.metrics.RecordsDropped.WithLabelValues(reason).Inc()
	}
	uc.logger.Debug().
		Str("op", string(rec.Op)).
		Uint16("client", rec.ClientID).
		Uint32("tx", rec.TxID).
		Str("reason", reason).
		Err(err).
		Msg("record dropped")
}

func dropReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountLocked):
		return DropAccountLocked
	case errors.Is(err, domain.ErrInvalidAmount):
		return DropInvalidAmount
	case errors.Is(err, domain.ErrInsufficientFunds):
		return DropInsufficientFunds
	case errors.Is(err, domain.ErrDuplicateTx):
		return DropDuplicateTx
	case errors.Is(err, domain.ErrTxNotFound):
		return DropTxNotFound
	case errors.Is(err, domain.ErrClientMismatch):
		return DropClientMismatch
	case errors.Is(err, domain.ErrAlreadyDisputed):
		return DropAlreadyDisputed
	case errors.Is(err, domain.ErrNotUnderDispute):
		return DropNotUnderDispute
	case errors.Is(err, domain.ErrUnknownOperation):
		return DropUnknownOperation
	default:
		return DropMalformed
	}
}
