// Package csv adapts delimited-text transaction streams to the domain
// types. It is boundary glue only: all semantic validation lives in the
// replay usecase.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/semtexzv/tproc/internal/domain"
)

// Reader is the record stream source. It converts CSV rows into typed
// records. Row-level conversion failures are reported wrapped in
// domain.ErrMalformedRecord so the replay can skip the row; I/O and CSV
// framing errors are returned as-is and abort the run.
type Reader struct {
	csv  *stdcsv.Reader
	cols map[string]int
}

// NewReader creates a Reader and consumes the header row. A stream whose
// header can not be read at all is a framing failure.
func NewReader(r io.Reader) (*Reader, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1 // amount column may be omitted
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("header is missing column %q", required)
		}
	}

	return &Reader{csv: cr, cols: cols}, nil
}

// Next returns the next record, io.EOF at end of stream, or an error
// wrapping domain.ErrMalformedRecord for a row that must be skipped.
func (r *Reader) Next() (domain.Record, error) {
	row, err := r.csv.Read()
	if err != nil {
		return domain.Record{}, err
	}

	op, err := domain.ParseOperation(r.field(row, "type"))
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}

	client, err := strconv.ParseUint(r.field(row, "client"), 10, 16)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: client: %v", domain.ErrMalformedRecord, err)
	}

	tx, err := strconv.ParseUint(r.field(row, "tx"), 10, 32)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: tx: %v", domain.ErrMalformedRecord, err)
	}

	rec := domain.Record{
		Op:       op,
		ClientID: uint16(client),
		TxID:     uint32(tx),
	}

	// Only deposits and withdrawals carry an amount; a stray amount on a
	// dispute-family row is ignored.
	if op.HasAmount() {
		raw := r.field(row, "amount")
		if raw == "" {
			return rec, fmt.Errorf("%w: missing amount", domain.ErrMalformedRecord)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return rec, fmt.Errorf("%w: amount: %v", domain.ErrMalformedRecord, err)
		}
		if amount.Exponent() < -domain.AmountScale {
			return rec, fmt.Errorf("%w: amount %s exceeds %d fractional digits",
				domain.ErrMalformedRecord, raw, domain.AmountScale)
		}
		rec.Amount = amount
	}

	return rec, nil
}

func (r *Reader) field(row []string, name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
