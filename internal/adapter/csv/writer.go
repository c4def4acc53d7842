package csv

import (
	stdcsv "encoding/csv"
	"io"
	"strconv"

	"github.com/semtexzv/tproc/internal/domain"
)

// Writer is the account sink. It renders the final account table as CSV
// with all decimals at fixed precision.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer targeting out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write emits the header followed by one row per account, in the order the
// snapshot provides them.
func (w *Writer) Write(rows []domain.AccountRow) error {
	cw := stdcsv.NewWriter(w.out)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ClientID), 10),
			row.Available.StringFixed(domain.AmountScale),
			row.Held.StringFixed(domain.AmountScale),
			row.Total.StringFixed(domain.AmountScale),
			strconv.FormatBool(row.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
