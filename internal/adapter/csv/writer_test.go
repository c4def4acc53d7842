package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/semtexzv/tproc/internal/domain"
)

func TestWriter_RendersFixedPrecision(t *testing.T) {
	rows := []domain.AccountRow{
		{
			ClientID:  1,
			Available: decimal.RequireFromString("3.5"),
			Held:      decimal.RequireFromString("2"),
			Total:     decimal.RequireFromString("5.5"),
		},
		{
			ClientID:  2,
			Available: decimal.RequireFromString("-1.0001"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("-1.0001"),
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"client,available,held,total,locked",
		"1,3.5000,2.0000,5.5000,false",
		"2,-1.0001,0.0000,-1.0001,true",
		"",
	}, "\n")

	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriter_EmptyTableStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "client,available,held,total,locked\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
