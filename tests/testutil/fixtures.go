package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	csvadapter "github.com/semtexzv/tproc/internal/adapter/csv"
	"github.com/semtexzv/tproc/internal/adapter/repository/memory"
	"github.com/semtexzv/tproc/internal/domain"
	"github.com/semtexzv/tproc/internal/usecase"
)

// Result holds everything a test may want to inspect after a replay.
type Result struct {
	Rows     []domain.AccountRow
	Accounts *memory.AccountStore
	Disputes *memory.DisputeStore
	Stats    usecase.Stats
}

// ReplayCSV runs a complete in-process replay of the given CSV lines
// (header included) and returns the final state.
func ReplayCSV(t *testing.T, lines ...string) Result {
	t.Helper()

	source, err := csvadapter.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("failed to open record source: %v", err)
	}

	accounts := memory.NewAccountStore()
	disputes := memory.NewDisputeStore()
	uc := usecase.NewReplayUseCase(accounts, disputes, zerolog.Nop())

	if err := uc.Replay(context.Background(), source); err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	return Result{
		Rows:     uc.Snapshot(),
		Accounts: accounts,
		Disputes: disputes,
		Stats:    uc.Stats(),
	}
}

// RenderCSV renders account rows the way the CLI does.
func RenderCSV(t *testing.T, rows []domain.AccountRow) string {
	t.Helper()

	var buf bytes.Buffer
	if err := csvadapter.NewWriter(&buf).Write(rows); err != nil {
		t.Fatalf("failed to render account table: %v", err)
	}
	return buf.String()
}
