package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	csvadapter "github.com/semtexzv/tproc/internal/adapter/csv"
	httpadapter "github.com/semtexzv/tproc/internal/adapter/http"
	"github.com/semtexzv/tproc/internal/adapter/repository/memory"
	"github.com/semtexzv/tproc/internal/infrastructure/config"
	"github.com/semtexzv/tproc/internal/infrastructure/logger"
	"github.com/semtexzv/tproc/internal/infrastructure/metrics"
	"github.com/semtexzv/tproc/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verify      bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "tproc <records.csv>",
		Short: "Replay a transaction log against client accounts",
		Long: `tproc replays an ordered CSV log of deposits, withdrawals, disputes,
resolves and chargebacks against per-client accounts and writes the final
account table to stdout. Logs go to stderr.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], verify, metricsAddr)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "audit balance invariants after the replay and fail on violation")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics, /stats and /health on this address while replaying")

	return cmd
}

func run(ctx context.Context, path string, verify bool, metricsAddr string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	var idGen usecase.IDGenerator = memory.NewULIDGenerator()
	runID := idGen.Generate()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().Str("run_id", runID).Logger()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	accounts := memory.NewAccountStore()
	disputes := memory.NewDisputeStore()
	replayUC := usecase.NewReplayUseCase(accounts, disputes, log,
		usecase.WithMetrics(metrics.New(registry)),
		usecase.WithEvictResolved(cfg.LedgerEvictResolved),
	)

	if cfg.MetricsAddr != "" {
		server := &http.Server{
			Addr: cfg.MetricsAddr,
			Handler: httpadapter.NewRouter(httpadapter.RouterConfig{
				Replay:   replayUC,
				RunID:    runID,
				Gatherer: registry,
			}),
		}
		go func() {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("serving diagnostics")
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("diagnostics server failed")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	source, err := csvadapter.NewReader(file)
	if err != nil {
		return err
	}

	log.Info().Str("input", path).Msg("starting replay")
	if err := replayUC.Replay(ctx, source); err != nil {
		return err
	}

	if verify {
		if err := usecase.NewReconciliationUseCase(accounts).Audit(); err != nil {
			return err
		}
		log.Info().Msg("balance invariants verified")
	}

	var sink usecase.AccountSink = csvadapter.NewWriter(os.Stdout)
	return sink.Write(replayUC.Snapshot())
}
