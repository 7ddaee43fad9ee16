package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/budgetledger/internal/adapter/report"
	"github.com/iho/budgetledger/internal/adapter/repository/csvstore"
	"github.com/iho/budgetledger/internal/infrastructure/config"
	"github.com/iho/budgetledger/internal/infrastructure/logger"
	"github.com/iho/budgetledger/internal/infrastructure/metrics"
	"github.com/iho/budgetledger/internal/usecase"
)

// app carries the wiring shared by all subcommands.
type app struct {
	storePath string

	cfg      *config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	store    *csvstore.Store
	ledger   *usecase.LedgerUseCase
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", report.Message(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "budget",
		Short:         "Personal budget tracker",
		Long:          `Record income and expenses in a CSV ledger and report on them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.storePath, "store", "", "Path of the ledger CSV file (overrides BUDGET_STORE_PATH)")

	rootCmd.AddCommand(
		addCmd(a),
		summaryCmd(a),
		categoriesCmd(a),
		chartCmd(a),
		checkCmd(a),
		serveCmd(a),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.storePath != "" {
		cfg.StorePath = a.storePath
	}
	a.cfg = cfg

	a.logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.New(a.registry)

	a.store = csvstore.New(cfg.StorePath,
		csvstore.WithLogger(a.logger),
		csvstore.WithObserver(a.metrics),
		csvstore.WithRetry(cfg.StoreMaxRetries, cfg.StoreRetryInterval),
	)

	a.ledger = usecase.NewLedgerUseCase(a.store,
		usecase.WithLogger(a.logger),
		usecase.WithMetrics(a.metrics),
	)

	a.logger.Debug().Str("store", cfg.StorePath).Msg("ledger ready")

	return nil
}
