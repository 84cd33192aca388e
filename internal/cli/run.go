package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/blankenberg/ephemeris/internal/config"
	"github.com/blankenberg/ephemeris/internal/provision"
	"github.com/blankenberg/ephemeris/internal/telemetry"
)

// newRunCmd создаёт команду одиночного прохода.
func newRunCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the configured data managers once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := telemetry.SetupLogger(opts.Verbose)

			orch, cfg, err := setup(ctx, opts, logger)
			if err != nil {
				return err
			}

			summary, err := orch.Run(ctx, cfg)
			NewOutput(opts.JSONOutput).Summary(summary)
			return err
		},
	}
}

// setup собирает оркестратор из общих флагов: конфигурация, клиент
// Galaxy, метрики.
func setup(ctx context.Context, opts *Options, logger *slog.Logger) (*provision.Orchestrator, *config.Config, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := opts.connect(ctx, logger)
	if err != nil {
		return nil, nil, err
	}

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry)
	if opts.MetricsAddr != "" {
		serveMetrics(opts.MetricsAddr, registry, logger)
	}

	orch := provision.New(provision.Config{
		Client:         client,
		Overwrite:      opts.Overwrite,
		IgnoreFailures: opts.IgnoreErrors,
		Logger:         logger,
		Metrics:        metrics,
	})

	return orch, cfg, nil
}
