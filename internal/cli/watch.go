package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/blankenberg/ephemeris/internal/schedule"
	"github.com/blankenberg/ephemeris/internal/telemetry"
)

// newWatchCmd создаёт команду периодических проходов.
func newWatchCmd(opts *Options) *cobra.Command {
	var cronExpr string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the configured data managers on a schedule",
		Long: `Run the configured data managers periodically, by cron expression
or at a fixed interval. Each pass skips data that is already present,
so a pass over a fully provisioned instance submits no jobs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := telemetry.SetupLogger(opts.Verbose)

			if cronExpr != "" {
				if err := schedule.ValidateCronExpr(cronExpr); err != nil {
					return err
				}
			}

			orch, cfg, err := setup(ctx, opts, logger)
			if err != nil {
				return err
			}

			sched := schedule.New(schedule.Config{
				CronExpr: cronExpr,
				Interval: interval,
				Logger:   logger,
			})

			err = sched.Run(ctx, func(ctx context.Context) error {
				summary, err := orch.Run(ctx, cfg)
				NewOutput(opts.JSONOutput).Summary(summary)
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&cronExpr, "cron", "", "Cron expression (takes precedence over --interval)")
	cmd.Flags().DurationVar(&interval, "interval", time.Hour, "Fixed interval between passes")

	return cmd
}
