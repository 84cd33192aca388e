package schedule

import (
	"context"
	"log/slog"
	"time"
)

// defaultInterval используется, когда не задан ни cron, ни interval.
const defaultInterval = time.Hour

// JobFunc — один полный проход, выполняемый по расписанию.
type JobFunc func(ctx context.Context) error

// Scheduler периодически выполняет JobFunc по cron-выражению или
// с фиксированным интервалом.
type Scheduler struct {
	cronExpr string
	interval time.Duration
	logger   *slog.Logger
}

// Config — конфигурация Scheduler.
type Config struct {
	// CronExpr — стандартное 5-польное cron-выражение.
	// Имеет приоритет над Interval.
	CronExpr string

	// Interval — фиксированная пауза между запусками.
	// Используется, когда CronExpr пуст (default: 1h).
	Interval time.Duration

	// Logger (опционально; если nil — slog.Default()).
	Logger *slog.Logger
}

// New создаёт новый Scheduler.
func New(cfg Config) *Scheduler {
	interval := cfg.Interval
	if cfg.CronExpr == "" && interval <= 0 {
		interval = defaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cronExpr: cfg.CronExpr,
		interval: interval,
		logger:   logger,
	}
}

// Run выполняет fn по расписанию, пока ctx не отменён.
//
// Первый запуск происходит сразу, без ожидания. Ошибка одного прохода
// логируется и не прерывает расписание: следующий запуск состоится
// в своё время. Возвращается только причина отмены ctx.
func (s *Scheduler) Run(ctx context.Context, fn JobFunc) error {
	for {
		if err := fn(ctx); err != nil {
			s.logger.Error("scheduled run failed", "error", err)
		}

		next, err := NextDue(s.cronExpr, s.interval, time.Now())
		if err != nil {
			return err
		}

		wait := time.Until(next)
		s.logger.Info("next run scheduled", "at", next.Format(time.RFC3339), "in", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}
