package provision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blankenberg/ephemeris/internal/config"
	"github.com/blankenberg/ephemeris/internal/domain"
	"github.com/blankenberg/ephemeris/internal/telemetry"
	"github.com/blankenberg/ephemeris/internal/template"
)

// Client — операции удалённого инстанса, нужные оркестратору.
// Реализуется galaxy.Client; в тестах подменяется фейком.
type Client interface {
	JobSubmitter
	DatasetReader
	TableReader
}

// Orchestrator выполняет список data managers строго по порядку.
//
// Для каждого шага:
//  1. Разворачивает items через internal/template
//  2. Для каждого item рендерит параметры, проверяет идемпотентность
//     (если не задан overwrite) и отправляет job
//  3. Ожидает весь батч шага через Poller
//  4. Применяет политику ошибок и накапливает сводку
//
// Следующий шаг не начинается, пока не завершён предыдущий: поздние
// data managers могут зависеть от данных, созданных ранними.
type Orchestrator struct {
	client     Client
	checker    *Checker
	dispatcher *Dispatcher
	poller     *Poller

	overwrite      bool
	ignoreFailures bool

	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Config — конфигурация Orchestrator.
type Config struct {
	// Client — клиент удалённого инстанса (обязателен).
	Client Client

	// Overwrite отключает проверку идемпотентности целиком:
	// каждый item отправляется независимо от содержимого таблиц.
	Overwrite bool

	// IgnoreFailures продолжает выполнение после батча с упавшими
	// jobs вместо прерывания всего запуска.
	IgnoreFailures bool

	// PollInterval — пауза между циклами опроса (default: 30s).
	PollInterval time.Duration

	// Logger (опционально; если nil — slog.Default()).
	Logger *slog.Logger

	// Metrics (опционально; если nil — метрики не собираются).
	Metrics *telemetry.Metrics
}

// New создаёт новый Orchestrator.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		client:         cfg.Client,
		checker:        NewChecker(cfg.Client, logger),
		dispatcher:     NewDispatcher(cfg.Client, logger),
		poller:         NewPoller(cfg.Client, cfg.PollInterval, logger),
		overwrite:      cfg.Overwrite,
		ignoreFailures: cfg.IgnoreFailures,
		logger:         logger,
		metrics:        cfg.Metrics,
	}
}

// Run выполняет один полный проход по списку data managers.
//
// Возвращает накопленную сводку. При фатальной ошибке (ошибка
// конфигурации, отказ отправки, недоступность инстанса, ErrPolicyAbort)
// возвращается сводка, накопленная к моменту прерывания, и ошибка;
// оставшиеся шаги не выполняются.
func (o *Orchestrator) Run(ctx context.Context, cfg *config.Config) (domain.RunSummary, error) {
	run := domain.NewRun()
	logger := telemetry.WithRunID(o.logger, run.ID.String())

	logger.Info("running data managers",
		"steps", len(cfg.DataManagers),
		"overwrite", o.overwrite,
		"ignore_failures", o.ignoreFailures,
	)

	var summary domain.RunSummary
	for i := range cfg.DataManagers {
		step := &cfg.DataManagers[i]

		stepSummary, err := o.runStep(ctx, logger, step, cfg.Genomes)
		summary.Add(stepSummary)
		if err != nil {
			return summary, err
		}
	}

	run.Finish(summary)
	logger.Info("finished running data managers",
		"finished", summary.Finished,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duration", run.Duration(),
	)

	return summary, nil
}

// runStep выполняет один шаг: разворачивает items, отправляет jobs,
// ожидает батч и применяет политику ошибок.
//
// Сводка шага возвращается явно и прибавляется вызывающей стороной —
// даже при прерывании понятно, что именно вошло в итог.
func (o *Orchestrator) runStep(ctx context.Context, logger *slog.Logger, step *domain.Step, genomes domain.ReferenceKeys) (domain.RunSummary, error) {
	var result domain.RunSummary
	stepLogger := telemetry.WithManagerID(logger, step.ID)

	items, err := template.ResolveItems(step.Items, genomes)
	if err != nil {
		return result, fmt.Errorf("resolve items for %s: %w", step.ID, err)
	}

	var batch []domain.JobHandle
	for _, item := range items {
		inputs, err := template.ResolveParams(step.Params, item)
		if err != nil {
			return result, fmt.Errorf("resolve params for %s: %w", step.ID, err)
		}

		if !o.overwrite {
			decision, err := o.checker.Evaluate(ctx, step.DataTables, inputs)
			if err != nil {
				return result, err
			}
			if decision == domain.DecisionSatisfied {
				stepLogger.Info("already run, skipping", "inputs", inputs)
				result.Skipped++
				if o.metrics != nil {
					o.metrics.JobsSkipped.Inc()
				}
				continue
			}
		}

		handle, err := o.dispatcher.Dispatch(ctx, step.ID, inputs)
		if err != nil {
			return result, err
		}
		if o.metrics != nil {
			o.metrics.JobsDispatched.Inc()
		}
		batch = append(batch, handle)
	}

	succeeded, failed, pollErr := o.poller.AwaitAll(ctx, batch)
	result.Finished += len(succeeded)
	result.Failed += len(failed)
	if o.metrics != nil {
		o.metrics.JobsFinished.Add(float64(len(succeeded)))
		o.metrics.JobsFailed.Add(float64(len(failed)))
	}
	if pollErr != nil {
		return result, fmt.Errorf("wait for %s: %w", step.ID, pollErr)
	}

	if len(failed) > 0 {
		if !o.ignoreFailures {
			return result, fmt.Errorf("%w: %d of %d jobs failed in %s, aborting",
				ErrPolicyAbort, len(failed), len(batch), step.ID)
		}
		stepLogger.Error("not all jobs successful, ignoring", "failed", len(failed))
	}

	return result, nil
}
