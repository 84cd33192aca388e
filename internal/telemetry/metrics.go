package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — счётчики по jobs за время жизни процесса.
//
// Полезны в watch-режиме, когда процесс живёт долго и периодически
// повторяет провижининг: счётчики накапливаются между запусками.
type Metrics struct {
	// JobsDispatched — отправленные jobs.
	JobsDispatched prometheus.Counter

	// JobsFinished — успешно завершённые jobs.
	JobsFinished prometheus.Counter

	// JobsFailed — упавшие jobs.
	JobsFailed prometheus.Counter

	// JobsSkipped — jobs, пропущенные проверкой идемпотентности.
	JobsSkipped prometheus.Counter
}

// NewMetrics создаёт и регистрирует метрики в reg.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		JobsDispatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "ephemeris_jobs_dispatched_total",
			Help: "Number of data manager jobs submitted to the instance.",
		}),
		JobsFinished: factory.NewCounter(prometheus.CounterOpts{
			Name: "ephemeris_jobs_finished_total",
			Help: "Number of data manager jobs that finished successfully.",
		}),
		JobsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "ephemeris_jobs_failed_total",
			Help: "Number of data manager jobs that finished in error state.",
		}),
		JobsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "ephemeris_jobs_skipped_total",
			Help: "Number of data manager jobs skipped because their output already exists.",
		}),
	}
}
