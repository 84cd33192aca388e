package provision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// defaultPollInterval — пауза между циклами опроса.
const defaultPollInterval = 30 * time.Second

// DatasetReader — опрос состояния dataset'ов на удалённом инстансе.
type DatasetReader interface {
	DatasetState(ctx context.Context, datasetID string) (domain.DatasetState, error)
}

// Poller ожидает терминального состояния батча jobs.
type Poller struct {
	datasets DatasetReader
	interval time.Duration
	logger   *slog.Logger
}

// NewPoller создаёт Poller с данным интервалом опроса.
// interval <= 0 заменяется значением по умолчанию (30s).
func NewPoller(datasets DatasetReader, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{datasets: datasets, interval: interval, logger: logger}
}

// AwaitAll блокируется, пока каждый handle не достигнет терминального
// состояния, и классифицирует handles на успешные и упавшие.
//
// Каждый цикл опрашивает состояние всех оставшихся handles по одному
// разу; терминальные удаляются из рабочего набора и больше никогда не
// опрашиваются. Пауза между циклами делается только если набор ещё не
// пуст; пустой вход возвращается сразу, без единого запроса.
//
// Handles классифицируются в порядке первого наблюдения терминального
// состояния, не в порядке отправки. Таймаута на handle нет: вечно
// pending job блокирует оркестратор — ограничение по времени задаёт
// вызывающая сторона через ctx.
//
// Ошибка опроса (недоступность инстанса) фатальна: возвращаются
// частично накопленные списки и ошибка.
func (p *Poller) AwaitAll(ctx context.Context, handles []domain.JobHandle) (succeeded, failed []domain.JobHandle, err error) {
	// Результаты всегда не-nil, в том числе для пустого входа.
	succeeded = []domain.JobHandle{}
	failed = []domain.JobHandle{}

	pending := make([]domain.JobHandle, len(handles))
	copy(pending, handles)

	for len(pending) > 0 {
		remaining := make([]domain.JobHandle, 0, len(pending))

		for _, handle := range pending {
			state, err := p.datasets.DatasetState(ctx, handle.DatasetID)
			if err != nil {
				return succeeded, failed, fmt.Errorf("poll dataset %s: %w", handle.DatasetID, err)
			}

			switch state {
			case domain.DatasetStateOK:
				p.logger.Info("job finished", "hid", handle.HID, "state", state)
				succeeded = append(succeeded, handle)
			case domain.DatasetStateError:
				p.logger.Error("job failed", "hid", handle.HID, "state", state)
				failed = append(failed, handle)
			default:
				p.logger.Debug("job still running", "hid", handle.HID, "state", state)
				remaining = append(remaining, handle)
			}
		}

		pending = remaining
		if len(pending) == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return succeeded, failed, ctx.Err()
		case <-time.After(p.interval):
		}
	}

	return succeeded, failed, nil
}
