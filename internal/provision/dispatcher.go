package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// JobSubmitter — отправка jobs на удалённый инстанс.
type JobSubmitter interface {
	SubmitJob(ctx context.Context, toolID string, inputs domain.ResolvedInputs) (*domain.JobSubmission, error)
}

// Dispatcher отправляет одиночные jobs и строит для них handles.
type Dispatcher struct {
	jobs   JobSubmitter
	logger *slog.Logger
}

// NewDispatcher создаёт Dispatcher.
func NewDispatcher(jobs JobSubmitter, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{jobs: jobs, logger: logger}
}

// Dispatch отправляет job и возвращает handle для опроса.
//
// Возвращается, как только инстанс подтвердил создание job'а.
// Ошибка отправки не ретраится — она фатальна для батча текущего шага.
func (d *Dispatcher) Dispatch(ctx context.Context, toolID string, inputs domain.ResolvedInputs) (domain.JobHandle, error) {
	submission, err := d.jobs.SubmitJob(ctx, toolID, inputs)
	if err != nil {
		return domain.JobHandle{}, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	if len(submission.Outputs) == 0 {
		return domain.JobHandle{}, fmt.Errorf("%w: tool %s", ErrNoOutputs, toolID)
	}

	// Первый output отслеживает состояние всего job'а.
	output := submission.Outputs[0]
	handle := domain.JobHandle{
		HID:       output.HID,
		DatasetID: output.ID,
	}
	if len(submission.Jobs) > 0 {
		handle.JobID = submission.Jobs[0].ID
	}

	d.logger.Info("dispatched job",
		"hid", handle.HID,
		"data_manager", toolID,
		"inputs", inputs,
	)

	return handle, nil
}
