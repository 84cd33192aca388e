package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run — один запуск провижининга (полный проход по списку steps).
//
// Run не персистится: идентификатор используется для корреляции
// логов и метрик в рамках процесса. Всё состояние идемпотентности
// живёт на удалённом инстансе.
type Run struct {
	// ID — уникальный идентификатор запуска.
	ID uuid.UUID

	// StartedAt — время начала запуска.
	StartedAt time.Time

	// FinishedAt — время завершения (успешного или с ошибкой).
	// Nil, если запуск ещё идёт.
	FinishedAt *time.Time

	// Summary — накопленная сводка по jobs.
	Summary RunSummary
}

// NewRun создаёт новый Run с текущим временем старта.
func NewRun() *Run {
	return &Run{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
}

// Finish фиксирует время завершения и итоговую сводку.
func (r *Run) Finish(summary RunSummary) {
	now := time.Now()
	r.FinishedAt = &now
	r.Summary = summary
}

// Duration возвращает продолжительность запуска.
// Возвращает 0, если запуск ещё не завершён.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
