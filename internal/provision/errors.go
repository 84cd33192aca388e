package provision

import "errors"

// Ошибки оркестрации.
var (
	// ErrPolicyAbort — в батче есть упавшие jobs и режим
	// ignore-failures выключен: запуск прерывается целиком.
	ErrPolicyAbort = errors.New("not all jobs successful")

	// ErrSubmission — инстанс отверг отправку job'а.
	// Фатально для батча текущего шага, повторных попыток нет.
	ErrSubmission = errors.New("job submission rejected")

	// ErrNoOutputs — инстанс подтвердил job, но не вернул ни одного
	// output dataset'а: отслеживать такой job нечем.
	ErrNoOutputs = errors.New("job submission has no outputs")

	// ErrColumnMissing — в data table нет ожидаемой колонки name/value.
	// Это ошибка конфигурации, отличная от "записи нет": она
	// поднимается наверх, а не трактуется как повод запустить job.
	ErrColumnMissing = errors.New("expected column missing in data table")
)
