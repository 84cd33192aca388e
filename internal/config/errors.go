package config

import "errors"

// Ошибки валидации конфигурации.
var (
	// ErrNoDataManagers — конфигурация не содержит ни одного data manager'а.
	ErrNoDataManagers = errors.New("config has no data managers")

	// ErrEmptyManagerID — у data manager'а не задан id.
	ErrEmptyManagerID = errors.New("data manager has empty id")

	// ErrEmptyParamName — параметр с пустым именем.
	ErrEmptyParamName = errors.New("param has empty name")

	// ErrDuplicateParam — один параметр объявлен несколько раз.
	ErrDuplicateParam = errors.New("duplicate param name")

	// ErrMultiKeyParam — элемент params содержит больше одной пары.
	// Формат one-entry maps обязателен: он сохраняет порядок параметров.
	ErrMultiKeyParam = errors.New("param entry must have exactly one key")

	// ErrEmptyTableName — пустое имя таблицы в data_table_reload.
	ErrEmptyTableName = errors.New("empty data table name")
)

// ValidationError — ошибка валидации с контекстом.
type ValidationError struct {
	ManagerID string // id data manager'а, где произошла ошибка
	Field     string // поле, вызвавшее ошибку
	Message   string // описание ошибки
	Err       error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.ManagerID != "" {
		return "data manager " + e.ManagerID + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(managerID, field, message string, err error) *ValidationError {
	return &ValidationError{
		ManagerID: managerID,
		Field:     field,
		Message:   message,
		Err:       err,
	}
}
