package galaxy

import (
	"errors"
	"fmt"
)

// Ошибки клиента.
var (
	// ErrTableNotFound — запрошенная tool data table не существует
	// на инстансе. Это ошибка конфигурации, а не "запись отсутствует":
	// проверка идемпотентности не должна её глотать.
	ErrTableNotFound = errors.New("data table does not exist")

	// ErrAuthFailed — инстанс отверг учётные данные.
	ErrAuthFailed = errors.New("authentication failed")
)

// APIError — ошибка, возвращённая API инстанса.
type APIError struct {
	// StatusCode — HTTP-статус ответа.
	StatusCode int

	// Message — текст ошибки из тела ответа (err_msg), если есть.
	Message string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("galaxy api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("galaxy api: unexpected status %d", e.StatusCode)
}
