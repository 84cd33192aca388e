package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// Колонки data table, по которым определяется идемпотентность.
const (
	nameColumn  = "name"
	valueColumn = "value"
)

// Ключи-кандидаты в строгом порядке приоритета: первый присутствующий
// в inputs выигрывает. Явные таблицы вместо вложенных условий, чтобы
// приоритет был тестируем сам по себе.
var (
	nameCandidateKeys  = []string{"name", "sequence_name"}
	valueCandidateKeys = []string{"value", "sequence_id", "dbkey"}
)

// TableReader — доступ к tool data tables удалённого инстанса.
type TableReader interface {
	DataTable(ctx context.Context, name string) (*domain.LookupTable, error)
}

// Checker определяет, существует ли уже ожидаемый результат job'а.
//
// Содержимое таблиц никогда не кэшируется: каждая проверка — живой
// запрос к инстансу, поэтому записи раннего шага сразу видны проверкам
// поздних шагов.
type Checker struct {
	tables TableReader
	logger *slog.Logger
}

// NewChecker создаёт Checker.
func NewChecker(tables TableReader, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{tables: tables, logger: logger}
}

// Evaluate проверяет, присутствуют ли name- и value-кандидаты из inputs
// во всех перечисленных таблицах.
//
// Возвращает:
//   - DecisionNoIdentifyingInput, если среди inputs нет ни одного
//     ключа-кандидата — таблицы не запрашиваются вовсе
//   - DecisionNotSatisfied, как только какая-то таблица не содержит
//     кандидата (short-circuit)
//   - DecisionSatisfied, если все таблицы прошли обе проверки
//
// Несуществующая таблица и отсутствующая колонка — ошибки конфигурации,
// они поднимаются наверх, а не превращаются в "не выполнено".
func (c *Checker) Evaluate(ctx context.Context, tables []string, inputs domain.ResolvedInputs) (domain.Decision, error) {
	nameEntry, hasName := candidateValue(inputs, nameCandidateKeys)
	valueEntry, hasValue := candidateValue(inputs, valueCandidateKeys)

	if !hasName && !hasValue {
		c.logger.Debug("no identifying inputs, job will always run")
		return domain.DecisionNoIdentifyingInput, nil
	}

	for _, tableName := range tables {
		table, err := c.tables.DataTable(ctx, tableName)
		if err != nil {
			return domain.DecisionNotSatisfied, fmt.Errorf("check table %s: %w", tableName, err)
		}

		if hasValue {
			found, columnExists := table.HasEntry(valueColumn, valueEntry)
			if !columnExists {
				return domain.DecisionNotSatisfied,
					fmt.Errorf("%w: %q in %s", ErrColumnMissing, valueColumn, tableName)
			}
			if !found {
				return domain.DecisionNotSatisfied, nil
			}
		}

		if hasName {
			found, columnExists := table.HasEntry(nameColumn, nameEntry)
			if !columnExists {
				return domain.DecisionNotSatisfied,
					fmt.Errorf("%w: %q in %s", ErrColumnMissing, nameColumn, tableName)
			}
			if !found {
				return domain.DecisionNotSatisfied, nil
			}
		}
	}

	return domain.DecisionSatisfied, nil
}

// candidateValue возвращает значение первого присутствующего в inputs
// ключа из keys. Второе значение false, если не нашёлся ни один.
func candidateValue(inputs domain.ResolvedInputs, keys []string) (string, bool) {
	for _, key := range keys {
		if value, ok := inputs[key]; ok {
			return value, true
		}
	}
	return "", false
}
