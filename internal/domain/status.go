package domain

// DatasetState — состояние output dataset'а на удалённом инстансе.
//
// Жизненный цикл с точки зрения poller'а:
//
//	PENDING → {OK, ERROR}
//
// Терминальные состояния absorbing: после их наблюдения handle
// больше не опрашивается. Любое другое состояние, которое может
// вернуть инстанс ("queued", "running", "upload", ...), трактуется
// как pending — отсутствие явного ok/error оставляет job в ожидании,
// а не считается ошибкой.
type DatasetState string

const (
	// DatasetStateOK — job завершился успешно.
	DatasetStateOK DatasetState = "ok"

	// DatasetStateError — job завершился с ошибкой.
	DatasetStateError DatasetState = "error"
)

// IsTerminal возвращает true, если состояние финальное.
func (s DatasetState) IsTerminal() bool {
	switch s {
	case DatasetStateOK, DatasetStateError:
		return true
	default:
		return false
	}
}

// Decision — результат проверки идемпотентности для одного job'а.
//
// Трёхзначное решение вместо bool: случай "нет идентифицирующих
// параметров, всегда запускаем" — явный и тестируемый, а не побочный
// эффект falsy-проверок.
type Decision int

const (
	// DecisionNotSatisfied — результат job'а отсутствует хотя бы
	// в одной из таблиц: job нужно запустить.
	DecisionNotSatisfied Decision = iota

	// DecisionSatisfied — результат job'а присутствует во всех
	// таблицах: job пропускается.
	DecisionSatisfied

	// DecisionNoIdentifyingInput — среди параметров job'а нет ни одного
	// идентифицирующего (name/sequence_name/value/sequence_id/dbkey):
	// job запускается при каждом вызове.
	DecisionNoIdentifyingInput
)

// String возвращает строковое представление Decision.
func (d Decision) String() string {
	switch d {
	case DecisionSatisfied:
		return "satisfied"
	case DecisionNotSatisfied:
		return "not-satisfied"
	case DecisionNoIdentifyingInput:
		return "no-identifying-input"
	default:
		return "unknown"
	}
}
