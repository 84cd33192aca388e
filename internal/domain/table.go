package domain

// LookupTable — tool data table с удалённого инстанса.
//
// Таблица read-only с точки зрения этого инструмента: используется
// только для проверки, существует ли уже результат job'а.
// Содержимое никогда не кэшируется между шагами — каждая проверка
// идемпотентности запрашивает живое состояние, поэтому записи,
// сделанные ранним шагом, сразу видны проверкам поздних шагов.
type LookupTable struct {
	// Name — имя таблицы (например, "all_fasta").
	Name string `json:"name"`

	// Columns — упорядоченный список имён колонок.
	Columns []string `json:"columns"`

	// Fields — строки таблицы; значения ячеек выровнены по Columns.
	Fields [][]string `json:"fields"`
}

// ColumnIndex возвращает индекс колонки по имени.
// Второе значение false, если колонки нет.
func (t *LookupTable) ColumnIndex(column string) (int, bool) {
	for i, c := range t.Columns {
		if c == column {
			return i, true
		}
	}
	return 0, false
}

// HasEntry проверяет, содержит ли колонка column значение entry
// хотя бы в одной строке таблицы.
// Второе значение false, если колонки не существует — это признак
// некорректной конфигурации, а не отсутствия записи.
func (t *LookupTable) HasEntry(column, entry string) (found, columnExists bool) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return false, false
	}
	for _, row := range t.Fields {
		if idx < len(row) && row[idx] == entry {
			return true, true
		}
	}
	return false, true
}
