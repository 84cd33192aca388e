package domain

// Step — декларация одного data manager'а из конфигурации.
//
// Step — это "рецепт" провижининга: какой data manager запустить,
// с какими параметрами и для каких items (например, геномных сборок).
// Steps выполняются строго в порядке объявления, так как поздние
// data managers могут зависеть от данных, созданных ранними
// (сначала fetch FASTA, потом построение индекса).
//
// Неизменяем после загрузки конфигурации.
type Step struct {
	// ID — идентификатор data manager'а на удалённом инстансе
	// (например, "data_manager_fetch_genome_dbkeys_all_fasta").
	ID string `yaml:"id"`

	// Params — упорядоченный список параметров job'а.
	// Каждый элемент — map с ровно одной парой имя → шаблон значения.
	// Формат списка one-entry maps сохраняет порядок объявления в YAML.
	// Значения могут содержать плейсхолдер {{ item }}.
	Params []map[string]string `yaml:"params"`

	// Items — список единиц итерации внутри шага.
	// Может быть строкой-шаблоном (например, "{{ genomes }}"),
	// списком строк или отсутствовать (тогда шаг выполняется один раз).
	Items any `yaml:"items"`

	// DataTables — имена tool data tables, по содержимому которых
	// определяется идемпотентность (job уже выполнялся или нет).
	DataTables []string `yaml:"data_table_reload"`
}

// ReferenceKeys — глобальная структура reference-ключей из конфигурации
// (поле genomes): список объектов с идентификаторами организмов/сборок.
//
// Доступна при рендеринге поля Items как единое сериализованное значение
// под ключом "genomes".
type ReferenceKeys []map[string]any

// Empty возвращает true, если reference-ключи не заданы.
// В этом случае поле Items используется как есть, без рендеринга.
func (r ReferenceKeys) Empty() bool {
	return len(r) == 0
}

// ResolvedInputs — полностью отрендеренные параметры одного job'а.
// Создаются заново для каждой пары (step, item) и живут только
// до отправки job'а.
type ResolvedInputs map[string]string
