package domain

// JobSubmission — ответ удалённого инстанса на отправку job'а.
//
// Инстанс подтверждает создание job'а сразу, сам job выполняется
// асинхронно. Для отслеживания используются datasets из Outputs.
type JobSubmission struct {
	// Outputs — datasets, созданные job'ом.
	// Первый output используется для опроса состояния.
	Outputs []JobOutput `json:"outputs"`

	// Jobs — идентификаторы созданных jobs.
	Jobs []JobRef `json:"jobs"`
}

// JobOutput — один output dataset запущенного job'а.
type JobOutput struct {
	// ID — идентификатор dataset'а, по которому опрашивается состояние.
	ID string `json:"id"`

	// HID — номер элемента в history (человекочитаемый, для логов).
	HID int `json:"hid"`

	// Name — имя dataset'а.
	Name string `json:"name,omitempty"`
}

// JobRef — ссылка на job на удалённом инстансе.
type JobRef struct {
	// ID — идентификатор job'а.
	ID string `json:"id"`
}

// JobHandle — ссылка на запущенный асинхронный job.
//
// Создаётся при отправке job'а и потребляется poller'ом ровно один раз:
// после наблюдения терминального состояния handle больше не опрашивается.
type JobHandle struct {
	// JobID — идентификатор job'а (если инстанс его вернул).
	JobID string

	// HID — номер output dataset'а в history, используется в логах.
	HID int

	// DatasetID — идентификатор dataset'а для опроса состояния.
	DatasetID string
}
