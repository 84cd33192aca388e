package domain

// RunSummary — накопленная сводка по jobs за один запуск.
//
// Счётчики монотонно неубывающие в рамках запуска и в сумме равны
// количеству рассмотренных jobs: Finished + Failed + Skipped == total.
// Finished считает только успешно завершённые jobs, упавшие учитываются
// отдельно в Failed.
//
// Единственный наблюдаемый результат запуска помимо side effects
// на удалённом инстансе.
type RunSummary struct {
	// Finished — количество успешно завершённых jobs.
	Finished int `json:"finished_jobs"`

	// Failed — количество jobs, завершившихся с ошибкой.
	Failed int `json:"failed_jobs"`

	// Skipped — количество jobs, пропущенных проверкой идемпотентности.
	Skipped int `json:"skipped_jobs"`
}

// Add прибавляет счётчики другой сводки (результат одного шага).
func (s *RunSummary) Add(other RunSummary) {
	s.Finished += other.Finished
	s.Failed += other.Failed
	s.Skipped += other.Skipped
}

// Total возвращает общее количество рассмотренных jobs.
func (s RunSummary) Total() int {
	return s.Finished + s.Failed + s.Skipped
}
