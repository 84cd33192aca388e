// Package provision — ядро оркестрации data manager jobs.
//
// Компоненты:
//   - Orchestrator — проходит по списку steps строго по порядку,
//     разворачивает каждый шаг в per-item jobs и применяет политику
//     обработки ошибок
//   - Checker — проверка идемпотентности по tool data tables
//   - Dispatcher — отправка одного job'а на удалённый инстанс
//   - Poller — ожидание терминального состояния батча jobs
//
// Оркестрация идёт в одном логическом потоке управления: jobs одного
// шага отправляются сразу, но ожидаются батчем, а следующий шаг не
// начинается, пока не завершён предыдущий (поздние шаги могут зависеть
// от данных ранних).
package provision
