// Package domain содержит основные типы данных системы.
//
// Типы используются всеми компонентами:
//   - Step — декларация одного data manager'а из конфигурации
//   - JobHandle — ссылка на запущенный асинхронный job
//   - LookupTable — данные tool data table с удалённого инстанса
//   - RunSummary — итоговая сводка по запуску
//
// Package domain не зависит от других internal пакетов.
package domain
