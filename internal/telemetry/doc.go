// Package telemetry обеспечивает наблюдаемость инструмента.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики по jobs
//
// Логи пишутся в едином формате; метрики экспортируются на /metrics,
// если при запуске указан адрес listener'а.
package telemetry
