// Package schedule реализует режим наблюдения (watch mode).
//
// Scheduler периодически запускает полный проход по списку data
// managers — по cron-выражению или с фиксированным интервалом.
// Каждый запуск с чистыми таблицами отправляет jobs; запуск, в котором
// всё уже наполнено, проходит без единой отправки.
//
// Структура:
//   - schedule.go — цикл Scheduler (Run)
//   - cron.go     — парсинг cron-выражений и вычисление следующего времени
//
// Использование:
//
//	sched := schedule.New(schedule.Config{
//	    CronExpr: "0 2 * * *",
//	    Logger:   logger,
//	})
//
//	err := sched.Run(ctx, func(ctx context.Context) error {
//	    _, err := orch.Run(ctx, cfg)
//	    return err
//	})
package schedule
