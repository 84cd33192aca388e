package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser — парсер cron-выражений (стандартные 5 полей).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// NextDue вычисляет следующее время запуска.
// Для интервального режима просто добавляет interval к from.
func NextDue(cronExpr string, interval time.Duration, from time.Time) (time.Time, error) {
	if cronExpr != "" {
		return nextCron(cronExpr, from)
	}

	if interval > 0 {
		return from.Add(interval), nil
	}

	// Ни cron, ни interval — расписание некорректное
	return time.Time{}, fmt.Errorf("schedule has neither cron expression nor interval")
}

// nextCron вычисляет следующее время по cron-выражению.
func nextCron(cronExpr string, from time.Time) (time.Time, error) {
	spec, err := cronParser.Parse(cronExpr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cron expression %q: %w", cronExpr, err)
	}

	return spec.Next(from), nil
}

// ValidateCronExpr проверяет валидность cron-выражения.
func ValidateCronExpr(cronExpr string) error {
	_, err := cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return nil
}
