package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNextDue_Cron(t *testing.T) {
	from := time.Date(2026, 3, 1, 1, 30, 0, 0, time.UTC)

	// Каждый день в 02:00
	next, err := NextDue("0 2 * * *", 0, from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC)
	if !next.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, next)
	}
}

func TestNextDue_CronRollsOver(t *testing.T) {
	from := time.Date(2026, 3, 1, 2, 30, 0, 0, time.UTC)

	next, err := NextDue("0 2 * * *", 0, from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Время сегодня уже прошло — следующий запуск завтра.
	expected := time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC)
	if !next.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, next)
	}
}

func TestNextDue_Interval(t *testing.T) {
	from := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	next, err := NextDue("", 15*time.Minute, from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !next.Equal(from.Add(15 * time.Minute)) {
		t.Errorf("unexpected next: %v", next)
	}
}

func TestNextDue_CronTakesPrecedence(t *testing.T) {
	from := time.Date(2026, 3, 1, 1, 59, 0, 0, time.UTC)

	next, err := NextDue("0 2 * * *", time.Hour, from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC)
	if !next.Equal(expected) {
		t.Errorf("expected cron to win over interval, got %v", next)
	}
}

func TestNextDue_InvalidCron(t *testing.T) {
	if _, err := NextDue("not a cron", 0, time.Now()); err == nil {
		t.Error("expected error for invalid expression")
	}
}

func TestNextDue_Empty(t *testing.T) {
	if _, err := NextDue("", 0, time.Now()); err == nil {
		t.Error("expected error for empty schedule")
	}
}

func TestValidateCronExpr(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{"0 2 * * *", false},
		{"*/5 * * * *", false},
		{"0 0 1 1 *", false},
		{"61 * * * *", true},
		{"* * *", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateCronExpr(tt.expr)
		if tt.wantErr && err == nil {
			t.Errorf("%q: expected error", tt.expr)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%q: unexpected error: %v", tt.expr, err)
		}
	}
}

func TestScheduler_Run_FirstRunImmediate(t *testing.T) {
	sched := New(Config{Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())

	var runs int
	err := sched.Run(ctx, func(context.Context) error {
		runs++
		cancel()
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if runs != 1 {
		t.Errorf("expected first run without waiting, got %d runs", runs)
	}
}

func TestScheduler_Run_ErrorDoesNotStop(t *testing.T) {
	sched := New(Config{Interval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())

	var runs int
	err := sched.Run(ctx, func(context.Context) error {
		runs++
		if runs >= 3 {
			cancel()
		}
		return errors.New("run failed")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if runs != 3 {
		t.Errorf("expected 3 runs despite errors, got %d", runs)
	}
}
