package helpers

import (
	"context"
	"strconv"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// WorkingDaysSince количество полных рабочих дней (пн-пт) между from и now.
// Производственный календарь с праздниками не учитывается.
func WorkingDaysSince(from, now time.Time) int {
	if !from.Before(now) {
		return 0
	}
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := 0
	for day.Before(last) {
		day = day.AddDate(0, 0, 1)
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		default:
			days++
		}
	}
	return days
}

func Itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func DateOnly(t time.Time) string {
	return t.Format("02.01.2006")
}

func PtrTime(t time.Time) *time.Time {
	return &t
}

func PtrString(s string) *string {
	return &s
}
