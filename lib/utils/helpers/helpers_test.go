package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`WorkingDaysSince same day check`, func(t *testing.T) {
		// понедельник
		from := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC)
		require.Equal(t, 0, WorkingDaysSince(from, now))
	})

	t.Run(`WorkingDaysSince full week check`, func(t *testing.T) {
		// с понедельника до следующего понедельника: выходные не считаются
		from := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)
		require.Equal(t, 5, WorkingDaysSince(from, now))
	})

	t.Run(`WorkingDaysSince over weekend check`, func(t *testing.T) {
		// с пятницы до понедельника один рабочий день
		from := time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)
		require.Equal(t, 1, WorkingDaysSince(from, now))
	})

	t.Run(`WorkingDaysSince from in future check`, func(t *testing.T) {
		from := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
		require.Equal(t, 0, WorkingDaysSince(from, now))
	})

	t.Run(`DateOnly format check`, func(t *testing.T) {
		require.Equal(t, "05.09.2025", DateOnly(time.Date(2025, 9, 5, 23, 59, 0, 0, time.UTC)))
	})

	t.Run(`Itoa64 check`, func(t *testing.T) {
		require.Equal(t, "72", Itoa64(72))
	})
}
