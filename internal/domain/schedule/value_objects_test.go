//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"rosterd/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func mustWindow(t *testing.T, start, end time.Time) schedule.TimeWindow {
	t.Helper()
	w, err := schedule.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := schedule.NewTimeWindow(day(9, 0), day(17, 0))
		require.NoError(t, err)
		assert.Equal(t, day(9, 0), w.Start())
		assert.Equal(t, day(17, 0), w.End())
		assert.Equal(t, 8*time.Hour, w.Duration())
	})

	t.Run("start equal to end is rejected", func(t *testing.T) {
		_, err := schedule.NewTimeWindow(day(9, 0), day(9, 0))
		require.Error(t, err)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := schedule.NewTimeWindow(day(17, 0), day(9, 0))
		require.Error(t, err)
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	cases := []struct {
		name    string
		a       schedule.TimeWindow
		b       schedule.TimeWindow
		overlap bool
	}{
		{
			name:    "partial overlap",
			a:       mustWindow(t, day(9, 0), day(13, 0)),
			b:       mustWindow(t, day(12, 0), day(14, 0)),
			overlap: true,
		},
		{
			name:    "back to back windows do not overlap",
			a:       mustWindow(t, day(9, 0), day(13, 0)),
			b:       mustWindow(t, day(13, 0), day(15, 0)),
			overlap: false,
		},
		{
			name:    "identical windows",
			a:       mustWindow(t, day(9, 0), day(17, 0)),
			b:       mustWindow(t, day(9, 0), day(17, 0)),
			overlap: true,
		},
		{
			name:    "containment",
			a:       mustWindow(t, day(9, 0), day(17, 0)),
			b:       mustWindow(t, day(11, 0), day(12, 0)),
			overlap: true,
		},
		{
			name:    "disjoint",
			a:       mustWindow(t, day(9, 0), day(11, 0)),
			b:       mustWindow(t, day(14, 0), day(16, 0)),
			overlap: false,
		},
		{
			name:    "one minute of overlap",
			a:       mustWindow(t, day(9, 0), day(13, 1)),
			b:       mustWindow(t, day(13, 0), day(15, 0)),
			overlap: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlap, c.a.Overlaps(c.b))
			// Overlap is symmetric
			assert.Equal(t, c.overlap, c.b.Overlaps(c.a))
		})
	}
}

func TestTimeWindowToTstzrange(t *testing.T) {
	w := mustWindow(t, day(9, 0), day(17, 0))
	assert.Equal(t, "[2026-03-02T09:00:00Z,2026-03-02T17:00:00Z)", w.ToTstzrange())
}
