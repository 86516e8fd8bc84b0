package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeekStartParsesMonday(t *testing.T) {
	weekStart, err := resolveWeekStart([]string{"2026-09-07"})
	require.NoError(t, err)
	assert.Equal(t, time.Monday, weekStart.Weekday())
}

func TestResolveWeekStartRejectsNonMonday(t *testing.T) {
	_, err := resolveWeekStart([]string{"2026-09-08"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a Monday")
}

func TestResolveWeekStartRejectsBadFormat(t *testing.T) {
	_, err := resolveWeekStart([]string{"next week"})
	require.Error(t, err)
}

func TestNextMonday(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"from a wednesday", "2026-09-02", "2026-09-07"},
		{"from a sunday", "2026-09-06", "2026-09-07"},
		{"from a monday skips to next week", "2026-09-07", "2026-09-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := time.Parse("2006-01-02", tt.from)
			require.NoError(t, err)

			got := nextMonday(from)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}
