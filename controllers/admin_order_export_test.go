package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("day", func(t *testing.T) {
		start, end, ok := reportWindow("day", now)
		require.True(t, ok)
		assert.Equal(t, 15, start.Day())
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 15, end.Day())
		assert.Equal(t, 23, end.Hour())
	})

	t.Run("week covers seven days", func(t *testing.T) {
		start, end, ok := reportWindow("week", now)
		require.True(t, ok)
		assert.Equal(t, 9, start.Day())
		assert.True(t, end.After(start))
	})

	t.Run("month covers thirty days", func(t *testing.T) {
		start, _, ok := reportWindow("month", now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("unknown period rejected", func(t *testing.T) {
		_, _, ok := reportWindow("year", now)
		assert.False(t, ok)
	})
}
