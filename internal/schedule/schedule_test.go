package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_Defaults(t *testing.T) {
	got := Slots(Config{}.Normalize())

	require.Len(t, got, 11)
	assert.Equal(t, "13:00", got[0])
	assert.Equal(t, "15:30", got[len(got)-1])
}

func TestSlots_EndBoundaryInclusive(t *testing.T) {
	got := Slots(Config{StartTime: "13:00", EndTime: "13:30", IntervalMinutes: 15})

	assert.Equal(t, []string{"13:00", "13:15", "13:30"}, got)
}

func TestSlots_NeverExceedsEnd(t *testing.T) {
	// 13:45 would overshoot the 13:40 end and must not be emitted.
	got := Slots(Config{StartTime: "13:00", EndTime: "13:40", IntervalMinutes: 15})

	assert.Equal(t, []string{"13:00", "13:15", "13:30"}, got)
}

func TestSlots_StartAfterEndYieldsNothing(t *testing.T) {
	got := Slots(Config{StartTime: "16:00", EndTime: "14:00", IntervalMinutes: 15})

	assert.Empty(t, got)
}

func TestSlots_UnparseableTimesYieldNothing(t *testing.T) {
	assert.Empty(t, Slots(Config{StartTime: "13h00", EndTime: "15:30", IntervalMinutes: 15}))
	assert.Empty(t, Slots(Config{StartTime: "13:00", EndTime: "late", IntervalMinutes: 15}))
}

func TestSlots_StrictlyIncreasingAndInBounds(t *testing.T) {
	cfg := Config{StartTime: "11:30", EndTime: "22:00", IntervalMinutes: 45}
	got := Slots(cfg)

	require.NotEmpty(t, got)
	start, _ := ParseTimeOfDay(cfg.StartTime)
	end, _ := ParseTimeOfDay(cfg.EndTime)
	prev := start - 1
	for _, s := range got {
		m, err := ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.Greater(t, m, prev)
		assert.GreaterOrEqual(t, m, start)
		assert.LessOrEqual(t, m, end)
		prev = m
	}
}

func TestHasSlot(t *testing.T) {
	cfg := Config{}.Normalize()

	assert.True(t, HasSlot(cfg, "13:00"))
	assert.True(t, HasSlot(cfg, "15:30"))
	assert.False(t, HasSlot(cfg, "12:45"))
	assert.False(t, HasSlot(cfg, "13:07"))
	assert.False(t, HasSlot(cfg, "nope"))
}

func TestFormatTimeOfDay_ZeroPads(t *testing.T) {
	assert.Equal(t, "09:05", FormatTimeOfDay(9*60+5))
	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "23:59", FormatTimeOfDay(23*60+59))
}

func TestNormalize_FillsOnlyMissingFields(t *testing.T) {
	got := Config{StartTime: "18:00"}.Normalize()

	assert.Equal(t, "18:00", got.StartTime)
	assert.Equal(t, DefaultEndTime, got.EndTime)
	assert.Equal(t, DefaultIntervalMinutes, got.IntervalMinutes)
	assert.Equal(t, DefaultErrorMessage, got.ErrorMessage)
}
