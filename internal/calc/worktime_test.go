package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkTimeEightHourLunchDeduction(t *testing.T) {
	got := WorkTime(8*60, 8)
	assert.True(t, got.LunchDeducted)
	assert.Equal(t, 8*60-30, got.AdjustedMinutes)
	assert.Equal(t, 8*60-30, got.ProcessedMinutes) // under schedule after deduction
	assert.Equal(t, 0, got.OvertimeMinutes)
}

func TestWorkTimeEightHourBelowScheduleNoLunch(t *testing.T) {
	got := WorkTime(7*60, 8)
	assert.False(t, got.LunchDeducted)
	assert.Equal(t, 7*60, got.AdjustedMinutes)
}

func TestWorkTimeSixAndSevenHourNeverDeductLunch(t *testing.T) {
	for _, schedule := range []int{6, 7} {
		got := WorkTime(10*60, schedule)
		assert.False(t, got.LunchDeducted)
	}
}

func TestWorkTimeOvertimeRoundedDownToWholeHours(t *testing.T) {
	// 8h schedule, worked 9h50m raw -> lunch deducted (30m) -> adjusted 9h20m
	// -> over schedule by 1h20m -> overtime floors to 1h (60m).
	got := WorkTime(9*60+50, 8)
	assert.Equal(t, 60, got.OvertimeMinutes)
	assert.Equal(t, 8*60, got.ProcessedMinutes)
	assert.Equal(t, 9*60+50-30-8*60-60, got.DiscardedMinutes)
}

func TestWorkTimeExactScheduleNoOvertimeNoDiscard(t *testing.T) {
	got := WorkTime(8*60+30, 8) // lunch deducted brings it to exactly schedule
	assert.Equal(t, 0, got.OvertimeMinutes)
	assert.Equal(t, 0, got.DiscardedMinutes)
}

func TestLegacyProjection(t *testing.T) {
	r := WorkTime(9*60, 8)
	legacy := r.Legacy()
	assert.Equal(t, r.ProcessedMinutes, legacy.WorkedMinutes)
	assert.Equal(t, r.OvertimeMinutes, legacy.OvertimeMinutes)
}

func TestRecommendedEndTimeEightHourAddsLunch(t *testing.T) {
	start := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	end := RecommendedEndTime(start, 8, 0)
	assert.Equal(t, start.Add(8*time.Hour+30*time.Minute), end)
}

func TestRecommendedEndTimeSixHourNoLunch(t *testing.T) {
	start := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	end := RecommendedEndTime(start, 6, 15)
	assert.Equal(t, start.Add(6*time.Hour+15*time.Minute), end)
}
