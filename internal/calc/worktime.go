/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-070
 * CONTEXT:   Pure work-time math - spec section 4.6's workTime/recommendedEndTime queries
 * INPUT:     Plain time.Duration/minute counts and the user's nominal schedule
 * OUTPUT:    WorkTimeCalculationResult, the richer shape adopted per spec.md section 9's
 *            open question on which WorkTimeResult shape to keep
 * BUSINESS:  Lunch-break deduction only applies to 8-hour schedules once the schedule is
 *            reached; overtime is always rounded down to whole hours
 * CHANGE:    Initial implementation.
 * RISK:      Medium - feeds payroll-adjacent totals; an off-by-one here is a pay dispute
 */

package calc

import "time"

// WorkTimeCalculationResult is the full work-time breakdown for a single
// session or worktime entry, per spec section 4.6.
type WorkTimeCalculationResult struct {
	RawMinutes        int
	AdjustedMinutes   int
	ProcessedMinutes  int
	OvertimeMinutes   int
	LunchDeducted     bool
	FinalTotalMinutes int
	DiscardedMinutes  int
}

// LegacyWorkTimeResult is the superseded, shorter shape some older
// callers expect; Legacy projects a WorkTimeCalculationResult onto it.
type LegacyWorkTimeResult struct {
	WorkedMinutes   int
	OvertimeMinutes int
}

// Legacy projects the richer result onto the old two-field shape.
func (r WorkTimeCalculationResult) Legacy() LegacyWorkTimeResult {
	return LegacyWorkTimeResult{
		WorkedMinutes:   r.ProcessedMinutes,
		OvertimeMinutes: r.OvertimeMinutes,
	}
}

// WorkTime computes the full breakdown for rawMinutes worked under the
// given nominal schedule (in hours: 6, 7, or 8), per spec section 4.6.
func WorkTime(minutes, schedule int) WorkTimeCalculationResult {
	scheduleMinutes := schedule * 60

	adjusted := minutes
	lunchDeducted := false
	if schedule == 8 && minutes >= scheduleMinutes {
		adjusted = minutes - 30
		lunchDeducted = true
	}

	processed := adjusted
	if processed > scheduleMinutes {
		processed = scheduleMinutes
	}

	overtime := 0
	if over := adjusted - scheduleMinutes; over > 0 {
		overtime = (over / 60) * 60
	}

	discarded := adjusted - processed - overtime

	return WorkTimeCalculationResult{
		RawMinutes:        minutes,
		AdjustedMinutes:   adjusted,
		ProcessedMinutes:  processed,
		OvertimeMinutes:   overtime,
		LunchDeducted:     lunchDeducted,
		FinalTotalMinutes: processed + overtime,
		DiscardedMinutes:  discarded,
	}
}

// RecommendedEndTime returns the time a session of the given schedule
// and accumulated temp-stop minutes should end, starting from start.
func RecommendedEndTime(start time.Time, schedule int, totalTempStopMinutes int) time.Time {
	end := start.Add(time.Duration(schedule*60+totalTempStopMinutes) * time.Minute)
	if schedule == 8 {
		end = end.Add(30 * time.Minute)
	}
	return end
}
