/**
 * CONTEXT:   Session-mutating commands from spec section 4.6 - each returns a new
 *            domain.Session value rather than mutating in place, matching the state
 *            machine's own "next session, or error" style in sessionfsm
 * INPUT:     The current domain.Session plus the time/duration the caller observed
 * OUTPUT:    The next domain.Session value
 * BUSINESS:  Commands run inside the caller's transactional boundary; this package
 *            performs no I/O itself
 * CHANGE:    Initial implementation.
 * RISK:      Medium - getting a transition wrong corrupts a user's daily totals
 */

package calc

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
)

// ProcessTemporaryStop opens a new temporary stop at stopTime, recomputes
// the running raw total, and moves the session into WORK_TEMPORARY_STOP.
func ProcessTemporaryStop(s domain.Session, stopTime time.Time) domain.Session {
	next := s
	next.TotalWorkedMinutes = RawWorkMinutes(s, stopTime)
	next.TemporaryStops = append(append([]domain.TemporaryStop{}, s.TemporaryStops...), domain.TemporaryStop{StartTime: stopTime})
	next.TemporaryStopCount++
	next.LastTemporaryStopTime = &stopTime
	next.SessionStatus = domain.WorkTemporaryStop
	return next
}

// AddBreakAsTempStop appends an already-closed temporary stop spanning
// [start, end) and recomputes the accumulated temp-stop total. It fails
// if end precedes start.
func AddBreakAsTempStop(s domain.Session, start, end time.Time) (domain.Session, error) {
	if end.Before(start) {
		return s, domain.WrapValidation("temporary stop end precedes start")
	}
	next := s
	endCopy := end
	next.TemporaryStops = append(append([]domain.TemporaryStop{}, s.TemporaryStops...), domain.TemporaryStop{StartTime: start, EndTime: &endCopy})
	next.TemporaryStopCount++
	next.TotalTemporaryStopMinutes = TotalTempStopMinutes(next, end)
	return next, nil
}

// ProcessResumeFromTempStop closes the session's last open temporary
// stop at resumeTime, recomputes the accumulated temp-stop total, and
// moves the session back to WORK_ONLINE with a fresh current-start-time.
func ProcessResumeFromTempStop(s domain.Session, resumeTime time.Time) domain.Session {
	next := s
	next.TemporaryStops = append([]domain.TemporaryStop{}, s.TemporaryStops...)
	if n := len(next.TemporaryStops); n > 0 && next.TemporaryStops[n-1].EndTime == nil {
		t := resumeTime
		next.TemporaryStops[n-1].EndTime = &t
	}
	next.TotalTemporaryStopMinutes = TotalTempStopMinutes(next, resumeTime)
	next.SessionStatus = domain.WorkOnline
	next.CurrentStartTime = resumeTime
	next.FinalWorkedMinutes = s.TotalWorkedMinutes
	return next
}

// UpdateOnlineSessionCalculations recomputes totals for a session
// currently in WORK_ONLINE as of now.
func UpdateOnlineSessionCalculations(s domain.Session, now time.Time, schedule int) domain.Session {
	raw := RawWorkMinutes(s, now)
	wt := WorkTime(raw, schedule)

	next := s
	next.TotalWorkedMinutes = raw
	next.FinalWorkedMinutes = wt.ProcessedMinutes
	next.TotalOvertimeMinutes = wt.OvertimeMinutes
	next.LunchBreakDeducted = wt.LunchDeducted
	next.WorkdayCompleted = raw >= schedule*60
	return next
}

// UpdateTempStopCalculations refreshes only the accumulated temp-stop
// total and the open stop's running duration, without touching worked
// minutes.
func UpdateTempStopCalculations(s domain.Session, now time.Time) domain.Session {
	next := s
	next.TotalTemporaryStopMinutes = TotalTempStopMinutes(s, now)
	return next
}

// CalculateEndDayValues closes out a session: status WORK_OFFLINE,
// dayEndTime set, workdayCompleted forced true. finalMinutes, if
// non-nil, overrides the session's own finalWorkedMinutes.
func CalculateEndDayValues(s domain.Session, endTime time.Time, finalMinutes *int) domain.Session {
	next := s
	next.SessionStatus = domain.WorkOffline
	next.DayEndTime = &endTime
	if finalMinutes != nil {
		next.FinalWorkedMinutes = *finalMinutes
	}
	next.WorkdayCompleted = true
	return next
}

// DayType is the calendar classification a worktime entry falls under
// for the special-day overtime rule.
type DayType int

const (
	DayRegular DayType = iota
	DayNationalHoliday
	DayTimeOff
	DayMedicalLeave
	DaySpecialEvent
	DayWeekend
)

func (d DayType) isSpecial() bool {
	return d != DayRegular
}

// ApplySpecialDayOvertime implements spec section 4.6's special-day
// overtime rule: on a regular day the entry's worked minutes are simply
// the session total; on a special day all session minutes collapse into
// whole-hour overtime and worked minutes become zero.
func ApplySpecialDayOvertime(entry domain.WorktimeEntry, sessionMinutes int, dayType DayType, timeOffType string) domain.WorktimeEntry {
	next := entry
	if !dayType.isSpecial() {
		next.TotalWorkedMinutes = sessionMinutes
		return next
	}
	next.TotalWorkedMinutes = 0
	next.TotalOvertimeMinutes = (sessionMinutes / 60) * 60
	if timeOffType != "" {
		next.TimeOffType = timeOffType
	}
	return next
}
