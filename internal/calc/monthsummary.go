/**
 * CONTEXT:   Monthly aggregation over a user's worktime entries - spec section 4.6's
 *            "Month summary"
 * INPUT:     The list of displayable worktime entries for (user, year, month)
 * OUTPUT:    MonthSummary - day counts and minute totals feeding payroll reporting
 * BUSINESS:  ZS-n ("short by n hours") and CR ("recovery day") entries both add a full
 *            schedule's worth of regular minutes and then have their deduction
 *            subtracted from overtime, not from regular - getting the order of those two
 *            adjustments backwards silently overstates overtime
 * CHANGE:    Initial implementation.
 * RISK:      High - the only aggregation payroll-adjacent reporting reads
 */

package calc

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
)

// MonthSummary is the aggregated view of a user's month, per spec
// section 4.6.
type MonthSummary struct {
	SNDays  int
	CODays  int
	CMDays  int

	DaysWorked int

	RegularMinutes  int
	OvertimeMinutes int

	TotalWorkDays     int
	RemainingWorkDays int
}

// MonthSummaryFromEntries computes the summary directly from persisted
// domain.WorktimeEntry rows. USER_IN_PROCESS entries are excluded
// entirely: an in-progress entry has not yet settled its timeOffType or
// minute totals and must not be counted against the month.
func MonthSummaryFromEntries(entries []domain.WorktimeEntry, schedule int, year int, month time.Month) MonthSummary {
	var sum MonthSummary
	var crCount int
	var zsDeductionHours int

	for _, e := range entries {
		if e.AdminSync == "USER_IN_PROCESS" {
			continue
		}
		parsed := domain.ParseTimeOffType(e.TimeOffType)

		switch parsed.Kind {
		case domain.TimeOffNationalHoliday:
			sum.SNDays++
		case domain.TimeOffVacation:
			sum.CODays++
		case domain.TimeOffMedicalLeave:
			sum.CMDays++
		}

		isZS := parsed.Kind == domain.TimeOffShortfall
		isCR := parsed.Kind == domain.TimeOffRecovery
		isD := parsed.Kind == domain.TimeOffWorkedSpecialDay
		noTimeOff := e.TimeOffType == ""

		if (noTimeOff && e.TotalWorkedMinutes > 0) || isZS || isCR || isD {
			sum.DaysWorked++
		}

		if isCR {
			crCount++
		}
		if isZS {
			zsDeductionHours += parsed.ShortfallHrs
		}

		if noTimeOff {
			sum.RegularMinutes += e.TotalWorkedMinutes
			sum.OvertimeMinutes += e.TotalOvertimeMinutes
		} else if isZS {
			sum.RegularMinutes += schedule * 60
		} else if parsed.HasSuffix {
			// Special-day-with-work entries (SN:h etc) contribute only
			// their already-computed overtime.
			sum.OvertimeMinutes += e.TotalOvertimeMinutes
		}
	}

	crDeductionMinutes := crCount * schedule * 60
	zsDeductionMinutes := zsDeductionHours * 60
	sum.RegularMinutes += crDeductionMinutes
	sum.OvertimeMinutes -= crDeductionMinutes + zsDeductionMinutes

	sum.TotalWorkDays = countWeekdays(year, month)
	sum.RemainingWorkDays = sum.TotalWorkDays - (sum.DaysWorked + sum.SNDays + sum.CODays + sum.CMDays)

	return sum
}

// countWeekdays returns the number of Monday-through-Friday calendar
// days in the given month.
func countWeekdays(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// DisplayEntry is the lighter DTO shape a reporting/UI layer reads,
// mirroring domain.WorktimeEntry's fields under display-facing names.
// spec section 4.6 requires both the raw-entry and the display-DTO code
// paths to exist and to agree on identical inputs.
type DisplayEntry struct {
	Date            time.Time
	WorkedMinutes   int
	OvertimeMinutes int
	TimeOffType     string
	Status          string
}

// MonthSummaryFromDisplay computes the same aggregation as
// MonthSummaryFromEntries, starting from the display DTO shape instead
// of domain.WorktimeEntry.
func MonthSummaryFromDisplay(entries []DisplayEntry, schedule int, year int, month time.Month) MonthSummary {
	asWorktime := make([]domain.WorktimeEntry, 0, len(entries))
	for _, d := range entries {
		asWorktime = append(asWorktime, domain.WorktimeEntry{
			WorkDate:             d.Date,
			TotalWorkedMinutes:   d.WorkedMinutes,
			TotalOvertimeMinutes: d.OvertimeMinutes,
			TimeOffType:          d.TimeOffType,
			AdminSync:            d.Status,
		})
	}
	return MonthSummaryFromEntries(asWorktime, schedule, year, month)
}
