/**
 * CONTEXT:   Raw-minutes queries over a domain.Session - spec section 4.6's
 *            rawWorkMinutes/totalTempStopMinutes
 * INPUT:     A domain.Session value and a reference time
 * OUTPUT:    Plain int minute counts
 * BUSINESS:  These are pure queries: no field of the session is mutated
 * CHANGE:    Initial implementation.
 * RISK:      Low - straightforward duration arithmetic
 */

package calc

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
)

// TotalTempStopMinutes sums every completed stop's duration plus, if a
// stop is currently open, its elapsed time as of now.
func TotalTempStopMinutes(s domain.Session, now time.Time) int {
	total := 0
	for _, stop := range s.TemporaryStops {
		total += int(stop.Duration(now).Minutes())
	}
	return total
}

// RawWorkMinutes returns the minutes between the session's day start and
// endTime, minus completed temp-stop durations and, if the session is
// currently paused, the open stop's elapsed time.
func RawWorkMinutes(s domain.Session, endTime time.Time) int {
	elapsed := int(endTime.Sub(s.DayStartTime).Minutes())
	elapsed -= TotalTempStopMinutes(s, endTime)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}
