/**
 * CONTEXT:   Annual time-off tracker - the per (user, year) list of time-off requests
 * INPUT:     None - plain data entity persisted under timeoff/timeoff_<user>_<year>.json
 * OUTPUT:    Read by reporting clients; paid-vacation balance is never read from here
 * BUSINESS:  Paid-vacation balance lives exclusively on domain.User.PaidHolidayDays -
 *            this tracker is a request history, not a balance
 * CHANGE:    Initial implementation.
 * RISK:      Low - Plain data entity
 */

package domain

import "time"

// TimeOffRequestStatus is the workflow status of a single time-off request.
type TimeOffRequestStatus string

const (
	TimeOffStatusPending  TimeOffRequestStatus = "PENDING"
	TimeOffStatusApproved TimeOffRequestStatus = "APPROVED"
	TimeOffStatusRejected TimeOffRequestStatus = "REJECTED"
)

// TimeOffRequest is a single dated request within the annual tracker.
type TimeOffRequest struct {
	Date   time.Time
	Type   TimeOffKind
	Status TimeOffRequestStatus
}

// TimeOffTracker is the per (user, year) list of time-off requests.
// It deliberately carries no balance field: the authoritative balance is
// domain.User.PaidHolidayDays.
type TimeOffTracker struct {
	UserID   int
	Year     int
	Requests []TimeOffRequest
	AdminSync string
}
