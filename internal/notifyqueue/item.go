/**
 * CONTEXT:   Notification queue item shape - spec section 4.8
 * INPUT:     None - plain data
 * OUTPUT:    Item, consumed by the priority heap and the worker's dispatch step
 * CHANGE:    Initial implementation.
 * RISK:      Low
 */

package notifyqueue

import "time"

// Kind is the notification's type, driving which rate-limit bucket and
// dispatch handler apply.
type Kind string

const (
	KindScheduleEnd Kind = "schedule-end"
	KindHourly      Kind = "hourly"
	KindTempStop    Kind = "temp-stop"
	KindStartDay    Kind = "start-day"
	KindResolution  Kind = "resolution"
	KindTest        Kind = "test"
)

const maxRetries = 3

// Payload carries the optional fields a notification's dispatch handler
// may need, per spec section 4.8.
type Payload struct {
	FinalMinutes    *int
	TempStopStart   *time.Time
	Title           string
	Message         string
	TrayMessage     string
	TimeoutPeriod   time.Duration
}

// Item is a single queued notification.
type Item struct {
	ID         string
	Kind       Kind
	UserID     int
	Payload    Payload
	Priority   int
	CreatedAt  time.Time
	RetryCount int
	LastError  error

	processed bool
}
