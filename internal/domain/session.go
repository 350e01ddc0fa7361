/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-001
 * CONTEXT:   Per-user, per-day work session entity driving the online/pause/offline lifecycle
 * REASON:    Need a well-defined entity the session state machine and calculation engine
 *            can both operate on without either owning file I/O
 * CHANGE:    Initial implementation, generalized from a single-purpose activity session
 *            into the full online/temporary-stop/offline work session described by the spec.
 * PREVENTION:Keep invariants enforced at the edges (state machine transitions), never inside
 *            ad-hoc field assignment scattered through callers
 * RISK:      Medium - Session invariants are load-bearing for every downstream calculation
 */

package domain

import "time"

// SessionStatus is the work session's current lifecycle state.
type SessionStatus string

const (
	WorkOnline         SessionStatus = "WORK_ONLINE"
	WorkTemporaryStop  SessionStatus = "WORK_TEMPORARY_STOP"
	WorkOffline        SessionStatus = "WORK_OFFLINE"
)

// TemporaryStop is a single pause within a work session. Completed stops
// have a non-nil EndTime; the currently open stop (if any) does not.
type TemporaryStop struct {
	StartTime time.Time
	EndTime   *time.Time
}

// Duration returns the stop's elapsed time as of "now" for an open stop,
// or its fixed duration if already closed.
func (s TemporaryStop) Duration(now time.Time) time.Duration {
	if s.EndTime != nil {
		return s.EndTime.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}

// Session is the per (user, current day) work session record
// (WorkUsersSessionsStates in the spec's original vocabulary).
type Session struct {
	UserID    int
	Username  string
	Day       time.Time // calendar day this session belongs to, normalized to midnight

	SessionStatus SessionStatus

	DayStartTime     time.Time
	CurrentStartTime time.Time // start of the latest WORK_ONLINE run
	DayEndTime       *time.Time

	TotalWorkedMinutes   int // raw
	FinalWorkedMinutes   int // processed
	TotalOvertimeMinutes int
	LunchBreakDeducted   bool
	WorkdayCompleted     bool

	TemporaryStops          []TemporaryStop
	TemporaryStopCount      int
	LastTemporaryStopTime   *time.Time
	TotalTemporaryStopMinutes int

	LastActivity time.Time

	AdminSync string
}

// NewSession builds a fresh WORK_OFFLINE session for the given user and day.
func NewSession(userID int, username string, day time.Time) *Session {
	normalized := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return &Session{
		UserID:        userID,
		Username:      username,
		Day:           normalized,
		SessionStatus: WorkOffline,
		AdminSync:     string(UserInput),
	}
}

// OpenTemporaryStop returns the currently open stop, if any.
func (s *Session) OpenTemporaryStop() *TemporaryStop {
	if len(s.TemporaryStops) == 0 {
		return nil
	}
	last := &s.TemporaryStops[len(s.TemporaryStops)-1]
	if last.EndTime == nil {
		return last
	}
	return nil
}

// ValidateInvariants checks the structural invariants spec section 3 lists
// for a Session. It returns the first violated invariant as an error, or
// nil if the session is internally consistent.
func (s *Session) ValidateInvariants() error {
	if len(s.TemporaryStops) > s.TemporaryStopCount {
		return errInvariant("temporaryStops count exceeds temporaryStopCount")
	}
	if s.SessionStatus == WorkTemporaryStop {
		if s.LastTemporaryStopTime == nil {
			return errInvariant("WORK_TEMPORARY_STOP requires lastTemporaryStopTime")
		}
		open := s.OpenTemporaryStop()
		if open == nil {
			return errInvariant("WORK_TEMPORARY_STOP requires an open temporary stop")
		}
	}
	if s.SessionStatus == WorkOffline && s.WorkdayCompleted {
		for _, stop := range s.TemporaryStops {
			if stop.EndTime == nil {
				return errInvariant("completed workday cannot have an open temporary stop")
			}
		}
	}
	return nil
}
