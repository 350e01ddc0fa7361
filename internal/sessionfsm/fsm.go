/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-080
 * CONTEXT:   Session lifecycle transitions - spec section 4.7's WORK_OFFLINE /
 *            WORK_ONLINE / WORK_TEMPORARY_STOP state machine
 * INPUT:     The previous domain.Session (or none, for a fresh day) plus the
 *            caller-observed current time
 * OUTPUT:    The next domain.Session, or an error if the transition is invalid
 * BUSINESS:  Every transition is a pure function - no background goroutine owns
 *            session state, so the same transition is callable from the CLI, a
 *            scheduler tick, or a test without a running daemon
 * CHANGE:    Initial implementation.
 * RISK:      Medium - an incorrect transition corrupts a user's daily session record
 */

package sessionfsm

import (
	"time"

	"github.com/worktime-tracker/system/internal/calc"
	"github.com/worktime-tracker/system/internal/domain"
)

// ArchiveFunc persists a session that is being replaced because it
// belongs to a prior calendar day. The state machine itself never
// performs I/O; the caller supplies this hook.
type ArchiveFunc func(stale domain.Session) error

// StartDay transitions WORK_OFFLINE -> WORK_ONLINE for (user, now).
// If prior holds a session already completed for the same day, it fails
// with a validation error. If prior belongs to an earlier day, it is
// handed to archive (if non-nil) before a fresh session is constructed.
func StartDay(prior *domain.Session, userID int, username string, now time.Time, archive ArchiveFunc) (domain.Session, error) {
	if prior != nil && sameDay(prior.Day, now) && prior.WorkdayCompleted {
		return domain.Session{}, domain.WrapValidation("workday already completed")
	}
	if prior != nil && !sameDay(prior.Day, now) {
		if archive != nil {
			if err := archive(*prior); err != nil {
				return domain.Session{}, err
			}
		}
		prior = nil
	}

	next := domain.NewSession(userID, username, now)
	next.DayStartTime = now
	next.CurrentStartTime = now
	next.SessionStatus = domain.WorkOnline
	return *next, nil
}

// EndDay transitions WORK_ONLINE or WORK_TEMPORARY_STOP into WORK_OFFLINE.
// If the session is currently paused, it is first auto-resumed at now so
// the open stop closes before end-of-day values are computed.
func EndDay(s domain.Session, now time.Time, finalMinutes *int) (domain.Session, error) {
	if s.SessionStatus == domain.WorkOffline {
		return s, domain.WrapValidation("session is already offline")
	}
	working := s
	if s.SessionStatus == domain.WorkTemporaryStop {
		working = calc.ProcessResumeFromTempStop(s, now)
	}
	return calc.CalculateEndDayValues(working, now, finalMinutes), nil
}

// Pause transitions WORK_ONLINE -> WORK_TEMPORARY_STOP.
func Pause(s domain.Session, now time.Time) (domain.Session, error) {
	if s.SessionStatus != domain.WorkOnline {
		return s, domain.WrapValidation("session is not online")
	}
	return calc.ProcessTemporaryStop(s, now), nil
}

// Resume transitions WORK_TEMPORARY_STOP -> WORK_ONLINE.
func Resume(s domain.Session, now time.Time) (domain.Session, error) {
	if s.SessionStatus != domain.WorkTemporaryStop {
		return s, domain.WrapValidation("session is not paused")
	}
	return calc.ProcessResumeFromTempStop(s, now), nil
}

// IsTerminal reports whether s is in its terminal state: WORK_OFFLINE
// with the workday marked complete.
func IsTerminal(s domain.Session) bool {
	return s.SessionStatus == domain.WorkOffline && s.WorkdayCompleted
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
