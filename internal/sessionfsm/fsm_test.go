package sessionfsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime-tracker/system/internal/domain"
)

func TestStartDayFromNoPriorSession(t *testing.T) {
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	s, err := StartDay(nil, 1, "alice", now, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOnline, s.SessionStatus)
	assert.Equal(t, now, s.DayStartTime)
}

func TestStartDayFailsWhenAlreadyCompletedToday(t *testing.T) {
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	prior := domain.NewSession(1, "alice", now)
	prior.WorkdayCompleted = true
	_, err := StartDay(prior, 1, "alice", now, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStartDayArchivesStaleSessionFromPriorDay(t *testing.T) {
	yesterday := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	today := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	prior := domain.NewSession(1, "alice", yesterday)

	var archived *domain.Session
	archive := func(stale domain.Session) error {
		archived = &stale
		return nil
	}

	next, err := StartDay(prior, 1, "alice", today, archive)
	require.NoError(t, err)
	require.NotNil(t, archived)
	assert.True(t, sameDay(archived.Day, yesterday))
	assert.True(t, sameDay(next.Day, today))
}

func TestPauseThenResume(t *testing.T) {
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	s, _ := StartDay(nil, 1, "alice", now, nil)

	paused, err := Pause(s, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.WorkTemporaryStop, paused.SessionStatus)

	resumed, err := Resume(paused, now.Add(2*time.Hour+10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOnline, resumed.SessionStatus)
}

func TestPauseRejectedWhenNotOnline(t *testing.T) {
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	s := *domain.NewSession(1, "alice", now)
	_, err := Pause(s, now)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEndDayAutoResumesOpenStop(t *testing.T) {
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	s, _ := StartDay(nil, 1, "alice", now, nil)
	paused, _ := Pause(s, now.Add(time.Hour))

	ended, err := EndDay(paused, now.Add(9*time.Hour), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOffline, ended.SessionStatus)
	assert.True(t, ended.WorkdayCompleted)
	assert.True(t, IsTerminal(ended))
}

func TestEndDayRejectsAlreadyOffline(t *testing.T) {
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	s := *domain.NewSession(1, "alice", now)
	_, err := EndDay(s, now, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
