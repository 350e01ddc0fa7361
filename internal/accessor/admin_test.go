package accessor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
	"github.com/worktime-tracker/system/internal/txn"
)

func TestAdminSupportsWrite(t *testing.T) {
	r := newTestResolver(t)
	a := NewAdminAccessor(r)
	assert.True(t, a.SupportsWrite())
}

func TestAdminWriteThenReadRoundTripsOverNetworkRoot(t *testing.T) {
	r := newTestResolver(t)
	a := NewAdminAccessor(r)
	owner := domain.UserIdentity{Username: "carol", UserID: 3}

	entry := domain.WorktimeEntry{WorkDate: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), TotalWorkedMinutes: 480}
	require.NoError(t, a.WriteWorktimeEntry(owner, entry, domain.RoleAdmin))

	got, err := a.ReadWorktime(owner, 2026, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 480, got[0].TotalWorkedMinutes)
	assert.Equal(t, "ADMIN_INPUT", got[0].AdminSync)
}

func TestAdminWriteTwiceProducesEditedStatus(t *testing.T) {
	r := newTestResolver(t)
	a := NewAdminAccessor(r)
	owner := domain.UserIdentity{Username: "carol", UserID: 3}
	date := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, a.WriteWorktimeEntry(owner, domain.WorktimeEntry{WorkDate: date, TotalWorkedMinutes: 100}, domain.RoleAdmin))
	require.NoError(t, a.WriteWorktimeEntry(owner, domain.WorktimeEntry{WorkDate: date, TotalWorkedMinutes: 200}, domain.RoleAdmin))

	got, err := a.ReadWorktime(owner, 2026, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 200, got[0].TotalWorkedMinutes)
	assert.Contains(t, got[0].AdminSync, "ADMIN_EDITED_")
}

func TestAdminWriteRejectsModifyingFinalEntry(t *testing.T) {
	r := newTestResolver(t)
	a := NewAdminAccessor(r)
	owner := domain.UserIdentity{Username: "carol", UserID: 3}
	date := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	path, err := r.ResolveNetwork(domain.FileKindWorktime, owner, pathresolver.Params{Year: 2026, Month: 7})
	require.NoError(t, err)
	data, err := marshalJSON([]domain.WorktimeEntry{{WorkDate: date, AdminSync: "ADMIN_FINAL"}})
	require.NoError(t, err)
	mgr := txn.Begin()
	require.NoError(t, mgr.AddWrite(path, data, domain.FileKindWorktime))
	_, err = mgr.Commit()
	require.NoError(t, err)

	writeErr := a.WriteWorktimeEntry(owner, domain.WorktimeEntry{WorkDate: date, TotalWorkedMinutes: 1}, domain.RoleAdmin)
	assert.ErrorIs(t, writeErr, domain.ErrValidation)
}

func TestAdminWriteWorktimeWithStatusSkipsEmptyEntries(t *testing.T) {
	r := newTestResolver(t)
	a := NewAdminAccessor(r)
	owner := domain.UserIdentity{Username: "carol", UserID: 3}

	require.NoError(t, a.WriteWorktimeWithStatus(owner, nil, domain.RoleAdmin))

	entries, err := a.ReadWorktime(owner, 2026, 7)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
