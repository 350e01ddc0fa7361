package sessionstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	r := pathresolver.New(pathresolver.Config{LocalRoot: dir, NetworkRoot: dir + "/net"})
	return New(r)
}

func TestLoadMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)
	sess, err := s.Load(domain.UserIdentity{Username: "alice", UserID: 1})
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := newTestStore(t)
	owner := domain.UserIdentity{Username: "alice", UserID: 1}
	sess := *domain.NewSession(1, "alice", time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC))
	sess.SessionStatus = domain.WorkOnline

	require.NoError(t, s.Save(owner, sess))

	got, err := s.Load(owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.WorkOnline, got.SessionStatus)
}

func TestArchiveWritesDatedCopy(t *testing.T) {
	s := newTestStore(t)
	sess := *domain.NewSession(1, "alice", time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC))
	require.NoError(t, s.Archive(sess))
}
