package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWithTime(t *testing.T, path string, content []byte, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestSweepOrphansDeletesStaleSidecarWithNewerValidPrimary(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "worktime_jdoe_2026_03.json")
	sidecar := primary + ".bak"

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	writeWithTime(t, sidecar, []byte("stale"), older)
	writeWithTime(t, primary, []byte(`{"entries":[]}`), newer)

	SweepOrphans(dir, nil)

	_, err := os.Stat(sidecar)
	assert.True(t, os.IsNotExist(err), "a .bak whose primary is valid and newer must be swept")
}

func TestSweepOrphansKeepsBackupWhenPrimaryMissing(t *testing.T) {
	dir := t.TempDir()
	sidecar := filepath.Join(dir, "worktime_jdoe_2026_03.json.bak")
	writeWithTime(t, sidecar, []byte("only copy"), time.Now())

	SweepOrphans(dir, nil)

	_, err := os.Stat(sidecar)
	assert.NoError(t, err, "a .bak with no primary is the only recoverable copy and must never be swept")
}

func TestSweepOrphansKeepsBackupWhenPrimaryTooSmall(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "worktime_jdoe_2026_03.json")
	sidecar := primary + ".bak"

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	writeWithTime(t, sidecar, []byte("valid backup"), older)
	writeWithTime(t, primary, []byte("{}"), newer) // 2 bytes, below the 3-byte integrity floor

	SweepOrphans(dir, nil)

	_, err := os.Stat(sidecar)
	assert.NoError(t, err, "a primary smaller than the integrity floor is treated as corrupt; its backup must survive")
}

func TestSweepOrphansKeepsBackupWhenPrimaryIsOlder(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "worktime_jdoe_2026_03.json")
	sidecar := primary + ".bak"

	newer := time.Now()
	older := time.Now().Add(-time.Hour)
	writeWithTime(t, sidecar, []byte("newer backup"), newer)
	writeWithTime(t, primary, []byte(`{"entries":[]}`), older)

	SweepOrphans(dir, nil)

	_, err := os.Stat(sidecar)
	assert.NoError(t, err, "a backup newer than its primary might be the only copy of a since-reverted write; must survive")
}

func TestSweepOrphansIgnoresNonBackupFiles(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "worktime_jdoe_2026_03.json")
	writeWithTime(t, plain, []byte(`{"entries":[]}`), time.Now())

	assert.NotPanics(t, func() { SweepOrphans(dir, nil) })

	_, err := os.Stat(plain)
	assert.NoError(t, err)
}

func TestSweepOrphansRecursesIntoSubdirectories(t *testing.T) {
	dir := t.TempDir()
	userDir := filepath.Join(dir, "jdoe", "worktime")
	require.NoError(t, os.MkdirAll(userDir, 0o755))

	primary := filepath.Join(userDir, "worktime_jdoe_2026_03.json")
	sidecar := primary + ".bak"
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	writeWithTime(t, sidecar, []byte("stale"), older)
	writeWithTime(t, primary, []byte(`{"entries":[]}`), newer)

	SweepOrphans(dir, nil)

	_, err := os.Stat(sidecar)
	assert.True(t, os.IsNotExist(err))
}

func TestRunPeriodicSweepStopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "worktime_jdoe_2026_03.json")
	sidecar := primary + ".bak"
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	writeWithTime(t, sidecar, []byte("stale"), older)
	writeWithTime(t, primary, []byte(`{"entries":[]}`), newer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunPeriodicSweep(ctx, dir, 5*time.Millisecond, nil)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunPeriodicSweep did not exit after context cancellation")
	}

	_, err := os.Stat(sidecar)
	assert.True(t, os.IsNotExist(err), "at least one sweep cycle should have run before cancellation")
}
