package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

func testResolver(t *testing.T) *pathresolver.Resolver {
	t.Helper()
	dir := t.TempDir()
	return pathresolver.New(pathresolver.Config{LocalRoot: dir, NetworkRoot: dir + "/net"})
}

func testOwner() domain.UserIdentity {
	return domain.UserIdentity{Username: "jdoe", UserID: 7}
}

func TestAfterCommitLowTierRemovesSidecar(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})

	path, err := resolver.ResolveLocal(domain.FileKindStatus, testOwner(), pathresolver.Params{})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path.Path), 0o755))
	require.NoError(t, os.WriteFile(path.Path+".bak", []byte("stale"), 0o644))

	require.NoError(t, svc.AfterCommit(path, domain.FileKindStatus, []byte("ok")))

	_, err = os.Stat(path.Path + ".bak")
	assert.True(t, os.IsNotExist(err), "low tier must never leave a sidecar behind")
}

func TestAfterCommitLowTierToleratesMissingSidecar(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})

	path, err := resolver.ResolveLocal(domain.FileKindStatus, testOwner(), pathresolver.Params{})
	require.NoError(t, err)

	assert.NoError(t, svc.AfterCommit(path, domain.FileKindStatus, []byte("ok")))
}

func TestAfterCommitMediumTierLeavesSidecarAlone(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})

	path, err := resolver.ResolveLocal(domain.FileKindSession, testOwner(), pathresolver.Params{})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path.Path), 0o755))
	require.NoError(t, os.WriteFile(path.Path+".bak", []byte("sidecar"), 0o644))

	require.NoError(t, svc.AfterCommit(path, domain.FileKindSession, []byte("ok")))

	content, err := os.ReadFile(path.Path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "sidecar", string(content), "medium tier delegates sidecar maintenance to the transaction manager's Sync step")
}

func TestAfterCommitHighTierWritesTimestampedBackup(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})
	fixed := time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	path, err := resolver.ResolveLocal(domain.FileKindWorktime, testOwner(), pathresolver.Params{Year: 2026, Month: 3})
	require.NoError(t, err)

	require.NoError(t, svc.AfterCommit(path, domain.FileKindWorktime, []byte(`{"entries":[]}`)))

	dir := resolver.BackupDirFor(testOwner(), domain.CriticalityHigh)
	wantName := filepath.Base(path.Path) + "." + fixed.Format(timestampLayout) + ".bak"
	content, err := os.ReadFile(filepath.Join(dir, wantName))
	require.NoError(t, err)
	assert.Equal(t, `{"entries":[]}`, string(content))
}

func TestListAvailableBackupsOrdersNewestFirst(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})
	owner := testOwner()

	dir := resolver.BackupDirFor(owner, domain.CriticalityHigh)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "worktime_jdoe_2026_01.json."+older.Format(timestampLayout)+".bak"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "worktime_jdoe_2026_02.json."+newer.Format(timestampLayout)+".bak"), []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "not-a-backup.txt"), []byte("ignored"), 0o644))

	backups, err := svc.ListAvailableBackups(owner, domain.FileKindWorktime)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.True(t, backups[0].Timestamp.After(backups[1].Timestamp), "newest backup must sort first")
}

func TestListAvailableBackupsMissingDirReturnsEmpty(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})

	backups, err := svc.ListAvailableBackups(testOwner(), domain.FileKindWorktime)
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestRestoreFromSnapshotsExistingTargetBeforeOverwrite(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})
	fixed := time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	target, err := resolver.ResolveLocal(domain.FileKindWorktime, testOwner(), pathresolver.Params{Year: 2026, Month: 3})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(target.Path), 0o755))
	require.NoError(t, os.WriteFile(target.Path, []byte("current"), 0o644))

	backupDir := resolver.BackupDirFor(testOwner(), domain.CriticalityHigh)
	require.NoError(t, os.MkdirAll(backupDir, 0o755))
	backupPath := domain.FilePath{Path: filepath.Join(backupDir, "restore-source.bak"), Kind: domain.BACKUP, Owner: testOwner()}
	require.NoError(t, os.WriteFile(backupPath.Path, []byte("restored"), 0o644))

	require.NoError(t, svc.RestoreFrom(backupPath, target))

	restored, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, "restored", string(restored))

	snapshot, err := os.ReadFile(target.Path + ".admin_restore_backup." + fixed.Format(timestampLayout) + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "current", string(snapshot), "the pre-restore content must survive as an admin snapshot")
}

func TestRestoreFromToleratesMissingTarget(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})

	target, err := resolver.ResolveLocal(domain.FileKindWorktime, testOwner(), pathresolver.Params{Year: 2026, Month: 3})
	require.NoError(t, err)

	backupDir := resolver.BackupDirFor(testOwner(), domain.CriticalityHigh)
	require.NoError(t, os.MkdirAll(backupDir, 0o755))
	backupPath := domain.FilePath{Path: filepath.Join(backupDir, "restore-source.bak"), Kind: domain.BACKUP, Owner: testOwner()}
	require.NoError(t, os.WriteFile(backupPath.Path, []byte("restored"), 0o644))

	require.NoError(t, svc.RestoreFrom(backupPath, target))

	restored, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, "restored", string(restored))
}

func TestRestoreFromFailsOnMissingBackupSource(t *testing.T) {
	resolver := testResolver(t)
	svc := New(resolver, Config{})

	target, err := resolver.ResolveLocal(domain.FileKindWorktime, testOwner(), pathresolver.Params{Year: 2026, Month: 3})
	require.NoError(t, err)

	backupPath := domain.FilePath{Path: filepath.Join(resolver.NetworkRoot(), "nope.bak"), Kind: domain.BACKUP, Owner: testOwner()}
	assert.Error(t, svc.RestoreFrom(backupPath, target))
}
