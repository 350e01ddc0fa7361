/**
 * CONTEXT:   Network orphan backup GC (spec section 4.3) - runs hourly against the
 *            network session directory tree
 * INPUT:     A root directory to walk (the network root's per-user session area)
 * OUTPUT:    Deletes .bak sidecars whose primary file is present, large enough, and
 *            newer than the backup; keeps everything else
 * BUSINESS:  A sidecar .bak left behind after a successful write is dead weight;
 *            but a .bak whose primary is missing or corrupt (<3 bytes) is the only
 *            recoverable copy and must never be swept
 * CHANGE:    Initial implementation.
 * RISK:      Medium - A bug here can delete the last recoverable copy of a file
 */

package backup

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// minPrimarySize is the integrity floor from spec section 6: files
// smaller than this are treated as invalid/corrupt.
const minPrimarySize = 3

// SweepOrphans walks root and deletes every ".bak" sidecar whose primary
// file exists, is at least minPrimarySize bytes, and is newer than the
// backup. It is best-effort: a single file's stat/remove error is logged
// and does not stop the walk.
func SweepOrphans(root string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".bak") {
			return nil
		}
		primary := strings.TrimSuffix(path, ".bak")
		primaryInfo, statErr := os.Stat(primary)
		if statErr != nil {
			// No primary (or unreadable) - keep the only recoverable copy.
			return nil
		}
		backupInfo, statErr := os.Stat(path)
		if statErr != nil {
			return nil
		}
		if primaryInfo.Size() >= minPrimarySize && primaryInfo.ModTime().After(backupInfo.ModTime()) {
			if err := os.Remove(path); err != nil {
				logger.Warn("orphan GC: failed to remove stale backup", "path", path, "error", err)
			}
		}
		return nil
	})
}

// RunPeriodicSweep runs SweepOrphans every interval until ctx is cancelled.
// It records nothing with scheduler health; the coordinator runs its own
// sweep loop (runOrphanGC) instead of this function.
func RunPeriodicSweep(ctx context.Context, root string, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			SweepOrphans(root, logger)
		}
	}
}
