/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-040
 * CONTEXT:   File transaction manager - grouped Write/Sync operations, in-memory
 *            rollback (spec section 4.3)
 * INPUT:     addWrite/addSync calls against an active domain.FileTransaction, then commit
 * OUTPUT:    A FileTransactionResult aggregating one FileOperationResult per queued op
 * BUSINESS:  All-or-nothing at the granularity of the transaction's own previously
 *            existing files - files this transaction freshly creates are not rolled
 *            back if a later op fails, matching the repo's "prefer data presence to
 *            pristine rollback" recovery model
 * CHANGE:    Initial implementation, adapted from the teacher's SQLite connection.go
 *            BeginTx/Commit/Rollback shape onto queued file operations.
 * PREVENTION:Never let addWrite/addSync succeed against a non-active transaction -
 *            that is the one invariant every caller depends on
 * RISK:      High - Getting rollback semantics wrong corrupts the one subsystem every
 *            other write path in the system routes through
 */

package txn

import (
	"os"
	"path/filepath"

	"github.com/worktime-tracker/system/internal/domain"
)

// Manager drives a single domain.FileTransaction through its lifecycle.
// A Manager is not reused across transactions: Begin returns a fresh one
// each time.
type Manager struct {
	tx *domain.FileTransaction
}

// Begin starts a new active transaction.
func Begin() *Manager {
	return &Manager{tx: domain.NewFileTransaction()}
}

// Transaction exposes the underlying domain value for inspection (ID, state, ops).
func (m *Manager) Transaction() *domain.FileTransaction {
	return m.tx
}

// AddWrite queues a Write of bytes to target. The first time target is
// touched by this transaction, its pre-existing bytes (if any) are
// captured into the snapshot map.
func (m *Manager) AddWrite(target domain.FilePath, content []byte, kind domain.FileKind) error {
	if !m.tx.IsActive() {
		return domain.WrapConcurrency("transaction is not active")
	}
	m.snapshotOnce(target.Path)
	m.tx.Operations = append(m.tx.Operations, domain.FileOperation{
		Kind:       domain.OpWrite,
		Target:     target,
		Bytes:      content,
		EntityKind: kind,
	})
	return nil
}

// AddSync queues a Sync from src to tgt. src's bytes are not read now
// (it may be large); tgt's snapshot is captured at commit time instead.
// kind drives whether the sidecar backup is kept (MEDIUM/HIGH) or
// discarded (LOW) once the sync succeeds.
func (m *Manager) AddSync(src, tgt domain.FilePath, kind domain.FileKind) error {
	if !m.tx.IsActive() {
		return domain.WrapConcurrency("transaction is not active")
	}
	m.tx.Operations = append(m.tx.Operations, domain.FileOperation{
		Kind:       domain.OpSync,
		Source:     src,
		Target:     tgt,
		EntityKind: kind,
	})
	return nil
}

// snapshotOnce captures path's current bytes into the transaction's
// snapshot map, the first time it is seen. A missing file is recorded as
// "absent" by simply not adding a map entry, which rollback treats as
// "nothing pre-existed here".
func (m *Manager) snapshotOnce(path string) {
	if _, already := m.tx.Snapshots[path]; already {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return // absent or unreadable: no pre-existing bytes to preserve
	}
	m.tx.Snapshots[path] = data
}

func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
