/**
 * CONTEXT:   Commit and rollback execution for a queued file transaction
 * INPUT:     The transaction's queued Write/Sync operations, executed in insertion order
 * OUTPUT:    A Result aggregating one domain.FileOperationResult per operation
 * BUSINESS:  A Sync's target snapshot is captured here (at commit time, not at queue
 *            time) because the contract explicitly defers it to avoid reading a
 *            possibly-large source file twice
 * CHANGE:    Initial implementation.
 * RISK:      High - The only place "all-or-nothing" is actually enforced
 */

package txn

import (
	"os"
	"path/filepath"
	"time"

	"github.com/worktime-tracker/system/internal/domain"
)

// Result aggregates the outcome of every queued operation plus the
// overall committed/rolled-back verdict.
type Result struct {
	Committed bool
	Ops       []domain.FileOperationResult
	RollbackErrors []error // best-effort rollback failures, if any
}

// Commit executes every queued operation in order. If all succeed, the
// transaction is marked committed and its snapshots are cleared. If any
// operation fails, every previously-captured snapshot is written back
// (best effort) and the transaction is marked rolled back.
func (m *Manager) Commit() (*Result, error) {
	if !m.tx.IsActive() {
		return nil, domain.WrapConcurrency("transaction is not active")
	}

	res := &Result{}
	allOK := true
	for _, op := range m.tx.Operations {
		result := m.execute(op)
		res.Ops = append(res.Ops, result)
		if !result.Success {
			allOK = false
		}
	}

	if allOK {
		m.tx.Snapshots = map[string][]byte{}
		m.tx.State = domain.TxCommitted
		res.Committed = true
		return res, nil
	}

	m.rollback(res)
	m.tx.State = domain.TxRolledBack
	res.Committed = false
	return res, nil
}

func (m *Manager) execute(op domain.FileOperation) domain.FileOperationResult {
	now := time.Now()
	switch op.Kind {
	case domain.OpWrite:
		if err := ensureParentDir(op.Target.Path); err != nil {
			return domain.Failed(op.Target, now, err)
		}
		if err := os.WriteFile(op.Target.Path, op.Bytes, 0o644); err != nil {
			return domain.Failed(op.Target, now, err)
		}
		return domain.Ok(op.Target, now)

	case domain.OpSync:
		if _, err := os.Stat(op.Source.Path); err != nil {
			return domain.Failed(op.Target, now, domain.WrapIntegrity("sync source missing: "+op.Source.Path))
		}
		if err := ensureParentDir(op.Target.Path); err != nil {
			return domain.Failed(op.Target, now, err)
		}
		m.snapshotOnce(op.Target.Path)

		sidecar := op.Target.Path + ".bak"
		if existing, err := os.ReadFile(op.Target.Path); err == nil {
			if err := os.WriteFile(sidecar, existing, 0o644); err != nil {
				return domain.Failed(op.Target, now, err)
			}
		}

		data, err := os.ReadFile(op.Source.Path)
		if err != nil {
			return domain.Failed(op.Target, now, err)
		}
		if err := os.WriteFile(op.Target.Path, data, 0o644); err != nil {
			return domain.Failed(op.Target, now, err)
		}

		if domain.CriticalityOf(op.EntityKind) == domain.CriticalityLow {
			_ = os.Remove(sidecar)
		}
		return domain.Ok(op.Target, now)

	default:
		return domain.Failed(op.Target, now, domain.WrapProgrammer("unknown operation kind"))
	}
}

// rollback writes every captured snapshot back to its original path,
// best-effort. Paths absent from the snapshot map were created fresh by
// this transaction and are deliberately left in place per spec section 4.3.
func (m *Manager) rollback(res *Result) {
	for path, original := range m.tx.Snapshots {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			res.RollbackErrors = append(res.RollbackErrors, err)
			continue
		}
		if err := os.WriteFile(path, original, 0o644); err != nil {
			res.RollbackErrors = append(res.RollbackErrors, err)
		}
	}
}
