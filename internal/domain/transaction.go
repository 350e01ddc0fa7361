/**
 * CONTEXT:   FileTransaction value type - identity, operation log, and terminal state
 * INPUT:     None - the transaction manager (internal/txn) is the only writer of these fields
 * OUTPUT:    A transaction record an FileTransactionManager drives through its lifecycle
 * BUSINESS:  Once terminal (committed or rolled back), a transaction must never be reused -
 *            that is the entire atomicity guarantee spec section 4.3 describes
 * CHANGE:    Initial implementation.
 * RISK:      Medium - Re-use of a terminal transaction would silently break the
 *            all-or-nothing guarantee callers depend on
 */

package domain

import (
	"github.com/google/uuid"
)

// OperationKind distinguishes the two kinds of queued file operation.
type OperationKind int

const (
	OpWrite OperationKind = iota
	OpSync
)

// FileOperation is a single queued Write or Sync.
type FileOperation struct {
	Kind       OperationKind
	Target     FilePath
	Source     FilePath // only meaningful for OpSync
	Bytes      []byte   // only meaningful for OpWrite
	EntityKind FileKind // drives the backup criticality tier for OpSync
}

// TransactionState is the lifecycle stage of a FileTransaction.
type TransactionState int

const (
	TxActive TransactionState = iota
	TxCommitted
	TxRolledBack
)

// FileTransaction groups a set of Write/Sync operations that must commit
// or roll back atomically, per spec section 3 and 4.3.
type FileTransaction struct {
	ID         string
	State      TransactionState
	Operations []FileOperation
	// Snapshots holds the pre-existing bytes of every path this
	// transaction has touched, captured the first time each path is
	// written or synced over. A path absent from Snapshots means the
	// transaction created it fresh.
	Snapshots map[string][]byte
}

// NewFileTransaction starts a new active transaction.
func NewFileTransaction() *FileTransaction {
	return &FileTransaction{
		ID:        uuid.New().String(),
		State:     TxActive,
		Snapshots: make(map[string][]byte),
	}
}

// IsActive reports whether the transaction can still accept operations.
func (t *FileTransaction) IsActive() bool {
	return t.State == TxActive
}
