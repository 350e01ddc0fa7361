/**
 * CONTEXT:   Path and file-operation value types shared by every storage component
 * INPUT:     Absolute filesystem paths, their store kind, and optional owning user identity
 * OUTPUT:    Immutable FilePath/FileOperationResult values passed by value across accessors
 * BUSINESS:  Local and network copies of the same logical file must never be confused;
 *            FilePath carries its kind so callers can't accidentally write to the wrong store
 * CHANGE:    Initial implementation.
 * PREVENTION:Keep FilePath immutable - construct new values instead of mutating in place
 * RISK:      Low - Value types with no behavior beyond simple accessors
 */

package domain

import "time"

// StoreKind identifies which physical store a FilePath refers to.
type StoreKind int

const (
	// LOCAL is the per-station copy used for offline operation.
	LOCAL StoreKind = iota
	// NETWORK is the shared volume that is the system of record.
	NETWORK
	// BACKUP is a retained copy under the tiered backup directory.
	BACKUP
)

// String renders the StoreKind the way log lines and error messages expect.
func (k StoreKind) String() string {
	switch k {
	case LOCAL:
		return "LOCAL"
	case NETWORK:
		return "NETWORK"
	case BACKUP:
		return "BACKUP"
	default:
		return "UNKNOWN"
	}
}

// UserIdentity names the user who owns the file a FilePath points at, when
// the file is user-owned. Zero value means "no owner" (e.g. the users file).
type UserIdentity struct {
	Username string
	UserID   int
}

// FilePath pairs an absolute path with its store kind and, for user-owned
// files, the owning identity. FilePaths are constructed exclusively by the
// path resolver and are immutable once built.
type FilePath struct {
	Path  string
	Kind  StoreKind
	Owner UserIdentity
}

// HasOwner reports whether this path is scoped to a specific user.
func (p FilePath) HasOwner() bool {
	return p.Owner.Username != "" || p.Owner.UserID != 0
}

// FileOperationResult is the tagged success/failure outcome of a single
// file operation (a Write or a Sync), as recorded by a FileTransaction.
type FileOperationResult struct {
	Path      FilePath
	Success   bool
	Message   string
	Err       error
	Timestamp time.Time
}

// Ok builds a successful FileOperationResult for path at the given time.
func Ok(path FilePath, at time.Time) FileOperationResult {
	return FileOperationResult{Path: path, Success: true, Timestamp: at}
}

// Failed builds a failing FileOperationResult carrying the triggering error.
func Failed(path FilePath, at time.Time, err error) FileOperationResult {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return FileOperationResult{Path: path, Success: false, Message: msg, Err: err, Timestamp: at}
}
