/**
 * CONTEXT:   Logical file/entity kinds and their backup criticality tiers
 * INPUT:     None - closed enumeration matching the on-disk layout in spec section 6
 * OUTPUT:    FileKind values usable by the path resolver and backup service
 * BUSINESS:  Criticality tier controls backup retention; getting the mapping wrong
 *            means losing worktime history or keeping useless status-flag backups forever
 * CHANGE:    Initial implementation.
 * RISK:      Low - Pure enumeration and a lookup table
 */

package domain

// FileKind enumerates the kinds of file the path resolver can address.
type FileKind int

const (
	FileKindStatus FileKind = iota
	FileKindSession
	FileKindWorktime
	FileKindRegister
	FileKindCheckRegister
	FileKindTimeOff
	FileKindUsers
	FileKindLog
)

// Criticality controls how aggressively the backup service retains copies.
type Criticality int

const (
	// CriticalityLow covers status flags: no backup retained after a
	// successful overwrite.
	CriticalityLow Criticality = iota
	// CriticalityMedium covers session files: a sidecar backup is kept
	// until the next successful write.
	CriticalityMedium
	// CriticalityHigh covers worktime, register, and check-register files:
	// timestamped backups are retained indefinitely, subject to GC.
	CriticalityHigh
)

// CriticalityOf returns the backup criticality tier for a FileKind, per
// spec section 4.3.
func CriticalityOf(kind FileKind) Criticality {
	switch kind {
	case FileKindStatus:
		return CriticalityLow
	case FileKindSession:
		return CriticalityMedium
	case FileKindWorktime, FileKindRegister, FileKindCheckRegister:
		return CriticalityHigh
	default:
		// Time-off, users, and log files are not part of the tiered backup
		// policy described in spec section 4.3; treat them as low so a
		// stray write never silently grows an unbounded backup directory.
		return CriticalityLow
	}
}

// String renders the FileKind the way path segments and log lines expect.
func (k FileKind) String() string {
	switch k {
	case FileKindStatus:
		return "status"
	case FileKindSession:
		return "session"
	case FileKindWorktime:
		return "worktime"
	case FileKindRegister:
		return "register"
	case FileKindCheckRegister:
		return "check_register"
	case FileKindTimeOff:
		return "timeoff"
	case FileKindUsers:
		return "users"
	case FileKindLog:
		return "log"
	default:
		return "unknown"
	}
}
