/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-065
 * CONTEXT:   Data Accessor strategy interface - spec section 4.4
 * INPUT:     A domain.UserIdentity to read/write and, for writes, the caller's
 *            domain.Role
 * OUTPUT:    Typed entity reads; writes apply the intelligent status-management rules
 * BUSINESS:  Which concrete accessor a caller gets is a per-(role, target-user) decision
 *            made by the factory in factory.go, not by the caller picking a type
 * CHANGE:    Initial implementation, grounded on the teacher's repository-per-concern
 *            pattern (one small interface, multiple concrete strategies selected by
 *            caller role).
 * RISK:      Medium - the read path every reporting and CLI surface goes through
 */

package accessor

import (
	"github.com/worktime-tracker/system/internal/domain"
)

// Accessor is the read surface every strategy exposes regardless of
// whether it supports writes.
type Accessor interface {
	ReadWorktime(owner domain.UserIdentity, year, month int) ([]domain.WorktimeEntry, error)
	ReadRegister(owner domain.UserIdentity, year, month int) ([]domain.RegisterEntry, error)
	ReadCheckRegister(owner domain.UserIdentity, year, month int) ([]domain.CheckRegisterEntry, error)
	ReadTimeOffTracker(owner domain.UserIdentity, year int) (domain.TimeOffTracker, error)
	SupportsWrite() bool
}

// WriteAccessor is implemented by strategies whose SupportsWrite() is true.
type WriteAccessor interface {
	Accessor
	WriteWorktimeWithStatus(owner domain.UserIdentity, entries []domain.WorktimeEntry, role domain.Role) error
	WriteWorktimeEntry(owner domain.UserIdentity, entry domain.WorktimeEntry, role domain.Role) error
}
