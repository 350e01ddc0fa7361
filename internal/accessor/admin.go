/**
 * CONTEXT:   AdminAccessor - spec section 4.4, elevated read/write over any user's
 *            network-store artifacts
 * INPUT:     Any target user's identity, plus the writing admin's role (always ADMIN
 *            in practice, but the role is threaded through like every other accessor
 *            so the status-management rule stays uniform)
 * OUTPUT:    Reads and writes routed exclusively through the network root
 * CHANGE:    Initial implementation.
 * RISK:      Medium - the one accessor that can write another user's file directly
 */

package accessor

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
	"github.com/worktime-tracker/system/internal/txn"
)

// AdminAccessor reads and writes admin-owned aggregates and any user's
// network-store artifacts with elevated privileges, per spec section 4.4.
type AdminAccessor struct {
	resolver *pathresolver.Resolver
	now      func() time.Time
}

func NewAdminAccessor(resolver *pathresolver.Resolver) *AdminAccessor {
	return &AdminAccessor{resolver: resolver, now: time.Now}
}

func (a *AdminAccessor) SupportsWrite() bool { return true }

func (a *AdminAccessor) ReadWorktime(owner domain.UserIdentity, year, month int) ([]domain.WorktimeEntry, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindWorktime, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readJSON[[]domain.WorktimeEntry](path.Path)
}

func (a *AdminAccessor) ReadRegister(owner domain.UserIdentity, year, month int) ([]domain.RegisterEntry, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindRegister, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readJSON[[]domain.RegisterEntry](path.Path)
}

func (a *AdminAccessor) ReadCheckRegister(owner domain.UserIdentity, year, month int) ([]domain.CheckRegisterEntry, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindCheckRegister, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readJSON[[]domain.CheckRegisterEntry](path.Path)
}

func (a *AdminAccessor) ReadTimeOffTracker(owner domain.UserIdentity, year int) (domain.TimeOffTracker, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindTimeOff, owner, pathresolver.Params{Year: year})
	if err != nil {
		return domain.TimeOffTracker{}, err
	}
	return readJSON[domain.TimeOffTracker](path.Path)
}

func (a *AdminAccessor) WriteWorktimeWithStatus(owner domain.UserIdentity, entries []domain.WorktimeEntry, role domain.Role) error {
	if len(entries) == 0 {
		return nil
	}
	path, err := a.resolver.ResolveNetwork(domain.FileKindWorktime, owner, pathresolver.Params{
		Year: entries[0].WorkDate.Year(), Month: int(entries[0].WorkDate.Month()),
	})
	if err != nil {
		return err
	}

	existing, err := readJSON[[]domain.WorktimeEntry](path.Path)
	if err != nil {
		return err
	}
	byDate := make(map[string]domain.WorktimeEntry, len(existing))
	for _, e := range existing {
		byDate[e.Identifier()] = e
	}

	now := a.now()
	for i, e := range entries {
		priorStatus := ""
		if prior, ok := byDate[e.Identifier()]; ok {
			priorStatus = prior.AdminSync
		}
		status, err := nextStatus(priorStatus, role, now)
		if err != nil {
			return err
		}
		entries[i].AdminSync = status
	}

	return a.commitWorktime(path, entries)
}

func (a *AdminAccessor) WriteWorktimeEntry(owner domain.UserIdentity, entry domain.WorktimeEntry, role domain.Role) error {
	path, err := a.resolver.ResolveNetwork(domain.FileKindWorktime, owner, pathresolver.Params{
		Year: entry.WorkDate.Year(), Month: int(entry.WorkDate.Month()),
	})
	if err != nil {
		return err
	}

	existing, err := readJSON[[]domain.WorktimeEntry](path.Path)
	if err != nil {
		return err
	}

	replaced := false
	for i, e := range existing {
		if e.Identifier() == entry.Identifier() {
			status, serr := nextStatus(e.AdminSync, role, a.now())
			if serr != nil {
				return serr
			}
			entry.AdminSync = status
			existing[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		status, serr := nextStatus("", role, a.now())
		if serr != nil {
			return serr
		}
		entry.AdminSync = status
		existing = append(existing, entry)
	}

	return a.commitWorktime(path, existing)
}

func (a *AdminAccessor) commitWorktime(path domain.FilePath, entries []domain.WorktimeEntry) error {
	data, err := marshalJSON(entries)
	if err != nil {
		return err
	}
	mgr := txn.Begin()
	if err := mgr.AddWrite(path, data, domain.FileKindWorktime); err != nil {
		return err
	}
	res, err := mgr.Commit()
	if err != nil {
		return err
	}
	if !res.Committed {
		return domain.WrapTransient("admin worktime write failed", nil)
	}
	return nil
}
