/**
 * CONTEXT:   UserOwnDataAccessor - spec section 4.4's write-through-cached local accessor
 * INPUT:     The owning user's own identity; reads/writes route through the local root
 * OUTPUT:    Cached reads falling back to file read then emergency empty; writes apply
 *            the intelligent status-management rules and commit through txn.Manager
 * CHANGE:    Initial implementation.
 * RISK:      Medium - the accessor every interactive session command reads/writes through
 */

package accessor

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
	"github.com/worktime-tracker/system/internal/txn"
)

// UserOwnDataAccessor is selected when the caller is reading or writing
// their own data. It supports write.
type UserOwnDataAccessor struct {
	resolver *pathresolver.Resolver
	cache    *fileCache
	now      func() time.Time
}

// NewUserOwnDataAccessor builds a UserOwnDataAccessor with the given
// cache bounds.
func NewUserOwnDataAccessor(resolver *pathresolver.Resolver, cacheSize int, cacheTTL time.Duration) *UserOwnDataAccessor {
	return &UserOwnDataAccessor{
		resolver: resolver,
		cache:    newFileCache(cacheSize, cacheTTL),
		now:      time.Now,
	}
}

func (a *UserOwnDataAccessor) SupportsWrite() bool { return true }

func readCached[T any](a *UserOwnDataAccessor, path domain.FilePath) (T, error) {
	var zero T
	if cached, ok := a.cache.get(path.Path); ok {
		if typed, ok := cached.(T); ok {
			return typed, nil
		}
	}
	out, err := readJSON[T](path.Path)
	if err != nil {
		return zero, err
	}
	a.cache.put(path.Path, out)
	return out, nil
}

func (a *UserOwnDataAccessor) ReadWorktime(owner domain.UserIdentity, year, month int) ([]domain.WorktimeEntry, error) {
	path, err := a.resolver.ResolveLocal(domain.FileKindWorktime, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readCached[[]domain.WorktimeEntry](a, path)
}

func (a *UserOwnDataAccessor) ReadRegister(owner domain.UserIdentity, year, month int) ([]domain.RegisterEntry, error) {
	path, err := a.resolver.ResolveLocal(domain.FileKindRegister, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readCached[[]domain.RegisterEntry](a, path)
}

func (a *UserOwnDataAccessor) ReadCheckRegister(owner domain.UserIdentity, year, month int) ([]domain.CheckRegisterEntry, error) {
	path, err := a.resolver.ResolveLocal(domain.FileKindCheckRegister, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readCached[[]domain.CheckRegisterEntry](a, path)
}

func (a *UserOwnDataAccessor) ReadTimeOffTracker(owner domain.UserIdentity, year int) (domain.TimeOffTracker, error) {
	path, err := a.resolver.ResolveLocal(domain.FileKindTimeOff, owner, pathresolver.Params{Year: year})
	if err != nil {
		return domain.TimeOffTracker{}, err
	}
	return readCached[domain.TimeOffTracker](a, path)
}

// WriteWorktimeWithStatus persists an entire month's worktime list,
// applying the intelligent status-management rule to every entry whose
// status needs (re)assignment, then commits through the transaction
// manager and invalidates the cache entry.
func (a *UserOwnDataAccessor) WriteWorktimeWithStatus(owner domain.UserIdentity, entries []domain.WorktimeEntry, role domain.Role) error {
	if len(entries) == 0 {
		return nil
	}
	path, err := a.resolver.ResolveLocal(domain.FileKindWorktime, owner, pathresolver.Params{
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
		prior, ok := byDate[e.Identifier()]
		priorStatus := ""
		if ok {
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

// WriteWorktimeEntry persists a single entry into its month's file,
// applying the same status-management rule.
func (a *UserOwnDataAccessor) WriteWorktimeEntry(owner domain.UserIdentity, entry domain.WorktimeEntry, role domain.Role) error {
	path, err := a.resolver.ResolveLocal(domain.FileKindWorktime, owner, pathresolver.Params{
		Year: entry.WorkDate.Year(), Month: int(entry.WorkDate.Month()),
	})
	if err != nil {
		return err
	}

	existing, err := readJSON[[]domain.WorktimeEntry](path.Path)
	if err != nil {
		return err
	}

	priorStatus := ""
	replaced := false
	for i, e := range existing {
		if e.Identifier() == entry.Identifier() {
			priorStatus = e.AdminSync
			status, serr := nextStatus(priorStatus, role, a.now())
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

func (a *UserOwnDataAccessor) commitWorktime(path domain.FilePath, entries []domain.WorktimeEntry) error {
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
		return domain.WrapTransient("worktime write failed", nil)
	}
	a.cache.invalidate(path.Path)
	return nil
}
