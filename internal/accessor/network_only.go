/**
 * CONTEXT:   NetworkOnlyAccessor - spec section 4.4, for viewing another user's data or
 *            a team/admin aggregate
 * INPUT:     The target user's identity; always resolved against the network root
 * OUTPUT:    Read-only entity slices; writes always fail
 * CHANGE:    Initial implementation.
 * RISK:      Low - read-only, no commit path to get wrong
 */

package accessor

import (
	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

// NetworkOnlyAccessor reads directly from the network store and never
// writes, per spec section 4.4.
type NetworkOnlyAccessor struct {
	resolver *pathresolver.Resolver
}

func NewNetworkOnlyAccessor(resolver *pathresolver.Resolver) *NetworkOnlyAccessor {
	return &NetworkOnlyAccessor{resolver: resolver}
}

func (a *NetworkOnlyAccessor) SupportsWrite() bool { return false }

func (a *NetworkOnlyAccessor) ReadWorktime(owner domain.UserIdentity, year, month int) ([]domain.WorktimeEntry, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindWorktime, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readJSON[[]domain.WorktimeEntry](path.Path)
}

func (a *NetworkOnlyAccessor) ReadRegister(owner domain.UserIdentity, year, month int) ([]domain.RegisterEntry, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindRegister, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readJSON[[]domain.RegisterEntry](path.Path)
}

func (a *NetworkOnlyAccessor) ReadCheckRegister(owner domain.UserIdentity, year, month int) ([]domain.CheckRegisterEntry, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindCheckRegister, owner, pathresolver.Params{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	return readJSON[[]domain.CheckRegisterEntry](path.Path)
}

func (a *NetworkOnlyAccessor) ReadTimeOffTracker(owner domain.UserIdentity, year int) (domain.TimeOffTracker, error) {
	path, err := a.resolver.ResolveNetwork(domain.FileKindTimeOff, owner, pathresolver.Params{Year: year})
	if err != nil {
		return domain.TimeOffTracker{}, err
	}
	return readJSON[domain.TimeOffTracker](path.Path)
}
