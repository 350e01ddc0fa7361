/**
 * CONTEXT:   Accessor strategy selection - spec section 4.4's "strategy object selected
 *            per (caller role, target user)"
 * INPUT:     The caller's role and whether the data being accessed belongs to the caller
 * OUTPUT:    The Accessor (and, where applicable, WriteAccessor) to use
 * BUSINESS:  Callers never construct a concrete accessor directly - this factory is the
 *            single place the role/ownership decision is made
 * CHANGE:    Initial implementation, grounded on the teacher's small dependency-container
 *            wiring of one repository per concern.
 * RISK:      Low - a pure selection function
 */

package accessor

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

// Factory builds the accessor strategy for a given caller.
type Factory struct {
	resolver  *pathresolver.Resolver
	cacheSize int
	cacheTTL  time.Duration
}

func NewFactory(resolver *pathresolver.Resolver, cacheSize int, cacheTTL time.Duration) *Factory {
	return &Factory{resolver: resolver, cacheSize: cacheSize, cacheTTL: cacheTTL}
}

// For selects the accessor strategy per spec section 4.4: the caller's
// own data goes through the cached local accessor; an admin touching
// any user's artifacts gets elevated network access; anything else
// (viewing another user, a team/admin aggregate) is read-only over the
// network.
func (f *Factory) For(callerRole domain.Role, isOwnData bool) Accessor {
	switch {
	case isOwnData:
		return NewUserOwnDataAccessor(f.resolver, f.cacheSize, f.cacheTTL)
	case callerRole == domain.RoleAdmin:
		return NewAdminAccessor(f.resolver)
	default:
		return NewNetworkOnlyAccessor(f.resolver)
	}
}
