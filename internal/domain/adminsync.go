/**
 * CONTEXT:   The adminSync vocabulary carried by every mergeable entity (spec section 4.5)
 * INPUT:     None - the base string constants of the vocabulary
 * OUTPUT:    Typed constants entities can assign without reaching into the merge package
 * BUSINESS:  adminSync is the single conflict-resolution signal the merge engine reads;
 *            every persistent entity must carry one, even before a merge ever happens
 * CHANGE:    Initial implementation.
 * PREVENTION:Keep this to the base (non-timestamped) vocabulary only - the merge package
 *            owns parsing/building the timestamped and tombstone variants
 * RISK:      Low - String constants, no behavior
 */

package domain

// AdminSync is the status string an entity carries. Versioned, final, and
// tombstone variants are built and parsed by the merge package; this file
// only names the base inputs every entity can be constructed with.
type AdminSync string

const (
	UserInput      AdminSync = "USER_INPUT"
	TeamInput      AdminSync = "TEAM_INPUT"
	AdminInput     AdminSync = "ADMIN_INPUT"
	UserInProcess  AdminSync = "USER_IN_PROCESS" // worktime kind only
)

// BaseInputFor returns the base input status an edit by the given role
// should be tagged with, per spec section 4.4 step 2.
func BaseInputFor(role Role) AdminSync {
	switch role {
	case RoleAdmin:
		return AdminInput
	case RoleTeamLeader:
		return TeamInput
	default:
		return UserInput
	}
}
