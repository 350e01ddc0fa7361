/**
 * CONTEXT:   Intelligent status management on write - spec section 4.4's four-step rule
 * INPUT:     The currently-persisted status (if any) for (userId, date) plus the
 *            writing caller's role
 * OUTPUT:    The status string the new entry should carry, or a validation error if the
 *            existing entry is FINAL
 * CHANGE:    Initial implementation.
 * RISK:      Medium - silently skipping the FINAL check would let an edit overwrite a
 *            signed-off entry
 */

package accessor

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/merge"
)

// nextStatus implements spec section 4.4's intelligent status management:
//  1. look up the existing status for (userId, date) - passed in as existing
//  2. if none, or empty -> the role's base input status
//  3. if FINAL -> fail
//  4. otherwise -> a freshly timestamped edited status
func nextStatus(existing string, role domain.Role, now time.Time) (string, error) {
	if existing == "" {
		return string(domain.BaseInputFor(role)), nil
	}

	parsed := merge.Parse(existing)
	if parsed.Kind == merge.KindFinal {
		return "", domain.WrapValidation("cannot modify final entry")
	}

	editor := editorFor(role)
	minutesSinceEpoch := now.Unix() / 60
	return merge.Status{Kind: merge.KindEdited, Editor: editor, Timestamp: minutesSinceEpoch}.String(), nil
}

func editorFor(role domain.Role) merge.Editor {
	switch role {
	case domain.RoleAdmin:
		return merge.EditorAdmin
	case domain.RoleTeamLeader:
		return merge.EditorTeam
	default:
		return merge.EditorUser
	}
}
