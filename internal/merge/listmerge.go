/**
 * CONTEXT:   List merge over a union of entity identifiers (spec section 4.5 "List merge")
 * INPUT:     Two slices of same-typed entities (e.g. domain.RegisterEntry), keyed by an
 *            identifier function, plus accessors for each entity's adminSync string
 * OUTPUT:    The merged slice with nulls dropped
 * BUSINESS:  Direction (AdminToUser/UserToAdmin/TeamChecking) only appears in the debug
 *            log line for a dropped entity - the merge function itself stays symmetric,
 *            per spec section 4.5
 * CHANGE:    Initial implementation.
 * RISK:      Medium - an identifier collision here silently drops an entity from one side
 */

package merge

import (
	"log/slog"

	"github.com/worktime-tracker/system/internal/domain"
)

// Direction labels why a list merge is being run. It never changes the
// merge outcome, only what gets logged.
type Direction int

const (
	AdminToUser Direction = iota
	UserToAdmin
	TeamChecking
)

func (d Direction) String() string {
	switch d {
	case AdminToUser:
		return "ADMIN_TO_USER"
	case UserToAdmin:
		return "USER_TO_ADMIN"
	case TeamChecking:
		return "TEAM_CHECKING"
	default:
		return "UNKNOWN"
	}
}

// Accessors lets List work over any entity type without each caller
// reimplementing the union/merge walk.
type Accessors[T any] struct {
	Identifier func(T) string
	Status     func(T) string
}

// List merges two slices of the same entity type, keyed by Identifier.
// For every identifier in the union, Merge decides which side (if
// either) survives; nulls are dropped from the result. Iteration order
// follows a's slice first, then any identifiers unique to b, for
// deterministic output ordering.
func List[T any](a, b []T, acc Accessors[T], kind domain.FileKind, dir Direction, logger *slog.Logger) []T {
	byID := make(map[string]T, len(a)+len(b))
	aSet := make(map[string]T, len(a))
	bSet := make(map[string]T, len(b))
	var order []string

	for _, item := range a {
		id := acc.Identifier(item)
		aSet[id] = item
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = item
	}
	for _, item := range b {
		id := acc.Identifier(item)
		bSet[id] = item
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
	}

	result := make([]T, 0, len(order))
	for _, id := range order {
		aItem, aOK := aSet[id]
		bItem, bOK := bSet[id]

		var aRaw, bRaw string
		if aOK {
			aRaw = acc.Status(aItem)
		}
		if bOK {
			bRaw = acc.Status(bItem)
		}

		outcome := Merge(aRaw, bRaw, aOK, bOK, kind, logger)
		switch outcome {
		case OutcomeKeepA:
			result = append(result, aItem)
		case OutcomeKeepB:
			result = append(result, bItem)
		case OutcomeRemove:
			if logger != nil {
				logger.Debug("list merge dropped entity", "id", id, "direction", dir.String())
			}
		}
	}
	return result
}

// RegisterAccessors and CheckRegisterAccessors are the concrete
// Accessors values for the two list-merge entity types named in spec
// section 4.5 ("entryId_date" keyed).
var RegisterAccessors = Accessors[domain.RegisterEntry]{
	Identifier: func(e domain.RegisterEntry) string { return e.Identifier() },
	Status:     func(e domain.RegisterEntry) string { return e.AdminSync },
}

var CheckRegisterAccessors = Accessors[domain.CheckRegisterEntry]{
	Identifier: func(e domain.CheckRegisterEntry) string { return e.Identifier() },
	Status:     func(e domain.CheckRegisterEntry) string { return e.AdminSync },
}

// WorktimeAccessors keys by workDate, per spec section 4.5.
var WorktimeAccessors = Accessors[domain.WorktimeEntry]{
	Identifier: func(e domain.WorktimeEntry) string { return e.Identifier() },
	Status:     func(e domain.WorktimeEntry) string { return e.AdminSync },
}
