/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-050
 * CONTEXT:   The adminSync status domain modeled as a closed sum type (spec section 9
 *            design note: "use a sum type plus a small, closed set of hooks")
 * INPUT:     Raw adminSync strings as read from any persisted entity
 * OUTPUT:    A parsed Status carrying its Kind plus, where relevant, Editor and Timestamp
 * BUSINESS:  Every merge rule dispatches on Status.Kind instead of string-matching raw
 *            wire values; normalization (spec section 4.5) happens once, on parse
 * CHANGE:    Initial implementation.
 * RISK:      Medium - A parsing mistake here silently mis-dispatches every merge rule
 */

package merge

import (
	"strconv"
	"strings"
)

// Editor identifies who produced a versioned edit or final status.
type Editor int

const (
	EditorNone Editor = iota
	EditorUser
	EditorTeam
	EditorAdmin
)

// Priority implements the ADMIN(3) > TEAM(2) > USER(1) tie-break from
// spec section 4.5 rule 2.
func (e Editor) Priority() int {
	switch e {
	case EditorAdmin:
		return 3
	case EditorTeam:
		return 2
	case EditorUser:
		return 1
	default:
		return 0
	}
}

// Kind is the closed set of status shapes the merge engine dispatches on.
type Kind int

const (
	KindBaseInput Kind = iota
	KindInProcess       // USER_IN_PROCESS - worktime kind only
	KindEdited          // <EDITOR>_EDITED_<t>
	KindFinal           // TEAM_FINAL / ADMIN_FINAL
	KindDeleted         // <EDITOR>_DELETED_<t>
)

// Status is a parsed adminSync value.
type Status struct {
	Kind      Kind
	Editor    Editor
	Timestamp int64 // minutes since Unix epoch; meaningful for Edited/Deleted
}

// Parse decodes a raw adminSync string into a Status. Any string that
// does not match the known vocabulary normalizes to USER_INPUT, per spec
// section 4.5's "any unrecognized or legacy string... becomes USER_INPUT".
func Parse(raw string) Status {
	switch raw {
	case "USER_INPUT":
		return Status{Kind: KindBaseInput, Editor: EditorUser}
	case "TEAM_INPUT":
		return Status{Kind: KindBaseInput, Editor: EditorTeam}
	case "ADMIN_INPUT":
		return Status{Kind: KindBaseInput, Editor: EditorAdmin}
	case "USER_IN_PROCESS":
		return Status{Kind: KindInProcess, Editor: EditorUser}
	case "TEAM_FINAL":
		return Status{Kind: KindFinal, Editor: EditorTeam}
	case "ADMIN_FINAL":
		return Status{Kind: KindFinal, Editor: EditorAdmin}
	}

	if s, ok := parseSuffixed(raw, "USER_EDITED_", EditorUser, KindEdited); ok {
		return s
	}
	if s, ok := parseSuffixed(raw, "TEAM_EDITED_", EditorTeam, KindEdited); ok {
		return s
	}
	if s, ok := parseSuffixed(raw, "ADMIN_EDITED_", EditorAdmin, KindEdited); ok {
		return s
	}
	if s, ok := parseSuffixed(raw, "USER_DELETED_", EditorUser, KindDeleted); ok {
		return s
	}
	if s, ok := parseSuffixed(raw, "TEAM_DELETED_", EditorTeam, KindDeleted); ok {
		return s
	}
	if s, ok := parseSuffixed(raw, "ADMIN_DELETED_", EditorAdmin, KindDeleted); ok {
		return s
	}

	// Unrecognized or legacy: normalize to USER_INPUT.
	return Status{Kind: KindBaseInput, Editor: EditorUser}
}

func parseSuffixed(raw, prefix string, editor Editor, kind Kind) (Status, bool) {
	if !strings.HasPrefix(raw, prefix) {
		return Status{}, false
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(raw, prefix), 10, 64)
	if err != nil || n < 0 {
		return Status{}, false
	}
	return Status{Kind: kind, Editor: editor, Timestamp: n}, true
}

// String re-encodes a Status to its wire form.
func (s Status) String() string {
	switch s.Kind {
	case KindBaseInput:
		return s.Editor.inputWord() + "_INPUT"
	case KindInProcess:
		return "USER_IN_PROCESS"
	case KindEdited:
		return s.Editor.word() + "_EDITED_" + strconv.FormatInt(s.Timestamp, 10)
	case KindFinal:
		return s.Editor.word() + "_FINAL"
	case KindDeleted:
		return s.Editor.word() + "_DELETED_" + strconv.FormatInt(s.Timestamp, 10)
	default:
		return "USER_INPUT"
	}
}

func (e Editor) word() string {
	switch e {
	case EditorAdmin:
		return "ADMIN"
	case EditorTeam:
		return "TEAM"
	default:
		return "USER"
	}
}

func (e Editor) inputWord() string { return e.word() }

// Normalize re-encodes raw through Parse/String so repeated normalization
// is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	return Parse(raw).String()
}
