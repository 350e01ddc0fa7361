/**
 * CONTEXT:   The ordered rule table the merge engine evaluates - the first matching
 *            rule in this slice wins, per spec section 4.5's "evaluated as an ordered
 *            rule list"
 * INPUT:     Two parsed Status values plus the entity kind (worktime rules only fire
 *            for domain.FileKindWorktime)
 * OUTPUT:    A (Side, matched) pair naming the winning side; engine.go's asOutcome turns
 *            a winning deletion tombstone into OutcomeRemove (null result)
 * BUSINESS:  Rule order is itself part of the contract - reordering this slice changes
 *            merge semantics system-wide
 * CHANGE:    Initial implementation.
 * RISK:      High - every persisted entity in the system passes through this table
 */

package merge

import "github.com/worktime-tracker/system/internal/domain"

// Side names which input a rule selected.
type Side int

const (
	SideA Side = iota
	SideB
	SideNull
)

type mergeRule func(a, b Status, kind domain.FileKind) (Side, bool)

// rules is the closed, ordered rule list from spec section 4.5. The first
// rule whose predicate matches decides the outcome; no rule after it runs.
var rules = []mergeRule{
	ruleEitherFinal,
	ruleEitherEdited,
	ruleWorktimeUserInputBeatsInProcess,
	ruleWorktimeInProcessBeatsNonUserInput,
	ruleBothBaseInputs,
	ruleEditedBeatsBaseInput,
	ruleInProcessBeatsBaseInput,
	ruleOneSideNull,
}

// ruleEitherFinal implements rule 1: if both final, ADMIN_FINAL beats
// TEAM_FINAL; else the final one wins.
func ruleEitherFinal(a, b Status, kind domain.FileKind) (Side, bool) {
	aFinal := a.Kind == KindFinal
	bFinal := b.Kind == KindFinal
	if !aFinal && !bFinal {
		return 0, false
	}
	if aFinal && bFinal {
		if a.Editor == EditorAdmin {
			return SideA, true
		}
		return SideB, true
	}
	if aFinal {
		return SideA, true
	}
	return SideB, true
}

// isVersioned reports whether a status carries a comparable timestamp:
// both versioned edits and deletion tombstones share that shape, and the
// spec's vocabulary table gives deletion tombstones the same
// "<EDITOR>_xxx_<t>" wire shape as edits, so rule 2 treats them alike.
func isVersioned(s Status) bool {
	return s.Kind == KindEdited || s.Kind == KindDeleted
}

// ruleEitherEdited implements rule 2: compare timestamps of versioned
// edits (or deletion tombstones, which carry the same shape); tie broken
// by editor priority, then by returning a.
func ruleEitherEdited(a, b Status, kind domain.FileKind) (Side, bool) {
	aEdited := isVersioned(a)
	bEdited := isVersioned(b)
	if !aEdited && !bEdited {
		return 0, false
	}
	if aEdited && !bEdited {
		return SideA, true
	}
	if !aEdited && bEdited {
		return SideB, true
	}
	if a.Timestamp > b.Timestamp {
		return SideA, true
	}
	if b.Timestamp > a.Timestamp {
		return SideB, true
	}
	if a.Editor.Priority() > b.Editor.Priority() {
		return SideA, true
	}
	if b.Editor.Priority() > a.Editor.Priority() {
		return SideB, true
	}
	return SideA, true
}

// ruleWorktimeUserInputBeatsInProcess implements rule 3.
func ruleWorktimeUserInputBeatsInProcess(a, b Status, kind domain.FileKind) (Side, bool) {
	if kind != domain.FileKindWorktime {
		return 0, false
	}
	aIsUserInput := a.Kind == KindBaseInput && a.Editor == EditorUser
	bIsUserInput := b.Kind == KindBaseInput && b.Editor == EditorUser
	if aIsUserInput && b.Kind == KindInProcess {
		return SideA, true
	}
	if bIsUserInput && a.Kind == KindInProcess {
		return SideB, true
	}
	return 0, false
}

// ruleWorktimeInProcessBeatsNonUserInput implements rule 4.
func ruleWorktimeInProcessBeatsNonUserInput(a, b Status, kind domain.FileKind) (Side, bool) {
	if kind != domain.FileKindWorktime {
		return 0, false
	}
	aProtected := a.Kind == KindInProcess
	bProtected := b.Kind == KindInProcess
	bIsUserInput := b.Kind == KindBaseInput && b.Editor == EditorUser
	aIsUserInput := a.Kind == KindBaseInput && a.Editor == EditorUser
	if aProtected && bProtected {
		return SideA, true
	}
	if aProtected && !bIsUserInput {
		return SideA, true
	}
	if bProtected && !aIsUserInput {
		return SideB, true
	}
	return 0, false
}

// ruleBothBaseInputs implements rule 5: ADMIN_INPUT > TEAM_INPUT > USER_INPUT.
func ruleBothBaseInputs(a, b Status, kind domain.FileKind) (Side, bool) {
	if a.Kind != KindBaseInput || b.Kind != KindBaseInput {
		return 0, false
	}
	if a.Editor.Priority() > b.Editor.Priority() {
		return SideA, true
	}
	if b.Editor.Priority() > a.Editor.Priority() {
		return SideB, true
	}
	return SideA, true
}

// ruleEditedBeatsBaseInput implements rule 6. (ruleEitherEdited above
// this one in the table already decides every pair in which either side
// is versioned, including edited vs base input, so in table order this
// rule never matches.)
func ruleEditedBeatsBaseInput(a, b Status, kind domain.FileKind) (Side, bool) {
	if isVersioned(a) {
		return SideA, true
	}
	if isVersioned(b) {
		return SideB, true
	}
	return 0, false
}

// ruleInProcessBeatsBaseInput implements rule 7: USER_IN_PROCESS vs a
// non-USER_INPUT base input - protected wins. (USER_INPUT-vs-in-process
// was already handled by rule 3/4 above for worktime; this covers the
// remaining base-input editors. For non-worktime kinds, where rules 3/4
// do not apply, a USER_IN_PROCESS status still parses as KindInProcess
// and this rule decides it against any base input.)
func ruleInProcessBeatsBaseInput(a, b Status, kind domain.FileKind) (Side, bool) {
	if a.Kind == KindInProcess && b.Kind == KindBaseInput {
		return SideA, true
	}
	if b.Kind == KindInProcess && a.Kind == KindBaseInput {
		return SideB, true
	}
	return 0, false
}

// ruleOneSideNull implements rule 8. Null sides are represented by the
// caller passing aPresent/bPresent explicitly and are decided in Merge
// (engine.go) before the table runs, so this rule never matches.
func ruleOneSideNull(a, b Status, kind domain.FileKind) (Side, bool) {
	return 0, false
}
