/**
 * AGENT:     architecture-designer
 * TRACE:     WT-ARCH-060
 * CONTEXT:   Universal two-way merge entry point - spec section 4.5's merge(a, b, kind) -> c
 * INPUT:     Two optional entities sharing the same identifier, each carrying a raw
 *            adminSync string, plus the entity kind they belong to
 * OUTPUT:    An Outcome naming which side (or neither) survives the merge
 * BUSINESS:  merge is commutative and associative up to editor-priority tie-breaks at
 *            identical timestamps (spec section 4.5 property); the rule table in
 *            rules.go is what makes that property checkable rule-by-rule
 * CHANGE:    Initial implementation.
 * RISK:      High - every persisted entity in the system is reconciled through this path
 */

package merge

import (
	"log/slog"

	"github.com/worktime-tracker/system/internal/domain"
)

// Outcome is the result of merging two statuses: which side won, or that
// the entity should be removed entirely.
type Outcome int

const (
	OutcomeKeepA Outcome = iota
	OutcomeKeepB
	OutcomeRemove
)

// Merge evaluates the spec section 4.5 rule table. aPresent and bPresent
// report whether each side exists at all (a missing side merges per rule
// 8: "one side null returns the non-null side"). If both are present,
// aRaw/bRaw are normalized and run through the rule table.
func Merge(aRaw, bRaw string, aPresent, bPresent bool, kind domain.FileKind, logger *slog.Logger) Outcome {
	switch {
	case !aPresent && !bPresent:
		return OutcomeRemove
	case aPresent && !bPresent:
		return OutcomeKeepA
	case !aPresent && bPresent:
		return OutcomeKeepB
	}

	a := Parse(aRaw)
	b := Parse(bRaw)

	for _, rule := range rules {
		if side, matched := rule(a, b, kind); matched {
			return asOutcome(side, a, b)
		}
	}

	// Rule 9: fallback - return a and log an anomaly.
	if logger != nil {
		logger.Warn("merge anomaly: no rule matched, falling back to a",
			"a", aRaw, "b", bRaw, "kind", kind.String())
	}
	return asOutcome(SideA, a, b)
}

// asOutcome maps a rule's winning Side to an Outcome. A winning side
// whose status is a deletion tombstone collapses to OutcomeRemove: the
// entity itself is the "c = null" result spec section 4.5 describes,
// not a surviving record that happens to carry a tombstone status.
func asOutcome(side Side, a, b Status) Outcome {
	winner := a
	if side == SideB {
		winner = b
	}
	if winner.Kind == KindDeleted {
		return OutcomeRemove
	}
	if side == SideB {
		return OutcomeKeepB
	}
	return OutcomeKeepA
}

// Finalize returns finalStatus's wire form in place of the single status
// raw. If finalStatus is not KindFinal, raw is returned unchanged.
func Finalize(raw string, finalStatus Status) string {
	if finalStatus.Kind != KindFinal {
		return raw
	}
	return finalStatus.String()
}

// MarkDeleted sets an editor-prefixed deletion tombstone at the given
// minute-since-epoch timestamp.
func MarkDeleted(editor Editor, nowMinutes int64) string {
	return Status{Kind: KindDeleted, Editor: editor, Timestamp: nowMinutes}.String()
}
