/**
 * CONTEXT:   Parameters accepted by the path resolver for each file kind
 * INPUT:     Year, month, and log version, as spec section 4.1 enumerates
 * OUTPUT:    A validated Params value or a programmer error
 * BUSINESS:  Missing year/month only falls back to "now" when a caller explicitly
 *            opts in - silently defaulting everywhere would hide bugs that pass the
 *            wrong period into a path and corrupt an unrelated month's file
 * CHANGE:    Initial implementation.
 * RISK:      Low - Validation-only helper type
 */

package pathresolver

import (
	"time"

	"github.com/worktime-tracker/system/internal/domain"
)

// Params carries the period parameters a resolve call needs. Not every
// field is meaningful for every FileKind: Year/Month matter for worktime,
// register, and check-register; Year alone matters for the time-off
// tracker; Version matters only for logs.
type Params struct {
	Year           int
	Month          int // 1-12
	Version        string
	FallbackToNow  bool // opt-in: missing Year/Month default to "now"
}

// resolved returns a copy of p with Year/Month defaulted to "now" when
// FallbackToNow was requested and the field was left zero.
func (p Params) resolved(now func() time.Time) (Params, error) {
	out := p
	if out.FallbackToNow {
		n := now()
		if out.Year == 0 {
			out.Year = n.Year()
		}
		if out.Month == 0 {
			out.Month = int(n.Month())
		}
	}
	if out.Month != 0 && (out.Month < 1 || out.Month > 12) {
		return Params{}, domain.WrapProgrammer("month must be in 1..12")
	}
	return out, nil
}
