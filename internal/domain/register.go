/**
 * CONTEXT:   Work register and check-register entries - the work-order and QC-review
 *            artifacts each user owns alongside their worktime table
 * INPUT:     None - plain data entities persisted under register/ and check_register/
 * OUTPUT:    Merged by the universal merge engine exactly like worktime entries
 * CHANGE:    Initial implementation.
 * RISK:      Low - Structurally identical to WorktimeEntry for merge purposes
 */

package domain

import "time"

// RegisterEntry is a single work-order row in a user's monthly register.
type RegisterEntry struct {
	EntryID     string
	UserID      int
	WorkDate    time.Time
	OrderID     string
	ClientName  string
	ActionType  string
	Quantity    int
	GraphicComplexity string
	AdminSync   string
}

// Identifier is the key the merge engine's list merge uses for register
// entries: "entryId_date", per spec section 4.5.
func (e RegisterEntry) Identifier() string {
	return e.EntryID + "_" + e.WorkDate.Format("2006-01-02")
}

// CheckRegisterEntry is a single QC-review row in a user's monthly check register.
type CheckRegisterEntry struct {
	EntryID        string
	UserID         int
	WorkDate       time.Time
	OrderID        string
	ErrorsFound    int
	ApprovalStatus string
	Notes          string
	AdminSync      string
}

// Identifier mirrors RegisterEntry.Identifier.
func (e CheckRegisterEntry) Identifier() string {
	return e.EntryID + "_" + e.WorkDate.Format("2006-01-02")
}
