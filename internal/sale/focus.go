package sale

import tea "github.com/charmbracelet/bubbletea"

// Field names one editable control of the sale form. Item fields carry
// an item id alongside; sale-level fields ignore it.
type Field int

const (
	FieldName Field = iota
	FieldQuantity
	FieldPrice
	FieldTaxGroup
	FieldSaleName
	FieldServiceCharge
	FieldGratuity
)

// NextTarget reports which field of the item should receive input
// focus on row submit: the first incomplete field, in name, quantity,
// price order. ok is false when the row is complete; the caller then
// appends a fresh row and focuses its name field.
func NextTarget(it Item) (f Field, ok bool) {
	switch {
	case it.Name == "":
		return FieldName, true
	case it.Quantity == nil:
		return FieldQuantity, true
	case !it.Price.Valid:
		return FieldPrice, true
	}
	return 0, false
}

// FocusMsg asks the edit form to move input focus to a specific
// control. Requests are fire-and-forget: if the control is gone by the
// time the message arrives, the form drops it.
type FocusMsg struct {
	Field  Field
	ItemID int
}

// CycleMsg asks the edit form to advance focus one control in form
// order, ignoring field-completion state.
type CycleMsg struct {
	Backward bool
}

// Focus schedules a deferred move of input focus to the given control.
func Focus(f Field, itemID int) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Field: f, ItemID: itemID}
	}
}

// Cycle schedules a deferred generic focus advance (or retreat).
func Cycle(backward bool) tea.Cmd {
	return func() tea.Msg {
		return CycleMsg{Backward: backward}
	}
}
