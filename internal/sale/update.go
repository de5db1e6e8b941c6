package sale

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tillpad/tillpad/internal/action"
	"github.com/tillpad/tillpad/internal/tax"
)

// Msg is an inbound event for one sale, produced by the show or edit
// screen.
type Msg interface {
	saleMsg()
}

// Show-mode events.
type (
	// BackMsg asks to ascend out of the sale screens.
	BackMsg struct{}
	// StartEditMsg switches the sale into edit mode.
	StartEditMsg struct{}
)

// Edit-mode events.
type (
	// CancelMsg leaves edit mode. Field edits already applied stay
	// applied; there is no rollback.
	CancelMsg struct{}
	// SaveMsg commits the sale if it is the draft.
	SaveMsg struct{}
	// NameInputMsg carries the sale name as typed.
	NameInputMsg struct{ Value string }
	// NameSubmitMsg is enter on the sale name field.
	NameSubmitMsg struct{}
	// AddItemMsg appends a blank line item.
	AddItemMsg struct{}
	// RemoveItemMsg deletes the line with the given id.
	RemoveItemMsg struct{ ID int }
	// UpdateItemMsg edits one field of one line. Text fields carry the
	// raw input; Group is only read for FieldTaxGroup.
	UpdateItemMsg struct {
		ID    int
		Field Field
		Value string
		Group tax.Group
	}
	// SubmitItemMsg is enter on any field of a line: advance focus to
	// the line's first incomplete field, or append a new line.
	SubmitItemMsg struct{ ID int }
	// ServiceChargeMsg carries the service charge percent as typed.
	ServiceChargeMsg struct{ Value string }
	// GratuityMsg carries the gratuity amount as typed.
	GratuityMsg struct{ Value string }
)

func (BackMsg) saleMsg()          {}
func (StartEditMsg) saleMsg()     {}
func (CancelMsg) saleMsg()        {}
func (SaveMsg) saleMsg()          {}
func (NameInputMsg) saleMsg()     {}
func (NameSubmitMsg) saleMsg()    {}
func (AddItemMsg) saleMsg()       {}
func (RemoveItemMsg) saleMsg()    {}
func (UpdateItemMsg) saleMsg()    {}
func (SubmitItemMsg) saleMsg()    {}
func (ServiceChargeMsg) saleMsg() {}
func (GratuityMsg) saleMsg()      {}

// Instruction is a request the sale bubbles up to its owner. The sale
// never changes screens itself.
type Instruction int

const (
	Back Instruction = iota
	Save
	StartEdit
	Cancel
)

func (i Instruction) String() string {
	switch i {
	case Back:
		return "back"
	case Save:
		return "save"
	case StartEdit:
		return "start-edit"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// Update applies one event to the sale and reports the resulting
// action. It is agnostic to whether the sale is the draft or a
// committed entry; the caller resolved that before handing it the
// sale.
func Update(s *Sale, items *IDAllocator, msg Msg) action.Action[Instruction] {
	switch m := msg.(type) {
	case BackMsg:
		return action.Instruct(Back)
	case StartEditMsg:
		// Entering edit mode lands input focus on the first control.
		return action.Instruct(StartEdit).WithCmd(Focus(FieldSaleName, 0))
	case CancelMsg:
		return action.Instruct(Cancel)
	case SaveMsg:
		return action.Instruct(Save)

	case NameInputMsg:
		s.Name = m.Value
		return action.None[Instruction]()
	case NameSubmitMsg:
		// The edit form must always have a row to land on.
		if len(s.Items) == 0 {
			s.Items = append(s.Items, NewItem(items))
		}
		return action.Do[Instruction](Cycle(false))

	case AddItemMsg:
		s.Items = append(s.Items, NewItem(items))
		return action.None[Instruction]()
	case RemoveItemMsg:
		kept := s.Items[:0]
		for _, it := range s.Items {
			if it.ID != m.ID {
				kept = append(kept, it)
			}
		}
		s.Items = kept
		return action.None[Instruction]()

	case UpdateItemMsg:
		it := s.Item(m.ID)
		if it == nil {
			return action.None[Instruction]()
		}
		switch m.Field {
		case FieldName:
			it.Name = m.Value
		case FieldPrice:
			it.Price = parseAmount(m.Value)
		case FieldQuantity:
			it.Quantity = parseQuantity(m.Value)
		case FieldTaxGroup:
			it.TaxGroup = m.Group
		}
		return action.None[Instruction]()

	case SubmitItemMsg:
		it := s.Item(m.ID)
		if it == nil {
			return action.None[Instruction]()
		}
		if f, ok := NextTarget(*it); ok {
			return action.Do[Instruction](Focus(f, it.ID))
		}
		next := NewItem(items)
		s.Items = append(s.Items, next)
		return action.Do[Instruction](Focus(FieldName, next.ID))

	case ServiceChargeMsg:
		s.ServiceChargePercent = parseAmount(m.Value)
		return action.None[Instruction]()
	case GratuityMsg:
		s.Gratuity = parseAmount(m.Value)
		return action.None[Instruction]()
	}
	return action.None[Instruction]()
}

// parseAmount turns field text into an optional decimal. Invalid text
// is not an error: the form holds in-progress data, so the field just
// goes back to unset.
func parseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// parseQuantity is parseAmount for the quantity field: a non-negative
// integer or unset.
func parseQuantity(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
