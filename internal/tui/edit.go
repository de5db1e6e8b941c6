package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tillpad/tillpad/internal/sale"
)

// formRow holds the three inputs for one line item.
type formRow struct {
	itemID   int
	name     textinput.Model
	quantity textinput.Model
	price    textinput.Model
}

// editForm owns the textinput models for one sale's edit screen. The
// sale aggregate stays the source of truth: every keystroke is played
// back into it through the sale messages, and rows are reconciled
// whenever items appear or disappear. Input values are seeded once at
// creation and never overwritten afterwards, so typing is never
// clobbered by a sync.
type editForm struct {
	saleID   int
	name     textinput.Model
	rows     []formRow
	service  textinput.Model
	gratuity textinput.Model
	focus    int
}

func newInput(placeholder, value string, width int) textinput.Model {
	inp := textinput.New()
	inp.Prompt = ""
	inp.Placeholder = placeholder
	inp.SetValue(value)
	inp.Width = width
	inp.CharLimit = 64
	return inp
}

func newFormRow(it sale.Item) formRow {
	return formRow{
		itemID:   it.ID,
		name:     newInput("item", it.Name, 20),
		quantity: newInput("qty", it.QuantityString(), 5),
		price:    newInput("price", it.PriceString(), 9),
	}
}

func newEditForm(id int, s *sale.Sale) *editForm {
	f := &editForm{
		saleID:   id,
		name:     newInput("sale name", s.Name, 24),
		service:  newInput("%", "", 6),
		gratuity: newInput("amount", "", 9),
	}
	if s.ServiceChargePercent.Valid {
		f.service.SetValue(s.ServiceChargePercent.Decimal.String())
	}
	if s.Gratuity.Valid {
		f.gratuity.SetValue(s.Gratuity.Decimal.StringFixed(2))
	}
	for _, it := range s.Items {
		f.rows = append(f.rows, newFormRow(it))
	}
	f.applyFocus(0)
	return f
}

// controls returns every input in focus order: sale name, then each
// row's name/quantity/price, then service charge and gratuity.
func (f *editForm) controls() []*textinput.Model {
	cs := make([]*textinput.Model, 0, 3+3*len(f.rows))
	cs = append(cs, &f.name)
	for i := range f.rows {
		cs = append(cs, &f.rows[i].name, &f.rows[i].quantity, &f.rows[i].price)
	}
	return append(cs, &f.service, &f.gratuity)
}

func (f *editForm) count() int {
	return 3 + 3*len(f.rows)
}

// applyFocus moves focus to control i (clamped) without producing a
// command. setFocus is the command-producing variant.
func (f *editForm) applyFocus(i int) {
	if i < 0 {
		i = 0
	}
	if i >= f.count() {
		i = f.count() - 1
	}
	cs := f.controls()
	for _, c := range cs {
		c.Blur()
	}
	f.focus = i
	cs[i].Focus()
}

func (f *editForm) setFocus(i int) tea.Cmd {
	f.applyFocus(i)
	return textinput.Blink
}

// cycle is the generic focus-order advance: tab and shift+tab, blind
// to field-completion state.
func (f *editForm) cycle(backward bool) tea.Cmd {
	dir := 1
	if backward {
		dir = -1
	}
	return f.setFocus((f.focus + dir + f.count()) % f.count())
}

// focusField honors a deferred focus request. A target that no longer
// exists (the row was removed meanwhile) is dropped without complaint.
func (f *editForm) focusField(m sale.FocusMsg) tea.Cmd {
	switch m.Field {
	case sale.FieldSaleName:
		return f.setFocus(0)
	case sale.FieldServiceCharge:
		return f.setFocus(f.count() - 2)
	case sale.FieldGratuity:
		return f.setFocus(f.count() - 1)
	case sale.FieldName, sale.FieldQuantity, sale.FieldPrice:
		for i, r := range f.rows {
			if r.itemID != m.ItemID {
				continue
			}
			off := 0
			switch m.Field {
			case sale.FieldQuantity:
				off = 1
			case sale.FieldPrice:
				off = 2
			}
			return f.setFocus(1 + 3*i + off)
		}
	}
	return nil
}

// sync reconciles form rows with the sale's items: new items get fresh
// inputs, removed items lose theirs, surviving inputs keep their text
// and caret.
func (f *editForm) sync(s *sale.Sale) {
	existing := make(map[int]formRow, len(f.rows))
	for _, r := range f.rows {
		existing[r.itemID] = r
	}
	rows := make([]formRow, 0, len(s.Items))
	for _, it := range s.Items {
		if r, ok := existing[it.ID]; ok {
			rows = append(rows, r)
			continue
		}
		rows = append(rows, newFormRow(it))
	}
	f.rows = rows
	if f.focus >= f.count() {
		f.applyFocus(f.count() - 1)
	}
}

// focusedItem reports which item the focused control belongs to, if
// any.
func (f *editForm) focusedItem() (int, bool) {
	if f.focus >= 1 && f.focus <= 3*len(f.rows) {
		return f.rows[(f.focus-1)/3].itemID, true
	}
	return 0, false
}

// updateFocused feeds a key to the focused input.
func (f *editForm) updateFocused(m tea.KeyMsg) tea.Cmd {
	cs := f.controls()
	updated, cmd := cs[f.focus].Update(m)
	*cs[f.focus] = updated
	return cmd
}

// editMsgForFocused translates the focused input's current value into
// the sale message that keeps the aggregate in step.
func (f *editForm) editMsgForFocused() (sale.Msg, bool) {
	i, rows := f.focus, len(f.rows)
	switch {
	case i == 0:
		return sale.NameInputMsg{Value: f.name.Value()}, true
	case i <= 3*rows:
		r := f.rows[(i-1)/3]
		switch (i - 1) % 3 {
		case 0:
			return sale.UpdateItemMsg{ID: r.itemID, Field: sale.FieldName, Value: r.name.Value()}, true
		case 1:
			return sale.UpdateItemMsg{ID: r.itemID, Field: sale.FieldQuantity, Value: r.quantity.Value()}, true
		default:
			return sale.UpdateItemMsg{ID: r.itemID, Field: sale.FieldPrice, Value: r.price.Value()}, true
		}
	case i == 3*rows+1:
		return sale.ServiceChargeMsg{Value: f.service.Value()}, true
	case i == 3*rows+2:
		return sale.GratuityMsg{Value: f.gratuity.Value()}, true
	}
	return nil, false
}

// submitMsg translates enter on the focused control into a row-submit
// event. The charge fields have no submit semantics; the caller falls
// back to a generic focus advance.
func (f *editForm) submitMsg() (sale.Msg, bool) {
	if f.focus == 0 {
		return sale.NameSubmitMsg{}, true
	}
	if id, ok := f.focusedItem(); ok {
		return sale.SubmitItemMsg{ID: id}, true
	}
	return nil, false
}

// updateEdit handles keys on the edit screen.
func (a *App) updateEdit(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form
	if f == nil {
		return a, nil
	}
	id := f.saleID

	switch {
	case key.Matches(m, a.keys.Save):
		return a.updateSale(id, sale.SaveMsg{})
	case key.Matches(m, a.keys.AddItem):
		return a.updateSale(id, sale.AddItemMsg{})
	case key.Matches(m, a.keys.RemoveItem):
		if itemID, ok := f.focusedItem(); ok {
			return a.updateSale(id, sale.RemoveItemMsg{ID: itemID})
		}
		return a, nil
	case key.Matches(m, a.keys.TaxGroup):
		if itemID, ok := f.focusedItem(); ok {
			if it := a.store.Get(id).Item(itemID); it != nil {
				return a.updateSale(id, sale.UpdateItemMsg{
					ID:    itemID,
					Field: sale.FieldTaxGroup,
					Group: it.TaxGroup.Next(),
				})
			}
		}
		return a, nil
	case m.Type == tea.KeyEnter:
		if msg, ok := f.submitMsg(); ok {
			return a.updateSale(id, msg)
		}
		return a, f.cycle(false)
	}

	blink := f.updateFocused(m)
	msg, ok := f.editMsgForFocused()
	if !ok {
		return a, blink
	}
	_, cmd := a.updateSale(id, msg)
	return a, tea.Batch(blink, cmd)
}

func (a *App) renderEdit() string {
	f := a.form
	s := a.store.Get(f.saleID)
	var b strings.Builder

	b.WriteString(labelStyle.Render("Name     ") + f.name.View() + "\n\n")

	if len(f.rows) == 0 {
		b.WriteString(dimStyle.Render("no items — ctrl+a to add, or submit the name") + "\n")
	}
	for _, r := range f.rows {
		tag := ""
		if it := s.Item(r.itemID); it != nil {
			tag = taxTagStyle.Render("[" + it.TaxGroup.String() + "]")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			r.name.View(), r.quantity.View(), r.price.View(), tag))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Service %") + " " + f.service.View() + "\n")
	b.WriteString(labelStyle.Render("Gratuity ") + " " + f.gratuity.View() + "\n")
	b.WriteString("\n")
	b.WriteString(a.renderTotals())
	return formBoxStyle.Render(b.String())
}
