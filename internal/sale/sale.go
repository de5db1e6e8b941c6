// Package sale holds the sale aggregate: line items, charges, derived
// totals, and the child update logic that edits them.
package sale

import (
	"github.com/shopspring/decimal"

	"github.com/tillpad/tillpad/internal/tax"
)

// Mode selects between the read-only and editable sale screens.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// Item is one line of a sale. Price and Quantity are unset until the
// user enters them; unset is distinct from zero.
type Item struct {
	ID       int
	Name     string
	Price    decimal.NullDecimal
	Quantity *int
	TaxGroup tax.Group
}

// NewItem returns a blank item with a fresh id from the allocator.
// Ids are stable for the life of the process and never reused.
func NewItem(ids *IDAllocator) Item {
	return Item{ID: ids.Next(), TaxGroup: tax.Food}
}

func (it Item) price() decimal.Decimal {
	if it.Price.Valid {
		return it.Price.Decimal
	}
	return decimal.Zero
}

func (it Item) quantity() decimal.Decimal {
	if it.Quantity == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(*it.Quantity))
}

// LineTotal is price times quantity, with unset fields counted as
// zero.
func (it Item) LineTotal() decimal.Decimal {
	return it.price().Mul(it.quantity())
}

// PriceString renders the price for an input field, empty when unset.
func (it Item) PriceString() string {
	if !it.Price.Valid {
		return ""
	}
	return it.Price.Decimal.StringFixed(2)
}

// QuantityString renders the quantity for an input field, empty when
// unset.
func (it Item) QuantityString() string {
	if it.Quantity == nil {
		return ""
	}
	return decimal.NewFromInt(int64(*it.Quantity)).String()
}

// Sale is one receipt: ordered line items plus sale-level charges.
// Item order is entry order and is meaningful for display and focus
// navigation.
type Sale struct {
	Items                []Item
	ServiceChargePercent decimal.NullDecimal
	Gratuity             decimal.NullDecimal
	Name                 string
}

// New returns a blank sale: no items, no name, no charges.
func New() *Sale {
	return &Sale{}
}

// Item returns the line with the given id, or nil.
func (s *Sale) Item(id int) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// Totals are pure and recomputed on demand; nothing is cached, so a
// total can never go stale against the fields it derives from.

// Subtotal sums price times quantity over all items.
func (s *Sale) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// Tax sums each line total weighted by its group's rate under the
// given policy.
func (s *Sale) Tax(p tax.Policy) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		sum = sum.Add(it.LineTotal().Mul(p.Rate(it.TaxGroup)))
	}
	return sum
}

// ServiceCharge is the subtotal scaled by the service charge percent,
// zero when the percent is unset.
func (s *Sale) ServiceCharge() decimal.Decimal {
	if !s.ServiceChargePercent.Valid {
		return decimal.Zero
	}
	return s.Subtotal().Mul(s.ServiceChargePercent.Decimal.Div(decimal.NewFromInt(100)))
}

// Total is subtotal + tax + service charge + gratuity.
func (s *Sale) Total(p tax.Policy) decimal.Decimal {
	total := s.Subtotal().Add(s.Tax(p)).Add(s.ServiceCharge())
	if s.Gratuity.Valid {
		total = total.Add(s.Gratuity.Decimal)
	}
	return total
}
