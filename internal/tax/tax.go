// Package tax classifies sale items and maps each classification to a
// tax rate.
package tax

import "github.com/shopspring/decimal"

// Group is an item's tax classification. It is fixed at item creation
// and only changed by an explicit edit.
type Group int

const (
	Food Group = iota
	Standard
	Alcohol
	Zero

	groupCount
)

func (g Group) String() string {
	switch g {
	case Food:
		return "food"
	case Standard:
		return "standard"
	case Alcohol:
		return "alcohol"
	case Zero:
		return "zero"
	}
	return "unknown"
}

// Next returns the following group, wrapping around. The edit form
// uses it to cycle a row's classification.
func (g Group) Next() Group {
	return (g + 1) % groupCount
}

// Policy maps groups to rates. Lookup only; rates never change while a
// sale is open.
type Policy map[Group]decimal.Decimal

// DefaultPolicy returns the built-in rates, used when no config
// overrides them.
func DefaultPolicy() Policy {
	return Policy{
		Food:     decimal.NewFromFloat(0.05),
		Standard: decimal.NewFromFloat(0.08),
		Alcohol:  decimal.NewFromFloat(0.12),
		Zero:     decimal.Zero,
	}
}

// Rate returns the rate for g, or zero for groups the policy does not
// cover.
func (p Policy) Rate(g Group) decimal.Decimal {
	if r, ok := p[g]; ok {
		return r
	}
	return decimal.Zero
}
