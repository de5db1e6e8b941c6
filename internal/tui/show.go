package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// renderShow draws the read-only sale screen: item table plus the
// derived totals.
func (a *App) renderShow() string {
	s := a.store.Get(a.scr.saleID)
	var b strings.Builder

	if len(s.Items) == 0 {
		b.WriteString(dimStyle.Render("no items"))
		b.WriteString("\n")
	}
	for _, it := range s.Items {
		name := it.Name
		if name == "" {
			name = dimStyle.Render("(unnamed)")
		}
		qty := it.QuantityString()
		if qty == "" {
			qty = "-"
		}
		price := it.PriceString()
		if price == "" {
			price = "-"
		}
		b.WriteString(fmt.Sprintf("%-24s %4s × %-10s %s  %s\n",
			name,
			qty,
			price,
			taxTagStyle.Render("["+it.TaxGroup.String()+"]"),
			a.money(it.LineTotal()),
		))
	}

	b.WriteString("\n")
	b.WriteString(a.renderTotals())
	return b.String()
}

// renderTotals draws the four components and the total. Used by both
// the show and edit screens; always recomputed from current fields.
func (a *App) renderTotals() string {
	s := a.store.Get(a.scr.saleID)
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), value))
	}
	row("Subtotal", a.money(s.Subtotal()))
	row("Tax", a.money(s.Tax(a.policy)))
	if s.ServiceChargePercent.Valid {
		row(fmt.Sprintf("Service (%s%%)", s.ServiceChargePercent.Decimal.String()), a.money(s.ServiceCharge()))
	} else {
		row("Service", a.money(s.ServiceCharge()))
	}
	if s.Gratuity.Valid {
		row("Gratuity", a.money(s.Gratuity.Decimal))
	} else {
		row("Gratuity", a.money(decimal.Zero))
	}
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", "Total")),
		totalStyle.Render(a.money(s.Total(a.policy))),
	))
	return b.String()
}
