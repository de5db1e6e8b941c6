package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tillpad/tillpad/internal/sale"
)

// listState is the cursor and filter for the committed-sales list.
type listState struct {
	cursor    int
	filtering bool
	filter    textinput.Model
}

func newListState() listState {
	inp := textinput.New()
	inp.Prompt = "/ "
	inp.Placeholder = "filter by name"
	inp.CharLimit = 64
	return listState{filter: inp}
}

// updateList handles keys on the list screen while the filter input is
// closed.
func (a *App) updateList(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.list.cursor > 0 {
			a.list.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.list.cursor < len(a.visibleSaleIDs())-1 {
			a.list.cursor++
		}
	case key.Matches(m, a.keys.NewSale):
		id, _ := a.store.Draft()
		a.status = ""
		a.setScreen(saleScreen(sale.ModeEdit, id))
	case key.Matches(m, a.keys.Select):
		ids := a.visibleSaleIDs()
		if len(ids) > 0 && a.list.cursor < len(ids) {
			a.status = ""
			a.setScreen(saleScreen(sale.ModeView, ids[a.list.cursor]))
		}
	case key.Matches(m, a.keys.Filter):
		a.list.filtering = true
		a.list.filter.Focus()
		return a, textinput.Blink
	}
	return a, nil
}

// updateListFilter handles keys while the filter input is open.
func (a *App) updateListFilter(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.list.filtering = false
		a.list.filter.SetValue("")
		a.list.filter.Blur()
		a.list.cursor = 0
		return a, nil
	case "enter":
		a.list.filtering = false
		a.list.filter.Blur()
		a.list.cursor = 0
		return a, nil
	}
	var cmd tea.Cmd
	a.list.filter, cmd = a.list.filter.Update(m)
	a.list.cursor = 0
	return a, cmd
}

// visibleSaleIDs returns the committed ids to display, fuzzily ranked
// against the filter text when one is set.
func (a *App) visibleSaleIDs() []int {
	ids := a.store.CommittedIDs()
	query := strings.TrimSpace(a.list.filter.Value())
	if query == "" {
		return ids
	}

	type scored struct {
		id    int
		score float64
	}
	matches := make([]scored, 0, len(ids))
	for _, id := range ids {
		s := nameSimilarity(query, a.saleName(id))
		if s > 0.3 {
			matches = append(matches, scored{id: id, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.id
	}
	return out
}

// nameSimilarity scores how well a name matches the query, in [0, 1].
// Substring matches win outright; otherwise the score is one minus the
// normalized edit distance.
func nameSimilarity(query, name string) float64 {
	q, n := strings.ToLower(query), strings.ToLower(name)
	if strings.Contains(n, q) {
		return 1
	}
	longest := len(q)
	if len(n) > longest {
		longest = len(n)
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(q, n)
	return 1 - float64(dist)/float64(longest)
}

func (a *App) renderList() string {
	var b strings.Builder

	if a.list.filtering || a.list.filter.Value() != "" {
		b.WriteString(a.list.filter.View())
		b.WriteString("\n\n")
	}

	ids := a.visibleSaleIDs()
	if len(ids) == 0 {
		if a.list.filter.Value() != "" {
			b.WriteString(dimStyle.Render("no sales match"))
		} else {
			b.WriteString(dimStyle.Render("no sales yet — press n to start one"))
		}
		b.WriteString("\n")
		return b.String()
	}

	for i, id := range ids {
		s := a.store.Get(id)
		line := fmt.Sprintf("#%-3d %-24s %s  %s",
			id,
			a.saleName(id),
			dimStyle.Render(fmt.Sprintf("%d items", len(s.Items))),
			a.money(s.Total(a.policy)),
		)
		if i == a.list.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
