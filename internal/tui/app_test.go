package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tillpad/tillpad/internal/config"
	"github.com/tillpad/tillpad/internal/sale"
	"github.com/tillpad/tillpad/internal/store"
	"github.com/tillpad/tillpad/internal/tax"
)

func newTestApp() *App {
	cfg := config.Config{UI: config.UIConfig{CurrencySymbol: "$", Theme: "dark"}}
	return New(cfg, store.New(), tax.DefaultPolicy())
}

func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

// deliver pumps a command's messages back into the model until the
// chain goes quiet, the way the bubbletea runtime would.
func deliver(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			deliver(a, c)
		}
		return
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return
	}
	_, next := a.Update(msg)
	deliver(a, next)
}

func escKey() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEscape} }
func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func tabKey() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
func shiftTabKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyShiftTab}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(a *App, s string) {
	for _, r := range s {
		deliver(a, press(a, runeKey(r)))
	}
}

func TestInitialScreenIsList(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	require.Equal(t, screenList, a.scr.kind)
	require.Nil(t, a.form)
}

func TestNewSaleOpensDraftInEditMode(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))

	require.Equal(t, screenSale, a.scr.kind)
	require.Equal(t, sale.ModeEdit, a.scr.mode)
	require.Equal(t, 0, a.scr.saleID)
	require.True(t, a.store.IsDraft(a.scr.saleID))
	require.NotNil(t, a.form)
}

func TestEscapeAscension(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	require.Equal(t, sale.ModeEdit, a.scr.mode)

	// Edit -> View.
	deliver(a, press(a, escKey()))
	require.Equal(t, screenSale, a.scr.kind)
	require.Equal(t, sale.ModeView, a.scr.mode)
	require.Nil(t, a.form)

	// View -> List.
	deliver(a, press(a, escKey()))
	require.Equal(t, screenList, a.scr.kind)

	// List: escape is a no-op.
	deliver(a, press(a, escKey()))
	require.Equal(t, screenList, a.scr.kind)
	require.False(t, a.quitting)
}

func TestSaveCommitsDraftAndAllocatesNext(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	deliver(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))

	require.Equal(t, []int{0}, a.store.CommittedIDs())
	require.Equal(t, screenSale, a.scr.kind)
	require.Equal(t, sale.ModeView, a.scr.mode)
	require.Equal(t, 0, a.scr.saleID)
	require.Equal(t, 1, a.draftID())

	// Second draft commits under the next id; ids never repeat.
	deliver(a, press(a, escKey()))
	deliver(a, press(a, escKey()))
	deliver(a, press(a, runeKey('n')))
	require.Equal(t, 1, a.scr.saleID)
	deliver(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))

	require.Equal(t, []int{0, 1}, a.store.CommittedIDs())
	require.Equal(t, 1, a.scr.saleID)
	require.Equal(t, 2, a.draftID())
}

func TestSaveOnCommittedSaleIsNoopCommit(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	deliver(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))
	require.Equal(t, 1, a.store.Len())

	// Re-edit the committed sale and save again.
	deliver(a, press(a, runeKey('e')))
	require.Equal(t, sale.ModeEdit, a.scr.mode)
	deliver(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))

	require.Equal(t, 1, a.store.Len())
	require.Equal(t, sale.ModeView, a.scr.mode)
	require.Equal(t, 0, a.scr.saleID)
	require.Equal(t, 1, a.draftID())
}

func TestSelectSaleOpensViewMode(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	deliver(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))
	deliver(a, press(a, escKey()))
	require.Equal(t, screenList, a.scr.kind)

	deliver(a, press(a, enterKey()))
	require.Equal(t, screenSale, a.scr.kind)
	require.Equal(t, sale.ModeView, a.scr.mode)
	require.Equal(t, 0, a.scr.saleID)
	require.Nil(t, a.form)
}

func TestStartEditSchedulesFocusFirstControl(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	deliver(a, press(a, escKey())) // now viewing the draft

	cmd := press(a, runeKey('e'))
	require.Equal(t, sale.ModeEdit, a.scr.mode)
	require.NotNil(t, cmd)

	deliver(a, cmd)
	require.NotNil(t, a.form)
	require.Equal(t, 0, a.form.focus)
}

func TestStaleFocusRequestIsBenignNoop(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	deliver(a, press(a, escKey()))

	// Capture the focus effect, then leave edit mode before it lands.
	cmd := press(a, runeKey('e'))
	require.NotNil(t, cmd)
	deliver(a, press(a, escKey()))
	require.Nil(t, a.form)

	require.NotPanics(t, func() { deliver(a, cmd) })
	require.Nil(t, a.form)
	require.Equal(t, sale.ModeView, a.scr.mode)
}

func TestCancelPreservesEdits(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	typeString(a, "Lunch")
	deliver(a, press(a, escKey()))

	require.Equal(t, sale.ModeView, a.scr.mode)
	_, draft := a.store.Draft()
	require.Equal(t, "Lunch", draft.Name)
}

func TestTabCyclesFocus(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	deliver(a, press(a, runeKey('n')))
	require.Equal(t, 0, a.form.focus)

	// A rowless form has three controls: name, service, gratuity.
	deliver(a, press(a, tabKey()))
	require.Equal(t, 1, a.form.focus)
	deliver(a, press(a, tabKey()))
	require.Equal(t, 2, a.form.focus)
	deliver(a, press(a, tabKey()))
	require.Equal(t, 0, a.form.focus)
	deliver(a, press(a, shiftTabKey()))
	require.Equal(t, 2, a.form.focus)
}

func TestQuitFromList(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	cmd := press(a, runeKey('q'))
	require.True(t, a.quitting)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestListFilter(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	_, draft := a.store.Draft()
	draft.Name = "Dinner"
	a.store.Commit()
	_, draft = a.store.Draft()
	draft.Name = "Breakfast"
	a.store.Commit()

	require.Equal(t, []int{0, 1}, a.visibleSaleIDs())

	deliver(a, press(a, runeKey('/')))
	require.True(t, a.list.filtering)
	typeString(a, "bre")
	deliver(a, press(a, enterKey()))
	require.False(t, a.list.filtering)
	require.Equal(t, []int{1}, a.visibleSaleIDs())

	// Escape clears the filter.
	deliver(a, press(a, runeKey('/')))
	deliver(a, press(a, escKey()))
	require.Equal(t, []int{0, 1}, a.visibleSaleIDs())
}

func TestViewRenders(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	require.Contains(t, a.View(), "Receipts")

	deliver(a, press(a, runeKey('n')))
	require.Contains(t, a.View(), "New Sale")
	require.Contains(t, a.View(), "Edit")

	deliver(a, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))
	require.Contains(t, a.View(), "Total")
	require.Contains(t, a.View(), "saved sale #0")
}
