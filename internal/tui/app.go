// Package tui hosts the terminal workflow: the list of committed
// sales and the view/edit screens for one sale. All screen
// transitions, commits and focus moves are decided here or bubbled up
// from the sale package; the render code only draws.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/tillpad/tillpad/internal/action"
	"github.com/tillpad/tillpad/internal/config"
	"github.com/tillpad/tillpad/internal/sale"
	"github.com/tillpad/tillpad/internal/store"
	"github.com/tillpad/tillpad/internal/tax"
)

const appName = "Tillpad"

type screenKind int

const (
	screenList screenKind = iota
	screenSale
)

// screen identifies what the terminal shows. It carries only a sale
// id; the sale itself is always resolved live through the store, so a
// screen can never display a stale copy.
type screen struct {
	kind   screenKind
	mode   sale.Mode
	saleID int
}

func listScreen() screen {
	return screen{kind: screenList}
}

func saleScreen(mode sale.Mode, id int) screen {
	return screen{kind: screenSale, mode: mode, saleID: id}
}

// saleMsg wraps a child message with the sale id it targets: the one
// level of remapping an action travels through on its way up.
type saleMsg struct {
	id  int
	msg tea.Msg
}

// App is the bubbletea model for the whole program.
type App struct {
	store  *store.Store
	policy tax.Policy
	cfg    config.Config
	keys   keyMap

	scr    screen
	list   listState
	form   *editForm
	status string

	width    int
	height   int
	quitting bool
}

// New returns the application model showing the list screen.
func New(cfg config.Config, st *store.Store, policy tax.Policy) *App {
	applyTheme(cfg.UI.Theme)
	return &App{
		store:  st,
		policy: policy,
		cfg:    cfg,
		keys:   newKeyMap(),
		scr:    listScreen(),
		list:   newListState(),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil

	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		// The filter input outranks hotkeys while it is open,
		// otherwise esc could never close it.
		if a.scr.kind == screenList && a.list.filtering {
			return a.updateListFilter(m)
		}
		if hk, ok := hotkeyFor(m); ok {
			return a.handleHotkey(hk)
		}
		switch a.scr.kind {
		case screenList:
			return a.updateList(m)
		case screenSale:
			if a.scr.mode == sale.ModeView {
				return a.updateShow(m)
			}
			return a.updateEdit(m)
		}
		return a, nil

	case saleMsg:
		return a.routeSale(m.id, m.msg)
	}
	return a, nil
}

// hotkeyFor maps the few key chords that bypass focused controls.
// Everything else is screen-local.
func hotkeyFor(m tea.KeyMsg) (sale.Hotkey, bool) {
	switch m.String() {
	case "esc":
		return sale.Hotkey{Key: sale.KeyEscape}, true
	case "tab":
		return sale.Hotkey{Key: sale.KeyTab}, true
	case "shift+tab":
		return sale.Hotkey{Key: sale.KeyTab, Shift: true}, true
	}
	return sale.Hotkey{}, false
}

// handleHotkey routes a hotkey through the sale's mode-aware handler.
// On the list screen hotkeys are ignored; escape has nowhere further
// to ascend.
func (a *App) handleHotkey(hk sale.Hotkey) (tea.Model, tea.Cmd) {
	if a.scr.kind != screenSale {
		return a, nil
	}
	id := a.scr.saleID
	act := sale.HandleHotkey(a.scr.mode, hk).Map(func(m tea.Msg) tea.Msg {
		return saleMsg{id: id, msg: m}
	})
	var insCmd tea.Cmd
	if act.Instruction != nil {
		insCmd = a.perform(id, *act.Instruction)
	}
	return a, action.Chain(insCmd, act.Cmd)
}

// routeSale delivers a wrapped message to the sale identified by id.
// Update messages run the child update logic; focus messages go to the
// edit form, and silently die if the form has moved on.
func (a *App) routeSale(id int, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case sale.Msg:
		return a.updateSale(id, m)
	case sale.FocusMsg:
		if a.form != nil && a.form.saleID == id {
			return a, a.form.focusField(m)
		}
		return a, nil
	case sale.CycleMsg:
		if a.form != nil && a.form.saleID == id {
			return a, a.form.cycle(m.Backward)
		}
		return a, nil
	}
	return a, nil
}

// updateSale runs the child update for one sale and interprets the
// resulting action: instruction first, then the child's deferred
// effect, in that order.
func (a *App) updateSale(id int, msg sale.Msg) (tea.Model, tea.Cmd) {
	s := a.store.Get(id)
	act := sale.Update(s, a.store.Items(), msg).Map(func(m tea.Msg) tea.Msg {
		return saleMsg{id: id, msg: m}
	})

	var insCmd tea.Cmd
	if act.Instruction != nil {
		insCmd = a.perform(id, *act.Instruction)
	}
	a.syncForm()
	return a, action.Chain(insCmd, act.Cmd)
}

// perform executes the screen or store side effect an instruction
// asks for. It may return a deferred effect of its own, which the
// caller chains ahead of the child's.
func (a *App) perform(id int, ins sale.Instruction) tea.Cmd {
	slog.Debug("instruction", "sale", id, "instruction", ins)
	switch ins {
	case sale.Back:
		if a.scr.kind != screenSale {
			return nil
		}
		if a.scr.mode == sale.ModeEdit {
			a.setScreen(saleScreen(sale.ModeView, a.scr.saleID))
		} else {
			a.setScreen(listScreen())
		}

	case sale.StartEdit:
		a.setScreen(saleScreen(sale.ModeEdit, id))

	case sale.Cancel:
		// Field edits stay applied; cancel only leaves edit mode.
		a.setScreen(saleScreen(sale.ModeView, id))

	case sale.Save:
		if a.store.IsDraft(id) {
			committed := a.store.Commit()
			slog.Info("committed sale", "id", committed, "next_draft", a.draftID())
			a.status = fmt.Sprintf("saved sale #%d", committed)
			a.setScreen(saleScreen(sale.ModeView, committed))
		} else {
			// Already in the store; nothing to commit.
			a.status = fmt.Sprintf("saved sale #%d", id)
			a.setScreen(saleScreen(sale.ModeView, id))
		}
	}
	return nil
}

// setScreen transitions the workflow and keeps the edit form in step:
// the form exists exactly while an edit screen is showing.
func (a *App) setScreen(next screen) {
	slog.Debug("screen", "kind", int(next.kind), "mode", next.mode.String(), "sale", next.saleID)
	a.scr = next
	if next.kind == screenSale && next.mode == sale.ModeEdit {
		a.form = newEditForm(next.saleID, a.store.Get(next.saleID))
	} else {
		a.form = nil
	}
}

// syncForm reconciles form inputs with the sale's current rows after
// an update that may have added or removed items.
func (a *App) syncForm() {
	if a.form == nil || !a.store.Has(a.form.saleID) {
		return
	}
	a.form.sync(a.store.Get(a.form.saleID))
}

func (a *App) draftID() int {
	id, _ := a.store.Draft()
	return id
}

// updateShow handles keys on the read-only sale screen.
func (a *App) updateShow(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(m, a.keys.Edit), key.Matches(m, a.keys.Select):
		return a.updateSale(a.scr.saleID, sale.StartEditMsg{})
	}
	return a, nil
}

// saleName resolves the display name for a sale id, with the draft
// shown as "New Sale".
func (a *App) saleName(id int) string {
	if a.store.IsDraft(id) {
		return "New Sale"
	}
	if name := a.store.Get(id).Name; name != "" {
		return name
	}
	return fmt.Sprintf("Sale #%d", id)
}

func (a *App) title() string {
	if a.scr.kind == screenSale {
		name := a.saleName(a.scr.saleID)
		if a.scr.mode == sale.ModeEdit {
			return fmt.Sprintf("%s • %s • Edit", appName, name)
		}
		return fmt.Sprintf("%s • %s", appName, name)
	}
	return fmt.Sprintf("%s • Receipts", appName)
}

func (a *App) money(d decimal.Decimal) string {
	return a.cfg.UI.CurrencySymbol + d.StringFixed(2)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var body string
	var help []key.Binding
	switch {
	case a.scr.kind == screenList:
		body = a.renderList()
		help = a.keys.listHelp()
	case a.scr.mode == sale.ModeView:
		body = a.renderShow()
		help = a.keys.showHelp()
	default:
		body = a.renderEdit()
		help = a.keys.editHelp()
	}

	out := titleStyle.Render(a.title()) + "\n\n" + body + "\n"
	if a.status != "" {
		out += statusStyle.Render(a.status) + "\n"
	}
	out += footerStyle.Render(renderHelp(help))
	return out
}

func renderHelp(bindings []key.Binding) string {
	s := ""
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		s += b.Help().Key + " " + b.Help().Desc
	}
	return s
}
