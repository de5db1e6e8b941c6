package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	NewSale    key.Binding
	Filter     key.Binding
	Quit       key.Binding
	Edit       key.Binding
	Back       key.Binding
	Cancel     key.Binding
	Save       key.Binding
	AddItem    key.Binding
	RemoveItem key.Binding
	TaxGroup   key.Binding
	NextField  key.Binding
	PrevField  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "navigate")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		NewSale:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new sale")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		AddItem:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add item")),
		RemoveItem: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove item")),
		TaxGroup:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tax group")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.NewSale, k.Filter, k.Quit}
}

func (k keyMap) showHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Back, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.NextField, k.AddItem, k.RemoveItem, k.TaxGroup, k.Save, k.Cancel}
}
