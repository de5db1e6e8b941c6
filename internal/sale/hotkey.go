package sale

import "github.com/tillpad/tillpad/internal/action"

// HotkeyKey is one of the keyboard chords the sale screens care about.
// Everything else is handled by whichever control has focus.
type HotkeyKey int

const (
	KeyEscape HotkeyKey = iota
	KeyTab
)

// Hotkey is a key chord routed to the sale regardless of focus.
type Hotkey struct {
	Key   HotkeyKey
	Shift bool
}

// HandleHotkey interprets a hotkey for the given mode. Escape always
// ascends one level: Cancel out of edit mode, Back out of view mode.
// Tab cycles focus while editing and does nothing in view mode.
func HandleHotkey(mode Mode, h Hotkey) action.Action[Instruction] {
	switch mode {
	case ModeView:
		if h.Key == KeyEscape {
			return action.Instruct(Back)
		}
	case ModeEdit:
		switch h.Key {
		case KeyEscape:
			return action.Instruct(Cancel)
		case KeyTab:
			return action.Do[Instruction](Cycle(h.Shift))
		}
	}
	return action.None[Instruction]()
}
