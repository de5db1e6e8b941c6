// Package action defines the envelope child update logic hands back to
// its parent. A child never changes screens itself; it reports an
// instruction for the parent to interpret, and may schedule a deferred
// effect to run after the current update completes.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action carries the result of a child update: an optional instruction
// interpreted only by the owning parent, and an optional deferred
// effect. Either or both may be absent.
type Action[I any] struct {
	Instruction *I
	Cmd         tea.Cmd
}

// None reports no instruction and no effect.
func None[I any]() Action[I] {
	return Action[I]{}
}

// Instruct reports an instruction for the parent.
func Instruct[I any](ins I) Action[I] {
	return Action[I]{Instruction: &ins}
}

// Do schedules a deferred effect with no instruction.
func Do[I any](cmd tea.Cmd) Action[I] {
	return Action[I]{Cmd: cmd}
}

// WithCmd attaches a deferred effect to the action.
func (a Action[I]) WithCmd(cmd tea.Cmd) Action[I] {
	a.Cmd = cmd
	return a
}

// Map rewrites every message the deferred effect emits. The parent
// uses it to wrap child messages into its own envelope as the action
// travels up one level.
func (a Action[I]) Map(f func(tea.Msg) tea.Msg) Action[I] {
	if a.Cmd == nil {
		return a
	}
	inner := a.Cmd
	a.Cmd = func() tea.Msg {
		return f(inner())
	}
	return a
}

// Chain combines the effect produced by interpreting the instruction
// with the child's own deferred effect. The instruction's effect runs
// first: a Save instruction's post-commit focus request must not be
// pre-empted by a stale child effect aimed at the old draft id.
func Chain(instruction, child tea.Cmd) tea.Cmd {
	switch {
	case instruction == nil:
		return child
	case child == nil:
		return instruction
	}
	return tea.Sequence(instruction, child)
}
