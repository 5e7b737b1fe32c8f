package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		held   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, true},
		{"a", runeKey('a'), core.ActionLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, true},
		{"d", runeKey('d'), core.ActionRight, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, true},
		{"w", runeKey('w'), core.ActionUp, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, true},
		{"s", runeKey('s'), core.ActionDown, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, held := km.Action(tc.msg)
			if action != tc.action {
				t.Errorf("Action() = %v, expected %v", action, tc.action)
			}
			if held != tc.held {
				t.Errorf("held = %v, expected %v", held, tc.held)
			}
		})
	}
}
