package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/buzzy-bird/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"w raises", runeKey('w'), core.ActionUp, false},
		{"up raises", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"k raises", runeKey('k'), core.ActionUp, false},
		{"s lowers", runeKey('s'), core.ActionDown, false},
		{"down lowers", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"space sings", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSing, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"x does nothing", runeKey('x'), core.ActionNone, false},
		{"b does nothing", runeKey('b'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tt.msg.String(), got, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestIsVoice(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionSing} {
		if !IsVoice(a) {
			t.Errorf("%s should drive the voice", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionConfirm, core.ActionNone} {
		if IsVoice(a) {
			t.Errorf("%s should not drive the voice", a)
		}
	}
}
