package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDecodeCommandKeys(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want ActionKind
	}{
		{"q quits", runeKey('q'), ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"k moves up", runeKey('k'), ActionUp},
		{"arrow up moves up", tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{"j moves down", runeKey('j'), ActionDown},
		{"g jumps to top", runeKey('g'), ActionTop},
		{"G jumps to bottom", runeKey('G'), ActionBottom},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, ActionEnter},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, ActionBack},
		{"b goes back", runeKey('b'), ActionBack},
		{"r refreshes", runeKey('r'), ActionRefresh},
		{"n creates secret", runeKey('n'), ActionNewSecret},
		{"a adds version", runeKey('a'), ActionNewVersion},
		{"d deletes", runeKey('d'), ActionDelete},
		{"c copies", runeKey('c'), ActionCopy},
		{"s toggles value", runeKey('s'), ActionToggleValue},
		{"e enables", runeKey('e'), ActionEnable},
		{"x disables", runeKey('x'), ActionDisable},
		{"p opens projects", runeKey('p'), ActionOpenProjects},
		{"question mark opens help", runeKey('?'), ActionHelp},
		{"unknown key is none", runeKey('z'), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.Decode(tt.msg, false)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestDecodeTextEntryCapturesRunes(t *testing.T) {
	keys := DefaultKeyMap()

	// Command keys lose their meaning and become text.
	for _, r := range []rune{'q', 'n', 'd', 's', '?'} {
		got := keys.Decode(runeKey(r), true)
		assert.Equal(t, ActionChar, got.Kind)
		assert.Equal(t, r, got.Char)
	}

	got := keys.Decode(tea.KeyMsg{Type: tea.KeySpace}, true)
	assert.Equal(t, ActionChar, got.Kind)
	assert.Equal(t, ' ', got.Char)
}

func TestDecodeTextEntryControlKeys(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want ActionKind
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionBack},
		{tea.KeyMsg{Type: tea.KeyBackspace}, ActionBackspace},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionCursorLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionCursorRight},
	}

	for _, tt := range tests {
		got := keys.Decode(tt.msg, true)
		assert.Equal(t, tt.want, got.Kind)
	}
}
