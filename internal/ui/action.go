package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind identifies a user intent decoded from a key press.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionTop
	ActionBottom
	ActionEnter
	ActionBack
	ActionHelp
	ActionRefresh
	ActionNewSecret
	ActionNewVersion
	ActionDelete
	ActionCopy
	ActionToggleValue
	ActionEnable
	ActionDisable
	ActionOpenProjects
	ActionChar
	ActionBackspace
	ActionCursorLeft
	ActionCursorRight
)

// Action is a decoded user intent. Char carries the typed rune for
// ActionChar.
type Action struct {
	Kind ActionKind
	Char rune
}

// Decode maps a key press to an Action. When textEntry is true the key
// is interpreted as text editing input: printable runes become
// ActionChar and only a small set of control keys keep their meaning.
func (k KeyMap) Decode(msg tea.KeyMsg, textEntry bool) Action {
	if textEntry {
		return k.decodeText(msg)
	}
	return k.decodeCommand(msg)
}

func (k KeyMap) decodeCommand(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return Action{Kind: ActionQuit}
	case key.Matches(msg, k.Up):
		return Action{Kind: ActionUp}
	case key.Matches(msg, k.Down):
		return Action{Kind: ActionDown}
	case key.Matches(msg, k.Top):
		return Action{Kind: ActionTop}
	case key.Matches(msg, k.Bottom):
		return Action{Kind: ActionBottom}
	case key.Matches(msg, k.Enter):
		return Action{Kind: ActionEnter}
	case key.Matches(msg, k.Back):
		return Action{Kind: ActionBack}
	case key.Matches(msg, k.Help):
		return Action{Kind: ActionHelp}
	case key.Matches(msg, k.Refresh):
		return Action{Kind: ActionRefresh}
	case key.Matches(msg, k.NewSecret):
		return Action{Kind: ActionNewSecret}
	case key.Matches(msg, k.NewVersion):
		return Action{Kind: ActionNewVersion}
	case key.Matches(msg, k.Delete):
		return Action{Kind: ActionDelete}
	case key.Matches(msg, k.Copy):
		return Action{Kind: ActionCopy}
	case key.Matches(msg, k.ToggleValue):
		return Action{Kind: ActionToggleValue}
	case key.Matches(msg, k.Enable):
		return Action{Kind: ActionEnable}
	case key.Matches(msg, k.Disable):
		return Action{Kind: ActionDisable}
	case key.Matches(msg, k.OpenProjects):
		return Action{Kind: ActionOpenProjects}
	}
	return Action{Kind: ActionNone}
}

func (k KeyMap) decodeText(msg tea.KeyMsg) Action {
	switch msg.Type {
	case tea.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tea.KeyEnter:
		return Action{Kind: ActionEnter}
	case tea.KeyEsc:
		return Action{Kind: ActionBack}
	case tea.KeyBackspace:
		return Action{Kind: ActionBackspace}
	case tea.KeyLeft:
		return Action{Kind: ActionCursorLeft}
	case tea.KeyRight:
		return Action{Kind: ActionCursorRight}
	case tea.KeySpace:
		return Action{Kind: ActionChar, Char: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return Action{Kind: ActionChar, Char: msg.Runes[0]}
		}
	}
	return Action{Kind: ActionNone}
}
