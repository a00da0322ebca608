package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Enter        key.Binding
	Back         key.Binding
	Quit         key.Binding
	Help         key.Binding
	Refresh      key.Binding
	NewSecret    key.Binding
	NewVersion   key.Binding
	Delete       key.Binding
	Copy         key.Binding
	ToggleValue  key.Binding
	Enable       key.Binding
	Disable      key.Binding
	OpenProjects key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "b"),
			key.WithHelp("Esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		NewSecret: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new secret"),
		),
		NewVersion: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add version"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete/destroy"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy value"),
		),
		ToggleValue: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show/hide value"),
		),
		Enable: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enable version"),
		),
		Disable: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "disable version"),
		),
		OpenProjects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "switch project"),
		),
	}
}

// FooterBinding is a key hint shown in the footer.
type FooterBinding struct {
	Key  string
	Desc string
}

// ListViewBindings returns the keybindings for the secrets list view.
func ListViewBindings() []FooterBinding {
	return []FooterBinding{
		{Key: "↑↓/jk", Desc: "navigate"},
		{Key: "Enter", Desc: "open"},
		{Key: "n", Desc: "new"},
		{Key: "d", Desc: "delete"},
		{Key: "r", Desc: "refresh"},
		{Key: "p", Desc: "project"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
}

// DetailViewBindings returns the keybindings for the secret detail view.
func DetailViewBindings() []FooterBinding {
	return []FooterBinding{
		{Key: "↑↓/jk", Desc: "versions"},
		{Key: "s", Desc: "show/hide"},
		{Key: "c", Desc: "copy"},
		{Key: "a", Desc: "add version"},
		{Key: "e/x", Desc: "enable/disable"},
		{Key: "d", Desc: "destroy"},
		{Key: "Esc", Desc: "back"},
		{Key: "q", Desc: "quit"},
	}
}

// InputViewBindings returns the keybindings for text input.
func InputViewBindings() []FooterBinding {
	return []FooterBinding{
		{Key: "Enter", Desc: "submit"},
		{Key: "←/→", Desc: "move cursor"},
		{Key: "Esc", Desc: "cancel"},
	}
}

// ConfirmViewBindings returns the keybindings for confirmation dialogs.
func ConfirmViewBindings() []FooterBinding {
	return []FooterBinding{
		{Key: "Enter", Desc: "confirm"},
		{Key: "Esc", Desc: "cancel"},
	}
}

// ProjectViewBindings returns the keybindings for the project selector.
func ProjectViewBindings() []FooterBinding {
	return []FooterBinding{
		{Key: "↑↓/jk", Desc: "navigate"},
		{Key: "Enter", Desc: "switch"},
		{Key: "Esc", Desc: "cancel"},
		{Key: "q", Desc: "quit"},
	}
}

// AuthViewBindings returns the keybindings for the auth required view.
func AuthViewBindings() []FooterBinding {
	return []FooterBinding{
		{Key: "Enter", Desc: "run gcloud login"},
		{Key: "q", Desc: "quit"},
	}
}
