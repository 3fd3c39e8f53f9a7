package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Retake key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Retake: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retake quiz"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// answeringKeys and finishedKeys adapt the help line to the current screen
type answeringKeys struct{ keyMap }

func (k answeringKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k answeringKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type finishedKeys struct{ keyMap }

func (k finishedKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Retake, k.Quit}
}

func (k finishedKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
