package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ctchen222/terminal-tic-tac-toe/internal/session"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Reset   key.Binding
	Quit    key.Binding

	// help-only entries
	choose key.Binding
	move   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		choose:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		move:    key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
	}
}

// decode maps a key press onto the controller's input alphabet.
func (k keyMap) decode(msg tea.KeyMsg) session.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return session.InputQuit
	case key.Matches(msg, k.Up):
		return session.InputUp
	case key.Matches(msg, k.Down):
		return session.InputDown
	case key.Matches(msg, k.Left):
		return session.InputLeft
	case key.Matches(msg, k.Right):
		return session.InputRight
	case key.Matches(msg, k.Confirm):
		return session.InputConfirm
	case key.Matches(msg, k.Reset):
		return session.InputReset
	default:
		return session.InputNone
	}
}

// helpFor lists the bindings worth showing in phase.
func (k keyMap) helpFor(phase session.Phase) []key.Binding {
	switch phase {
	case session.ChoosingMode, session.ChoosingMark:
		return []key.Binding{k.choose, k.Confirm, k.Quit}
	case session.InProgress:
		return []key.Binding{k.move, k.Confirm, k.Quit}
	case session.Finished:
		return []key.Binding{k.Reset, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}
