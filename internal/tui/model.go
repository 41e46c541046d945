package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ctchen222/terminal-tic-tac-toe/internal/events"
	"ctchen222/terminal-tic-tac-toe/internal/session"
)

// EventRecorder receives every controller event.
type EventRecorder interface {
	Record(ctx context.Context, ev events.Event)
}

// Options configures the model.
type Options struct {
	// ComputerDelay is how long the computer waits before moving.
	ComputerDelay time.Duration
	Recorder      EventRecorder
	Logger        *slog.Logger
}

// computerMoveMsg fires when the computer's delay has elapsed.
type computerMoveMsg struct {
	epoch uint64
}

// Model is the bubbletea model wrapping a session controller.
type Model struct {
	ctx      context.Context
	ctrl     *session.Controller
	delay    time.Duration
	recorder EventRecorder
	log      *slog.Logger

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	quitting bool
}

// New creates the root model.
func New(ctx context.Context, ctrl *session.Controller, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		delay:    opts.ComputerDelay,
		recorder: opts.Recorder,
		log:      log,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(PlaceholderStyle)),
	}
}

// Run starts the program on the alternate screen and blocks until the player quits.
func Run(ctx context.Context, ctrl *session.Controller, opts Options) error {
	p := tea.NewProgram(New(ctx, ctrl, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		in := m.keys.decode(msg)
		if in == session.InputNone {
			return m, nil
		}
		return m.apply(m.ctrl.HandleInput(in))

	case computerMoveMsg:
		res := m.ctrl.PlayComputerMove(m.ctx, msg.epoch)
		if len(res.Events) == 0 {
			m.log.DebugContext(m.ctx, "dropped stale computer move", "epoch", msg.epoch, "current", m.ctrl.Epoch())
		}
		return m.apply(res)

	case spinner.TickMsg:
		if !m.ctrl.ComputerToMove() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) apply(res session.Result) (tea.Model, tea.Cmd) {
	for _, ev := range res.Events {
		m.log.InfoContext(m.ctx, string(ev.Type), "game", ev)
		if m.recorder != nil {
			m.recorder.Record(m.ctx, ev)
		}
	}

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if res.Computer != nil {
		return m, tea.Batch(m.scheduleComputer(res.Computer.Epoch), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) scheduleComputer(epoch uint64) tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return computerMoveMsg{epoch: epoch}
	})
}
