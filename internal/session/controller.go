package session

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/terminal-tic-tac-toe/internal/bot"
	"ctchen222/terminal-tic-tac-toe/internal/events"
	"ctchen222/terminal-tic-tac-toe/internal/game"
)

var tracer = otel.Tracer("session")

// ComputerTurn asks the host to call PlayComputerMove with Epoch after the move delay.
type ComputerTurn struct {
	Epoch uint64
}

// Result tells the host what a transition requires of it.
type Result struct {
	Quit     bool
	Computer *ComputerTurn
	Events   []events.Event
}

// Controller is the game-flow state machine. It is not safe for concurrent use;
// the host feeds inputs and computer moves from a single goroutine.
type Controller struct {
	state      State
	epoch      uint64
	roundID    string
	quit       bool
	calculator bot.MoveCalculator
	newRoundID func() string
}

// NewController returns a controller in the mode-selection phase.
func NewController(calculator bot.MoveCalculator) *Controller {
	return &Controller{
		state:      initialState(),
		calculator: calculator,
		newRoundID: uuid.NewString,
	}
}

// State returns a copy of the session state.
func (c *Controller) State() State {
	return c.state
}

// Epoch changes on every transition that could invalidate a pending computer move.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// RoundID identifies the round in play, or is empty before one starts.
func (c *Controller) RoundID() string {
	return c.roundID
}

// Quit reports whether the quit key was pressed.
func (c *Controller) Quit() bool {
	return c.quit
}

// ComputerToMove reports whether the computer owns the current turn.
func (c *Controller) ComputerToMove() bool {
	return !c.quit &&
		c.state.Phase == InProgress &&
		c.state.Mode == HumanVsComputer &&
		!c.state.Outcome.Finished() &&
		c.state.Turn != c.state.HumanMark
}

// HandleInput applies one key event. Inputs the active phase does not recognise are ignored.
func (c *Controller) HandleInput(in Input) Result {
	if in == InputQuit {
		c.quit = true
		c.epoch++
		return Result{Quit: true}
	}
	if c.quit {
		return Result{}
	}

	switch c.state.Phase {
	case ChoosingMode:
		return c.handleModeMenu(in)
	case ChoosingMark:
		return c.handleMarkMenu(in)
	case InProgress:
		return c.handlePlay(in)
	case Finished:
		return c.handleFinished(in)
	}
	return Result{}
}

// PlayComputerMove makes the computer's move if epoch is still current and the
// computer still owns the turn. Stale calls are no-ops.
func (c *Controller) PlayComputerMove(ctx context.Context, epoch uint64) Result {
	_, span := tracer.Start(ctx, "session.PlayComputerMove", trace.WithAttributes(
		attribute.String("round.id", c.roundID),
		attribute.Int64("epoch", int64(epoch)),
	))
	defer span.End()

	if epoch != c.epoch || !c.ComputerToMove() {
		span.SetAttributes(attribute.Bool("stale", true))
		return Result{}
	}

	cell, ok := c.calculator.CalculateNextMove(c.state.Board, c.state.Turn)
	if !ok {
		return Result{}
	}
	span.SetAttributes(attribute.Int("cell", cell))
	return c.applyMove(cell, events.ActorComputer)
}

func (c *Controller) handleModeMenu(in Input) Result {
	switch in {
	case InputUp, InputDown:
		c.toggleMenu()
	case InputConfirm:
		if c.state.MenuCursor == 0 {
			c.state.Mode = HumanVsComputer
			c.state.Phase = ChoosingMark
			c.state.MenuCursor = 0
			c.epoch++
			return Result{}
		}
		c.state.Mode = HumanVsHuman
		c.state.HumanMark = game.First
		return c.startRound()
	}
	return Result{}
}

func (c *Controller) handleMarkMenu(in Input) Result {
	switch in {
	case InputUp, InputDown:
		c.toggleMenu()
	case InputConfirm:
		c.state.HumanMark = game.First
		if c.state.MenuCursor == 1 {
			c.state.HumanMark = game.Second
		}
		return c.startRound()
	}
	return Result{}
}

func (c *Controller) handlePlay(in Input) Result {
	if c.ComputerToMove() {
		return Result{}
	}
	switch in {
	case InputUp, InputDown, InputLeft, InputRight:
		c.state.Cursor = MoveCursor(c.state.Cursor, in)
	case InputConfirm:
		return c.applyMove(c.state.Cursor, events.ActorHuman)
	}
	return Result{}
}

func (c *Controller) handleFinished(in Input) Result {
	if in != InputReset {
		return Result{}
	}
	ev := c.event(events.RoundReset)
	c.state = initialState()
	c.roundID = ""
	c.epoch++
	return Result{Events: []events.Event{ev}}
}

func (c *Controller) toggleMenu() {
	c.state.MenuCursor = 1 - c.state.MenuCursor
}

func (c *Controller) startRound() Result {
	c.state.Turn = game.First
	c.state.Phase = InProgress
	c.roundID = c.newRoundID()
	c.epoch++

	res := Result{Events: []events.Event{c.event(events.RoundStarted)}}
	c.scheduleComputer(&res)
	return res
}

func (c *Controller) applyMove(cell int, actor events.Actor) Result {
	if c.state.Outcome.Finished() {
		return Result{}
	}
	mark := c.state.Turn
	outcome, ok := c.state.Board.Apply(cell, mark)
	if !ok {
		return Result{}
	}
	c.epoch++

	moved := c.event(events.MoveApplied)
	moved.Mark = mark
	moved.Cell = cell
	moved.Actor = actor
	res := Result{Events: []events.Event{moved}}

	if outcome.Finished() {
		c.state.Outcome = outcome
		c.state.Phase = Finished
		finished := c.event(events.RoundFinished)
		finished.Outcome = outcome
		res.Events = append(res.Events, finished)
		return res
	}

	c.state.Turn = mark.Opponent()
	c.scheduleComputer(&res)
	return res
}

func (c *Controller) scheduleComputer(res *Result) {
	if c.ComputerToMove() {
		res.Computer = &ComputerTurn{Epoch: c.epoch}
	}
}

func (c *Controller) event(t events.Type) events.Event {
	return events.Event{
		Type:    t,
		RoundID: c.roundID,
		Mode:    c.state.Mode.String(),
	}
}
