package events

import (
	"log/slog"

	"ctchen222/terminal-tic-tac-toe/internal/game"
)

// Type names a controller event.
type Type string

const (
	RoundStarted  Type = "round_started"
	MoveApplied   Type = "move_applied"
	RoundFinished Type = "round_finished"
	RoundReset    Type = "round_reset"
)

// Actor tells who made a move.
type Actor string

const (
	ActorHuman    Actor = "human"
	ActorComputer Actor = "computer"
)

// Event records one thing the controller did in response to an input or a computer move.
type Event struct {
	Type    Type
	RoundID string
	Mode    string

	// MoveApplied
	Mark  game.Mark
	Cell  int
	Actor Actor

	// RoundFinished
	Outcome game.Outcome
}

// OutcomeLabel returns "draw", the winning letter or "" for an undecided round.
func (e Event) OutcomeLabel() string {
	switch e.Outcome.Result {
	case game.Won:
		return e.Outcome.Winner.String()
	case game.Draw:
		return "draw"
	default:
		return ""
	}
}

// LogValue implements slog.LogValuer.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("event", string(e.Type)),
		slog.String("round.id", e.RoundID),
	}
	if e.Mode != "" {
		attrs = append(attrs, slog.String("mode", e.Mode))
	}
	switch e.Type {
	case MoveApplied:
		attrs = append(attrs,
			slog.String("mark", e.Mark.String()),
			slog.Int("cell", e.Cell),
			slog.String("actor", string(e.Actor)),
		)
	case RoundFinished:
		attrs = append(attrs, slog.String("outcome", e.OutcomeLabel()))
	}
	return slog.GroupValue(attrs...)
}
