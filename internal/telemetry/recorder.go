package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"ctchen222/terminal-tic-tac-toe/internal/events"
)

// Recorder turns controller events into metrics.
type Recorder struct {
	roundsStarted  metric.Int64Counter
	moves          metric.Int64Counter
	roundsFinished metric.Int64Counter
	resets         metric.Int64Counter
}

// NewRecorder creates the game instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	roundsStarted, err := meter.Int64Counter("tictactoe.rounds.started",
		metric.WithDescription("Rounds that entered play"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rounds.started counter: %w", err)
	}
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to the board"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	roundsFinished, err := meter.Int64Counter("tictactoe.rounds.finished",
		metric.WithDescription("Rounds that ended in a win or a draw"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rounds.finished counter: %w", err)
	}
	resets, err := meter.Int64Counter("tictactoe.rounds.reset",
		metric.WithDescription("Resets back to mode selection"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rounds.reset counter: %w", err)
	}

	return &Recorder{
		roundsStarted:  roundsStarted,
		moves:          moves,
		roundsFinished: roundsFinished,
		resets:         resets,
	}, nil
}

// Record adds ev to the matching counter.
func (r *Recorder) Record(ctx context.Context, ev events.Event) {
	mode := attribute.String("mode", ev.Mode)
	switch ev.Type {
	case events.RoundStarted:
		r.roundsStarted.Add(ctx, 1, metric.WithAttributes(mode))
	case events.MoveApplied:
		r.moves.Add(ctx, 1, metric.WithAttributes(mode,
			attribute.String("mark", ev.Mark.String()),
			attribute.String("actor", string(ev.Actor)),
		))
	case events.RoundFinished:
		r.roundsFinished.Add(ctx, 1, metric.WithAttributes(mode,
			attribute.String("outcome", ev.OutcomeLabel()),
		))
	case events.RoundReset:
		r.resets.Add(ctx, 1)
	}
}
