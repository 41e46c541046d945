package events

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"ctchen222/terminal-tic-tac-toe/internal/game"
)

func TestEvent_OutcomeLabel(t *testing.T) {
	assert.Equal(t, "", Event{}.OutcomeLabel())
	assert.Equal(t, "draw", Event{Outcome: game.Outcome{Result: game.Draw}}.OutcomeLabel())
	assert.Equal(t, "X", Event{Outcome: game.Outcome{Result: game.Won, Winner: game.Second}}.OutcomeLabel())
}

func TestEvent_LogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	log.Info("move", "game", Event{
		Type:    MoveApplied,
		RoundID: "r1",
		Mode:    "human_vs_human",
		Mark:    game.First,
		Cell:    4,
		Actor:   ActorHuman,
	})
	log.Info("finished", "game", Event{
		Type:    RoundFinished,
		RoundID: "r1",
		Outcome: game.Outcome{Result: game.Won, Winner: game.First},
	})

	out := buf.String()
	assert.Contains(t, out, "game.event=move_applied")
	assert.Contains(t, out, "game.round.id=r1")
	assert.Contains(t, out, "game.cell=4")
	assert.Contains(t, out, "game.actor=human")
	assert.Contains(t, out, "game.outcome=O")
}
