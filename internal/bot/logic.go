package bot

import (
	"math/rand/v2"

	"ctchen222/terminal-tic-tac-toe/internal/game"
)

// MoveCalculator picks the computer's next cell.
type MoveCalculator interface {
	CalculateNextMove(board game.Board, mark game.Mark) (cell int, ok bool)
}

// RandomMoveCalculator chooses uniformly among the empty cells.
type RandomMoveCalculator struct {
	rng *rand.Rand
}

// NewRandomMoveCalculator returns a calculator drawing from rng, or from the
// package-level source when rng is nil.
func NewRandomMoveCalculator(rng *rand.Rand) *RandomMoveCalculator {
	return &RandomMoveCalculator{rng: rng}
}

// CalculateNextMove returns a random empty cell. ok is false on a full board.
func (c *RandomMoveCalculator) CalculateNextMove(board game.Board, _ game.Mark) (int, bool) {
	return randomMove(board, c.intN)
}

func (c *RandomMoveCalculator) intN(n int) int {
	if c.rng == nil {
		return rand.IntN(n)
	}
	return c.rng.IntN(n)
}

func randomMove(board game.Board, intN func(int) int) (int, bool) {
	availableMoves := board.EmptyCells()
	if len(availableMoves) == 0 {
		return -1, false
	}
	return availableMoves[intN(len(availableMoves))], true
}
