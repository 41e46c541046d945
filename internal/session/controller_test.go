package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/terminal-tic-tac-toe/internal/events"
	"ctchen222/terminal-tic-tac-toe/internal/game"
)

// scriptedCalculator plays the given cells in order.
type scriptedCalculator struct {
	cells []int
	calls int
}

func (s *scriptedCalculator) CalculateNextMove(board game.Board, _ game.Mark) (int, bool) {
	if s.calls >= len(s.cells) {
		return -1, false
	}
	cell := s.cells[s.calls]
	s.calls++
	return cell, true
}

func newTestController(cells ...int) *Controller {
	c := NewController(&scriptedCalculator{cells: cells})
	c.newRoundID = func() string { return "round-1" }
	return c
}

// startHumanVsHuman selects the two-player mode.
func startHumanVsHuman(t *testing.T, c *Controller) {
	t.Helper()
	c.HandleInput(InputDown)
	res := c.HandleInput(InputConfirm)
	require.Equal(t, InProgress, c.State().Phase)
	require.Nil(t, res.Computer)
}

// startHumanVsComputer selects the computer mode and the given human mark.
func startHumanVsComputer(t *testing.T, c *Controller, human game.Mark) Result {
	t.Helper()
	c.HandleInput(InputConfirm)
	require.Equal(t, ChoosingMark, c.State().Phase)
	if human == game.Second {
		c.HandleInput(InputDown)
	}
	res := c.HandleInput(InputConfirm)
	require.Equal(t, InProgress, c.State().Phase)
	return res
}

// playAt walks the cursor to cell and confirms.
func playAt(t *testing.T, c *Controller, cell int) Result {
	t.Helper()
	for i := 0; c.State().Cursor != cell; i++ {
		require.Less(t, i, game.BoardSize, "cursor never reached %d", cell)
		c.HandleInput(InputRight)
	}
	return c.HandleInput(InputConfirm)
}

func TestNewController(t *testing.T) {
	c := newTestController()
	s := c.State()

	assert.Equal(t, ChoosingMode, s.Phase)
	assert.Equal(t, ModeUnselected, s.Mode)
	assert.Equal(t, game.Board{}, s.Board)
	assert.Equal(t, game.First, s.Turn)
	assert.False(t, s.Outcome.Finished())
	assert.Zero(t, s.Cursor)
	assert.Zero(t, s.MenuCursor)
	assert.Empty(t, c.RoundID())
}

func TestController_ModeMenu(t *testing.T) {
	t.Run("Up and down toggle the menu cursor", func(t *testing.T) {
		c := newTestController()
		c.HandleInput(InputDown)
		assert.Equal(t, 1, c.State().MenuCursor)
		c.HandleInput(InputDown)
		assert.Equal(t, 0, c.State().MenuCursor)
		c.HandleInput(InputUp)
		assert.Equal(t, 1, c.State().MenuCursor)
	})

	t.Run("Other inputs are ignored", func(t *testing.T) {
		c := newTestController()
		before := c.State()
		for _, in := range []Input{InputLeft, InputRight, InputReset, InputNone} {
			res := c.HandleInput(in)
			assert.Equal(t, Result{}, res)
		}
		assert.Equal(t, before, c.State())
	})

	t.Run("Second option starts a two-player round", func(t *testing.T) {
		c := newTestController()
		c.HandleInput(InputDown)
		res := c.HandleInput(InputConfirm)

		s := c.State()
		assert.Equal(t, InProgress, s.Phase)
		assert.Equal(t, HumanVsHuman, s.Mode)
		assert.Equal(t, game.First, s.HumanMark)
		assert.Equal(t, game.First, s.Turn)
		assert.Nil(t, res.Computer)
		require.Len(t, res.Events, 1)
		assert.Equal(t, events.RoundStarted, res.Events[0].Type)
		assert.Equal(t, "round-1", res.Events[0].RoundID)
		assert.Equal(t, "human_vs_human", res.Events[0].Mode)
	})

	t.Run("First option asks for a mark", func(t *testing.T) {
		c := newTestController()
		res := c.HandleInput(InputConfirm)

		assert.Equal(t, ChoosingMark, c.State().Phase)
		assert.Equal(t, HumanVsComputer, c.State().Mode)
		assert.Empty(t, res.Events)
	})
}

func TestController_MarkMenu(t *testing.T) {
	t.Run("Human takes the first mark and moves first", func(t *testing.T) {
		c := newTestController()
		res := startHumanVsComputer(t, c, game.First)

		s := c.State()
		assert.Equal(t, game.First, s.HumanMark)
		assert.Equal(t, game.First, s.Turn)
		assert.Nil(t, res.Computer)
		assert.False(t, c.ComputerToMove())
	})

	t.Run("Human takes the second mark and the computer moves first", func(t *testing.T) {
		c := newTestController()
		res := startHumanVsComputer(t, c, game.Second)

		s := c.State()
		assert.Equal(t, game.Second, s.HumanMark)
		assert.Equal(t, game.First, s.Turn)
		require.NotNil(t, res.Computer)
		assert.Equal(t, c.Epoch(), res.Computer.Epoch)
		assert.True(t, c.ComputerToMove())
	})

	t.Run("Menu cursor toggles", func(t *testing.T) {
		c := newTestController()
		c.HandleInput(InputConfirm)
		c.HandleInput(InputUp)
		assert.Equal(t, 1, c.State().MenuCursor)
		c.HandleInput(InputLeft)
		assert.Equal(t, 1, c.State().MenuCursor)
		assert.Equal(t, ChoosingMark, c.State().Phase)
	})
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		in     Input
		want   int
	}{
		{"Left wraps 0 to 8", 0, InputLeft, 8},
		{"Left steps back", 5, InputLeft, 4},
		{"Left crosses rows", 3, InputLeft, 2},
		{"Right wraps 8 to 0", 8, InputRight, 0},
		{"Right steps forward", 4, InputRight, 5},
		{"Up from 0", 0, InputUp, 6},
		{"Up from 1", 1, InputUp, 7},
		{"Up from 2", 2, InputUp, 8},
		{"Up from middle row", 4, InputUp, 1},
		{"Down from 6", 6, InputDown, 0},
		{"Down from 7", 7, InputDown, 1},
		{"Down from 8", 8, InputDown, 2},
		{"Down from middle row", 3, InputDown, 6},
		{"Confirm does not move", 4, InputConfirm, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoveCursor(tt.cursor, tt.in))
		})
	}
}

func TestMoveCursor_VerticalStaysInColumn(t *testing.T) {
	for cursor := 0; cursor < game.BoardSize; cursor++ {
		for _, in := range []Input{InputUp, InputDown} {
			got := MoveCursor(cursor, in)
			assert.Equal(t, cursor%3, got%3, "cursor %d input %d", cursor, in)
		}
	}
}

func TestController_TopRowWin(t *testing.T) {
	c := newTestController()
	startHumanVsHuman(t, c)

	var res Result
	for _, cell := range []int{0, 4, 1, 5, 2} {
		require.Equal(t, InProgress, c.State().Phase)
		res = playAt(t, c, cell)
	}

	s := c.State()
	assert.Equal(t, Finished, s.Phase)
	assert.Equal(t, game.Won, s.Outcome.Result)
	assert.Equal(t, game.First, s.Outcome.Winner)
	assert.Equal(t, [3]int{0, 1, 2}, s.Outcome.Line)

	require.Len(t, res.Events, 2)
	assert.Equal(t, events.MoveApplied, res.Events[0].Type)
	assert.Equal(t, 2, res.Events[0].Cell)
	assert.Equal(t, events.ActorHuman, res.Events[0].Actor)
	assert.Equal(t, events.RoundFinished, res.Events[1].Type)
	assert.Equal(t, "O", res.Events[1].OutcomeLabel())
}

func TestController_EveryLineWins(t *testing.T) {
	for _, winner := range []game.Mark{game.First, game.Second} {
		for _, line := range game.Lines {
			c := newTestController()
			startHumanVsHuman(t, c)

			inLine := map[int]bool{line[0]: true, line[1]: true, line[2]: true}
			placed := 0
			for c.State().Phase == InProgress {
				s := c.State()
				if s.Turn == winner {
					require.Less(t, placed, 3)
					playAt(t, c, line[placed])
					placed++
					continue
				}
				filler := -1
				for _, cell := range s.Board.EmptyCells() {
					if inLine[cell] {
						continue
					}
					trial := s.Board
					trial[cell] = s.Turn
					if _, _, won := game.CheckWinner(trial); won {
						continue
					}
					filler = cell
					break
				}
				require.NotEqual(t, -1, filler, "no filler cell for line %v", line)
				playAt(t, c, filler)
			}

			s := c.State()
			assert.Equal(t, 3, placed, "line %v winner %v", line, winner)
			assert.Equal(t, Finished, s.Phase)
			assert.Equal(t, game.Won, s.Outcome.Result)
			assert.Equal(t, winner, s.Outcome.Winner, "line %v", line)
			assert.Equal(t, line, s.Outcome.Line)
		}
	}
}

func TestController_Draw(t *testing.T) {
	c := newTestController()
	startHumanVsHuman(t, c)

	var res Result
	for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		require.Equal(t, InProgress, c.State().Phase)
		res = playAt(t, c, cell)
	}

	s := c.State()
	assert.Equal(t, Finished, s.Phase)
	assert.Equal(t, game.Draw, s.Outcome.Result)
	assert.True(t, game.IsBoardFull(s.Board))
	require.Len(t, res.Events, 2)
	assert.Equal(t, "draw", res.Events[1].OutcomeLabel())
}

func TestController_MarksAlternate(t *testing.T) {
	c := newTestController()
	startHumanVsHuman(t, c)

	order := []int{4, 0, 8, 2, 1, 7, 3, 5, 6}
	moves := 0
	for _, cell := range order {
		if c.State().Phase != InProgress {
			break
		}
		expected := game.First
		if moves%2 == 1 {
			expected = game.Second
		}
		require.Equal(t, expected, c.State().Turn)
		playAt(t, c, cell)
		moves++

		s := c.State()
		assert.Equal(t, moves, s.Board.Occupied())
		assert.Equal(t, expected, s.Board[cell])
	}
}

func TestController_RejectedMoves(t *testing.T) {
	t.Run("Occupied cell", func(t *testing.T) {
		c := newTestController()
		startHumanVsHuman(t, c)
		playAt(t, c, 4)

		before := c.State()
		epoch := c.Epoch()
		res := playAt(t, c, 4)

		assert.Equal(t, Result{}, res)
		assert.Equal(t, before, c.State())
		assert.Equal(t, epoch, c.Epoch())
	})

	t.Run("After the round is over", func(t *testing.T) {
		c := newTestController()
		startHumanVsHuman(t, c)
		for _, cell := range []int{0, 4, 1, 5, 2} {
			playAt(t, c, cell)
		}

		before := c.State()
		for _, in := range []Input{InputConfirm, InputLeft, InputUp, InputDown, InputRight} {
			assert.Equal(t, Result{}, c.HandleInput(in))
		}
		assert.Equal(t, before, c.State())

		res := c.applyMove(8, events.ActorHuman)
		assert.Equal(t, Result{}, res)
		assert.Equal(t, before, c.State())
	})

	t.Run("Reset is only recognised when finished", func(t *testing.T) {
		c := newTestController()
		startHumanVsHuman(t, c)
		playAt(t, c, 0)

		before := c.State()
		assert.Equal(t, Result{}, c.HandleInput(InputReset))
		assert.Equal(t, before, c.State())
	})
}

func TestController_ComputerOpponent(t *testing.T) {
	ctx := context.Background()

	t.Run("Computer moves first when the human picks the second mark", func(t *testing.T) {
		c := newTestController(4)
		res := startHumanVsComputer(t, c, game.Second)
		require.NotNil(t, res.Computer)

		// Human input is ignored while the computer owns the turn.
		assert.Equal(t, Result{}, c.HandleInput(InputRight))
		assert.Equal(t, Result{}, c.HandleInput(InputConfirm))
		assert.Zero(t, c.State().Cursor)
		assert.Equal(t, game.Board{}, c.State().Board)

		res = c.PlayComputerMove(ctx, res.Computer.Epoch)
		s := c.State()
		assert.Equal(t, game.First, s.Board[4])
		assert.Equal(t, game.Second, s.Turn)
		assert.Nil(t, res.Computer)
		require.Len(t, res.Events, 1)
		assert.Equal(t, events.ActorComputer, res.Events[0].Actor)
		assert.False(t, c.ComputerToMove())
	})

	t.Run("Human move hands the turn to the computer", func(t *testing.T) {
		c := newTestController(8)
		startHumanVsComputer(t, c, game.First)

		res := playAt(t, c, 0)
		require.NotNil(t, res.Computer)
		assert.Equal(t, c.Epoch(), res.Computer.Epoch)

		c.PlayComputerMove(ctx, res.Computer.Epoch)
		assert.Equal(t, game.Second, c.State().Board[8])
		assert.Equal(t, game.First, c.State().Turn)
	})

	t.Run("A second fire with the same epoch does nothing", func(t *testing.T) {
		calc := &scriptedCalculator{cells: []int{4, 5}}
		c := NewController(calc)
		res := startHumanVsComputer(t, c, game.Second)

		c.PlayComputerMove(ctx, res.Computer.Epoch)
		before := c.State()
		assert.Equal(t, Result{}, c.PlayComputerMove(ctx, res.Computer.Epoch))
		assert.Equal(t, before, c.State())
		assert.Equal(t, 1, calc.calls)
	})

	t.Run("Stale move from an earlier round is dropped after reset", func(t *testing.T) {
		c := newTestController(3, 4, 6)
		startHumanVsComputer(t, c, game.First)

		res := playAt(t, c, 0)
		staleEpoch := res.Computer.Epoch
		c.PlayComputerMove(ctx, staleEpoch)
		res = playAt(t, c, 1)
		c.PlayComputerMove(ctx, res.Computer.Epoch)
		playAt(t, c, 2)
		require.Equal(t, Finished, c.State().Phase)
		require.Equal(t, game.First, c.State().Outcome.Winner)

		c.HandleInput(InputReset)
		res = startHumanVsComputer(t, c, game.Second)
		require.NotNil(t, res.Computer)

		assert.Equal(t, Result{}, c.PlayComputerMove(ctx, staleEpoch))
		assert.Equal(t, game.Board{}, c.State().Board)

		c.PlayComputerMove(ctx, res.Computer.Epoch)
		assert.Equal(t, game.First, c.State().Board[6])
	})

	t.Run("Quit abandons a pending move", func(t *testing.T) {
		c := newTestController(4)
		res := startHumanVsComputer(t, c, game.Second)

		assert.True(t, c.HandleInput(InputQuit).Quit)
		assert.Equal(t, Result{}, c.PlayComputerMove(ctx, res.Computer.Epoch))
		assert.Equal(t, game.Board{}, c.State().Board)
	})

	t.Run("No move when the calculator finds no cell", func(t *testing.T) {
		c := newTestController()
		res := startHumanVsComputer(t, c, game.Second)
		assert.Equal(t, Result{}, c.PlayComputerMove(ctx, res.Computer.Epoch))
	})

	t.Run("Computer can win the round", func(t *testing.T) {
		c := newTestController(0, 1, 2)
		res := startHumanVsComputer(t, c, game.Second)
		for _, human := range []int{3, 4} {
			res = c.PlayComputerMove(ctx, res.Computer.Epoch)
			res = playAt(t, c, human)
		}
		res = c.PlayComputerMove(ctx, res.Computer.Epoch)

		s := c.State()
		assert.Equal(t, Finished, s.Phase)
		assert.Equal(t, game.First, s.Outcome.Winner)
		assert.Nil(t, res.Computer)
	})
}

func TestController_Reset(t *testing.T) {
	c := newTestController()
	startHumanVsHuman(t, c)
	for _, cell := range []int{0, 4, 1, 5, 2} {
		playAt(t, c, cell)
	}
	require.Equal(t, Finished, c.State().Phase)

	res := c.HandleInput(InputReset)

	s := c.State()
	assert.Equal(t, ChoosingMode, s.Phase)
	assert.Equal(t, ModeUnselected, s.Mode)
	assert.Equal(t, game.Board{}, s.Board)
	assert.False(t, s.Outcome.Finished())
	assert.Zero(t, s.Cursor)
	assert.Zero(t, s.MenuCursor)
	assert.Empty(t, c.RoundID())
	require.Len(t, res.Events, 1)
	assert.Equal(t, events.RoundReset, res.Events[0].Type)
	assert.Equal(t, "round-1", res.Events[0].RoundID)
}

func TestController_Quit(t *testing.T) {
	phases := map[string]func(t *testing.T, c *Controller){
		"choosing_mode": func(*testing.T, *Controller) {},
		"choosing_mark": func(_ *testing.T, c *Controller) { c.HandleInput(InputConfirm) },
		"in_progress":   startHumanVsHuman,
		"finished": func(t *testing.T, c *Controller) {
			startHumanVsHuman(t, c)
			for _, cell := range []int{0, 4, 1, 5, 2} {
				playAt(t, c, cell)
			}
		},
	}

	for name, setup := range phases {
		t.Run(name, func(t *testing.T) {
			c := newTestController()
			setup(t, c)
			assert.Equal(t, name, c.State().Phase.String())

			res := c.HandleInput(InputQuit)
			assert.True(t, res.Quit)
			assert.True(t, c.Quit())

			before := c.State()
			assert.Equal(t, Result{}, c.HandleInput(InputConfirm))
			assert.Equal(t, before, c.State())
		})
	}
}
