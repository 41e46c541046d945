// Package session holds the game-flow controller: mode and mark selection,
// turn-taking, outcome detection and reset, plus the projection of that state
// into a render model.
package session

import "ctchen222/terminal-tic-tac-toe/internal/game"

// Phase is the active step of the game flow.
type Phase int

const (
	ChoosingMode Phase = iota
	ChoosingMark
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case ChoosingMode:
		return "choosing_mode"
	case ChoosingMark:
		return "choosing_mark"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Mode selects who controls the second mark.
type Mode int

const (
	ModeUnselected Mode = iota
	HumanVsComputer
	HumanVsHuman
)

func (m Mode) String() string {
	switch m {
	case HumanVsComputer:
		return "human_vs_computer"
	case HumanVsHuman:
		return "human_vs_human"
	default:
		return ""
	}
}

// Input is a decoded key event.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputConfirm
	InputReset
	InputQuit
)

// State is the whole session. HumanMark is only meaningful against the computer.
type State struct {
	Phase      Phase
	Mode       Mode
	HumanMark  game.Mark
	Board      game.Board
	Turn       game.Mark
	Outcome    game.Outcome
	Cursor     int
	MenuCursor int
}

func initialState() State {
	return State{
		Phase: ChoosingMode,
		Turn:  game.First,
	}
}

// MoveCursor moves a board cursor one step, wrapping around the grid edges.
// Vertical moves stay in the same column.
func MoveCursor(cursor int, in Input) int {
	switch in {
	case InputLeft:
		if cursor == 0 {
			return game.BoardSize - 1
		}
		return cursor - 1
	case InputRight:
		if cursor == game.BoardSize-1 {
			return 0
		}
		return cursor + 1
	case InputUp:
		if cursor > 2 {
			return cursor - 3
		}
		return cursor + 6
	case InputDown:
		if cursor < 6 {
			return cursor + 3
		}
		return cursor - 6
	default:
		return cursor
	}
}
