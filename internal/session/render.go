package session

import (
	"fmt"

	"ctchen222/terminal-tic-tac-toe/internal/game"
)

// CursorPlaceholder is drawn in an empty cell under the cursor.
const CursorPlaceholder = "·"

// MenuOption is one entry of a selection menu.
type MenuOption struct {
	Label    string
	Selected bool
}

// Menu is shown during the selection phases.
type Menu struct {
	Title   string
	Options []MenuOption
}

// CellView is one grid cell as it should be drawn.
type CellView struct {
	Glyph   string
	Mark    game.Mark
	Cursor  bool
	Winning bool
}

// View is the declarative description of the screen. Menu is set in the
// selection phases, Cells during and after play.
type View struct {
	Phase    Phase
	Menu     *Menu
	Cells    []CellView
	Status   string
	Thinking bool
}

var (
	modeOptions = [2]string{"Play against the computer", "Play against a friend"}
	markOptions = [2]string{"O (moves first)", "X (moves second)"}
)

// Render projects the current state. It has no side effects.
func (c *Controller) Render() View {
	return Render(c.state)
}

// Render projects s into a View.
func Render(s State) View {
	v := View{Phase: s.Phase}
	switch s.Phase {
	case ChoosingMode:
		v.Menu = menu("Choose a game mode", modeOptions, s.MenuCursor)
	case ChoosingMark:
		v.Menu = menu("Choose your mark", markOptions, s.MenuCursor)
	case InProgress:
		v.Cells = cells(s, true)
		v.Status, v.Thinking = turnStatus(s)
	case Finished:
		v.Cells = cells(s, false)
		v.Status = outcomeStatus(s)
	}
	return v
}

func menu(title string, labels [2]string, selected int) *Menu {
	m := &Menu{Title: title, Options: make([]MenuOption, len(labels))}
	for i, label := range labels {
		m.Options[i] = MenuOption{Label: label, Selected: i == selected}
	}
	return m
}

func cells(s State, showCursor bool) []CellView {
	out := make([]CellView, game.BoardSize)
	for i, mark := range s.Board {
		cv := CellView{Mark: mark, Glyph: mark.String()}
		if showCursor && i == s.Cursor {
			cv.Cursor = true
			if mark == game.None {
				cv.Glyph = CursorPlaceholder
			}
		}
		if cv.Glyph == "" {
			cv.Glyph = " "
		}
		out[i] = cv
	}
	if s.Outcome.Result == game.Won {
		for _, i := range s.Outcome.Line {
			out[i].Winning = true
		}
	}
	return out
}

func turnStatus(s State) (string, bool) {
	if s.Mode != HumanVsComputer {
		return fmt.Sprintf("Player %s's turn", s.Turn), false
	}
	if s.Turn == s.HumanMark {
		return fmt.Sprintf("Your turn (%s)", s.Turn), false
	}
	return fmt.Sprintf("Computer is thinking (%s)", s.Turn), true
}

func outcomeStatus(s State) string {
	switch s.Outcome.Result {
	case game.Draw:
		return "It's a draw!"
	case game.Won:
		if s.Mode != HumanVsComputer {
			return fmt.Sprintf("Player %s wins!", s.Outcome.Winner)
		}
		if s.Outcome.Winner == s.HumanMark {
			return fmt.Sprintf("You win! (%s)", s.Outcome.Winner)
		}
		return fmt.Sprintf("Computer wins! (%s)", s.Outcome.Winner)
	}
	return ""
}
