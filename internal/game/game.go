package game

// Mark identifies which player occupies a cell.
type Mark int

const (
	None Mark = iota
	First
	Second
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Lines holds every winning triple, in the order they are checked.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// String returns the letter shown for the mark.
func (m Mark) String() string {
	switch m {
	case First:
		return "O"
	case Second:
		return "X"
	default:
		return ""
	}
}

// Opponent returns the other mark. None has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

// Board is a 3x3 grid stored in row-major order.
type Board [BoardSize]Mark

// Result is the outcome of a round.
type Result int

const (
	Undecided Result = iota
	Won
	Draw
)

// Outcome describes how a round ended. Line is only meaningful when Result is Won.
type Outcome struct {
	Result Result
	Winner Mark
	Line   [3]int
}

// Finished reports whether the outcome ends the round.
func (o Outcome) Finished() bool {
	return o.Result != Undecided
}

// InBounds reports whether i addresses a cell.
func InBounds(i int) bool {
	return i >= 0 && i < BoardSize
}

// Empty reports whether the cell at i can take a mark.
func (b *Board) Empty(i int) bool {
	return InBounds(i) && b[i] == None
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, m := range b {
		if m == None {
			cells = append(cells, i)
		}
	}
	return cells
}

// Occupied returns the number of cells holding a mark.
func (b *Board) Occupied() int {
	n := 0
	for _, m := range b {
		if m != None {
			n++
		}
	}
	return n
}

// Apply places mark at i and returns the resulting outcome.
// It returns false without touching the board when the cell is out of range or taken.
func (b *Board) Apply(i int, mark Mark) (Outcome, bool) {
	if mark == None || !b.Empty(i) {
		return Outcome{}, false
	}
	b[i] = mark
	return b.Evaluate(), true
}

// Evaluate checks the board for a completed line, then for a draw.
func (b *Board) Evaluate() Outcome {
	if winner, line, ok := CheckWinner(*b); ok {
		return Outcome{Result: Won, Winner: winner, Line: line}
	}
	if IsBoardFull(*b) {
		return Outcome{Result: Draw}
	}
	return Outcome{}
}

// CheckWinner returns the mark completing the first matching line, if any.
func CheckWinner(board Board) (Mark, [3]int, bool) {
	for _, line := range Lines {
		m := board[line[0]]
		if m != None && m == board[line[1]] && m == board[line[2]] {
			return m, line, true
		}
	}
	return None, [3]int{}, false
}

// IsBoardFull reports whether no empty cell is left.
func IsBoardFull(board Board) bool {
	for _, m := range board {
		if m == None {
			return false
		}
	}
	return true
}
