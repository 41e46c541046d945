package tui

import (
	"github.com/charmbracelet/lipgloss"

	"ctchen222/terminal-tic-tac-toe/internal/game"
	"ctchen222/terminal-tic-tac-toe/internal/session"
)

const title = "Tic-Tac-Toe"

// View draws the controller's render model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.ctrl.Render()
	sections := []string{TitleStyle.Render(title)}

	if v.Menu != nil {
		sections = append(sections, renderMenu(v.Menu))
	}
	if v.Cells != nil {
		sections = append(sections, renderGrid(v.Cells))
	}
	if v.Status != "" {
		status := v.Status
		if v.Thinking {
			status = m.spinner.View() + " " + status
		}
		sections = append(sections, StatusStyle.Render(status))
	}
	sections = append(sections, "", m.help.ShortHelpView(m.keys.helpFor(v.Phase)))

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderMenu(menu *session.Menu) string {
	lines := []string{MenuTitleStyle.Render(menu.Title), ""}
	for _, opt := range menu.Options {
		if opt.Selected {
			lines = append(lines, MenuSelectedStyle.Render("> "+opt.Label))
			continue
		}
		lines = append(lines, MenuItemStyle.Render(opt.Label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGrid(cells []session.CellView) string {
	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		row := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			row = append(row, renderCell(cells[r*3+c]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(cell session.CellView) string {
	style := CellStyle
	switch {
	case cell.Winning:
		style = WinningCellStyle
	case cell.Cursor:
		style = CursorCellStyle
	}

	glyph := cell.Glyph
	switch cell.Mark {
	case game.First:
		glyph = FirstMarkStyle.Render(glyph)
	case game.Second:
		glyph = SecondMarkStyle.Render(glyph)
	default:
		if glyph == session.CursorPlaceholder {
			glyph = PlaceholderStyle.Render(glyph)
		}
	}
	return style.Render(glyph)
}
