// Package tui runs the game in the terminal: it decodes key presses for the
// session controller, schedules the computer's move and draws the render model.
package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors (light/dark terminal detection).
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#6B21A8", Dark: "#D8A6FF"}
	ColorFirst  = lipgloss.AdaptiveColor{Light: "#0070F3", Dark: "#79C0FF"}
	ColorSecond = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF6B6B"}
	ColorWin    = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#7EE2B8"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
)

var (
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(2)

	MenuSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	CellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	CursorCellStyle = CellStyle.
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorAccent)

	WinningCellStyle = CellStyle.
				Border(lipgloss.DoubleBorder()).
				BorderForeground(ColorWin)

	FirstMarkStyle = lipgloss.NewStyle().
			Foreground(ColorFirst).
			Bold(true)

	SecondMarkStyle = lipgloss.NewStyle().
			Foreground(ColorSecond).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
			MarginTop(1).
			Bold(true)
)
