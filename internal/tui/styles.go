package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#45475a"
	colorLavender lipgloss.Color = "#b4befe"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// indicator and mark colors per player number
var playerColors = map[int]lipgloss.Color{
	1: colorRed,
	2: colorYellow,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender).
			MarginBottom(1)

	topTextStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorOverlay)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).
			Padding(1, 2).
			Width(50).
			Align(lipgloss.Center)

	menuItemStyle = lipgloss.NewStyle().
			Width(20).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface)

	menuItemActiveStyle = menuItemStyle.
				BorderForeground(colorLavender).
				Foreground(colorLavender).
				Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Height(1).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface)

	cellCursorStyle = cellStyle.
			BorderForeground(colorLavender)

	cellHintStyle = lipgloss.NewStyle().
			Foreground(colorSurface)

	indicatorStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	scoreStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	restartStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBase).
			Background(colorLavender).
			Padding(0, 1)
)

func markStyle(mark string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)

	switch mark {
	case "X":
		return style.Foreground(playerColors[1])
	case "O":
		return style.Foreground(playerColors[2])
	default:
		return style
	}
}
