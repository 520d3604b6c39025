package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func (that *Model) View() string {
	var body string

	switch that.screen {
	case screenHelp:
		body = that.viewHelp()
	case screenGame:
		body = that.viewGame()
	default:
		body = that.viewMenu()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("TicTacToe"),
		body,
		"",
		helpStyle.Render(that.keysHelp()),
	)
}

func (that *Model) viewMenu() string {
	items := make([]string, 0, len(menuItems))
	for i, item := range menuItems {
		style := menuItemStyle
		if i == that.menuCursor {
			style = menuItemActiveStyle
		}
		items = append(items, style.Render(string(item)))
	}

	return lipgloss.JoinVertical(lipgloss.Center, items...)
}

func (that *Model) viewHelp() string {
	return helpBoxStyle.Render(helpText)
}

func (that *Model) viewGame() string {
	if that.session == nil {
		return statusStyle.Render("Loading the game...")
	}

	rows := []string{
		topTextStyle.Render(topText(that.session)),
		"",
		playerIndicators(that.session),
		"",
		that.viewGrid(),
		scoreStyle.Render(scoreLine(that.session.Score)),
	}

	if that.session.IsFinished() {
		rows = append(rows, "", restartStyle.Render("r  Restart"))
	}

	if that.status != "" {
		rows = append(rows, "", statusStyle.Render(that.status))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (that *Model) viewGrid() string {
	lines := make([]string, 0, 3)

	for row := range 3 {
		cells := make([]string, 0, 3)
		for column := range 3 {
			index := row*3 + column
			cells = append(cells, that.viewCell(index))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (that *Model) viewCell(index int) string {
	style := cellStyle
	if index == that.cursor && !that.session.IsFinished() {
		style = cellCursorStyle
	}

	mark := that.session.Board[index]
	if mark == "" {
		return style.Render(cellHintStyle.Render(strconv.Itoa(index + 1)))
	}

	return style.Render(markStyle(mark).Render(mark))
}

func (that *Model) keysHelp() string {
	switch that.screen {
	case screenGame:
		return "arrows/hjkl move • enter place • 1-9 place • r restart • ? help • esc menu • q quit"
	case screenHelp:
		return "esc back • q quit"
	default:
		return "↑/↓ choose • enter select • q quit"
	}
}

func topText(session *entity.Session) string {
	switch {
	case session.IsWon():
		return fmt.Sprintf("Player %d won the game!", playerNumber(session.Winner))
	case session.IsStalemate():
		return "Stalemate! Nobody won the game."
	default:
		return fmt.Sprintf("Player %d, it's your turn!", playerNumber(session.Turn))
	}
}

func playerIndicators(session *entity.Session) string {
	current := 0
	if !session.IsFinished() {
		current = playerNumber(session.Turn)
	}

	indicators := make([]string, 0, 2)
	for number := 1; number <= 2; number++ {
		style := indicatorStyle.Foreground(playerColors[number])
		if number == current {
			style = style.Reverse(true)
		}
		indicators = append(indicators, style.Render(fmt.Sprintf("Player %d", number)))
	}

	return strings.Join(indicators, "  ")
}

func scoreLine(score entity.Score) string {
	return fmt.Sprintf("P1 %d : %d P2  (stalemates %d)", score.PlayerOne, score.PlayerTwo, score.Stalemates)
}

// playerNumber maps a mark to the player that owns it.
func playerNumber(mark string) int {
	if mark == "O" {
		return 2
	}
	return 1
}
