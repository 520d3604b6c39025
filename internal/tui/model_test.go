package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var errStorage = errors.New("storage unavailable")

type failingManager struct{}

func (failingManager) StartSession(context.Context, string) (*entity.Session, error) {
	return nil, errStorage
}

func (failingManager) Place(context.Context, string, int) (*entity.Session, tictactoe.PlaceResult, error) {
	return nil, tictactoe.ResultIllegal, errStorage
}

func (failingManager) Restart(context.Context, string) (*entity.Session, error) {
	return nil, errStorage
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, sessionID string) *Model {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewMemorySessionRepository())

	model := New(context.Background(), logger, manager, sessionID)
	send(t, model, model.Init()())

	return model
}

// send feeds msg to the model and runs the command it returns, if any.
func send(t *testing.T, model *Model, msg tea.Msg) tea.Msg {
	t.Helper()

	_, cmd := model.Update(msg)
	if cmd == nil {
		return nil
	}

	out := cmd()
	if _, ok := out.(tea.QuitMsg); ok {
		return out
	}

	_, next := model.Update(out)
	require.Nil(t, next)

	return out
}

func openGame(t *testing.T, model *Model) {
	t.Helper()

	send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, model.screen)
}

func pressCells(t *testing.T, model *Model, cells ...string) {
	t.Helper()

	for _, cell := range cells {
		send(t, model, runeKey(cell))
	}
}

func TestModel_Init(t *testing.T) {
	t.Run("Starts a new session", func(t *testing.T) {
		model := newTestModel(t, "")

		require.NotNil(t, model.session)
		assert.NotEmpty(t, model.SessionID())
		assert.Equal(t, screenMenu, model.screen)
	})

	t.Run("Keeps the requested session id", func(t *testing.T) {
		model := newTestModel(t, "kitchen")

		assert.Equal(t, "kitchen", model.SessionID())
	})

	t.Run("Shows storage errors", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		model := New(context.Background(), logger, failingManager{}, "")

		send(t, model, model.Init()())

		assert.Empty(t, model.SessionID())
		assert.Contains(t, model.status, errStorage.Error())
	})
}

func TestModel_Menu(t *testing.T) {
	t.Run("Moves between items and wraps", func(t *testing.T) {
		model := newTestModel(t, "")

		send(t, model, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 2, model.menuCursor)

		send(t, model, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 0, model.menuCursor)

		assert.Contains(t, model.View(), "TicTacToe")
		assert.Contains(t, model.View(), "Help")
	})

	t.Run("Opens help and returns", func(t *testing.T) {
		model := newTestModel(t, "")

		send(t, model, tea.KeyMsg{Type: tea.KeyDown})
		send(t, model, tea.KeyMsg{Type: tea.KeyEnter})

		require.Equal(t, screenHelp, model.screen)
		assert.Contains(t, model.View(), "Click a box")

		send(t, model, tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, screenMenu, model.screen)
	})

	t.Run("Quit item quits", func(t *testing.T) {
		model := newTestModel(t, "")

		send(t, model, tea.KeyMsg{Type: tea.KeyUp})
		out := send(t, model, tea.KeyMsg{Type: tea.KeyEnter})

		assert.IsType(t, tea.QuitMsg{}, out)
	})

	t.Run("q quits from any screen", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		out := send(t, model, runeKey("q"))

		assert.IsType(t, tea.QuitMsg{}, out)
	})
}

func TestModel_Game(t *testing.T) {
	t.Run("Shows whose turn it is", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		assert.Contains(t, model.View(), "Player 1, it's your turn!")

		pressCells(t, model, "5")

		assert.Equal(t, "X", model.session.Board[4])
		assert.Contains(t, model.View(), "Player 2, it's your turn!")
	})

	t.Run("Cursor wraps and places with enter", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		// Given: the cursor starts in the center
		require.Equal(t, 4, model.cursor)

		// When: moving up twice and left twice
		send(t, model, tea.KeyMsg{Type: tea.KeyUp})
		send(t, model, tea.KeyMsg{Type: tea.KeyUp})
		send(t, model, runeKey("h"))
		send(t, model, runeKey("h"))

		// Then: the cursor wrapped to the bottom right cell
		require.Equal(t, 8, model.cursor)

		send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, "X", model.session.Board[8])
	})

	t.Run("Taken cell is reported", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		pressCells(t, model, "1", "1")

		assert.Equal(t, "That box is already taken.", model.status)
		assert.Equal(t, "O", model.session.Turn)
	})

	t.Run("Win is announced and counted", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		pressCells(t, model, "1", "5", "2", "4", "3")

		view := model.View()
		assert.Contains(t, view, "Player 1 won the game!")
		assert.Contains(t, view, "Restart")
		assert.Equal(t, 1, model.session.Score.PlayerOne)

		pressCells(t, model, "9")
		assert.Equal(t, "The game is over, press r to restart.", model.status)
	})

	t.Run("Stalemate is announced", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		pressCells(t, model, "1", "3", "2", "4", "6", "5", "7", "8", "9")

		assert.Contains(t, model.View(), "Stalemate!")
		assert.Equal(t, "No more symbols can be placed.", model.status)
		assert.Equal(t, 1, model.session.Score.Stalemates)
	})

	t.Run("Restart needs a finished game", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		pressCells(t, model, "1", "r")

		assert.Equal(t, "Finish the game before restarting.", model.status)
		assert.Equal(t, "X", model.session.Board[0])
		assert.NotContains(t, model.View(), "Restart")
	})

	t.Run("Restart clears the board and keeps the score", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		pressCells(t, model, "1", "4", "2", "5", "3", "r")

		assert.Equal(t, [9]string{}, model.session.Board)
		assert.Equal(t, "X", model.session.Turn)
		assert.Equal(t, 1, model.session.Score.PlayerOne)
		assert.Contains(t, model.View(), "Player 1, it's your turn!")
	})

	t.Run("Escape returns to the menu", func(t *testing.T) {
		model := newTestModel(t, "")
		openGame(t, model)

		send(t, model, tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, screenMenu, model.screen)
	})
}
