package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameManager interface {
	StartSession(ctx context.Context, id string) (*entity.Session, error)
	Place(ctx context.Context, id string, cell int) (*entity.Session, tictactoe.PlaceResult, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
}

type screen string

const (
	screenMenu screen = "menu"
	screenGame screen = "game"
	screenHelp screen = "help"
)

type menuItem string

const (
	menuGame menuItem = "Game"
	menuHelp menuItem = "Help"
	menuQuit menuItem = "Quit"
)

var menuItems = []menuItem{menuGame, menuHelp, menuQuit}

const helpText = "Click a box to place a symbol (X if you're player 1, or O if you're player 2). " +
	"Three of your symbols in a row constitutes a win. If no more symbols can be placed, the game ends."

type (
	sessionMsg struct {
		session *entity.Session
		result  tictactoe.PlaceResult
		placed  bool
	}

	errMsg struct {
		err error
	}
)

// Model is the bubbletea model of the terminal client.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager

	sessionID string
	session   *entity.Session

	screen     screen
	menuCursor int
	cursor     int
	status     string
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager, sessionID string) *Model {
	return &Model{
		ctx:       ctx,
		logger:    logger.With("component", "tui"),
		manager:   manager,
		sessionID: sessionID,
		screen:    screenMenu,
		cursor:    4,
	}
}

func (that *Model) Init() tea.Cmd {
	return that.startSession()
}

// SessionID - id of the session shown, empty until it is loaded.
func (that *Model) SessionID() string {
	if that.session == nil {
		return ""
	}
	return that.session.ID
}

func (that *Model) startSession() tea.Cmd {
	id := that.sessionID

	return func() tea.Msg {
		session, err := that.manager.StartSession(that.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: session}
	}
}

func (that *Model) place(cell int) tea.Cmd {
	id := that.session.ID

	return func() tea.Msg {
		session, result, err := that.manager.Place(that.ctx, id, cell)
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: session, result: result, placed: true}
	}
}

func (that *Model) restart() tea.Cmd {
	id := that.session.ID

	return func() tea.Msg {
		session, err := that.manager.Restart(that.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{session: session}
	}
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionMsg:
		that.applySession(msg)
		return that, nil
	case errMsg:
		that.logger.Error("game manager call failed", "error", msg.err)
		that.status = "Something went wrong: " + msg.err.Error()
		return that, nil
	case tea.KeyMsg:
		return that.handleKey(msg)
	}

	return that, nil
}

func (that *Model) applySession(msg sessionMsg) {
	that.session = msg.session
	that.sessionID = msg.session.ID
	that.status = ""

	if !msg.placed {
		return
	}

	switch msg.result {
	case tictactoe.ResultIllegal:
		if msg.session.IsFinished() {
			that.status = "The game is over, press r to restart."
		} else {
			that.status = "That box is already taken."
		}
	case tictactoe.ResultStalemate:
		that.status = "No more symbols can be placed."
	case tictactoe.ResultWin, tictactoe.ResultNeutral:
	}
}

func (that *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return that, tea.Quit
	}

	switch that.screen {
	case screenMenu:
		return that.handleMenuKey(key)
	case screenHelp:
		return that.handleHelpKey(key)
	case screenGame:
		return that.handleGameKey(key)
	}

	return that, nil
}

func (that *Model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		that.menuCursor = (that.menuCursor + len(menuItems) - 1) % len(menuItems)
	case "down", "j", "tab":
		that.menuCursor = (that.menuCursor + 1) % len(menuItems)
	case "enter", " ":
		switch menuItems[that.menuCursor] {
		case menuGame:
			that.screen = screenGame
		case menuHelp:
			that.screen = screenHelp
		case menuQuit:
			return that, tea.Quit
		}
	case "?":
		that.screen = screenHelp
	}

	return that, nil
}

func (that *Model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "m", "enter", "?":
		that.screen = screenMenu
	}

	return that, nil
}

func (that *Model) handleGameKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "m":
		that.screen = screenMenu
		return that, nil
	case "?":
		that.screen = screenHelp
		return that, nil
	}

	if that.session == nil {
		that.status = "Loading the game..."
		return that, nil
	}

	row, column := that.cursor/3, that.cursor%3

	switch key {
	case "up", "k":
		that.cursor = ((row+2)%3)*3 + column
	case "down", "j":
		that.cursor = ((row+1)%3)*3 + column
	case "left", "h":
		that.cursor = row*3 + (column+2)%3
	case "right", "l":
		that.cursor = row*3 + (column+1)%3
	case "enter", " ":
		return that, that.place(that.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		that.cursor = int(key[0] - '1')
		return that, that.place(that.cursor)
	case "r":
		if !that.session.IsFinished() {
			that.status = "Finish the game before restarting."
			return that, nil
		}
		return that, that.restart()
	}

	return that, nil
}
