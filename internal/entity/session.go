package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	StatusOngoing   = "ongoing"
	StatusWon       = "won"
	StatusStalemate = "stalemate"
)

// Score counts finished games of one session.
type Score struct {
	PlayerOne  int `json:"player_one"`
	PlayerTwo  int `json:"player_two"`
	Stalemates int `json:"stalemates"`
}

// Session is the stored form of one terminal session: the current game and
// the score of the games already played.
type Session struct {
	ID        string    `json:"id"`
	Board     [9]string `json:"board"`
	Turn      string    `json:"turn"`
	Winner    string    `json:"winner,omitempty"`
	Status    string    `json:"status"`
	Score     Score     `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string) *Session {
	session := &Session{ID: id}
	session.Apply(tictactoe.NewEngine())

	return session
}

// Apply - copies the engine state into the session.
func (that *Session) Apply(engine *tictactoe.Engine) {
	snapshot := engine.Snapshot()

	for i, mark := range snapshot.Board {
		that.Board[i] = mark.String()
	}

	that.Turn = snapshot.CurrentPlayer.Mark().String()
	that.Winner = ""

	switch {
	case snapshot.Won:
		that.Winner = snapshot.Winner.Mark().String()
		that.Status = StatusWon
	case engine.IsFull():
		that.Status = StatusStalemate
	default:
		that.Status = StatusOngoing
	}

	that.UpdatedAt = time.Now().UTC()
}

// Engine - rebuilds the engine stored in the session.
func (that *Session) Engine() (*tictactoe.Engine, error) {
	var snapshot tictactoe.Snapshot

	for i, cell := range that.Board {
		mark, err := tictactoe.ParseMark(cell)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		snapshot.Board[i] = mark
	}

	turn, err := playerOf(that.Turn)
	if err != nil {
		return nil, fmt.Errorf("turn: %w", err)
	}
	snapshot.CurrentPlayer = turn

	if that.Winner != "" {
		winner, err := playerOf(that.Winner)
		if err != nil {
			return nil, fmt.Errorf("winner: %w", err)
		}
		snapshot.Winner = winner
		snapshot.Won = true
	}

	engine, err := tictactoe.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", that.ID, err)
	}

	return engine, nil
}

// Record - counts a finished game.
func (that *Session) Record(result tictactoe.PlaceResult, player tictactoe.Player) {
	switch result {
	case tictactoe.ResultWin:
		if player == tictactoe.PlayerOne {
			that.Score.PlayerOne++
		} else {
			that.Score.PlayerTwo++
		}
	case tictactoe.ResultStalemate:
		that.Score.Stalemates++
	case tictactoe.ResultNeutral, tictactoe.ResultIllegal:
	}
}

func (that *Session) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Session) IsStalemate() bool {
	return that.Status == StatusStalemate
}

// IsFinished - true for a won game and for a full board.
func (that *Session) IsFinished() bool {
	return that.IsWon() || that.IsStalemate()
}

func playerOf(mark string) (tictactoe.Player, error) {
	parsed, err := tictactoe.ParseMark(mark)
	if err != nil {
		return tictactoe.PlayerOne, err
	}

	switch parsed {
	case tictactoe.MarkOne:
		return tictactoe.PlayerOne, nil
	case tictactoe.MarkTwo:
		return tictactoe.PlayerTwo, nil
	default:
		return tictactoe.PlayerOne, fmt.Errorf("%w: empty player mark", tictactoe.ErrCorruptedSnapshot)
	}
}
