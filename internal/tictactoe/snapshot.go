package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrCorruptedSnapshot = errors.New("corrupted game snapshot")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Snapshot is a plain copy of the engine state, used to persist a game
// outside the process.
type Snapshot struct {
	Board         Board
	CurrentPlayer Player
	Winner        Player
	Won           bool
}

func (that *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:         that.board,
		CurrentPlayer: that.currentPlayer,
		Winner:        that.winner,
		Won:           that.won,
	}
}

// Restore - builds an engine from a snapshot, refusing states that no
// sequence of Place calls could have produced.
func Restore(snapshot Snapshot) (*Engine, error) {
	if err := snapshot.validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		board:         snapshot.Board,
		currentPlayer: snapshot.CurrentPlayer,
		won:           snapshot.Won,
	}
	if snapshot.Won {
		engine.winner = snapshot.Winner
	}

	return engine, nil
}

func (that Snapshot) validate() error {
	if that.CurrentPlayer > PlayerTwo || that.Winner > PlayerTwo {
		return fmt.Errorf("%w: unknown player", ErrCorruptedSnapshot)
	}

	var ones, twos int
	for i, cell := range that.Board {
		switch cell {
		case MarkEmpty:
		case MarkOne:
			ones++
		case MarkTwo:
			twos++
		default:
			return fmt.Errorf("%w: unknown mark in cell %d", ErrCorruptedSnapshot, i)
		}
	}

	if diff := ones - twos; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X against %d O", ErrCorruptedSnapshot, ones, twos)
	}

	if that.Won {
		if !hasLine(that.Board, that.Winner.Mark()) {
			return fmt.Errorf("%w: %s has no line", ErrCorruptedSnapshot, that.Winner)
		}
		if hasLine(that.Board, that.Winner.Switch().Mark()) {
			return fmt.Errorf("%w: both players have a line", ErrCorruptedSnapshot)
		}
		if that.CurrentPlayer != that.Winner || lastMover(ones, twos) != that.Winner {
			return fmt.Errorf("%w: winner is not the last player to move", ErrCorruptedSnapshot)
		}
		return nil
	}

	for _, mark := range []Mark{MarkOne, MarkTwo} {
		if hasLine(that.Board, mark) {
			return fmt.Errorf("%w: line of %s without a winner", ErrCorruptedSnapshot, mark)
		}
	}

	// a stalemate keeps the player who filled the board
	expected := lastMover(ones, twos).Switch()
	if that.Board.isFull() {
		expected = lastMover(ones, twos)
	}

	if that.CurrentPlayer != expected {
		return fmt.Errorf("%w: %s cannot be on turn", ErrCorruptedSnapshot, that.CurrentPlayer)
	}

	return nil
}

// lastMover - the player who placed the latest mark; on an empty board it is
// PlayerTwo so that PlayerOne moves next.
func lastMover(ones, twos int) Player {
	if ones > twos {
		return PlayerOne
	}
	return PlayerTwo
}

func hasLine(board Board, mark Mark) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}
	return false
}
