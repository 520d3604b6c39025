package tictactoe

import (
	"errors"
	"fmt"
)

var ErrInvalidIndex = errors.New("invalid cell index")

// Engine holds the state of one game. It is not safe for concurrent use,
// callers must serialize Place and Reset themselves.
type Engine struct {
	board         Board
	currentPlayer Player
	winner        Player
	won           bool
}

func NewEngine() *Engine {
	return &Engine{currentPlayer: PlayerOne}
}

// Cell - returns the mark at index.
func (that *Engine) Cell(index int) (Mark, error) {
	if err := validateIndex(index); err != nil {
		return MarkEmpty, err
	}
	return that.board[index], nil
}

// Place - puts the current player's mark at index and reports what it led to.
// ResultIllegal leaves the engine untouched.
func (that *Engine) Place(index int) (PlaceResult, error) {
	if err := validateIndex(index); err != nil {
		return ResultIllegal, err
	}

	if that.won || that.board[index] != MarkEmpty {
		return ResultIllegal, nil
	}

	mark := that.currentPlayer.Mark()
	that.board[index] = mark

	if that.completesLine(index, mark) {
		that.winner = that.currentPlayer
		that.won = true
		return ResultWin, nil
	}

	if that.board.isFull() {
		return ResultStalemate, nil
	}

	that.currentPlayer = that.currentPlayer.Switch()

	return ResultNeutral, nil
}

func (that *Engine) Reset() {
	that.board = Board{}
	that.currentPlayer = PlayerOne
	that.winner = PlayerOne
	that.won = false
}

// IsOver reports whether a winner has been decided. A full board without a
// winner is not reported as over.
func (that *Engine) IsOver() bool {
	return that.won
}

func (that *Engine) IsFull() bool {
	return that.board.isFull()
}

func (that *Engine) CurrentPlayer() Player {
	return that.currentPlayer
}

func (that *Engine) Winner() (Player, bool) {
	return that.winner, that.won
}

// Board - returns a copy of the board.
func (that *Engine) Board() Board {
	return that.board
}

// completesLine checks the row, then the column, then the diagonals crossing
// index, each against mark.
func (that *Engine) completesLine(index int, mark Mark) bool {
	row, column := index/boardSide, index%boardSide

	if that.lineOf(mark, func(i int) int { return row*boardSide + i }) {
		return true
	}

	if that.lineOf(mark, func(i int) int { return i*boardSide + column }) {
		return true
	}

	if row == column && that.lineOf(mark, func(i int) int { return i*boardSide + i }) {
		return true
	}

	if row+column == boardSide-1 && that.lineOf(mark, func(i int) int { return i*boardSide + boardSide - 1 - i }) {
		return true
	}

	return false
}

func (that *Engine) lineOf(mark Mark, cellAt func(i int) int) bool {
	for i := range boardSide {
		if that.board[cellAt(i)] != mark {
			return false
		}
	}
	return true
}

func validateIndex(index int) error {
	if index < 0 || index >= boardSize {
		return fmt.Errorf("%w: cell %d", ErrInvalidIndex, index)
	}
	return nil
}
