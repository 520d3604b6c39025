package tictactoe

import "fmt"

const (
	boardSide = 3
	boardSize = boardSide * boardSide
)

// Mark is the content of a single cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkOne
	MarkTwo
)

func (that Mark) String() string {
	switch that {
	case MarkOne:
		return "X"
	case MarkTwo:
		return "O"
	default:
		return ""
	}
}

// ParseMark - reverse of Mark.String.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "":
		return MarkEmpty, nil
	case "X":
		return MarkOne, nil
	case "O":
		return MarkTwo, nil
	default:
		return MarkEmpty, fmt.Errorf("%w: unknown mark %q", ErrCorruptedSnapshot, s)
	}
}

// Player is one of the two sides; each owns exactly one mark.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

func (that Player) Mark() Mark {
	if that == PlayerTwo {
		return MarkTwo
	}
	return MarkOne
}

func (that Player) Switch() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Number - 1 for PlayerOne, 2 for PlayerTwo.
func (that Player) Number() int {
	return int(that) + 1
}

func (that Player) String() string {
	return fmt.Sprintf("Player %d", that.Number())
}

// PlaceResult is the outcome of a single Place call.
type PlaceResult uint8

const (
	ResultNeutral PlaceResult = iota
	ResultIllegal
	ResultWin
	ResultStalemate
)

func (that PlaceResult) String() string {
	switch that {
	case ResultNeutral:
		return "neutral"
	case ResultIllegal:
		return "illegal"
	case ResultWin:
		return "win"
	case ResultStalemate:
		return "stalemate"
	default:
		return fmt.Sprintf("PlaceResult(%d)", uint8(that))
	}
}

// Board is row-major, cell index is row*3+column.
type Board [boardSize]Mark

func (that *Board) isFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}
	return true
}
