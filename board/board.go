// Package board contains the game board representation: a square grid of
// bonus squares ringed by a one-square border of outside squares, so that
// every directional scan can run off any edge without bounds checks.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wztlei/scrabble/alphabet"
)

// Layout characters, matching the historical board data files.
const (
	layoutTripleWord   = 'W'
	layoutDoubleWord   = 'w'
	layoutTripleLetter = 'L'
	layoutDoubleLetter = 'l'
	layoutRegular      = '.'
	layoutOutside      = 'x'
)

var errNoBorder = errors.New("board layout is missing its outside border ring")

// A GameBoard is the main board structure. Playable squares live at
// rows and columns 1..Dim(); row/col 0 and Dim()+1 are the border.
type GameBoard struct {
	squares [][]*Square
	dim     int
}

// NewBoardFromLayout parses a layout description into a GameBoard. The
// layout must be square, and must include the border ring of 'x' squares
// on all four sides; a layout without it is a caller error, since every
// scan in the engine relies on running into an outside square.
func NewBoardFromLayout(layout []string) (*GameBoard, error) {
	n := len(layout)
	if n < 3 {
		return nil, errNoBorder
	}
	for _, row := range layout {
		if len(row) != n {
			return nil, fmt.Errorf("board layout is not square: row %q in a %v-row layout", row, n)
		}
	}
	g := &GameBoard{dim: n - 2}
	g.squares = make([][]*Square, n)
	for i := 0; i < n; i++ {
		g.squares[i] = make([]*Square, n)
		for j := 0; j < n; j++ {
			st, err := squareType(layout[i][j])
			if err != nil {
				return nil, err
			}
			onBorder := i == 0 || j == 0 || i == n-1 || j == n-1
			if onBorder != (st == Outside) {
				return nil, errNoBorder
			}
			sq := &Square{
				stype:  st,
				letter: alphabet.EmptySquareMarker,
				row:    i,
				col:    j,
			}
			if st != Outside {
				sq.crossCheck = TrivialCrossSet
			}
			g.squares[i][j] = sq
		}
	}
	return g, nil
}

func squareType(c byte) (SquareType, error) {
	switch c {
	case layoutTripleWord:
		return TripleWord, nil
	case layoutDoubleWord:
		return DoubleWord, nil
	case layoutTripleLetter:
		return TripleLetter, nil
	case layoutDoubleLetter:
		return DoubleLetter, nil
	case layoutRegular:
		return Regular, nil
	case layoutOutside:
		return Outside, nil
	}
	return 0, fmt.Errorf("unknown board layout character %q", string(c))
}

// Dim is the dimension of the playable area, not counting the border.
func (g *GameBoard) Dim() int {
	return g.dim
}

// Square returns the square at the given coordinates. Coordinates
// include the border: playable squares are 1..Dim().
func (g *GameBoard) Square(row, col int) *Square {
	return g.squares[row][col]
}

// HasLetter returns whether a tile sits at the given coordinates.
func (g *GameBoard) HasLetter(row, col int) bool {
	return !g.squares[row][col].IsEmpty()
}

// SetLetter places or clears ('.') a letter.
func (g *GameBoard) SetLetter(row, col int, letter byte) {
	g.squares[row][col].letter = letter
}

// HasTiles returns whether any tile has been played on the board.
func (g *GameBoard) HasTiles() bool {
	for i := 1; i <= g.dim; i++ {
		for j := 1; j <= g.dim; j++ {
			if !g.squares[i][j].IsEmpty() {
				return true
			}
		}
	}
	return false
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	n := len(g.squares)
	c := &GameBoard{dim: g.dim, squares: make([][]*Square, n)}
	for i := 0; i < n; i++ {
		c.squares[i] = make([]*Square, n)
		for j := 0; j < n; j++ {
			sq := &Square{}
			sq.copyFrom(g.squares[i][j])
			c.squares[i][j] = sq
		}
	}
	return c
}

// Transpose returns a new board with rows and columns swapped, so that
// the transposed board's (r, c) holds the original (c, r) content. The
// border ring maps onto itself. Transposing twice returns a board equal
// to the original. Cross checks and minimum word lengths are carried
// over as-is and must be recomputed before the transposed board is
// searched.
func (g *GameBoard) Transpose() *GameBoard {
	n := len(g.squares)
	tr := &GameBoard{dim: g.dim, squares: make([][]*Square, n)}
	for i := 0; i < n; i++ {
		tr.squares[i] = make([]*Square, n)
		for j := 0; j < n; j++ {
			sq := &Square{}
			sq.copyFrom(g.squares[j][i])
			sq.row = i
			sq.col = j
			tr.squares[i][j] = sq
		}
	}
	return tr
}

// Equals compares every square of two boards, annotations included.
func (g *GameBoard) Equals(other *GameBoard) bool {
	if g.dim != other.dim {
		return false
	}
	for i := range g.squares {
		for j := range g.squares[i] {
			if !g.squares[i][j].equals(other.squares[i][j]) {
				return false
			}
		}
	}
	return true
}

// SetRow overwrites the letters of one playable row from a string, where
// a space means empty. Useful for setting up test positions.
func (g *GameBoard) SetRow(row int, letters string) {
	for j := 1; j <= g.dim; j++ {
		g.squares[row][j].letter = alphabet.EmptySquareMarker
	}
	for i := 0; i < len(letters) && i < g.dim; i++ {
		if letters[i] != ' ' {
			g.squares[row][i+1].letter = letters[i]
		}
	}
}

// ToDisplayText returns a printable version of the playable grid with
// row and column headers.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for j := 1; j <= g.dim; j++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('A' + j - 1))
	}
	sb.WriteByte('\n')
	for i := 1; i <= g.dim; i++ {
		fmt.Fprintf(&sb, "%2d ", i)
		for j := 1; j <= g.dim; j++ {
			sb.WriteByte(' ')
			sq := g.squares[i][j]
			if sq.IsEmpty() {
				sb.WriteByte(bonusChar(sq.stype))
			} else {
				sb.WriteByte(sq.letter)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func bonusChar(st SquareType) byte {
	switch st {
	case TripleWord:
		return layoutTripleWord
	case DoubleWord:
		return layoutDoubleWord
	case TripleLetter:
		return layoutTripleLetter
	case DoubleLetter:
		return layoutDoubleLetter
	}
	return layoutRegular
}
