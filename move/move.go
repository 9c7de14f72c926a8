// Package move defines the Move type: the ordered tile placements of one
// candidate or committed turn, with its score.
package move

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wztlei/scrabble/alphabet"
)

// A Placement is one newly placed tile. Letter is uppercase for a
// natural tile and lowercase for an assigned blank. Board tiles
// traversed while forming the word are not placements.
type Placement struct {
	Row    int
	Col    int
	Letter byte
}

// A Move is an ordered sequence of placements along one line, plus the
// score the placement earns. The zero-valued Move is the empty move,
// returned when no legal play exists.
type Move struct {
	placements []Placement
	score      int
	vertical   bool
}

// New creates a move. The placement slice is owned by the move afterward.
func New(placements []Placement, score int, vertical bool) *Move {
	return &Move{placements: placements, score: score, vertical: vertical}
}

// Empty returns the empty move with score 0.
func Empty() *Move {
	return &Move{}
}

// Placements returns the move's placements in order. Callers must not
// modify the returned slice.
func (m *Move) Placements() []Placement {
	return m.placements
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) Vertical() bool {
	return m.vertical
}

// TilesPlayed returns the number of newly placed tiles.
func (m *Move) TilesPlayed() int {
	return len(m.placements)
}

// IsEmpty reports whether this is the empty move.
func (m *Move) IsEmpty() bool {
	return len(m.placements) == 0
}

// BingoBonus is awarded when a single move places a full rack of tiles.
const BingoBonus = 50

// Bingo reports whether this move earned the full-rack bonus.
func (m *Move) Bingo() bool {
	return len(m.placements) >= 7
}

// Transposed returns a copy with every placement's row and column
// swapped, converting a move found on a transposed board back to the
// original orientation (or vice versa).
func (m *Move) Transposed() *Move {
	placements := make([]Placement, len(m.placements))
	for i, p := range m.placements {
		placements[i] = Placement{Row: p.Col, Col: p.Row, Letter: p.Letter}
	}
	return &Move{placements: placements, score: m.score, vertical: !m.vertical}
}

// BoardGameCoords converts the move's starting square to a coordinate
// like 8D (horizontal) or D8 (vertical).
func (m *Move) BoardGameCoords() string {
	if m.IsEmpty() {
		return ""
	}
	start := m.placements[0]
	colCoords := string(rune('A' + start.Col - 1))
	rowCoords := strconv.Itoa(start.Row)
	if m.vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// Word returns the placed letters in order, blanks shown lowercase. Note
// this is only the newly placed tiles, not the full word on the board.
func (m *Move) Word() string {
	var sb strings.Builder
	for _, p := range m.placements {
		sb.WriteByte(p.Letter)
	}
	return sb.String()
}

// ShortDescription provides a short description for logging or display.
func (m *Move) ShortDescription() string {
	if m.IsEmpty() {
		return "(no play)"
	}
	return fmt.Sprintf("%v %v %v", m.BoardGameCoords(), m.Word(), m.score)
}

func (m *Move) String() string {
	if m.IsEmpty() {
		return "<empty move>"
	}
	return fmt.Sprintf("<move %v tiles: %v score: %v vertical: %v>",
		m.BoardGameCoords(), m.Word(), m.score, m.vertical)
}

// UsesBlank reports whether any placement is an assigned blank.
func (m *Move) UsesBlank() bool {
	for _, p := range m.placements {
		if alphabet.IsBlank(p.Letter) {
			return true
		}
	}
	return false
}
