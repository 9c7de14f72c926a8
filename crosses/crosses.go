// Package crosses computes the two per-square annotations the move
// generator relies on: cross checks (which letters can legally sit on a
// square given the perpendicular word they would complete) and minimum
// word lengths (how many tiles a word starting on a square must place
// before it connects with existing content). Both must be recomputed
// whenever any square's letter changes.
package crosses

import (
	"strings"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/lexicon"
)

// UpdateAll recomputes both annotations for the whole board.
func UpdateAll(b *board.GameBoard, lex *lexicon.Lexicon) {
	UpdateCrossChecks(b, lex)
	UpdateMinWordLengths(b)
}

// UpdateCrossChecks recomputes the cross-check set of every empty
// playable square. For a square with no tiles above or below, every
// letter is allowed. Otherwise a letter is allowed exactly when
// above-run + letter + below-run is a lexicon word. Blanks already on
// the board count by their assigned letter.
func UpdateCrossChecks(b *board.GameBoard, lex *lexicon.Lexicon) {
	for row := 1; row <= b.Dim(); row++ {
		for col := 1; col <= b.Dim(); col++ {
			sq := b.Square(row, col)
			if !sq.IsEmpty() {
				continue
			}

			above := collectRun(b, row, col, -1)
			below := collectRun(b, row, col, +1)
			if above == "" && below == "" {
				cs := board.CrossSet(0)
				cs.SetAll()
				sq.SetCrossCheck(cs)
				continue
			}

			cs := board.CrossSet(0)
			for letter := byte('A'); letter <= 'Z'; letter++ {
				word := above + string(letter) + below
				if lex.HasWord(word) {
					cs.Set(letter)
				}
			}
			sq.SetCrossCheck(cs)
		}
	}
}

// collectRun gathers the contiguous run of letters in the given row
// direction, uppercased, reading outward from (row, col) and stopping at
// an empty or outside square. The run is returned in top-to-bottom order.
func collectRun(b *board.GameBoard, row, col, drow int) string {
	var sb strings.Builder
	for r := row + drow; ; r += drow {
		sq := b.Square(r, col)
		if sq.Type() == board.Outside || sq.IsEmpty() {
			break
		}
		sb.WriteByte(alphabet.ToUpper(sq.Letter()))
	}
	run := sb.String()
	if drow < 0 {
		return reverse(run)
	}
	return run
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// UpdateMinWordLengths recomputes the minimum word length of every
// playable square. Rows are processed right to left with a running
// minimum:
//
//   - a square whose left neighbor is occupied can never start a word;
//   - a square touching a tile (above, below, right, or itself) starts
//     connected words at length 1 and resets the running minimum;
//   - a square with no occupied square anywhere to its right can never
//     connect;
//   - any other square connects after one more tile than its right
//     neighbor's minimum.
func UpdateMinWordLengths(b *board.GameBoard) {
	for row := 1; row <= b.Dim(); row++ {
		running := int8(board.NoAnchor)
		for col := b.Dim(); col >= 1; col-- {
			sq := b.Square(row, col)
			switch {
			case b.HasLetter(row, col-1):
				sq.SetMinWordLength(board.NoAnchor)
			case b.HasLetter(row-1, col) || b.HasLetter(row+1, col) ||
				b.HasLetter(row, col+1) || b.HasLetter(row, col):
				sq.SetMinWordLength(1)
				running = 1
			case running == board.NoAnchor:
				sq.SetMinWordLength(board.NoAnchor)
			default:
				running++
				sq.SetMinWordLength(running)
			}
		}
	}
}
