// Package movegen contains the move generator: a recursive rightward
// extension over an annotated board, constrained by the rack, the word
// trie, and the per-square cross checks. It is a trie variant of the
// Appel-Jacobson algorithm.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/crosses"
	"github.com/wztlei/scrabble/lexicon"
	"github.com/wztlei/scrabble/move"
	"github.com/wztlei/scrabble/trie"
)

// RackSize is the number of tiles a full rack holds.
const RackSize = 7

// Generator generates moves. It is immutable and safe to share; all of
// one search's scratch state lives in a per-call searchState.
type Generator struct {
	trie *trie.Trie
	lex  *lexicon.Lexicon
	dist *alphabet.LetterDistribution
}

// NewGenerator creates a Generator from the session's immutable
// dictionary structures.
func NewGenerator(t *trie.Trie, lex *lexicon.Lexicon,
	dist *alphabet.LetterDistribution) *Generator {
	return &Generator{trie: t, lex: lex, dist: dist}
}

// BestMove finds the highest-scoring legal placement for the rack on the
// given board. The board must already carry fresh cross checks and
// minimum word lengths. It returns the empty move with score 0 when no
// legal play exists. The board and rack are not modified.
func (g *Generator) BestMove(b *board.GameBoard, rack *alphabet.Rack) *move.Move {
	if !b.HasTiles() {
		return g.bestOpeningMove(b, rack)
	}

	acrossPlacements, acrossScore := g.bestAcross(b, rack)

	// Vertical moves reuse the same machinery on a transposed board,
	// which needs its own annotation pass.
	transposed := b.Transpose()
	crosses.UpdateAll(transposed, g.lex)
	downPlacements, downScore := g.bestAcross(transposed, rack)

	log.Debug().Int("across", acrossScore).Int("down", downScore).
		Msg("orientation scores")

	// The horizontal result wins ties; it is generated first.
	if downScore > acrossScore {
		return move.New(downPlacements, downScore, false).Transposed()
	}
	if acrossPlacements == nil {
		return move.Empty()
	}
	return move.New(acrossPlacements, acrossScore, false)
}

// bestAcross runs the rightward-extension search from every usable
// anchor of the board, in its current orientation.
func (g *Generator) bestAcross(b *board.GameBoard, rack *alphabet.Rack) ([]move.Placement, int) {
	s := &searchState{board: b, rack: rack.Copy()}
	for row := 1; row <= b.Dim(); row++ {
		for col := 1; col <= b.Dim(); col++ {
			minLength := b.Square(row, col).MinWordLength()
			if minLength == board.NoAnchor || int(minLength) > int(rack.NumTiles()) {
				continue
			}
			s.minLength = int(minLength)
			g.extendRight(s, g.trie.Root(), row, col)
		}
	}
	return s.best, s.bestScore
}

// bestOpeningMove handles the empty board. The opening word must cover
// the center square and place at least two tiles, so anchors are forced
// along the center row from its left edge through the center column,
// with the required length shrinking as the start approaches the center.
// Only the horizontal search runs; the vertical case is its mirror image.
func (g *Generator) bestOpeningMove(b *board.GameBoard, rack *alphabet.Rack) *move.Move {
	mid := b.Dim()/2 + 1
	s := &searchState{board: b, rack: rack.Copy()}
	for col := 1; col <= mid; col++ {
		minLength := mid - col + 1
		if col == mid {
			// Starting on the center square still requires two tiles.
			minLength = 2
		}
		if minLength > int(rack.NumTiles()) {
			continue
		}
		s.minLength = minLength
		g.extendRight(s, g.trie.Root(), mid, col)
	}
	if s.best == nil {
		return move.Empty()
	}
	return move.New(s.best, s.bestScore, false)
}
