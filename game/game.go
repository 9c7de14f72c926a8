// Package game ties the engine together for one session: an annotated
// board, the immutable dictionary structures, a rack, and a bag. The
// dictionary, trie, and tile values are built once up front and passed
// in; nothing in here is global.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/crosses"
	"github.com/wztlei/scrabble/lexicon"
	"github.com/wztlei/scrabble/move"
	"github.com/wztlei/scrabble/movegen"
	"github.com/wztlei/scrabble/trie"
)

var errEmptyMove = errors.New("cannot play an empty move")

// Game is one playing session.
type Game struct {
	board *board.GameBoard
	lex   *lexicon.Lexicon
	dist  *alphabet.LetterDistribution
	gen   *movegen.Generator
	bag   *alphabet.Bag
	rack  *alphabet.Rack

	score int
	turn  int
}

// New creates a game on the given layout with a freshly annotated board,
// a full bag, and a rack drawn from it.
func New(lex *lexicon.Lexicon, dist *alphabet.LetterDistribution,
	layout []string) (*Game, error) {

	b, err := board.NewBoardFromLayout(layout)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board: b,
		lex:   lex,
		dist:  dist,
		gen:   movegen.NewGenerator(trie.FromLexicon(lex), lex, dist),
		bag:   dist.MakeBag(),
		rack:  alphabet.NewRack(),
	}
	crosses.UpdateAll(g.board, g.lex)
	g.bag.Refill(g.rack, movegen.RackSize)
	return g, nil
}

// Board returns the live board. Callers placing letters directly (e.g.
// setting up a position) must call Reannotate afterward.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Rack() *alphabet.Rack {
	return g.rack
}

func (g *Game) Bag() *alphabet.Bag {
	return g.bag
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Turn() int {
	return g.turn
}

// SetRack replaces the rack contents, e.g. "AEINST?" with '?' a blank.
func (g *Game) SetRack(letters string) {
	g.rack.SetFromString(letters)
}

// Reannotate recomputes cross checks and minimum word lengths. It must
// run after any direct board edit.
func (g *Game) Reannotate() {
	crosses.UpdateAll(g.board, g.lex)
}

// BestMove finds the highest-scoring legal move for the current rack.
func (g *Game) BestMove() *move.Move {
	return g.gen.BestMove(g.board, g.rack)
}

// PlayMove commits a move: places its tiles, removes them from the
// rack, re-annotates the board for the next turn, adds the score, and
// refills the rack from the bag.
func (g *Game) PlayMove(m *move.Move) error {
	if m.IsEmpty() {
		return errEmptyMove
	}
	for _, p := range m.Placements() {
		if g.board.HasLetter(p.Row, p.Col) {
			return fmt.Errorf("square %v,%v is already occupied", p.Row, p.Col)
		}
	}
	for _, p := range m.Placements() {
		g.board.SetLetter(p.Row, p.Col, p.Letter)
		if alphabet.IsBlank(p.Letter) {
			g.rack.TakeBlank()
		} else {
			g.rack.Take(p.Letter)
		}
	}
	g.Reannotate()
	g.score += m.Score()
	g.turn++
	g.bag.Refill(g.rack, movegen.RackSize)
	log.Info().Int("turn", g.turn).Str("play", m.ShortDescription()).
		Int("total", g.score).Msg("played move")
	return nil
}
