package movegen

import (
	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/move"
	"github.com/wztlei/scrabble/trie"
)

// searchState is the scratch state of one search pass. The rack and the
// placement list are speculated on during recursion and always restored
// before a sibling branch runs.
type searchState struct {
	board     *board.GameBoard
	rack      *alphabet.Rack
	minLength int

	placements []move.Placement
	best       []move.Placement
	bestScore  int
}

// extendRight extends the current partial word one square rightward.
// Occupied squares are traversed for free when the trie allows their
// letter; on empty squares every rack tile (and the blank, standing in
// for any letter) that passes the trie and the square's cross check is
// tried in turn.
func (g *Generator) extendRight(s *searchState, node *trie.Node, row, col int) {
	sq := s.board.Square(row, col)
	if sq.Type() == board.Outside {
		return
	}

	if !sq.IsEmpty() {
		child := node.Child(alphabet.ToUpper(sq.Letter()))
		if child != nil {
			g.extendRight(s, child, row, col+1)
		}
		return
	}

	if node.Terminal() && len(s.placements) >= s.minLength {
		if score := g.ScorePlacements(s.board, s.placements); score > s.bestScore {
			s.bestScore = score
			s.best = append([]move.Placement(nil), s.placements...)
		}
	}

	for _, child := range node.Children() {
		letter := child.Letter()
		if !sq.CrossCheckAllows(letter) {
			continue
		}
		if s.rack.Has(letter) {
			s.place(letter, false, row, col, func() {
				g.extendRight(s, child, row, col+1)
			})
		}
		if s.rack.HasBlank() {
			s.place(alphabet.ToLower(letter), true, row, col, func() {
				g.extendRight(s, child, row, col+1)
			})
		}
	}
}

// place speculatively consumes a tile and appends its placement, runs
// fn, and restores both. The deferred restore runs on every exit path,
// so sibling branches always see pristine state.
func (s *searchState) place(letter byte, blank bool, row, col int, fn func()) {
	if blank {
		s.rack.TakeBlank()
	} else {
		s.rack.Take(letter)
	}
	s.placements = append(s.placements, move.Placement{Row: row, Col: col, Letter: letter})

	defer func() {
		s.placements = s.placements[:len(s.placements)-1]
		if blank {
			s.rack.AddBlank()
		} else {
			s.rack.Add(letter)
		}
	}()

	fn()
}
