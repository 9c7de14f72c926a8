package movegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/crosses"
	"github.com/wztlei/scrabble/lexicon"
	"github.com/wztlei/scrabble/move"
	"github.com/wztlei/scrabble/trie"
)

func newGenerator(words ...string) (*Generator, *lexicon.Lexicon) {
	lex := lexicon.New("test", words)
	return NewGenerator(trie.FromLexicon(lex), lex,
		alphabet.EnglishLetterDistribution()), lex
}

// allRegularLayout is a bordered board with no bonus squares, for tests
// that need multiplier-free arithmetic.
func allRegularLayout(dim int) []string {
	full := dim + 2
	border := strings.Repeat("x", full)
	inner := "x" + strings.Repeat(".", dim) + "x"
	layout := make([]string, full)
	layout[0] = border
	layout[full-1] = border
	for i := 1; i < full-1; i++ {
		layout[i] = inner
	}
	return layout
}

func TestOpeningMove(t *testing.T) {
	g, _ := newGenerator("CAT")
	b := board.NewCrosswordGameBoard()
	rack := alphabet.RackFromString("CAT")

	m := g.BestMove(b, rack)
	require.False(t, m.IsEmpty())
	assert.Equal(t, "CAT", m.Word())
	// Starting at 8F (and at 8G, 8H) gives the same doubled score; the
	// earliest anchor wins the tie.
	assert.Equal(t, []move.Placement{
		{Row: 8, Col: 6, Letter: 'C'},
		{Row: 8, Col: 7, Letter: 'A'},
		{Row: 8, Col: 8, Letter: 'T'},
	}, m.Placements())
	// (3+1+1) doubled by the center square.
	assert.Equal(t, 10, m.Score())
	assert.False(t, m.Vertical())
}

func TestOpeningMoveCoversCenter(t *testing.T) {
	g, _ := newGenerator("CAT", "TREE", "ENTIRE")
	b := board.NewCrosswordGameBoard()
	for _, letters := range []string{"CAT", "TREE???", "ENTIREE"} {
		m := g.BestMove(b, alphabet.RackFromString(letters))
		require.False(t, m.IsEmpty(), "rack %v", letters)
		assert.GreaterOrEqual(t, m.TilesPlayed(), 2, "rack %v", letters)
		covers := false
		for _, p := range m.Placements() {
			assert.Equal(t, 8, p.Row, "rack %v", letters)
			if p.Col == 8 {
				covers = true
			}
		}
		assert.True(t, covers, "rack %v must cover the center", letters)
	}
}

func TestEmptyLexicon(t *testing.T) {
	g, lex := newGenerator()
	rack := alphabet.RackFromString("AEINRST")

	b := board.NewCrosswordGameBoard()
	m := g.BestMove(b, rack)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Score())

	b.SetRow(8, "   CAT")
	crosses.UpdateAll(b, lex)
	m = g.BestMove(b, rack)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Score())
}

func TestNoLegalMove(t *testing.T) {
	g, lex := newGenerator("CAT")
	b := board.NewCrosswordGameBoard()
	b.SetLetter(8, 8, 'Q')
	crosses.UpdateAll(b, lex)

	m := g.BestMove(b, alphabet.RackFromString("XYZ"))
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Score())
}

func TestHookOntoExistingWord(t *testing.T) {
	g, lex := newGenerator("CAT", "CATS", "BAT")
	b := board.NewCrosswordGameBoard()
	b.SetRow(8, "   CAT")
	crosses.UpdateAll(b, lex)

	m := g.BestMove(b, alphabet.RackFromString("S"))
	require.False(t, m.IsEmpty())
	assert.Equal(t, []move.Placement{{Row: 8, Col: 7, Letter: 'S'}},
		m.Placements())
	// The whole of CATS counts, not just the hooked S.
	assert.Equal(t, 6, m.Score())
	assert.False(t, m.Vertical())
	assert.True(t, lex.HasWord("CAT"+m.Word()))
}

func TestPlayThroughExistingTile(t *testing.T) {
	g, lex := newGenerator("BAT")
	b := board.NewCrosswordGameBoard()
	b.SetLetter(8, 8, 'T')
	crosses.UpdateAll(b, lex)

	m := g.BestMove(b, alphabet.RackFromString("AB"))
	require.False(t, m.IsEmpty())
	assert.Equal(t, "BA", m.Word())
	assert.Equal(t, []move.Placement{
		{Row: 8, Col: 6, Letter: 'B'},
		{Row: 8, Col: 7, Letter: 'A'},
	}, m.Placements())
	// B + A + the existing T; the center multiplier was consumed long ago.
	assert.Equal(t, 5, m.Score())
}

func TestHorizontalWinsTies(t *testing.T) {
	// A lone tile on the main diagonal makes the two orientations exact
	// mirror images, so both best moves score identically.
	g, lex := newGenerator("BAT")
	b := board.NewCrosswordGameBoard()
	b.SetLetter(8, 8, 'T')
	crosses.UpdateAll(b, lex)

	m := g.BestMove(b, alphabet.RackFromString("AB"))
	require.False(t, m.IsEmpty())
	assert.False(t, m.Vertical())
}

func TestVerticalMove(t *testing.T) {
	// BAT can only be completed downward: the T sits too close to the
	// left edge for any horizontal completion.
	g, lex := newGenerator("BAT")
	b := board.NewCrosswordGameBoard()
	b.SetLetter(6, 2, 'T')
	crosses.UpdateAll(b, lex)

	m := g.BestMove(b, alphabet.RackFromString("AB"))
	require.False(t, m.IsEmpty())
	assert.True(t, m.Vertical())
	assert.Equal(t, []move.Placement{
		{Row: 4, Col: 2, Letter: 'B'},
		{Row: 5, Col: 2, Letter: 'A'},
	}, m.Placements())
	assert.Equal(t, 5, m.Score())
}

func TestBlankMove(t *testing.T) {
	g, _ := newGenerator("CAT")
	b := board.NewCrosswordGameBoard()

	m := g.BestMove(b, alphabet.RackFromString("CT?"))
	require.False(t, m.IsEmpty())
	assert.Equal(t, "CaT", m.Word())
	assert.True(t, m.UsesBlank())
	// The blank A scores zero: (3+0+1) doubled.
	assert.Equal(t, 8, m.Score())
}

func TestBingo(t *testing.T) {
	g, _ := newGenerator("BANANAS")
	b, err := board.NewBoardFromLayout(allRegularLayout(15))
	require.NoError(t, err)

	m := g.BestMove(b, alphabet.RackFromString("AAABNNS"))
	require.False(t, m.IsEmpty())
	assert.Equal(t, 7, m.TilesPlayed())
	assert.True(t, m.Bingo())
	// No bonus squares: the bare tile sum plus the 50-point bonus.
	assert.Equal(t, 3+1+1+1+1+1+1+50, m.Score())
}

func TestBingoWithBlank(t *testing.T) {
	g, _ := newGenerator("BANANAS")
	b, err := board.NewBoardFromLayout(allRegularLayout(15))
	require.NoError(t, err)

	m := g.BestMove(b, alphabet.RackFromString("AAABNN?"))
	require.False(t, m.IsEmpty())
	// The blank still counts toward the seven-tile threshold...
	assert.True(t, m.Bingo())
	assert.True(t, m.UsesBlank())
	// ...but contributes nothing to the sum.
	assert.Equal(t, 3+1+1+1+1+1+0+50, m.Score())
}

func TestBingoOnStandardBoard(t *testing.T) {
	g, _ := newGenerator("BANANAS")
	b := board.NewCrosswordGameBoard()

	m := g.BestMove(b, alphabet.RackFromString("AAABNNS"))
	require.False(t, m.IsEmpty())
	// Best start is 8D: the B lands on the double-letter square and the
	// middle N doubles the word: (3*2+1+1+1+1+1+1)*2 + 50.
	assert.Equal(t, 74, m.Score())
	assert.Equal(t, 4, m.Placements()[0].Col)
}

func TestBestMoveDoesNotMutateInputs(t *testing.T) {
	g, lex := newGenerator("CAT", "CATS")
	b := board.NewCrosswordGameBoard()
	b.SetRow(8, "   CAT")
	crosses.UpdateAll(b, lex)
	snapshot := b.Copy()
	rack := alphabet.RackFromString("STUVW")

	g.BestMove(b, rack)
	assert.True(t, b.Equals(snapshot))
	assert.Equal(t, "STUVW", rack.TilesOn())
}

func TestScorePlacementsLetterBonus(t *testing.T) {
	g, _ := newGenerator()
	b := board.NewCrosswordGameBoard()
	// 8D is a double-letter square; 8E is plain.
	onBonus := g.ScorePlacements(b, []move.Placement{{Row: 8, Col: 4, Letter: 'Q'}})
	offBonus := g.ScorePlacements(b, []move.Placement{{Row: 8, Col: 5, Letter: 'Q'}})
	assert.Equal(t, 20, onBonus)
	assert.Equal(t, 10, offBonus)
	assert.Greater(t, onBonus, offBonus)
}

func TestScorePlacementsCrossWord(t *testing.T) {
	g, _ := newGenerator()
	b := board.NewCrosswordGameBoard()
	b.SetLetter(7, 8, 'A')
	b.SetLetter(9, 8, 'T')

	// B on the center square: the main "word" is B doubled (6), and the
	// cross word A+B+T is doubled by the same new tile (5*2).
	score := g.ScorePlacements(b, []move.Placement{{Row: 8, Col: 8, Letter: 'B'}})
	assert.Equal(t, 16, score)
}

func TestScorePlacementsEmpty(t *testing.T) {
	g, _ := newGenerator()
	b := board.NewCrosswordGameBoard()
	assert.Equal(t, 0, g.ScorePlacements(b, nil))
}
