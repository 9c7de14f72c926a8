package crosses

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/lexicon"
)

func testLexicon() *lexicon.Lexicon {
	return lexicon.New("test", []string{
		"AT", "BA", "BAT", "CAT", "CAB", "COT", "TAB",
	})
}

type crossCheckTestCase struct {
	row      int
	col      int
	expected board.CrossSet
}

func TestUpdateCrossChecks(t *testing.T) {
	b := board.NewCrosswordGameBoard()
	// CAT across row 8, columns 4-6.
	b.SetRow(8, "   CAT")
	lex := testLexicon()
	UpdateCrossChecks(b, lex)

	testCases := []crossCheckTestCase{
		// Below the A: A_ must form a word downward; only AT works.
		{9, 5, board.CrossSetFromString("T")},
		// Above the A: _A must form a word; only BA works.
		{7, 5, board.CrossSetFromString("B")},
		// No word ends in C or starts with T in this lexicon.
		{7, 4, board.CrossSet(0)},
		{9, 4, board.CrossSet(0)},
		// Far from any tile: every letter is allowed.
		{2, 2, board.TrivialCrossSet},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, b.Square(tc.row, tc.col).CrossCheck(),
			"row=%v col=%v", tc.row, tc.col)
	}
}

func TestCrossCheckBetweenRuns(t *testing.T) {
	b := board.NewCrosswordGameBoard()
	b.SetLetter(6, 10, 'B')
	b.SetLetter(8, 10, 'T')
	UpdateCrossChecks(b, testLexicon())
	// B_T sandwiches the candidate letter; only BAT works.
	assert.Equal(t, board.CrossSetFromString("A"),
		b.Square(7, 10).CrossCheck())
}

func TestCrossCheckSeesThroughBlanks(t *testing.T) {
	b := board.NewCrosswordGameBoard()
	// A blank standing in for B still makes BAT.
	b.SetLetter(6, 10, 'b')
	b.SetLetter(8, 10, 'T')
	UpdateCrossChecks(b, testLexicon())
	assert.Equal(t, board.CrossSetFromString("A"),
		b.Square(7, 10).CrossCheck())
}

func TestCrossCheckEmptyLexicon(t *testing.T) {
	b := board.NewCrosswordGameBoard()
	b.SetRow(8, "   CAT")
	UpdateCrossChecks(b, lexicon.New("empty", nil))
	assert.Equal(t, board.CrossSet(0), b.Square(7, 5).CrossCheck())
	// Squares with no neighbors stay unconstrained even with no lexicon.
	assert.Equal(t, board.TrivialCrossSet, b.Square(2, 2).CrossCheck())
}

type minLengthTestCase struct {
	row      int
	col      int
	expected int8
}

func TestUpdateMinWordLengths(t *testing.T) {
	b := board.NewCrosswordGameBoard()
	b.SetRow(8, "   CAT")
	UpdateMinWordLengths(b)

	testCases := []minLengthTestCase{
		// The first letter of CAT can start a word through the rest of it.
		{8, 4, 1},
		// Interior and trailing letters have an occupied left neighbor.
		{8, 5, board.NoAnchor},
		{8, 6, board.NoAnchor},
		// Immediately right of the T.
		{8, 7, board.NoAnchor},
		// Left of the C: adjacent via its right neighbor.
		{8, 3, 1},
		// Further left: one more tile for every empty square.
		{8, 2, 2},
		{8, 1, 3},
		// Above the word: adjacent below.
		{7, 4, 1},
		{7, 5, 1},
		{7, 6, 1},
		{7, 3, 2},
		// Nothing to the right can ever connect.
		{8, 15, board.NoAnchor},
		{7, 15, board.NoAnchor},
		// A far away row can never connect horizontally.
		{2, 2, board.NoAnchor},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, b.Square(tc.row, tc.col).MinWordLength(),
			"row=%v col=%v", tc.row, tc.col)
	}
}

func TestAnnotationIdempotence(t *testing.T) {
	b := board.NewCrosswordGameBoard()
	b.SetRow(8, "   CAT")
	b.SetRow(9, "     OT")
	lex := testLexicon()

	UpdateAll(b, lex)
	snapshot := b.Copy()
	UpdateAll(b, lex)
	assert.True(t, b.Equals(snapshot))
}
