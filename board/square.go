package board

import (
	"fmt"

	"github.com/wztlei/scrabble/alphabet"
)

// SquareType is the bonus type of a board square.
type SquareType uint8

const (
	TripleWord SquareType = iota
	DoubleWord
	TripleLetter
	DoubleLetter
	Regular
	// Outside marks the border ring around the playable grid. Directional
	// scans stop there instead of doing bounds checks.
	Outside
)

func (st SquareType) String() string {
	switch st {
	case TripleWord:
		return "triple_word"
	case DoubleWord:
		return "double_word"
	case TripleLetter:
		return "triple_letter"
	case DoubleLetter:
		return "double_letter"
	case Regular:
		return "regular"
	case Outside:
		return "outside"
	}
	return "unknown"
}

// LetterMultiplier returns the multiplier applied to a single tile
// placed on this square.
func (st SquareType) LetterMultiplier() int {
	switch st {
	case TripleLetter:
		return 3
	case DoubleLetter:
		return 2
	}
	return 1
}

// WordMultiplier returns the multiplier a tile placed on this square
// applies to the words it is part of.
func (st SquareType) WordMultiplier() int {
	switch st {
	case TripleWord:
		return 3
	case DoubleWord:
		return 2
	}
	return 1
}

// A Square is a single square in a game board: its bonus type, a letter
// ('.' if empty), its coordinates, and two derived annotations that are
// meaningful only while the square is empty. The cross check records
// which letters may occupy the square given the perpendicular word they
// would form; minWordLength records how many tiles a word started here
// must place to connect with existing content (NoAnchor if it never can).
type Square struct {
	stype  SquareType
	letter byte
	row    int
	col    int

	crossCheck    CrossSet
	minWordLength int8
}

// NoAnchor is the minWordLength sentinel for a square that cannot start
// a word.
const NoAnchor int8 = -1

func (s *Square) Type() SquareType {
	return s.stype
}

func (s *Square) Letter() byte {
	return s.letter
}

func (s *Square) SetLetter(letter byte) {
	s.letter = letter
}

// IsEmpty returns whether no tile sits on this square. Outside squares
// are empty as well; check Type separately.
func (s *Square) IsEmpty() bool {
	return s.letter == alphabet.EmptySquareMarker
}

func (s *Square) Row() int {
	return s.row
}

func (s *Square) Col() int {
	return s.col
}

func (s *Square) CrossCheck() CrossSet {
	return s.crossCheck
}

func (s *Square) SetCrossCheck(c CrossSet) {
	s.crossCheck = c
}

// CrossCheckAllows is a convenience for the search's inner loop.
func (s *Square) CrossCheckAllows(letter byte) bool {
	return s.crossCheck.Allowed(letter)
}

func (s *Square) MinWordLength() int8 {
	return s.minWordLength
}

func (s *Square) SetMinWordLength(n int8) {
	s.minWordLength = n
}

func (s *Square) String() string {
	return fmt.Sprintf("<(%v,%v) %s letter '%s'>", s.row, s.col, s.stype,
		string(s.letter))
}

func (s *Square) copyFrom(other *Square) {
	s.stype = other.stype
	s.letter = other.letter
	s.row = other.row
	s.col = other.col
	s.crossCheck = other.crossCheck
	s.minWordLength = other.minWordLength
}

func (s *Square) equals(other *Square) bool {
	return s.stype == other.stype &&
		s.letter == other.letter &&
		s.row == other.row &&
		s.col == other.col &&
		s.crossCheck == other.crossCheck &&
		s.minWordLength == other.minWordLength
}
