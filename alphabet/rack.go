package alphabet

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Rack is a machine-friendly representation of a player's rack.
type Rack struct {
	// LetArr is an array of tile counts indexed by letter, with the
	// blank count at BlankPosition.
	LetArr     []int
	empty      bool
	numLetters uint8
}

// NewRack creates a brand new empty rack.
func NewRack() *Rack {
	return &Rack{LetArr: make([]int, NumTotalLetters), empty: true}
}

// RackFromString creates a Rack from a string of uppercase letters.
// A '?' counts as a blank.
func RackFromString(letters string) *Rack {
	r := NewRack()
	r.SetFromString(letters)
	return r
}

// SetFromString clears the rack and fills it from the given letters.
func (r *Rack) SetFromString(letters string) {
	r.Clear()
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == BlankCharacter:
			r.LetArr[BlankPosition]++
		case IsUpper(c):
			r.LetArr[Idx(c)]++
		default:
			log.Error().Msgf("rack has an illegal character: %v", string(c))
			continue
		}
		r.numLetters++
	}
	if r.numLetters > 0 {
		r.empty = false
	}
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{
		empty:      r.empty,
		numLetters: r.numLetters,
		LetArr:     make([]int, NumTotalLetters),
	}
	copy(n.LetArr, r.LetArr)
	return n
}

// Clear empties the rack.
func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.empty = true
	r.numLetters = 0
}

// Take removes one tile of the given letter from the rack. It does not
// check that the tile is actually there; callers must check Has first.
func (r *Rack) Take(letter byte) {
	r.LetArr[Idx(letter)]--
	r.numLetters--
	if r.numLetters == 0 {
		r.empty = true
	}
}

// Add puts one tile of the given letter back on the rack.
func (r *Rack) Add(letter byte) {
	r.LetArr[Idx(letter)]++
	r.numLetters++
	r.empty = false
}

// Has returns whether the rack holds at least one tile of this letter.
func (r *Rack) Has(letter byte) bool {
	return r.LetArr[Idx(letter)] > 0
}

// TakeBlank and AddBlank speculate on the blank count the same way
// Take and Add do for natural tiles.
func (r *Rack) TakeBlank() {
	r.LetArr[BlankPosition]--
	r.numLetters--
	if r.numLetters == 0 {
		r.empty = true
	}
}

func (r *Rack) AddBlank() {
	r.LetArr[BlankPosition]++
	r.numLetters++
	r.empty = false
}

// HasBlank returns whether the rack holds at least one blank.
func (r *Rack) HasBlank() bool {
	return r.LetArr[BlankPosition] > 0
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.empty
}

// TilesOn returns the rack's tiles as an alphabetized string, with
// blanks last.
func (r *Rack) TilesOn() string {
	if r.empty {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < NumLetters; i++ {
		for j := 0; j < r.LetArr[i]; j++ {
			sb.WriteByte(byte('A' + i))
		}
	}
	for j := 0; j < r.LetArr[BlankPosition]; j++ {
		sb.WriteByte(BlankCharacter)
	}
	return sb.String()
}

func (r *Rack) String() string {
	return r.TilesOn()
}
