package board

import "github.com/wztlei/scrabble/alphabet"

// TrivialCrossSet allows every possible letter. It is the state of an
// empty square with no tiles above or below it.
const TrivialCrossSet = CrossSet(1<<alphabet.NumLetters) - 1

// A CrossSet is a bit mask of the letters that may legally occupy a
// square given the perpendicular word they would complete. Bit i is set
// when letter 'A'+i is allowed.
type CrossSet uint32

// Allowed tests the bit for a letter. An assigned blank is tested by the
// letter it stands for.
func (c CrossSet) Allowed(letter byte) bool {
	return c&(1<<uint(alphabet.Idx(letter))) != 0
}

// Set turns on the bit for a letter.
func (c *CrossSet) Set(letter byte) {
	*c = *c | (1 << uint(alphabet.Idx(letter)))
}

// SetAll allows every letter.
func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

// Clear forbids every letter.
func (c *CrossSet) Clear() {
	*c = 0
}

// CrossSetFromString builds a cross set from the given letters; useful
// for tests.
func CrossSetFromString(letters string) CrossSet {
	c := CrossSet(0)
	for i := 0; i < len(letters); i++ {
		c.Set(letters[i])
	}
	return c
}
