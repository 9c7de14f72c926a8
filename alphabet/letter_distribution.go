package alphabet

// LetterDistribution encodes the tile distribution and point values for
// the relevant game. It is built once and never mutated.
type LetterDistribution struct {
	Name         string
	Distribution map[byte]uint8
	PointValues  map[byte]uint8
	numTiles     int
}

// NewLetterDistribution creates a distribution from its tables.
func NewLetterDistribution(name string, dist map[byte]uint8,
	ptValues map[byte]uint8) *LetterDistribution {

	n := 0
	for _, ct := range dist {
		n += int(ct)
	}
	return &LetterDistribution{
		Name:         name,
		Distribution: dist,
		PointValues:  ptValues,
		numTiles:     n,
	}
}

// EnglishLetterDistribution returns the standard English distribution.
func EnglishLetterDistribution() *LetterDistribution {
	dist := map[byte]uint8{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1, BlankCharacter: 2,
	}
	ptValues := map[byte]uint8{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10, BlankCharacter: 0,
	}
	return NewLetterDistribution("English", dist, ptValues)
}

// Score returns the point value of a tile. A blank scores nothing no
// matter which letter it was assigned.
func (ld *LetterDistribution) Score(letter byte) int {
	if IsBlank(letter) {
		return 0
	}
	return int(ld.PointValues[letter])
}

// NumTiles returns the total number of tiles in a fresh bag.
func (ld *LetterDistribution) NumTiles() int {
	return ld.numTiles
}

// MakeBag returns a full, shuffled bag of this distribution's tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	return NewBag(ld)
}
