package alphabet

import (
	"lukechampine.com/frand"
)

// A Bag is a bag of tiles to draw from between turns. Draws are
// random; the engine core never touches the bag during a search.
type Bag struct {
	tiles []byte
}

// NewBag creates a full bag from the distribution and shuffles it.
func NewBag(ld *LetterDistribution) *Bag {
	tiles := make([]byte, 0, ld.NumTiles())
	for letter, ct := range ld.Distribution {
		for i := uint8(0); i < ct; i++ {
			tiles = append(tiles, letter)
		}
	}
	b := &Bag{tiles: tiles}
	b.Shuffle()
	return b
}

// Shuffle randomly permutes the remaining tiles.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// DrawAtMost draws up to n tiles; it returns fewer when the bag runs low.
func (b *Bag) DrawAtMost(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := make([]byte, n)
	copy(drawn, b.tiles[len(b.tiles)-n:])
	b.tiles = b.tiles[:len(b.tiles)-n]
	return drawn
}

// Refill fills a rack back up to the given size from the bag.
func (b *Bag) Refill(r *Rack, rackSize int) {
	for _, t := range b.DrawAtMost(rackSize - int(r.NumTiles())) {
		if t == BlankCharacter {
			r.AddBlank()
		} else {
			r.Add(t)
		}
	}
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}
