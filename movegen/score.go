package movegen

import (
	"github.com/wztlei/scrabble/board"
	"github.com/wztlei/scrabble/move"
)

// ScorePlacements computes the point value of a completed horizontal
// placement against the board as it stands before the placement.
//
// Each placed tile contributes its value times its square's letter
// multiplier. A tile with existing content above or below also forms a
// cross word, worth the adjacent letters plus the tile's own multiplied
// value, scaled by that tile's word multiplier alone. The main line is
// the sum of every letter in the full contiguous word, pre-existing
// tiles included, scaled by the product of the newly covered word
// multipliers. Placing seven or more tiles adds the bingo bonus. Blanks
// contribute zero wherever they appear.
func (g *Generator) ScorePlacements(b *board.GameBoard, placements []move.Placement) int {
	if len(placements) == 0 {
		return 0
	}

	rowScore := 0
	totalCrossScore := 0
	wordMultiplier := 1

	for _, p := range placements {
		sq := b.Square(p.Row, p.Col)
		letterScore := g.dist.Score(p.Letter) * sq.Type().LetterMultiplier()
		rowScore += letterScore

		if b.HasLetter(p.Row-1, p.Col) || b.HasLetter(p.Row+1, p.Col) {
			crossScore := g.adjacentScore(b, p.Row, p.Col) + letterScore
			totalCrossScore += crossScore * sq.Type().WordMultiplier()
		}

		wordMultiplier *= sq.Type().WordMultiplier()
	}

	row := placements[0].Row
	first := placements[0].Col
	last := placements[len(placements)-1].Col

	// Pre-existing tiles to the left of, between, and to the right of the
	// new tiles all count toward the main word.
	for col := first - 1; b.HasLetter(row, col); col-- {
		rowScore += g.dist.Score(b.Square(row, col).Letter())
	}
	for col := first; col <= last; col++ {
		if b.HasLetter(row, col) {
			rowScore += g.dist.Score(b.Square(row, col).Letter())
		}
	}
	for col := last + 1; b.HasLetter(row, col); col++ {
		rowScore += g.dist.Score(b.Square(row, col).Letter())
	}

	total := rowScore*wordMultiplier + totalCrossScore
	if len(placements) >= RackSize {
		total += move.BingoBonus
	}
	return total
}

// adjacentScore sums the values of the existing tiles directly above and
// below a square; the placed tile itself is accounted for by the caller.
func (g *Generator) adjacentScore(b *board.GameBoard, row, col int) int {
	score := 0
	for r := row - 1; b.HasLetter(r, col); r-- {
		score += g.dist.Score(b.Square(r, col).Letter())
	}
	for r := row + 1; b.HasLetter(r, col); r++ {
		score += g.dist.Score(b.Square(r, col).Letter())
	}
	return score
}
