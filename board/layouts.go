package board

// CrosswordGameLayout is the standard 15x15 tournament board, already
// ringed by outside squares.
var CrosswordGameLayout = []string{
	"xxxxxxxxxxxxxxxxx",
	"xW..l...W...l..Wx",
	"x.w...L...L...w.x",
	"x..w...l.l...w..x",
	"xl..w...l...w..lx",
	"x....w.....w....x",
	"x.L...L...L...L.x",
	"x..l...l.l...l..x",
	"xW..l...w...l..Wx",
	"x..l...l.l...l..x",
	"x.L...L...L...L.x",
	"x....w.....w....x",
	"xl..w...l...w..lx",
	"x..w...l.l...w..x",
	"x.w...L...L...w.x",
	"xW..l...W...l..Wx",
	"xxxxxxxxxxxxxxxxx",
}

// NewCrosswordGameBoard makes a board with the standard layout.
func NewCrosswordGameBoard() *GameBoard {
	b, err := NewBoardFromLayout(CrosswordGameLayout)
	if err != nil {
		// The layout above is a compile-time constant; this cannot happen.
		panic(err)
	}
	return b
}
