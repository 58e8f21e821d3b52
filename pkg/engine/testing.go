package engine

import (
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// TestGenerator replays a fixed sequence of pieces, cycling when exhausted.
type TestGenerator struct {
	Pieces []mino.PieceType

	i int
}

func (g *TestGenerator) Next() mino.PieceType {
	t := g.Pieces[g.i%len(g.Pieces)]
	g.i++
	return t
}

// NewTestEngine returns a silent engine with the default config whose pieces
// come from pieces in order.
func NewTestEngine(pieces ...mino.PieceType) *Engine {
	if len(pieces) == 0 {
		pieces = mino.AllPieceTypes
	}

	c := DefaultConfig()
	e := &Engine{
		Config: c,
		board:  mino.NewBoard(c.Width, c.Height, c.Buffer),
		queue:  mino.NewQueue(&TestGenerator{Pieces: pieces}, c.Preview),
	}

	e.spawn(e.queue.Dequeue())
	e.result = Result{}

	return e
}

// AddTestBlocks locks the bottom two rows except their last column.
func (e *Engine) AddTestBlocks() {
	bottom := e.board.TotalHeight() - 1
	for y := bottom - 1; y <= bottom; y++ {
		for x := 0; x < e.board.W-1; x++ {
			if err := e.board.Set(x, y, mino.Locked(mino.PieceO), true); err != nil {
				panic(err)
			}
		}
	}
}
