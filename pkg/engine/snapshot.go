package engine

import (
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// ActiveView describes the falling piece.
type ActiveView struct {
	Type     mino.PieceType
	Anchor   mino.Point
	Rotation int
	Cells    [4]mino.Point
	Ghost    [4]mino.Point
}

// Snapshot is a copy of everything a renderer needs. It shares no memory
// with the engine.
type Snapshot struct {
	Width, Height, Buffer int

	// Cells is indexed [y][x] over all rows including the buffer.
	Cells [][]mino.Cell

	Active *ActiveView

	Queue    []mino.PieceType
	Hold     mino.PieceType
	HasHold  bool
	HoldUsed bool

	State LockState
	Stats Stats
	Ticks uint64
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:    e.board.W,
		Height:   e.board.H,
		Buffer:   e.board.B,
		Cells:    e.board.Rows(),
		Queue:    e.queue.Peek(),
		Hold:     e.hold.Piece,
		HasHold:  e.hold.Occupied,
		HoldUsed: e.hold.Used,
		State:    e.state,
		Stats:    e.stats,
		Ticks:    e.ticks,
	}

	if e.piece != nil {
		s.Active = &ActiveView{
			Type:     e.piece.Type,
			Anchor:   e.piece.Point,
			Rotation: e.piece.Rotation,
			Cells:    e.piece.Cells(),
			Ghost:    e.Ghost(),
		}
	}

	return s
}

// Ghost returns the cells the active piece would occupy after a hard drop.
func (e *Engine) Ghost() [4]mino.Point {
	if e.piece == nil {
		return [4]mino.Point{}
	}

	loc := e.piece.Point
	for e.fits(loc.Add(mino.Down.Delta()), e.piece.Rotation) {
		loc = loc.Add(mino.Down.Delta())
	}
	return e.piece.CellsAt(loc, e.piece.Rotation)
}
