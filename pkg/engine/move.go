package engine

import (
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// blocked reports whether translating the active piece one step in d would
// leave the board or hit a locked cell. Only the contact set is tested.
func (e *Engine) blocked(d mino.Direction) bool {
	delta := d.Delta()
	for _, c := range mino.ContactSet(e.piece.Cells(), d) {
		n := c.Add(delta)
		if !e.board.InBounds(n.X, n.Y) || e.board.Locked(n.X, n.Y) {
			return true
		}
	}
	return false
}

// TryMove translates the active piece one cell in d. The anchor is unchanged
// when the move collides.
func (e *Engine) TryMove(d mino.Direction) bool {
	if e.piece == nil || d == mino.Up || e.blocked(d) {
		return false
	}

	e.lift()
	e.piece.Point = e.piece.Add(d.Delta())
	e.place()

	e.result.Changed = true
	e.result.Moved = true
	return true
}

// TryRotate turns the active piece a quarter turn and resolves any overlap by
// nudging. The rotation is abandoned when no valid placement is found.
func (e *Engine) TryRotate(s mino.Sense) bool {
	if e.piece == nil {
		return false
	}

	origin, rotation := e.piece.Point, e.piece.Rotation

	e.lift()
	e.piece.Rotation = mino.Rotate(rotation, s)
	if !e.resolveOverlap() {
		e.piece.Point, e.piece.Rotation = origin, rotation
		e.place()
		return false
	}
	e.place()

	e.result.Changed = true
	e.result.Moved = true
	return true
}

// resolveOverlap nudges the anchor one cell at a time until the piece is in
// bounds and clear of locked cells, giving up after MaxNudges nudges.
func (e *Engine) resolveOverlap() bool {
	for n := 0; ; n++ {
		d, ok := e.violation()
		if !ok {
			return true
		} else if n >= e.Config.MaxNudges {
			e.Logf(LogDebug, "Abandoned rotation of %s after %d nudges", e.piece, n)
			return false
		}

		e.piece.Point = e.piece.Add(d.Delta())
	}
}

// violation returns the nudge direction for the highest priority violation of
// the active piece: below the floor, above the top, past the right wall, past
// the left wall, then overlap with a locked cell.
func (e *Engine) violation() (mino.Direction, bool) {
	var below, above, right, left, overlap bool
	for _, c := range e.piece.Cells() {
		switch {
		case c.Y >= e.board.TotalHeight():
			below = true
		case c.Y < 0:
			above = true
		case c.X >= e.board.W:
			right = true
		case c.X < 0:
			left = true
		case e.board.Locked(c.X, c.Y):
			overlap = true
		}
	}

	switch {
	case below:
		return mino.Up, true
	case above:
		return mino.Down, true
	case right:
		return mino.Left, true
	case left:
		return mino.Right, true
	case overlap:
		return mino.Up, true
	default:
		return 0, false
	}
}

// HardDrop moves the active piece down until it collides and locks it at
// once. It returns the number of rows dropped.
func (e *Engine) HardDrop() int {
	if e.piece == nil {
		return 0
	}

	n := 0
	for n < e.board.TotalHeight() && e.TryMove(mino.Down) {
		n++
	}
	e.lock()

	return n
}

// SwapHold exchanges the active piece with the hold slot, once per piece. An
// empty slot takes the active piece and the next piece comes from the queue.
func (e *Engine) SwapHold() bool {
	if e.piece == nil || e.hold.Used {
		return false
	}

	e.lift()

	next, had := e.hold.Exchange(e.piece.Type)
	if !had {
		next = e.queue.Dequeue()
	}
	e.hold.Used = true

	e.Logf(LogDebug, "Held %s, playing %s", e.hold.Piece, next)

	e.spawn(next)
	return true
}
