package engine

import (
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Advance runs elapsed simulation ticks with the same intent and reports what
// changed. At most MaxCatchUpTicks ticks run per call.
func (e *Engine) Advance(intent event.Intent, elapsed int) Result {
	if elapsed > MaxCatchUpTicks {
		elapsed = MaxCatchUpTicks
	}

	for i := 0; i < elapsed; i++ {
		e.step(intent)
	}

	return e.flush()
}

// Gravity moves the active piece down one row. It never commits a lock; the
// next tick notices the piece is grounded.
func (e *Engine) Gravity() Result {
	e.TryMove(mino.Down)

	return e.flush()
}

func (e *Engine) flush() Result {
	r := e.result
	e.result = Result{}
	return r
}

func (e *Engine) step(intent event.Intent) {
	e.ticks++

	e.timers.Tick()
	e.handleInput(intent)
	e.updateLock()

	e.result.Changed = true
}

func (e *Engine) handleInput(intent event.Intent) {
	if e.timers.RotateRepeat == 0 {
		fired := true
		switch {
		case intent.Has(event.ActionHold):
			e.SwapHold()
		case intent.Has(event.ActionRotateCCW):
			e.playerRotate(mino.CounterClockwise)
		case intent.Has(event.ActionRotateCW):
			e.playerRotate(mino.Clockwise)
		case intent.Has(event.ActionHardDrop):
			e.timers.RotateRepeat = e.Config.RotateRepeat
			e.HardDrop()
			return
		default:
			fired = false
		}
		if fired {
			e.timers.RotateRepeat = e.Config.RotateRepeat
		}
	}

	if e.timers.MoveRepeat == 0 {
		fired := true
		switch {
		case intent.Has(event.ActionSoftDrop):
			e.TryMove(mino.Down)
		case intent.Has(event.ActionMoveLeft):
			e.playerMove(mino.Left)
		case intent.Has(event.ActionMoveRight):
			e.playerMove(mino.Right)
		default:
			fired = false
		}
		if fired {
			e.timers.MoveRepeat = e.Config.MoveRepeat
		}
	}
}

func (e *Engine) playerMove(d mino.Direction) bool {
	if !e.TryMove(d) {
		return false
	}
	e.applyReset()
	return true
}

func (e *Engine) playerRotate(s mino.Sense) bool {
	if !e.TryRotate(s) {
		return false
	}
	e.applyReset()
	return true
}
