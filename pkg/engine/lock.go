package engine

import (
	"log"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

type LockState int

const (
	StateFalling LockState = iota
	StateGrounded
	StateLocked
)

func (s LockState) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateGrounded:
		return "grounded"
	case StateLocked:
		return "locked"
	default:
		return "?"
	}
}

// updateLock advances the lock state machine by one tick.
func (e *Engine) updateLock() {
	if e.piece == nil {
		return
	}

	grounded := e.blocked(mino.Down)

	switch e.state {
	case StateFalling:
		if !grounded {
			return
		}

		e.state = StateGrounded
		if e.timers.LockDelay == 0 {
			e.timers.LockDelay = e.Config.LockDelay
		}
	case StateGrounded:
		if !grounded {
			e.state = StateFalling
			return
		}

		if e.timers.LockDelay < e.Config.LockThreshold {
			e.lock()
		}
	}
}

// applyReset refreshes the lock delay after a successful player move while
// grounded, at most MaxLockResets times per piece.
func (e *Engine) applyReset() {
	if e.state != StateGrounded || e.resets >= e.Config.MaxLockResets {
		return
	}

	e.resets++
	e.timers.LockDelay = e.Config.LockDelay
}

// lock commits the active piece. A piece locked with its anchor in the buffer
// tops out; otherwise full rows are cleared. The next piece spawns either way.
func (e *Engine) lock() {
	p := e.piece
	for _, c := range p.Cells() {
		if err := e.board.Set(c.X, c.Y, mino.Locked(p.Type), true); err != nil {
			log.Panicf("failed to lock %s: %s", p, err)
		}
	}

	e.state = StateLocked
	e.stats.Pieces++
	e.result.Locked++
	e.result.Changed = true

	if e.board.InBuffer(p.Y) {
		e.topOut("locked " + p.String() + " in buffer")
	} else if cleared := e.board.ClearFilled(); len(cleared) > 0 {
		e.stats.Lines += len(cleared)
		e.result.Lines += len(cleared)
		e.result.Cleared = append(e.result.Cleared, cleared...)

		e.Logf(LogDebug, "Cleared %d lines %v", len(cleared), cleared)
	}

	e.Logf(LogDebug, "Locked %s", p)

	e.hold.Used = false
	e.spawn(e.queue.Dequeue())
}
