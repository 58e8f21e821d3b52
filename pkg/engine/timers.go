package engine

// Timers are the three discrete countdowns of the simulation, in ticks.
type Timers struct {
	MoveRepeat   int
	RotateRepeat int
	LockDelay    int
}

// Tick decrements every nonzero counter by one.
func (t *Timers) Tick() {
	if t.MoveRepeat > 0 {
		t.MoveRepeat--
	}
	if t.RotateRepeat > 0 {
		t.RotateRepeat--
	}
	if t.LockDelay > 0 {
		t.LockDelay--
	}
}

func (e *Engine) Timers() Timers {
	return e.timers
}
