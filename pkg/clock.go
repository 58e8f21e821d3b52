package pkg

import (
	"fmt"
	"sync"
	"time"
)

// Clock measures play time, excluding pauses. It satisfies gui.Pauser.
type Clock struct {
	elapsed time.Duration
	started time.Time
	running bool

	now func() time.Time
	sync.Mutex
}

// NewClock returns a running clock.
func NewClock() *Clock {
	cl := &Clock{now: time.Now}
	cl.Resume()
	return cl
}

func (cl *Clock) String() string {
	e := cl.Elapsed()
	return fmt.Sprintf("%d:%02d", int(e.Minutes()), int(e.Seconds())%60)
}

func (cl *Clock) Elapsed() time.Duration {
	cl.Lock()
	defer cl.Unlock()

	if cl.running {
		return cl.elapsed + cl.now().Sub(cl.started)
	}
	return cl.elapsed
}

func (cl *Clock) Resume() {
	cl.Lock()
	defer cl.Unlock()

	if cl.running {
		return
	}
	cl.running = true
	cl.started = cl.now()
}

func (cl *Clock) Pause() {
	cl.Lock()
	defer cl.Unlock()

	if !cl.running {
		return
	}
	cl.running = false
	cl.elapsed += cl.now().Sub(cl.started)
}

func (cl *Clock) Reset() {
	cl.Lock()
	defer cl.Unlock()

	cl.elapsed = 0
	cl.started = cl.now()
}
