package loop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/engine"
	"github.com/qnkhuat/tetristerm/pkg/event"
)

const (
	DefaultFrameInterval   = time.Second / 60
	DefaultGravityInterval = 850 * time.Millisecond
)

// Loop drives an Engine from a frame ticker and a gravity ticker. Every engine
// call happens on the goroutine running Run.
type Loop struct {
	Engine          *engine.Engine
	FrameInterval   time.Duration
	GravityInterval time.Duration

	// Intent samples the actions asserted for the coming frame.
	Intent func() event.Intent
	// Draw receives a snapshot whenever the engine reports a change.
	Draw func(engine.Snapshot, engine.Result)

	paused atomic.Bool
}

func New(e *engine.Engine) *Loop {
	return &Loop{
		Engine:          e,
		FrameInterval:   DefaultFrameInterval,
		GravityInterval: DefaultGravityInterval,
	}
}

// Pause stops the loop from advancing the engine until Resume is called.
func (l *Loop) Pause() {
	l.paused.Store(true)
}

func (l *Loop) Resume() {
	l.paused.Store(false)
}

func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Run blocks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if l.FrameInterval <= 0 {
		l.FrameInterval = DefaultFrameInterval
	}
	if l.GravityInterval <= 0 {
		l.GravityInterval = DefaultGravityInterval
	}

	frames := time.NewTicker(l.FrameInterval)
	defer frames.Stop()
	gravity := time.NewTicker(l.GravityInterval)
	defer gravity.Stop()

	last := time.Now()

	l.draw(engine.Result{Changed: true})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-frames.C:
			elapsed := int(now.Sub(last) / l.FrameInterval)
			if elapsed < 1 {
				elapsed = 1
			}
			last = now

			if l.Paused() {
				continue
			}

			var intent event.Intent
			if l.Intent != nil {
				intent = l.Intent()
			}

			l.draw(l.Engine.Advance(intent, elapsed))
		case <-gravity.C:
			if l.Paused() {
				continue
			}

			l.draw(l.Engine.Gravity())
		}
	}
}

func (l *Loop) draw(r engine.Result) {
	if l.Draw == nil || !r.Changed {
		return
	}

	l.Draw(l.Engine.Snapshot(), r)
}
