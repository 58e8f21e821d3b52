package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	cl := &Clock{now: ft.now}
	cl.Resume()

	ft.advance(61 * time.Second)
	assert.Equal(t, "1:01", cl.String())

	cl.Pause()
	cl.Pause()
	ft.advance(time.Hour)
	assert.Equal(t, 61*time.Second, cl.Elapsed())

	cl.Resume()
	cl.Resume()
	ft.advance(9 * time.Second)
	assert.Equal(t, 70*time.Second, cl.Elapsed())

	cl.Reset()
	assert.Zero(t, cl.Elapsed())
	ft.advance(time.Second)
	assert.Equal(t, "0:01", cl.String())
}
