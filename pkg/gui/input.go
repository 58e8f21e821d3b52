package gui

import (
	"sync"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

// DefaultHoldFrames is how many frames a key press stays asserted. Terminals
// report presses and repeats but never releases, so a press is treated as
// held until it decays. It is kept below the move repeat window so a single
// press moves once.
const DefaultHoldFrames = 4

// KeyState turns key presses into per frame intents.
type KeyState struct {
	HoldFrames int

	held map[event.GameAction]int
	sync.Mutex
}

func NewKeyState() *KeyState {
	return &KeyState{HoldFrames: DefaultHoldFrames, held: make(map[event.GameAction]int)}
}

func (s *KeyState) Press(a event.GameAction) {
	s.Lock()
	defer s.Unlock()

	s.held[a] = s.HoldFrames
}

// opposites are action pairs of which only one can be held at a time.
var opposites = [][2]event.GameAction{
	{event.ActionMoveLeft, event.ActionMoveRight},
	{event.ActionRotateCCW, event.ActionRotateCW},
}

// Sample returns the actions currently held and ages every press by a frame.
// When both actions of an opposite pair are held the later press wins.
func (s *KeyState) Sample() event.Intent {
	s.Lock()
	defer s.Unlock()

	var i event.Intent
	for a := range s.held {
		i = i.With(a)
	}

	for _, pair := range opposites {
		a, b := s.held[pair[0]], s.held[pair[1]]
		switch {
		case a == 0 || b == 0:
		case a < b:
			i = i.Without(pair[0])
			delete(s.held, pair[0])
		case b < a:
			i = i.Without(pair[1])
			delete(s.held, pair[1])
		}
	}

	for a, frames := range s.held {
		if frames <= 1 {
			delete(s.held, a)
		} else {
			s.held[a] = frames - 1
		}
	}
	return i
}

func (s *KeyState) Clear() {
	s.Lock()
	defer s.Unlock()

	for a := range s.held {
		delete(s.held, a)
	}
}
