package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

const (
	DefaultLockDelay     = 15
	DefaultLockThreshold = 5
	DefaultMoveRepeat    = 5
	// Rotation, hard drop and hold repeat at two and a half times the move window.
	DefaultRotateRepeat  = DefaultMoveRepeat * 5 / 2
	DefaultMaxLockResets = 15
	DefaultMaxNudges     = 256
	// MaxCatchUpTicks bounds the ticks simulated by one Advance call.
	MaxCatchUpTicks = 10
)

var ErrInvalidConfig = errors.New("invalid config")

// Prefill is a locked cell placed on the board when a game starts.
type Prefill struct {
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Piece mino.PieceType `json:"piece"`
}

type Config struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Buffer  int `json:"buffer"`
	Preview int `json:"preview"`

	LockDelay     int `json:"lock_delay"`
	LockThreshold int `json:"lock_threshold"`
	MoveRepeat    int `json:"move_repeat"`
	RotateRepeat  int `json:"rotate_repeat"`
	MaxLockResets int `json:"max_lock_resets"`
	MaxNudges     int `json:"max_nudges"`

	// Seed of the piece generator. 0 seeds from the clock.
	Seed       int64  `json:"seed"`
	Randomizer string `json:"randomizer"`

	Prefill []Prefill `json:"prefill,omitempty"`

	LogLevel int `json:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Width:         mino.DefaultWidth,
		Height:        mino.DefaultHeight,
		Buffer:        mino.DefaultBuffer,
		Preview:       mino.QueueLength,
		LockDelay:     DefaultLockDelay,
		LockThreshold: DefaultLockThreshold,
		MoveRepeat:    DefaultMoveRepeat,
		RotateRepeat:  DefaultRotateRepeat,
		MaxLockResets: DefaultMaxLockResets,
		MaxNudges:     DefaultMaxNudges,
		Randomizer:    RandomizerUniform,
		LogLevel:      LogStandard,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width)
	case c.Height < 4:
		return fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height)
	case c.Buffer < 0:
		return fmt.Errorf("%w: negative buffer %d", ErrInvalidConfig, c.Buffer)
	case c.Preview < 1:
		return fmt.Errorf("%w: preview length %d", ErrInvalidConfig, c.Preview)
	case c.LockThreshold < 1 || c.LockThreshold >= c.LockDelay:
		return fmt.Errorf("%w: lock threshold %d must be between 1 and lock delay %d", ErrInvalidConfig, c.LockThreshold, c.LockDelay)
	case c.MoveRepeat < 0 || c.RotateRepeat < 0:
		return fmt.Errorf("%w: negative repeat window", ErrInvalidConfig)
	case c.MaxLockResets < 0 || c.MaxNudges < 0:
		return fmt.Errorf("%w: negative cap", ErrInvalidConfig)
	case c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	}

	for _, p := range c.Prefill {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height+c.Buffer {
			return fmt.Errorf("%w: prefill cell (%d,%d) out of bounds", ErrInvalidConfig, p.X, p.Y)
		} else if !p.Piece.Valid() {
			return fmt.Errorf("%w: prefill cell (%d,%d) has invalid piece %d", ErrInvalidConfig, p.X, p.Y, p.Piece)
		}
	}

	return nil
}

func (c Config) generator() mino.Generator {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if c.Randomizer == RandomizerBag {
		return mino.NewBag(seed)
	}
	return mino.NewUniform(seed)
}
