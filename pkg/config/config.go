package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/engine"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/loop"
)

var ErrInvalid = errors.New("invalid config")

// Config is the client configuration file. Fields missing from the file keep
// their defaults.
type Config struct {
	Engine engine.Config `json:"engine"`

	FrameRate int `json:"frame_rate"`
	// GravityMS is the interval between gravity steps in milliseconds.
	GravityMS int `json:"gravity_ms"`

	Theme       string                 `json:"theme"`
	Themes      []gui.ThemeHex         `json:"themes,omitempty"`
	Keybindings []gui.KeybindingConfig `json:"keybindings,omitempty"`

	Nickname string `json:"nickname,omitempty"`
}

func Default() Config {
	return Config{
		Engine:    engine.DefaultConfig(),
		FrameRate: int(time.Second / loop.DefaultFrameInterval),
		GravityMS: int(loop.DefaultGravityInterval / time.Millisecond),
		Theme:     gui.ThemeBasic.Name,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.FrameRate < 1 {
		return fmt.Errorf("%w: frame rate %d", ErrInvalid, c.FrameRate)
	} else if c.GravityMS < 1 {
		return fmt.Errorf("%w: gravity interval %dms", ErrInvalid, c.GravityMS)
	}

	return c.Engine.Validate()
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c Config) GravityInterval() time.Duration {
	return time.Duration(c.GravityMS) * time.Millisecond
}
