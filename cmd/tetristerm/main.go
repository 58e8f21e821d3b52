package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/config"
	"github.com/qnkhuat/tetristerm/pkg/engine"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/loop"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	minCols = 48
	minRows = 24
)

var (
	configPath   string
	logPath      string
	nicknameFlag string
	startMatrix  string
	themeFlag    string
	randomizer   string
	seed         int64

	logDebug   bool
	logVerbose bool
)

func init() {
	log.SetFlags(0)
}

// parseMatrix reads "x,y,x,y,..." into locked cells.
func parseMatrix(s string) ([]engine.Prefill, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("failed to parse matrix %q: odd number of coordinates", s)
	}

	cells := make([]engine.Prefill, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse matrix x: %w", err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse matrix y: %w", err)
		}

		cells = append(cells, engine.Prefill{X: x, Y: y, Piece: mino.PieceO})
	}
	return cells, nil
}

func main() {
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.StringVar(&nicknameFlag, "nick", "", "nickname")
	flag.StringVar(&startMatrix, "matrix", "", "pre-fill matrix with locked cells: x,y,x,y,...")
	flag.StringVar(&themeFlag, "theme", "", "theme name")
	flag.StringVar(&randomizer, "randomizer", "", "piece randomizer: uniform or bag")
	flag.Int64Var(&seed, "seed", 0, "piece generator seed, 0 for random")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&logVerbose, "verbose", false, "enable verbose logging")
	flag.Parse()

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < minCols || h < minRows) {
		log.Fatalf("failed to start tetristerm: terminal is %dx%d, need at least %dx%d", w, h, minCols, minRows)
	}

	c, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	if seed != 0 {
		c.Engine.Seed = seed
	}
	if randomizer != "" {
		c.Engine.Randomizer = randomizer
	}
	if themeFlag != "" {
		c.Theme = themeFlag
	}
	if nicknameFlag != "" {
		c.Nickname = nicknameFlag
	}
	if logVerbose {
		c.Engine.LogLevel = engine.LogVerbose
	} else if logDebug {
		c.Engine.LogLevel = engine.LogDebug
	}

	prefill, err := parseMatrix(startMatrix)
	if err != nil {
		log.Fatal(err)
	}
	c.Engine.Prefill = append(c.Engine.Prefill, prefill...)

	theme, err := gui.ImportThemes(c.Theme, c.Themes)
	if err != nil {
		log.Fatalf("failed to load theme: %s", err)
	}
	bindings, err := gui.ParseKeybindings(c.Keybindings)
	if err != nil {
		log.Fatalf("failed to load keybindings: %s", err)
	}

	e, err := engine.New(c.Engine)
	if err != nil {
		log.Fatalf("failed to start game: %s", err)
	}

	if logPath != "" {
		pkg.InitLog(logPath, "CLIENT: ")
	}

	nickname := pkg.Nickname(c.Nickname)

	clock := pkg.NewClock()

	l := loop.New(e)
	l.FrameInterval = c.FrameInterval()
	l.GravityInterval = c.GravityInterval()

	g := gui.New(gui.Options{
		Width:       c.Engine.Width,
		Height:      c.Engine.Height,
		Theme:       theme,
		Keybindings: bindings,
		Nickname:    nickname,
		Pauser:      pausers{l, clock},
		Clock:       clock,
	})
	e.SetLogger(g.Logger())
	l.Intent = g.Intent
	l.Draw = g.Draw

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan bool)
	go func() {
		if err := g.Run(); err != nil {
			log.Fatalf("failed to run application: %s", err)
		}

		done <- true
	}()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		defer func() {
			if r := recover(); r != nil {
				g.Stop()

				log.Println()
				debug.PrintStack()
				log.Fatalf("panic: %+v", r)
			}
		}()

		if err := l.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("game loop stopped: %s", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		g.Stop()
	}()

	<-done
	cancel()
	select {
	case <-loopDone:
	case <-time.After(time.Second):
	}

	clock.Pause()
	printSummary(nickname, e.Stats(), clock)
}

// pausers pauses every member together.
type pausers []gui.Pauser

func (p pausers) Pause() {
	for _, m := range p {
		m.Pause()
	}
}

func (p pausers) Resume() {
	for _, m := range p {
		m.Resume()
	}
}

func printSummary(nickname string, s engine.Stats, played fmt.Stringer) {
	bold := color.New(color.Bold)
	value := color.New(color.FgCyan)

	bold.Printf("Thanks for playing, %s\n", nickname)
	fmt.Printf("  lines   %s\n", value.Sprint(s.Lines))
	fmt.Printf("  pieces  %s\n", value.Sprint(s.Pieces))
	fmt.Printf("  games   %s\n", value.Sprint(s.TopOuts+1))
	fmt.Printf("  time    %s\n", value.Sprint(played))
}
