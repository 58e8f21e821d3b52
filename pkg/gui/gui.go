package gui

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/engine"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	LogQueueSize  = 10
	LogTimeFormat = "3:04:05"

	DefaultStatusText = "Z/X rotate, C hold, arrows or HJKL move and drop, Esc pause"
)

// Pauser is implemented by whatever drives the engine.
type Pauser interface {
	Pause()
	Resume()
}

type Options struct {
	Width       int
	Height      int
	Theme       Theme
	Keybindings []*Keybinding
	Nickname    string
	Pauser      Pauser
	// Clock, when set, is shown as the play time.
	Clock fmt.Stringer
}

// GUI is the terminal front end. Draw and Logger are safe to call from any
// goroutine; everything else runs on the tview event loop.
type GUI struct {
	app    *tview.Application
	pages  *tview.Pages
	mtx    *tview.TextView
	side   *tview.TextView
	recent *tview.TextView
	modal  *tview.Modal

	keys     *KeyState
	bindings []*Keybinding
	renderer *renderer
	nickname string
	clock    fmt.Stringer
	pauser   Pauser
	paused   bool

	renderLock   sync.Mutex
	renderBuffer bytes.Buffer
	last         engine.Snapshot

	logger               chan string
	logs                 sync.WaitGroup
	wroteFirstLogMessage bool

	done     chan struct{}
	stopOnce sync.Once
}

func New(o Options) *GUI {
	if o.Keybindings == nil {
		o.Keybindings = DefaultKeybindings
	}
	if o.Theme.Name == "" {
		o.Theme = ThemeBasic
	}
	if o.Width == 0 || o.Height == 0 {
		o.Width, o.Height = mino.DefaultWidth, mino.DefaultHeight
	}

	g := &GUI{
		app:      tview.NewApplication(),
		keys:     NewKeyState(),
		bindings: o.Keybindings,
		renderer: newRenderer(o.Theme),
		nickname: o.Nickname,
		clock:    o.Clock,
		pauser:   o.Pauser,
		logger:   make(chan string, LogQueueSize),
		done:     make(chan struct{}),
	}

	g.mtx = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	g.mtx.SetDynamicColors(true)

	g.side = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	g.side.SetDynamicColors(true)

	g.recent = tview.NewTextView().
		SetScrollable(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(true).
		SetWordWrap(true)

	status := tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetText(DefaultStatusText)

	spacer := tview.NewBox()

	grid := tview.NewGrid().
		SetBorders(false).
		SetRows(2+o.Height, 1, -1).
		SetColumns(1, 2+(o.Width*blockWidth), 12, -1).
		AddItem(spacer, 0, 0, 3, 1, 0, 0, false).
		AddItem(g.mtx, 0, 1, 1, 1, 0, 0, false).
		AddItem(g.side, 0, 2, 1, 1, 0, 0, false).
		AddItem(status, 1, 1, 1, 3, 0, 0, false).
		AddItem(g.recent, 2, 1, 1, 3, 0, 0, false)

	g.modal = tview.NewModal().
		SetText("Paused").
		AddButtons([]string{"Resume", "Quit"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Quit" {
				g.Stop()
				return
			}
			g.setPaused(false)
		})

	g.pages = tview.NewPages().
		AddPage("game", grid, true, true).
		AddPage("pause", g.modal, true, false)

	g.app.SetRoot(g.pages, true)
	g.app.SetInputCapture(g.handleKeypress)

	g.logs.Add(1)
	go g.handleLog()

	return g
}

// Run blocks until the application exits.
func (g *GUI) Run() error {
	return g.app.Run()
}

// Stop exits the application and ends the log handler. It is safe to call
// more than once.
func (g *GUI) Stop() {
	g.stopOnce.Do(func() {
		close(g.done)
		g.app.Stop()
	})
}

// Intent samples the keys held for the coming frame.
func (g *GUI) Intent() event.Intent {
	return g.keys.Sample()
}

// Draw queues a redraw of s.
func (g *GUI) Draw(s engine.Snapshot, r engine.Result) {
	if r.TopOut {
		g.Logf("Game over after %d lines, starting again", s.Stats.Lines)
	} else if r.Lines > 1 {
		g.Logf("Cleared %d lines", r.Lines)
	}

	g.app.QueueUpdateDraw(func() {
		g.render(s)
	})
}

func (g *GUI) render(s engine.Snapshot) {
	g.renderLock.Lock()
	defer g.renderLock.Unlock()

	g.last = s

	g.renderer.renderMatrix(&g.renderBuffer, s)
	g.mtx.Clear()
	g.mtx.Write(g.renderBuffer.Bytes())

	var clock string
	if g.clock != nil {
		clock = g.clock.String()
	}

	g.renderer.renderSide(&g.renderBuffer, s, tview.Escape(g.nickname), clock, g.paused)
	g.side.Clear()
	g.side.Write(g.renderBuffer.Bytes())
}

func (g *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if g.paused {
		if ev.Key() == tcell.KeyEscape {
			g.setPaused(false)
			return nil
		}
		return ev
	}

	switch {
	case ev.Key() == tcell.KeyEscape:
		g.setPaused(true)
		return nil
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
		g.Stop()
		return nil
	}

	if a, ok := Match(g.bindings, ev); ok {
		g.keys.Press(a)
		return nil
	}

	return ev
}

// setPaused must be called on the tview event loop.
func (g *GUI) setPaused(paused bool) {
	g.paused = paused
	g.keys.Clear()

	if paused {
		if g.pauser != nil {
			g.pauser.Pause()
		}
		g.pages.ShowPage("pause")
		g.app.SetFocus(g.modal)
	} else {
		g.pages.HidePage("pause")
		g.app.SetFocus(g.pages)
		if g.pauser != nil {
			g.pauser.Resume()
		}
	}

	if g.last.Cells != nil {
		g.render(g.last)
	}
}

func (g *GUI) Logf(format string, a ...interface{}) {
	select {
	case <-g.done:
	case g.logger <- fmt.Sprintf(format, a...):
	default:
	}
}

// Logger returns a logger whose output appears in the messages pane.
func (g *GUI) Logger() *log.Logger {
	return log.New(logWriter{g}, "", 0)
}

type logWriter struct {
	g *GUI
}

func (w logWriter) Write(p []byte) (int, error) {
	w.g.Logf("%s", bytes.TrimRight(p, "\n"))
	return len(p), nil
}

func (g *GUI) handleLog() {
	defer g.logs.Done()

	for {
		select {
		case <-g.done:
			return
		case msg := <-g.logger:
			g.app.QueueUpdateDraw(func() {
				g.logMessage(msg)
			})
		}
	}
}

func (g *GUI) logMessage(message string) {
	var prefix string
	if !g.wroteFirstLogMessage {
		g.wroteFirstLogMessage = true
	} else {
		prefix = "\n"
	}

	g.recent.Write([]byte(prefix + time.Now().Format(LogTimeFormat) + " " + message))
	g.recent.ScrollToEnd()
}
