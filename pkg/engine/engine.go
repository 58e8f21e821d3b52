package engine

import (
	"log"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Stats counts what happened over the lifetime of an Engine.
type Stats struct {
	Lines   int
	Pieces  int
	TopOuts int
}

// Result reports what changed during one Advance or Gravity call.
type Result struct {
	// Changed is set whenever the board may need a redraw.
	Changed bool
	Moved   bool
	Locked  int
	Lines   int
	Cleared []int
	TopOut  bool
}

// Engine simulates one game. It is not safe for concurrent use; a single
// goroutine owns it.
type Engine struct {
	Config Config

	board  *mino.Board
	piece  *mino.Piece
	queue  *mino.Queue
	hold   mino.Hold
	timers Timers
	state  LockState
	resets int
	stats  Stats
	ticks  uint64

	result Result
	logger *log.Logger
}

func New(c Config) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		Config: c,
		board:  mino.NewBoard(c.Width, c.Height, c.Buffer),
		queue:  mino.NewQueue(c.generator(), c.Preview),
		logger: log.Default(),
	}

	e.prefill()
	e.spawn(e.queue.Dequeue())
	e.result = Result{}

	return e, nil
}

// SetLogger replaces the destination of engine log messages. A nil logger
// silences the engine.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

func (e *Engine) Logf(level int, format string, a ...interface{}) {
	if e.logger == nil || level > e.Config.LogLevel {
		return
	}

	e.logger.Printf(format, a...)
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) State() LockState {
	return e.state
}

func (e *Engine) prefill() {
	for _, p := range e.Config.Prefill {
		if err := e.board.Set(p.X, p.Y, mino.Locked(p.Piece), true); err != nil {
			log.Panicf("failed to prefill board: %s", err)
		}
	}
}

func (e *Engine) spawnPoint() mino.Point {
	return mino.Point{X: (e.Config.Width - 4) / 2, Y: 0}
}

// spawn seats a new piece of type t at the spawn anchor. A blocked spawn
// tops out and the piece is seated on the emptied board.
func (e *Engine) spawn(t mino.PieceType) {
	e.piece = mino.NewPiece(t, e.spawnPoint())
	e.state = StateFalling
	e.resets = 0
	e.timers.LockDelay = 0

	if !e.fits(e.piece.Point, e.piece.Rotation) {
		e.topOut("spawn of " + t.String() + " blocked")
	}

	e.place()
	e.result.Changed = true

	e.Logf(LogVerbose, "Spawned %s", e.piece)
}

// place stamps the active piece's cells as Active.
func (e *Engine) place() {
	for _, c := range e.piece.Cells() {
		if err := e.board.Set(c.X, c.Y, mino.Active(e.piece.Type), false); err != nil {
			log.Panicf("failed to place %s: %s", e.piece, err)
		}
	}
}

// lift empties the active piece's cells.
func (e *Engine) lift() {
	for _, c := range e.piece.Cells() {
		if err := e.board.Set(c.X, c.Y, mino.Empty, false); err != nil {
			log.Panicf("failed to lift %s: %s", e.piece, err)
		}
	}
}

// fits reports whether the active piece could occupy loc in rotation r
// without leaving the board or covering a locked cell.
func (e *Engine) fits(loc mino.Point, r int) bool {
	for _, c := range e.piece.CellsAt(loc, r) {
		if !e.board.InBounds(c.X, c.Y) || e.board.Locked(c.X, c.Y) {
			return false
		}
	}
	return true
}

func (e *Engine) topOut(reason string) {
	e.board.Reset()
	e.hold.Reset()
	e.stats.TopOuts++
	e.result.TopOut = true
	e.result.Changed = true

	e.Logf(LogStandard, "Topped out (%s) after %d lines", reason, e.stats.Lines)
}
