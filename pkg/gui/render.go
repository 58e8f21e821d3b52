package gui

import (
	"bytes"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/engine"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// blockWidth is the number of terminal columns per board cell.
const blockWidth = 2

var (
	renderHLine    = []byte(string(tcell.RuneHLine))
	renderVLine    = []byte(string(tcell.RuneVLine))
	renderULCorner = []byte(string(tcell.RuneULCorner))
	renderURCorner = []byte(string(tcell.RuneURCorner))
	renderLLCorner = []byte(string(tcell.RuneLLCorner))
	renderLRCorner = []byte(string(tcell.RuneLRCorner))
)

// renderer draws snapshots into text for tview's dynamic color text views.
type renderer struct {
	theme  Theme
	blocks map[mino.Block][]byte
	border string
	label  string
	reset  string
}

func newRenderer(t Theme) *renderer {
	return &renderer{
		theme:  t,
		blocks: t.Blocks(),
		border: colorTag(t.Border),
		label:  colorTag(t.Label),
		reset:  colorTag(t.Text),
	}
}

// blockAt resolves the display block of a visible cell, overlaying the ghost
// on empty cells.
func blockAt(s engine.Snapshot, ghost map[mino.Point]bool, x, y int) mino.Block {
	c := s.Cells[y][x]
	if c.IsEmpty() && ghost[mino.Point{X: x, Y: y}] {
		return s.Active.Type.Ghost()
	}
	return c.Block()
}

// renderMatrix draws the visible rows of the board inside a border. Buffer
// rows are hidden.
func (r *renderer) renderMatrix(buf *bytes.Buffer, s engine.Snapshot) {
	buf.Reset()

	ghost := make(map[mino.Point]bool, 4)
	if s.Active != nil {
		for _, p := range s.Active.Ghost {
			ghost[p] = true
		}
	}

	buf.WriteString(r.border)
	buf.Write(renderULCorner)
	for x := 0; x < s.Width*blockWidth; x++ {
		buf.Write(renderHLine)
	}
	buf.Write(renderURCorner)
	buf.WriteString(r.reset)
	buf.WriteRune('\n')

	for y := s.Buffer; y < s.Buffer+s.Height; y++ {
		buf.WriteString(r.border)
		buf.Write(renderVLine)
		buf.WriteString(r.reset)
		for x := 0; x < s.Width; x++ {
			b := r.blocks[blockAt(s, ghost, x, y)]
			for k := 0; k < blockWidth; k++ {
				buf.Write(b)
			}
		}
		buf.WriteString(r.border)
		buf.Write(renderVLine)
		buf.WriteString(r.reset)
		buf.WriteRune('\n')
	}

	buf.WriteString(r.border)
	buf.Write(renderLLCorner)
	for x := 0; x < s.Width*blockWidth; x++ {
		buf.Write(renderHLine)
	}
	buf.Write(renderLRCorner)
	buf.WriteString(r.reset)
	buf.WriteRune('\n')
}

// renderPiece draws a piece in its spawn orientation, two rows tall.
func (r *renderer) renderPiece(buf *bytes.Buffer, t mino.PieceType) {
	var occupied [2][4]bool
	for _, p := range mino.PatternOf(t, mino.Rotation0) {
		if p.Y < 2 {
			occupied[p.Y][p.X] = true
		}
	}

	for y := 0; y < 2; y++ {
		buf.WriteRune(' ')
		for x := 0; x < 4; x++ {
			b := r.blocks[mino.BlockNone]
			if occupied[y][x] {
				b = r.blocks[t.Block()]
			}
			for k := 0; k < blockWidth; k++ {
				buf.Write(b)
			}
		}
		buf.WriteRune('\n')
	}
}

// renderSide draws the hold slot, the queue and the stats.
func (r *renderer) renderSide(buf *bytes.Buffer, s engine.Snapshot, nickname, clock string, paused bool) {
	buf.Reset()

	buf.WriteString(fmt.Sprintf("%s Hold%s\n", r.label, r.reset))
	if s.HasHold {
		r.renderPiece(buf, s.Hold)
	} else {
		buf.WriteString("\n\n")
	}

	buf.WriteString(fmt.Sprintf("\n%s Next%s\n", r.label, r.reset))
	for _, t := range s.Queue {
		r.renderPiece(buf, t)
		buf.WriteRune('\n')
	}

	buf.WriteString(fmt.Sprintf("%s Lines%s  %d\n", r.label, r.reset, s.Stats.Lines))
	buf.WriteString(fmt.Sprintf("%s Pieces%s %d\n", r.label, r.reset, s.Stats.Pieces))
	buf.WriteString(fmt.Sprintf("%s Games%s  %d\n", r.label, r.reset, s.Stats.TopOuts+1))
	if clock != "" {
		buf.WriteString(fmt.Sprintf("%s Time%s   %s\n", r.label, r.reset, clock))
	}

	if nickname != "" {
		buf.WriteString(fmt.Sprintf("\n %s\n", nickname))
	}
	if paused {
		buf.WriteString("\n Paused\n")
	}
}
