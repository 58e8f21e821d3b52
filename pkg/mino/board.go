package mino

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
	DefaultBuffer = 4
)

var (
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrAlreadyOccupied = errors.New("already occupied")
)

// Board is a W by H+B grid of cells. Rows 0 through B-1 are the hidden buffer
// above the visible field; y grows downward.
type Board struct {
	W int // Width
	H int // Visible height
	B int // Buffer height

	M []Cell
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewBoard(w int, h int, b int) *Board {
	return &Board{W: w, H: h, B: b, M: make([]Cell, w*(h+b))}
}

func (b *Board) TotalHeight() int {
	return b.H + b.B
}

func (b *Board) InBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H+b.B
}

// InBuffer reports whether row y is one of the hidden rows above the field.
func (b *Board) InBuffer(y int) bool {
	return y < b.B
}

func (b *Board) Get(x int, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Empty, fmt.Errorf("failed to get cell %s: %w", Point{x, y}, ErrOutOfBounds)
	}
	return b.M[I(x, y, b.W)], nil
}

// Set writes c at (x, y). A locked cell is only replaced when overwrite is set.
func (b *Board) Set(x int, y int, c Cell, overwrite bool) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("failed to set cell %s to %s: %w", Point{x, y}, c, ErrOutOfBounds)
	}

	index := I(x, y, b.W)
	if !overwrite && b.M[index].IsLocked() {
		return fmt.Errorf("failed to set cell %s to %s: %w by %s", Point{x, y}, c, ErrAlreadyOccupied, b.M[index])
	}

	b.M[index] = c
	return nil
}

// Locked reports whether (x, y) is in bounds and holds a locked cell.
func (b *Board) Locked(x int, y int) bool {
	return b.InBounds(x, y) && b.M[I(x, y, b.W)].IsLocked()
}

// RowFull reports whether every cell of row y is non-empty. Rows outside the
// board are never full.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.H+b.B {
		return false
	}

	for x := 0; x < b.W; x++ {
		if b.M[I(x, y, b.W)].IsEmpty() {
			return false
		}
	}

	return true
}

// ClearRow removes row y, shifts every row above it down by one and empties
// the top row.
func (b *Board) ClearRow(y int) error {
	if y < 0 || y >= b.H+b.B {
		return fmt.Errorf("failed to clear row %d: %w", y, ErrOutOfBounds)
	}

	for my := y; my > 0; my-- {
		copy(b.M[I(0, my, b.W):I(0, my+1, b.W)], b.M[I(0, my-1, b.W):I(0, my, b.W)])
	}
	for mx := 0; mx < b.W; mx++ {
		b.M[mx] = Empty
	}

	return nil
}

// ClearFilled clears every full row in one top to bottom pass and returns the
// indices of the cleared rows as they were before clearing. Clearing row y
// only moves rows above y, so rows below it keep their index and the pass
// never skips a full row.
func (b *Board) ClearFilled() []int {
	var cleared []int

	for y := 0; y < b.H+b.B; y++ {
		if !b.RowFull(y) {
			continue
		}

		if err := b.ClearRow(y); err != nil {
			panic(err)
		}
		cleared = append(cleared, y)
	}

	return cleared
}

// Count returns the number of cells of kind k.
func (b *Board) Count(k CellKind) int {
	n := 0
	for _, c := range b.M {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Rows returns a copy of the board, one slice per row.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.H+b.B)
	for y := range rows {
		rows[y] = make([]Cell, b.W)
		copy(rows[y], b.M[I(0, y, b.W):I(0, y+1, b.W)])
	}
	return rows
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.M {
		b.M[i] = Empty
	}
}

// Render draws the board as text: '#' locked, '@' active, '.' empty. A '-'
// separator marks the end of the buffer rows.
func (b *Board) Render() string {
	var s strings.Builder
	for y := 0; y < b.H+b.B; y++ {
		if y == b.B && b.B > 0 {
			s.WriteString(strings.Repeat("-", b.W))
			s.WriteRune('\n')
		}
		for x := 0; x < b.W; x++ {
			switch b.M[I(x, y, b.W)].Kind {
			case CellLocked:
				s.WriteRune('#')
			case CellActive:
				s.WriteRune('@')
			default:
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
