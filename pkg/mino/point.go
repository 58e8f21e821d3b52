package mino

import (
	"strconv"
	"strings"
)

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}

// Direction is a unit translation. Up is only used internally when nudging.
type Direction int

const (
	Down Direction = iota
	Left
	Right
	Up
)

func (d Direction) Delta() Point {
	switch d {
	case Down:
		return Point{0, 1}
	case Left:
		return Point{-1, 0}
	case Right:
		return Point{1, 0}
	case Up:
		return Point{0, -1}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "?"
	}
}

// Sense is a rotation sense.
type Sense int

const (
	Clockwise Sense = iota
	CounterClockwise
)

func (s Sense) String() string {
	if s == CounterClockwise {
		return "ccw"
	}
	return "cw"
}
