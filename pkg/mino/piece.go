package mino

import (
	"fmt"
	"strings"
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
)

// PieceTypes is the number of distinct piece types.
const PieceTypes = 7

var AllPieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceL, PieceJ, PieceS, PieceZ}

func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceZ
}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// ParsePieceType accepts a single letter piece name, case insensitive.
func ParsePieceType(s string) (PieceType, error) {
	for _, t := range AllPieceTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

func (t PieceType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid piece type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *PieceType) UnmarshalText(text []byte) error {
	p, err := ParsePieceType(string(text))
	if err != nil {
		return err
	}
	*t = p
	return nil
}

// Block returns the solid display block of the piece type.
func (t PieceType) Block() Block {
	switch t {
	case PieceI:
		return BlockSolidCyan
	case PieceO:
		return BlockSolidYellow
	case PieceT:
		return BlockSolidMagenta
	case PieceL:
		return BlockSolidOrange
	case PieceJ:
		return BlockSolidBlue
	case PieceS:
		return BlockSolidGreen
	case PieceZ:
		return BlockSolidRed
	default:
		return BlockNone
	}
}

// Ghost returns the ghost display block of the piece type.
func (t PieceType) Ghost() Block {
	switch t {
	case PieceI:
		return BlockGhostCyan
	case PieceO:
		return BlockGhostYellow
	case PieceT:
		return BlockGhostMagenta
	case PieceL:
		return BlockGhostOrange
	case PieceJ:
		return BlockGhostBlue
	case PieceS:
		return BlockGhostGreen
	case PieceZ:
		return BlockGhostRed
	default:
		return BlockNone
	}
}

// Pattern is the set of occupied offsets within a 4x4 bounding box, (x, y) with
// y growing downward.
type Pattern [4]Point

// patterns is indexed by piece type then rotation state. Rotation R is one
// clockwise quarter turn from Rotation0.
var patterns = [PieceTypes][RotationStates]Pattern{
	PieceI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	PieceO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	PieceT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	PieceJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	PieceS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// PatternOf returns the occupancy pattern for a piece type in a rotation state.
// Rotation states outside 0-3 are reduced modulo RotationStates.
func PatternOf(t PieceType, rotation int) Pattern {
	if !t.Valid() {
		panic(fmt.Sprintf("invalid piece type %d", t))
	}
	return patterns[t][normalizeRotation(rotation)]
}

func normalizeRotation(r int) int {
	r %= RotationStates
	if r < 0 {
		r += RotationStates
	}
	return r
}

// Rotate returns the rotation state reached by one quarter turn.
func Rotate(rotation int, s Sense) int {
	if s == CounterClockwise {
		return normalizeRotation(rotation - 1)
	}
	return normalizeRotation(rotation + 1)
}

// Piece is the falling piece. Point is the anchor: the top-left corner of the
// piece's 4x4 bounding box in board coordinates.
type Piece struct {
	Point
	Type     PieceType
	Rotation int
}

func NewPiece(t PieceType, loc Point) *Piece {
	return &Piece{Point: loc, Type: t}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s/r%d", p.Type, p.Point, p.Rotation)
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p *Piece) Cells() [4]Point {
	return p.CellsAt(p.Point, p.Rotation)
}

// CellsAt returns the cells the piece would occupy at loc in rotation state r.
func (p *Piece) CellsAt(loc Point, r int) [4]Point {
	var cells [4]Point
	for i, o := range PatternOf(p.Type, r) {
		cells[i] = loc.Add(o)
	}
	return cells
}
