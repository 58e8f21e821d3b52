package mino

type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellActive
	CellLocked
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellActive:
		return "active"
	case CellLocked:
		return "locked"
	default:
		return "?"
	}
}

// Cell is one board position. Piece is meaningful for active and locked cells
// and selects the display identity.
type Cell struct {
	Kind  CellKind
	Piece PieceType
}

var Empty = Cell{}

func Active(t PieceType) Cell { return Cell{Kind: CellActive, Piece: t} }

func Locked(t PieceType) Cell { return Cell{Kind: CellLocked, Piece: t} }

func (c Cell) IsEmpty() bool  { return c.Kind == CellEmpty }
func (c Cell) IsActive() bool { return c.Kind == CellActive }
func (c Cell) IsLocked() bool { return c.Kind == CellLocked }

func (c Cell) Block() Block {
	if c.Kind == CellEmpty {
		return BlockNone
	}
	return c.Piece.Block()
}

func (c Cell) String() string {
	switch c.Kind {
	case CellEmpty:
		return "empty"
	case CellActive:
		return "active(" + c.Piece.String() + ")"
	default:
		return "locked(" + c.Piece.String() + ")"
	}
}
