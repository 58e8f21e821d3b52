package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name   string      `json:"name"`
	Border tcell.Color `json:"border"`
	Text   tcell.Color `json:"text"`
	Label  tcell.Color `json:"label"`
	I      tcell.Color `json:"i"`
	O      tcell.Color `json:"o"`
	T      tcell.Color `json:"t"`
	L      tcell.Color `json:"l"`
	J      tcell.Color `json:"j"`
	S      tcell.Color `json:"s"`
	Z      tcell.Color `json:"z"`
}

// ThemeHex is the serialized form of a Theme
type ThemeHex struct {
	Name   string `json:"name"`
	Border string `json:"border"`
	Text   string `json:"text"`
	Label  string `json:"label"`
	I      string `json:"i"`
	O      string `json:"o"`
	T      string `json:"t"`
	L      string `json:"l"`
	J      string `json:"j"`
	S      string `json:"s"`
	Z      string `json:"z"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Border.Hex()),
		fmtHex(t.Text.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.I.Hex()),
		fmtHex(t.O.Hex()),
		fmtHex(t.T.Hex()),
		fmtHex(t.L.Hex()),
		fmtHex(t.J.Hex()),
		fmtHex(t.S.Hex()),
		fmtHex(t.Z.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Text),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.I),
		tcell.GetColor(t.O),
		tcell.GetColor(t.T),
		tcell.GetColor(t.L),
		tcell.GetColor(t.J),
		tcell.GetColor(t.S),
		tcell.GetColor(t.Z),
	}
}

// Piece returns the color of a piece type
func (t Theme) Piece(p mino.PieceType) tcell.Color {
	switch p {
	case mino.PieceI:
		return t.I
	case mino.PieceO:
		return t.O
	case mino.PieceT:
		return t.T
	case mino.PieceL:
		return t.L
	case mino.PieceJ:
		return t.J
	case mino.PieceS:
		return t.S
	case mino.PieceZ:
		return t.Z
	default:
		return t.Text
	}
}

// colorTag returns the tview dynamic color tag for c
func colorTag(c tcell.Color) string {
	if c.Hex() == -1 {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// Blocks returns the rendered form of every block for this theme
func (t Theme) Blocks() map[mino.Block][]byte {
	reset := colorTag(t.Text)

	blocks := map[mino.Block][]byte{
		mino.BlockNone: []byte(" "),
	}
	for _, p := range mino.AllPieceTypes {
		tag := colorTag(t.Piece(p))
		blocks[p.Block()] = []byte(tag + string(p.Block().Rune()) + reset)
		blocks[p.Ghost()] = []byte(tag + string(p.Ghost().Rune()) + reset)
	}
	return blocks
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument, falling back to
// the built in themes
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                     // Name
	tcell.ColorDefault,          // Border
	tcell.NewHexColor(0xffffff), // Text
	tcell.NewHexColor(0xbbbbbb), // Label
	tcell.NewHexColor(0x00eeee), // I
	tcell.NewHexColor(0xdddd00), // O
	tcell.NewHexColor(0xc000cc), // T
	tcell.NewHexColor(0xff7308), // L
	tcell.NewHexColor(0x2864ff), // J
	tcell.NewHexColor(0x00e900), // S
	tcell.NewHexColor(0xee0000), // Z
}

// ThemeMono draws every piece in the text color
var ThemeMono = Theme{
	"mono",
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
	tcell.ColorDefault,
}

var Themes = []Theme{ThemeBasic, ThemeMono}
