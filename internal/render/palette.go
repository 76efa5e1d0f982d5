package render

import (
	"image/color"

	"conway-life/internal/life"
)

// Mode selects which history annotations get their own color.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeMarked
	ModeNewAlive
	ModeDiedOut
	modeCount
)

// Next returns the following mode, wrapping back to ModeNormal.
func (m Mode) Next() Mode { return (m + 1) % modeCount }

// Label is the menu text for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeMarked:
		return "marked"
	case ModeNewAlive:
		return "new_alive"
	case ModeDiedOut:
		return "died_out"
	default:
		return "normal"
	}
}

// Pattern selects one of the fixed color schemes.
type Pattern uint8

// Next returns the following pattern, wrapping around.
func (p Pattern) Next() Pattern { return (p + 1) % Pattern(len(schemes)) }

// Scheme is the raw six-color table of a pattern.
type Scheme struct {
	Alive    color.RGBA
	NewAlive color.RGBA
	Dead     color.RGBA
	Marked   color.RGBA
	DiedOut  color.RGBA
	Grid     color.RGBA
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

var (
	fresh      = rgb(0xff, 0xe5, 0xcc)
	pink       = rgb(0xff, 0x99, 0xcc)
	black      = rgb(0x22, 0x22, 0x22)
	lightBlack = rgb(0x33, 0x33, 0x33)
	grey       = rgb(0x55, 0x55, 0x55)
	yellow     = rgb(0xff, 0xff, 0x99)
	white      = rgb(0xee, 0xee, 0xee)
	lightGrey  = rgb(0xe0, 0xe0, 0xe0)
	dimBlue    = rgb(0x66, 0xb2, 0xff)
	bluePurple = rgb(0xb2, 0x66, 0xff)
	blue       = rgb(0x00, 0x00, 0xff)
	lightGreen = rgb(0x00, 0xcc, 0x66)
	lightRed   = rgb(0xff, 0x66, 0x66)
	pureWhite  = rgb(0xff, 0xff, 0xff)
	pureYellow = rgb(0xff, 0xff, 0x00)
)

var schemes = [...]Scheme{
	{Alive: fresh, NewAlive: pink, Dead: black, Marked: grey, DiedOut: yellow, Grid: lightBlack},
	{Alive: blue, NewAlive: pink, Dead: white, Marked: dimBlue, DiedOut: bluePurple, Grid: lightGrey},
	{Alive: lightRed, NewAlive: pureYellow, Dead: dimBlue, Marked: lightGreen, DiedOut: pureWhite, Grid: lightGrey},
}

// Fixed chrome colors shared by every pattern.
var (
	CursorColor = rgb(0x00, 0x00, 0xff)
	WallColor   = rgb(0xff, 0xff, 0xff)
	MenuColor   = rgb(200, 200, 200)
	MenuText    = black
	VoidColor   = rgb(0x00, 0x00, 0x00)
)

// SchemeFor returns the raw scheme of pattern p.
func SchemeFor(p Pattern) Scheme { return schemes[int(p)%len(schemes)] }

// Colors is the concrete color per cell role after applying a display mode.
type Colors struct {
	Alive    color.RGBA
	NewAlive color.RGBA
	Dead     color.RGBA
	Marked   color.RGBA
	DiedOut  color.RGBA
	Grid     color.RGBA
}

// Resolve maps a display mode and pattern to the colors used for drawing.
// Annotations not highlighted by the mode fold into the alive/dead colors.
func Resolve(mode Mode, p Pattern) Colors {
	s := SchemeFor(p)
	c := Colors{
		Alive:    s.Alive,
		NewAlive: s.Alive,
		Dead:     s.Dead,
		Marked:   s.Dead,
		DiedOut:  s.Dead,
		Grid:     s.Grid,
	}
	if mode >= ModeMarked {
		c.Marked = s.Marked
	}
	if mode >= ModeNewAlive {
		c.NewAlive = s.NewAlive
	}
	if mode >= ModeDiedOut {
		c.DiedOut = s.DiedOut
	}
	return c
}

// Settings holds the cosmetic state toggled from the keyboard.
type Settings struct {
	Mode    Mode
	Pattern Pattern
	Grid    bool
}

// DefaultSettings starts in normal mode, first pattern, grid lines on.
func DefaultSettings() Settings {
	return Settings{Mode: ModeNormal, Pattern: 0, Grid: true}
}

// Colors resolves the current palette.
func (s Settings) Colors() Colors { return Resolve(s.Mode, s.Pattern) }

// Role identifies which color a grid cell is drawn with.
type Role uint8

const (
	RoleDead Role = iota
	RoleAlive
	RoleNewAlive
	RoleMarked
	RoleDiedOut
	RoleWall
	RoleVoid
	roleCount
)

// Palette returns a role-indexed color table.
func (c Colors) Palette() []color.RGBA {
	p := make([]color.RGBA, roleCount)
	p[RoleDead] = c.Dead
	p[RoleAlive] = c.Alive
	p[RoleNewAlive] = c.NewAlive
	p[RoleMarked] = c.Marked
	p[RoleDiedOut] = c.DiedOut
	p[RoleWall] = WallColor
	p[RoleVoid] = VoidColor
	return p
}

// Classify picks the role of a playable cell. Fresh history wins over the
// live state, which wins over the long-term mark.
func Classify(state life.State, mark life.Mark) Role {
	switch {
	case mark == life.NewAlive:
		return RoleNewAlive
	case mark == life.DiedOut:
		return RoleDiedOut
	case state == life.Alive:
		return RoleAlive
	case mark == life.Marked:
		return RoleMarked
	default:
		return RoleDead
	}
}

// Roles fills dst with a role per grid cell. Walls and the menu margin get
// their fixed roles; playable cells are classified from the matrices.
func Roles(dst []uint8, layout life.Layout, cells, hist []uint8) {
	w := layout.Width
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch {
			case layout.IsWall(x, y):
				dst[i] = uint8(RoleWall)
			case layout.Contains(x, y):
				dst[i] = uint8(Classify(life.State(cells[i]), life.Mark(hist[i])))
			default:
				dst[i] = uint8(RoleVoid)
			}
		}
	}
}
