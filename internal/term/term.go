// Package term renders a Session into a terminal using tcell. The board is
// drawn two terminal columns per cell to the right of a text menu.
package term

import (
	"context"
	"image"
	"image/color"
	"time"

	"conway-life/internal/app"
	"conway-life/internal/render"
	"conway-life/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	menuWidth   = 22
	columnsWide = 2
)

var keyBindings = map[tcell.Key]app.Command{
	tcell.KeyEscape: app.CmdQuit,
	tcell.KeyCtrlC:  app.CmdQuit,
	tcell.KeyLeft:   app.CmdCursorLeft,
	tcell.KeyRight:  app.CmdCursorRight,
	tcell.KeyUp:     app.CmdCursorUp,
	tcell.KeyDown:   app.CmdCursorDown,
}

// Frontend drives a Session from terminal events.
type Frontend struct {
	screen  tcell.Screen
	session *app.Session
	tps     int
	frame   *render.Frame
}

// New wraps an initialised screen.
func New(screen tcell.Screen, session *app.Session, tps int) *Frontend {
	if tps <= 0 {
		tps = 60
	}
	size := session.Universe().Size()
	return &Frontend{
		screen:  screen,
		session: session,
		tps:     tps,
		frame:   render.NewFrame(size.Area()),
	}
}

// NewScreen creates and initialises the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising screen")
	}
	return screen, nil
}

// Run processes events and frames until the user quits or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(f.tps))
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.Handle(ev) {
				return nil
			}
			f.Draw()
		case <-ticker.C:
			f.session.Update()
			f.Draw()
		}
	}
}

// Handle applies a single event and reports whether the user asked to quit.
func (f *Frontend) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return f.session.Apply(app.CommandForRune(ev.Rune()))
		}
		if cmd, ok := keyBindings[ev.Key()]; ok {
			return f.session.Apply(cmd)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		tx, ty := ev.Position()
		if x, y, ok := f.cellAt(tx, ty); ok {
			f.session.PaintAt(x, y, ev.Modifiers()&tcell.ModShift != 0)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

// leftEdge is the first grid column drawn: the margin column next to the
// playable rectangle doubles as the left wall.
func (f *Frontend) leftEdge() int {
	return f.session.Universe().Layout().Col0 - 1
}

// cellAt maps a terminal position to a grid cell.
func (f *Frontend) cellAt(tx, ty int) (int, int, bool) {
	if tx < menuWidth || ty < 0 {
		return 0, 0, false
	}
	x := (tx-menuWidth)/columnsWide + f.leftEdge()
	size := f.session.Universe().Size()
	if x >= size.W || ty >= size.H {
		return 0, 0, false
	}
	return x, ty, true
}

// origin returns the terminal position of grid cell (x, y).
func (f *Frontend) origin(x, y int) image.Point {
	return image.Pt(menuWidth+(x-f.leftEdge())*columnsWide, y)
}

// Draw renders the menu and board and shows the result.
func (f *Frontend) Draw() {
	f.screen.Clear()
	u := f.session.Universe()
	view := f.session.View()

	menuStyle := tcell.StyleDefault.Foreground(toColor(render.MenuText)).Background(toColor(render.MenuColor))
	for i, line := range ui.MenuLines(u.Generation(), view.Mode, f.session.Running()) {
		f.text(1, i+1, padRight(line, menuWidth-3), menuStyle)
	}

	colors := view.Colors()
	palette := colors.Palette()
	f.frame.Fill(u, colors)
	layout := u.Layout()
	cursor := f.session.Cursor()
	gridStyle := tcell.StyleDefault.Foreground(toColor(colors.Grid))
	cursorStyle := tcell.StyleDefault.Foreground(toColor(render.CursorColor))

	for y := 0; y < layout.Height; y++ {
		for x := f.leftEdge(); x < layout.Width; x++ {
			role := f.frame.RoleAt(y*layout.Width + x)
			if x == f.leftEdge() {
				role = render.RoleWall
			}
			bg := toColor(palette[role])
			p := f.origin(x, y)
			left, right := ' ', ' '
			style := tcell.StyleDefault.Background(bg)
			switch {
			case cursor == image.Pt(x, y):
				left, right = '[', ']'
				style = cursorStyle.Background(bg)
			case view.Grid && layout.Contains(x, y):
				left = '·'
				style = gridStyle.Background(bg)
			}
			f.screen.SetContent(p.X, p.Y, left, nil, style)
			f.screen.SetContent(p.X+1, p.Y, right, nil, style)
		}
	}
	f.screen.Show()
}

func (f *Frontend) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
