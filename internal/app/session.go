package app

import (
	"image"
	"unicode"

	"conway-life/internal/core"
	"conway-life/internal/life"
	"conway-life/internal/render"
)

// Command is a frontend-independent user action.
type Command int

const (
	CmdNone Command = iota
	CmdCursorLeft
	CmdCursorRight
	CmdCursorUp
	CmdCursorDown
	CmdToggle
	CmdStartStop
	CmdNext
	CmdClear
	CmdRandomize
	CmdCycleMode
	CmdToggleGrid
	CmdCyclePattern
	CmdQuit
)

// CommandForRune maps a typed character to its command.
func CommandForRune(r rune) Command {
	switch unicode.ToLower(r) {
	case ' ':
		return CmdToggle
	case 's':
		return CmdStartStop
	case 'n':
		return CmdNext
	case 'c':
		return CmdClear
	case 'r':
		return CmdRandomize
	case 'm':
		return CmdCycleMode
	case 'g':
		return CmdToggleGrid
	case 'p':
		return CmdCyclePattern
	case 'q':
		return CmdQuit
	default:
		return CmdNone
	}
}

// Session is the interactive state shared by every frontend: the universe,
// the edit cursor, the run flag and the cosmetic settings. It is not safe
// for concurrent use.
type Session struct {
	universe *life.Universe
	cursor   image.Point
	running  bool
	view     render.Settings
	pace     *core.FixedStep
}

// NewSession wraps u. pace may be nil to step once per Update.
func NewSession(u *life.Universe, pace *core.FixedStep) *Session {
	l := u.Layout()
	c := l.Center()
	x, y := l.Clamp(c.X, c.Y)
	return &Session{
		universe: u,
		cursor:   image.Pt(x, y),
		view:     render.DefaultSettings(),
		pace:     pace,
	}
}

// Universe returns the simulated grid.
func (s *Session) Universe() *life.Universe { return s.universe }

// Cursor returns the edit cursor cell.
func (s *Session) Cursor() image.Point { return s.cursor }

// Running reports whether generations advance on Update.
func (s *Session) Running() bool { return s.running }

// View returns the cosmetic settings.
func (s *Session) View() render.Settings { return s.view }

// Apply executes cmd and reports whether the user asked to quit.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case CmdCursorLeft:
		s.moveCursor(-1, 0)
	case CmdCursorRight:
		s.moveCursor(1, 0)
	case CmdCursorUp:
		s.moveCursor(0, -1)
	case CmdCursorDown:
		s.moveCursor(0, 1)
	case CmdToggle:
		s.universe.Toggle(s.cursor.X, s.cursor.Y)
	case CmdStartStop:
		s.running = !s.running
		if s.running && s.pace != nil {
			s.pace.Reset()
		}
	case CmdNext:
		s.running = false
		s.universe.Step()
	case CmdClear:
		s.universe.Clear()
		s.running = false
	case CmdRandomize:
		s.universe.Randomize()
	case CmdCycleMode:
		s.view.Mode = s.view.Mode.Next()
	case CmdToggleGrid:
		s.view.Grid = !s.view.Grid
	case CmdCyclePattern:
		s.view.Pattern = s.view.Pattern.Next()
	case CmdQuit:
		return true
	}
	return false
}

func (s *Session) moveCursor(dx, dy int) {
	x, y := s.universe.Layout().Clamp(s.cursor.X+dx, s.cursor.Y+dy)
	s.cursor = image.Pt(x, y)
}

// PaintAt handles a drag over cell (x, y). Cells outside the playable
// rectangle are ignored; otherwise the cursor follows and the cell is
// painted alive, or dead when erase is set.
func (s *Session) PaintAt(x, y int, erase bool) bool {
	if !s.universe.Layout().Contains(x, y) {
		return false
	}
	s.cursor = image.Pt(x, y)
	s.universe.Paint(x, y, erase)
	return true
}

// Update advances one generation when running and the pace allows it.
func (s *Session) Update() bool {
	if !s.running {
		return false
	}
	if s.pace != nil && !s.pace.ShouldStep() {
		return false
	}
	s.universe.Step()
	return true
}
