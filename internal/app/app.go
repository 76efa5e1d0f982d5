//go:build ebiten

package app

import (
	"conway-life/internal/render"
	"conway-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]Command{
	ebiten.KeyEscape:     CmdQuit,
	ebiten.KeyQ:          CmdQuit,
	ebiten.KeyArrowLeft:  CmdCursorLeft,
	ebiten.KeyArrowRight: CmdCursorRight,
	ebiten.KeyArrowUp:    CmdCursorUp,
	ebiten.KeyArrowDown:  CmdCursorDown,
	ebiten.KeySpace:      CmdToggle,
	ebiten.KeyS:          CmdStartStop,
	ebiten.KeyN:          CmdNext,
	ebiten.KeyC:          CmdClear,
	ebiten.KeyR:          CmdRandomize,
	ebiten.KeyM:          CmdCycleMode,
	ebiten.KeyG:          CmdToggleGrid,
	ebiten.KeyP:          CmdCyclePattern,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session  *Session
	painter  *render.BoardPainter
	menu     *ui.Menu
	cellSize int
	keys     []ebiten.Key
}

// New constructs a Game drawing cells of cellSize pixels.
func New(session *Session, cellSize int) *Game {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Game{
		session:  session,
		painter:  render.NewBoardPainter(session.Universe().Layout()),
		menu:     ui.NewMenu(),
		cellSize: cellSize,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && my >= 0 {
			g.session.PaintAt(mx/g.cellSize, my/g.cellSize, ebiten.IsKeyPressed(ebiten.KeyShift))
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		cmd, ok := keyBindings[k]
		if !ok {
			continue
		}
		if g.session.Apply(cmd) {
			return ebiten.Termination
		}
	}

	g.session.Update()
	return nil
}

// Draw renders the board, cursor and menu.
func (g *Game) Draw(screen *ebiten.Image) {
	u := g.session.Universe()
	g.painter.Draw(screen, u, g.session.View(), g.session.Cursor(), g.cellSize)
	g.menu.Draw(screen, u.Generation(), g.session.View().Mode, g.session.Running())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Universe().Size()
	return s.W * g.cellSize, s.H * g.cellSize
}
