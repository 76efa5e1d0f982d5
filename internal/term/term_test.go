package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"conway-life/internal/app"
	"conway-life/internal/life"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(200, 64)
	session := app.NewSession(life.New(life.DefaultLayout(), 1), nil)
	return New(screen, session, 60), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestKeysDriveSession(t *testing.T) {
	f, _ := newTestFrontend(t)
	f.Handle(key(' '))
	c := f.session.Cursor()
	if f.session.Universe().State(c.X, c.Y) != life.Alive {
		t.Fatal("space should toggle the cursor cell")
	}
	f.Handle(key('n'))
	if f.session.Universe().Generation() != 1 {
		t.Fatalf("generation=%d, expected 1", f.session.Universe().Generation())
	}
	f.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if f.session.Cursor().X != c.X-1 {
		t.Fatalf("left arrow should move the cursor, got %v", f.session.Cursor())
	}
	if !f.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	if !f.Handle(key('q')) {
		t.Fatal("q should quit")
	}
}

func TestMouseDragPaints(t *testing.T) {
	f, _ := newTestFrontend(t)
	p := f.origin(30, 10)
	f.Handle(tcell.NewEventMouse(p.X+1, p.Y, tcell.Button1, tcell.ModNone))
	if f.session.Universe().State(30, 10) != life.Alive {
		t.Fatal("drag should paint the cell alive")
	}
	f.Handle(tcell.NewEventMouse(p.X, p.Y, tcell.Button1, tcell.ModShift))
	if f.session.Universe().State(30, 10) != life.Dead {
		t.Fatal("shift drag should erase")
	}
	f.Handle(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	f.Handle(tcell.NewEventMouse(p.X, p.Y, tcell.ButtonNone, tcell.ModNone))
	if f.session.Universe().Population() != 0 {
		t.Fatal("clicks on the menu or without a button must not paint")
	}
}

func TestDrawShowsMenuAndCursor(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.Handle(key('n'))
	f.Draw()
	if row := rowText(screen, 1); !strings.HasPrefix(strings.TrimSpace(row), "generation: 1") {
		t.Fatalf("menu row=%q", row)
	}
	c := f.session.Cursor()
	p := f.origin(c.X, c.Y)
	cells, w, _ := screen.GetContents()
	if r := cells[p.Y*w+p.X].Runes; len(r) == 0 || r[0] != '[' {
		t.Fatalf("cursor not drawn at %v", p)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f, screen := newTestFrontend(t)
	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on cancel")
	}
}
