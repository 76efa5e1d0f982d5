package life

import (
	"image"
	"testing"
)

func TestDefaultLayoutPlayable(t *testing.T) {
	l := DefaultLayout()
	if got, want := l.Playable(), image.Rect(14, 1, 89, 59); got != want {
		t.Fatalf("playable=%v, expected %v", got, want)
	}
	if !l.Valid() {
		t.Fatal("default layout should be valid")
	}
	if c := l.Center(); !l.Contains(c.X, c.Y) {
		t.Fatalf("center %v outside playable rectangle", c)
	}
}

func TestLayoutClampNeverLeavesPlayable(t *testing.T) {
	l := DefaultLayout()
	cases := []image.Point{
		{-5, -5}, {0, 0}, {13, 30}, {89, 59}, {200, 3}, {50, 1000},
	}
	for _, p := range cases {
		x, y := l.Clamp(p.X, p.Y)
		if !l.Contains(x, y) {
			t.Fatalf("Clamp(%v)=(%d,%d) left playable rectangle", p, x, y)
		}
	}
	if x, y := l.Clamp(40, 20); x != 40 || y != 20 {
		t.Fatalf("Clamp moved an interior point to (%d,%d)", x, y)
	}
}

func TestLayoutWalls(t *testing.T) {
	l := testLayout()
	for _, p := range []image.Point{{0, 5}, {11, 5}, {5, 0}, {5, 9}} {
		if !l.IsWall(p.X, p.Y) {
			t.Fatalf("%v should be wall", p)
		}
		if l.Contains(p.X, p.Y) {
			t.Fatalf("wall %v reported playable", p)
		}
	}
	if l.IsWall(1, 5) {
		t.Fatal("menu margin is not wall")
	}
}

func TestLayoutValid(t *testing.T) {
	cases := []struct {
		name string
		l    Layout
		want bool
	}{
		{"default", DefaultLayout(), true},
		{"no margin column", Layout{Width: 10, Height: 10, Col0: 0, Row0: 1}, false},
		{"margin eats grid", Layout{Width: 10, Height: 10, Col0: 9, Row0: 1}, false},
		{"single cell", Layout{Width: 3, Height: 3, Col0: 1, Row0: 1}, true},
		{"margin past right wall", Layout{Width: 12, Height: 60, Col0: 14, Row0: 1}, false},
		{"single row", Layout{Width: 90, Height: 1, Col0: 14, Row0: 1}, false},
		{"no rows between walls", Layout{Width: 90, Height: 2, Col0: 14, Row0: 1}, false},
	}
	for _, c := range cases {
		if got := c.l.Valid(); got != c.want {
			t.Fatalf("%s: Valid()=%v, expected %v", c.name, got, c.want)
		}
	}
}

func TestInvertedLayoutHasNoPlayableCells(t *testing.T) {
	for _, l := range []Layout{
		{Width: 12, Height: 60, Col0: 14, Row0: 1},
		{Width: 90, Height: 1, Col0: 14, Row0: 1},
		{Width: 2, Height: 20, Col0: 2, Row0: 1},
	} {
		if !l.Playable().Empty() {
			t.Fatalf("%+v: playable=%v, expected empty", l, l.Playable())
		}
		if l.Contains(l.Col0, l.Row0) || l.Contains(l.Width-1, l.Height-1) {
			t.Fatalf("%+v: Contains accepted a cell of an empty layout", l)
		}
		u := New(l, 1)
		u.SetDensity(1)
		u.Randomize()
		u.Step()
		u.Clear()
		if u.Population() != 0 {
			t.Fatalf("%+v: population=%d, expected 0", l, u.Population())
		}
	}
}
