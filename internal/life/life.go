package life

import (
	"crypto/md5"
	"fmt"

	"conway-life/internal/core"
)

// State is the live/dead value of a cell.
type State uint8

const (
	Dead State = iota
	Alive
)

// Mark is the display history of a cell.
type Mark uint8

const (
	NonMarked Mark = iota
	Marked
	NewAlive
	DiedOut
)

func (m Mark) String() string {
	switch m {
	case NonMarked:
		return "non_marked"
	case Marked:
		return "marked"
	case NewAlive:
		return "new_alive"
	case DiedOut:
		return "died_out"
	default:
		return fmt.Sprintf("mark(%d)", uint8(m))
	}
}

// DefaultDensity is the probability that Randomize brings a cell to life.
const DefaultDensity = 0.1

// Universe implements Conway's Game of Life (B3/S23) inside a walled
// rectangle and tracks per-cell history for rendering.
type Universe struct {
	layout Layout

	cur  *core.ByteGrid
	nxt  *core.ByteGrid
	hist *core.ByteGrid

	generation int
	density    float64
	rng        *core.RNG
}

// New returns an empty universe for the layout. seed drives Randomize.
func New(layout Layout, seed int64) *Universe {
	return &Universe{
		layout:  layout,
		cur:     core.NewByteGrid(layout.Width, layout.Height),
		nxt:     core.NewByteGrid(layout.Width, layout.Height),
		hist:    core.NewByteGrid(layout.Width, layout.Height),
		density: DefaultDensity,
		rng:     core.NewRNG(seed),
	}
}

// Size returns the full grid dimensions.
func (u *Universe) Size() core.Size { return u.layout.Size() }

// Layout returns the grid geometry.
func (u *Universe) Layout() Layout { return u.layout }

// Cells exposes the live matrix, one State per cell in row-major order.
func (u *Universe) Cells() []uint8 { return u.cur.Cells() }

// History exposes the history matrix, one Mark per cell in row-major order.
func (u *Universe) History() []uint8 { return u.hist.Cells() }

// Generation returns the number of steps since the last Clear.
func (u *Universe) Generation() int { return u.generation }

// SetDensity changes the Randomize probability. Values are clamped to [0, 1].
func (u *Universe) SetDensity(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	u.density = p
}

// Density returns the Randomize probability.
func (u *Universe) Density() float64 { return u.density }

// State returns the live state of (x, y). Any in-grid cell may be read.
func (u *Universe) State(x, y int) State { return State(u.cur.At(x, y)) }

// Mark returns the history of (x, y).
func (u *Universe) Mark(x, y int) Mark { return Mark(u.hist.At(x, y)) }

// Population counts live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur.Cells() {
		if c == uint8(Alive) {
			n++
		}
	}
	return n
}

// Fingerprint hashes the live matrix so repeated configurations can be
// detected.
func (u *Universe) Fingerprint() [md5.Size]byte {
	return md5.Sum(u.cur.Cells())
}

// Step advances the universe by one generation.
func (u *Universe) Step() {
	r := u.layout.Playable()
	u.nxt.Clear()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			neighbors := u.countAlive(x, y)
			state := State(u.cur.At(x, y))

			if state == Alive || Mark(u.hist.At(x, y)) == DiedOut {
				u.hist.Set(x, y, uint8(Marked))
			}

			switch neighbors {
			case 2:
				u.nxt.Set(x, y, uint8(state))
			case 3:
				if state == Dead {
					u.hist.Set(x, y, uint8(NewAlive))
				}
				u.nxt.Set(x, y, uint8(Alive))
			default:
				if state == Alive {
					u.hist.Set(x, y, uint8(DiedOut))
				}
				u.nxt.Set(x, y, uint8(Dead))
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}

// countAlive sums the 8 neighbours of a playable cell. Playable cells never
// touch the grid edge, so no bounds checks are needed.
func (u *Universe) countAlive(x, y int) int {
	w := u.cur.W
	cells := u.cur.Cells()
	above := (y-1)*w + x
	row := y*w + x
	below := (y+1)*w + x
	return int(cells[above-1]) + int(cells[above]) + int(cells[above+1]) +
		int(cells[row-1]) + int(cells[row+1]) +
		int(cells[below-1]) + int(cells[below]) + int(cells[below+1])
}

// Clear kills every playable cell, wipes history and resets the generation
// counter.
func (u *Universe) Clear() {
	u.generation = 0
	r := u.layout.Playable()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			u.cur.Set(x, y, uint8(Dead))
			u.hist.Set(x, y, uint8(NonMarked))
		}
	}
}

// Randomize brings each playable cell to life with the configured density.
// Live cells are never killed and history is left untouched.
func (u *Universe) Randomize() {
	r := u.layout.Playable()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if u.rng.Chance(u.density) {
				u.cur.Set(x, y, uint8(Alive))
			}
		}
	}
}

// Toggle flips the live state of a playable cell.
func (u *Universe) Toggle(x, y int) {
	u.mustPlayable(x, y)
	u.cur.Set(x, y, u.cur.At(x, y)^1)
}

// Paint sets a playable cell alive, or dead when erase is set.
func (u *Universe) Paint(x, y int, erase bool) {
	u.mustPlayable(x, y)
	if erase {
		u.cur.Set(x, y, uint8(Dead))
		return
	}
	u.cur.Set(x, y, uint8(Alive))
}

func (u *Universe) mustPlayable(x, y int) {
	if !u.layout.Contains(x, y) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside playable rectangle %v", x, y, u.layout.Playable()))
	}
}
