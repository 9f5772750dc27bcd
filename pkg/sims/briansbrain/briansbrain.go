// Package briansbrain implements Brian's Brain on the grid engine. It
// exists mostly to show that the engine accepts rule sets with cell
// types other than life's two-state alphabet.
package briansbrain

import (
	"fmt"
	"image/color"

	"gridlife/pkg/core"
	"gridlife/pkg/grid"
)

// State is a three-valued Brian's Brain cell.
type State uint8

const (
	// Off is the quiescent state.
	Off State = 0
	// Firing is the active state.
	Firing State = 1
	// Dying is the refractory state between Firing and Off.
	Dying State = 2
)

// Step is the transition rule: a firing cell starts dying, a dying cell
// turns off, and an off cell fires when exactly two neighbors fire.
func Step(x, y int, g *grid.Grid[State]) State {
	self, err := g.Cell(x, y)
	if err != nil {
		return Off
	}
	switch self {
	case Firing:
		return Dying
	case Dying:
		return Off
	}
	neighbors, _ := g.Neighbors(x, y)
	firing := 0
	for _, n := range neighbors {
		if n == Firing {
			firing++
		}
	}
	if firing == 2 {
		return Firing
	}
	return Off
}

// Brain adapts the rule to the core.Sim contract.
type Brain struct {
	gen     *grid.Grid[State]
	display []uint8
}

// New creates an all-off brain with the provided dimensions.
func New(w, h int) *Brain {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = make([]uint8, w)
	}
	g, _ := grid.FromRows(rows, func(v uint8) (State, error) { return State(v), nil })
	b := &Brain{gen: g}
	b.sync()
	return b
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size {
	return core.Size{W: b.gen.Width(), H: b.gen.Height()}
}

// Cells exposes the display buffer.
func (b *Brain) Cells() []uint8 { return b.display }

// Snapshot emits the current state as plain text over {'0','1','2'}.
func (b *Brain) Snapshot() string {
	return grid.Text(b.gen, func(s State) rune { return rune('0' + s) })
}

// Palette maps states to colors: off, firing, dying.
func (b *Brain) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 70, G: 130, B: 220, A: 255},
	}
}

// Load replaces the board with a pattern parsed from digit text over
// {'0','1','2'}. The board adopts the pattern's dimensions.
func (b *Brain) Load(text string) error {
	g, err := grid.FromText(text, func(r rune) (State, error) {
		if r < '0' || r > '2' {
			return Off, fmt.Errorf("briansbrain: invalid cell literal %q", r)
		}
		return State(r - '0'), nil
	})
	if err != nil {
		return err
	}
	if g.Width() == 0 || g.Height() == 0 {
		return fmt.Errorf("%w: empty pattern", grid.ErrShapeMismatch)
	}
	b.gen = g
	b.sync()
	return nil
}

// Reset scatters firing cells across an otherwise quiet board.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	size := b.Size()
	rows := make([][]uint8, size.H)
	for y := range rows {
		rows[y] = make([]uint8, size.W)
		core.FillSparse(rng, rows[y], uint8(Firing), 8)
	}
	g, _ := grid.FromRows(rows, func(v uint8) (State, error) { return State(v), nil })
	b.gen = g
	b.sync()
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	b.gen = grid.Map(b.gen, Step)
	b.sync()
}

func (b *Brain) sync() {
	total := b.gen.Width() * b.gen.Height()
	if len(b.display) != total {
		b.display = make([]uint8, total)
	}
	b.gen.Each(func(i int, c State) {
		b.display[i] = uint8(c)
	})
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(256, 256)
	})
}
