// Package life implements Conway's Game of Life as a rule over the
// immutable grid engine. Edges are hard boundaries: cells outside the
// grid simply do not exist, there is no wrapping.
package life

import (
	"errors"
	"fmt"
	"strconv"

	"gridlife/pkg/core"
	"gridlife/pkg/grid"
)

// ErrInvalidLiteral reports a pattern character outside the '0'/'1' alphabet.
var ErrInvalidLiteral = errors.New("life: invalid cell literal")

// Cell is a two-valued life cell.
type Cell uint8

const (
	// Dead is the inactive cell state.
	Dead Cell = 0
	// Alive is the active cell state.
	Alive Cell = 1
)

// ParseCell maps '0' to Dead and '1' to Alive. Any other character
// fails with ErrInvalidLiteral; nothing is guessed or defaulted.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '0':
		return Dead, nil
	case '1':
		return Alive, nil
	}
	return Dead, fmt.Errorf("%w: %q", ErrInvalidLiteral, r)
}

// RenderCell is the total inverse of ParseCell.
func RenderCell(c Cell) rune {
	if c == Alive {
		return '1'
	}
	return '0'
}

// Step is the Conway transition rule (birth on 3, survival on 2 or 3).
// Pass it to grid.Map to advance one generation.
func Step(x, y int, g *grid.Grid[Cell]) Cell {
	neighbors, err := g.Neighbors(x, y)
	if err != nil {
		// Map only visits in-bounds coordinates.
		return Dead
	}
	alive := 0
	for _, n := range neighbors {
		if n == Alive {
			alive++
		}
	}
	self, _ := g.Cell(x, y)
	if self == Alive {
		if alive == 2 || alive == 3 {
			return Alive
		}
		return Dead
	}
	if alive == 3 {
		return Alive
	}
	return Dead
}

// Next derives the following generation.
func Next(g *grid.Grid[Cell]) *grid.Grid[Cell] {
	return grid.Map(g, Step)
}

// Parse builds a generation from a plain-text snapshot over {'0','1'}.
func Parse(text string) (*grid.Grid[Cell], error) {
	return grid.FromText(text, ParseCell)
}

// Render emits the generation as a plain-text snapshot.
func Render(g *grid.Grid[Cell]) string {
	return grid.Text(g, RenderCell)
}

// Config holds parameters for a life board.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Board adapts the life rule to the core.Sim contract. It keeps the
// current generation snapshot plus a byte display buffer for the
// renderer, refreshed after every state change.
type Board struct {
	gen     *grid.Grid[Cell]
	display []uint8
	gens    int
	pop     int
}

// NewBoard creates an all-dead board with the provided dimensions.
func NewBoard(w, h int) *Board {
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
	g, _ := grid.FromRows(rows, func(v uint8) (Cell, error) { return Cell(v), nil })
	b := &Board{gen: g}
	b.sync()
	return b
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size {
	return core.Size{W: b.gen.Width(), H: b.gen.Height()}
}

// Grid exposes the current generation snapshot.
func (b *Board) Grid() *grid.Grid[Cell] { return b.gen }

// Cells exposes the display buffer for the renderer.
func (b *Board) Cells() []uint8 { return b.display }

// Snapshot emits the current generation as plain text over {'0','1'}.
func (b *Board) Snapshot() string { return Render(b.gen) }

// Generation reports how many steps have been applied since the last
// Reset or Load.
func (b *Board) Generation() int { return b.gens }

// Population reports the number of Alive cells in the current generation.
func (b *Board) Population() int { return b.pop }

// Reset randomizes the board using the provided seed.
func (b *Board) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	size := b.Size()
	rows := make([][]uint8, size.H)
	for y := range rows {
		rows[y] = make([]uint8, size.W)
		core.FillBinary(rng, rows[y])
	}
	g, _ := grid.FromRows(rows, func(v uint8) (Cell, error) { return Cell(v), nil })
	b.gen = g
	b.gens = 0
	b.sync()
}

// Load replaces the board with a pattern parsed from a text snapshot.
// The board adopts the pattern's dimensions.
func (b *Board) Load(text string) error {
	g, err := Parse(text)
	if err != nil {
		return err
	}
	if g.Width() == 0 || g.Height() == 0 {
		return fmt.Errorf("%w: empty pattern", grid.ErrShapeMismatch)
	}
	b.gen = g
	b.gens = 0
	b.sync()
	return nil
}

// Step advances the simulation by one generation.
func (b *Board) Step() {
	b.gen = Next(b.gen)
	b.gens++
	b.sync()
}

func (b *Board) sync() {
	total := b.gen.Width() * b.gen.Height()
	if len(b.display) != total {
		b.display = make([]uint8, total)
	}
	pop := 0
	b.gen.Each(func(i int, c Cell) {
		b.display[i] = uint8(c)
		if c == Alive {
			pop++
		}
	})
	b.pop = pop
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewBoard(c.Width, c.Height)
	})
}
