// Package grid provides a generic, immutable 2D cell container for
// cellular automata. Every grid is a snapshot: deriving the next
// generation allocates a new grid and never touches the old one.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a coordinate or linear index outside the grid.
	ErrOutOfBounds = errors.New("grid: out of bounds")
	// ErrShapeMismatch reports non-rectangular construction input.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

// Grid stores cells of type C in row-major order: the cell at (x, y)
// lives at slice index y*w+x.
type Grid[C any] struct {
	w, h  int
	cells []C
}

// Width returns the number of columns.
func (g *Grid[C]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[C]) Height() int { return g.h }

// Cells exposes the backing slice in storage order. Callers must treat
// it as read-only; grids are snapshots.
func (g *Grid[C]) Cells() []C { return g.cells }

// check is the single bounds gate shared by every coordinate and index
// operation on the grid.
func (g *Grid[C]) check(x, y int) error {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return nil
}

// Index returns the linear storage index for (x, y).
func (g *Grid[C]) Index(x, y int) (int, error) {
	if err := g.check(x, y); err != nil {
		return 0, err
	}
	return y*g.w + x, nil
}

// Coords inverts Index. The coordinates are computed first and then
// re-validated against the bounds gate, so a negative index or one at or
// beyond w*h fails rather than mapping to a phantom cell.
func (g *Grid[C]) Coords(i int) (int, int, error) {
	if g.w == 0 {
		return 0, 0, fmt.Errorf("%w: index %d in empty grid", ErrOutOfBounds, i)
	}
	x, y := i%g.w, i/g.w
	if err := g.check(x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Cell returns the cell at (x, y).
func (g *Grid[C]) Cell(x, y int) (C, error) {
	i, err := g.Index(x, y)
	if err != nil {
		var zero C
		return zero, err
	}
	return g.cells[i], nil
}

// Neighbor pairs a cell with its coordinates, as reported by
// NeighborsWithCoords.
type Neighbor[C any] struct {
	X, Y int
	Cell C
}

// NeighborsWithCoords enumerates the Moore neighborhood of (x, y).
// Offsets that land outside the grid are omitted, so edge cells have
// fewer than eight neighbors. Enumeration order is fixed: dx ascending
// in the outer loop, dy ascending in the inner loop.
func (g *Grid[C]) NeighborsWithCoords(x, y int) ([]Neighbor[C], error) {
	if err := g.check(x, y); err != nil {
		return nil, err
	}
	out := make([]Neighbor[C], 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
				continue
			}
			out = append(out, Neighbor[C]{X: nx, Y: ny, Cell: g.cells[ny*g.w+nx]})
		}
	}
	return out, nil
}

// Neighbors is NeighborsWithCoords with the coordinates dropped.
func (g *Grid[C]) Neighbors(x, y int) ([]C, error) {
	with, err := g.NeighborsWithCoords(x, y)
	if err != nil {
		return nil, err
	}
	out := make([]C, len(with))
	for i, n := range with {
		out[i] = n.Cell
	}
	return out, nil
}

// Crop describes a rectangular sub-region of some grid. It owns no
// storage; Sub materializes it into an independent grid.
type Crop struct {
	X, Y, W, H int
}

// Sub copies the cropped region into a new grid. A crop that extends
// outside the source fails with ErrOutOfBounds; there is no clamping.
func (g *Grid[C]) Sub(c Crop) (*Grid[C], error) {
	if c.W < 0 || c.H < 0 {
		return nil, fmt.Errorf("%w: negative crop %dx%d", ErrOutOfBounds, c.W, c.H)
	}
	out := &Grid[C]{w: c.W, h: c.H, cells: make([]C, c.W*c.H)}
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			cell, err := g.Cell(c.X+x, c.Y+y)
			if err != nil {
				return nil, err
			}
			out.cells[y*c.W+x] = cell
		}
	}
	return out, nil
}

// Each invokes fn for every cell in storage order. It is meant for
// side-effecting consumers such as renderers; use Map to transform.
func (g *Grid[C]) Each(fn func(i int, c C)) {
	for i, c := range g.cells {
		fn(i, c)
	}
}

// Rule computes the next state of the cell at (x, y) from a snapshot.
type Rule[C, R any] func(x, y int, g *Grid[C]) R

// Map derives a new grid of identical shape by applying rule at every
// coordinate. The rule always reads the input snapshot; it can never
// observe cells written during the same Map call. The result cell type
// may differ from the input cell type.
func Map[C, R any](g *Grid[C], rule Rule[C, R]) *Grid[R] {
	out := &Grid[R]{w: g.w, h: g.h, cells: make([]R, g.w*g.h)}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out.cells[y*g.w+x] = rule(x, y, g)
		}
	}
	return out
}
