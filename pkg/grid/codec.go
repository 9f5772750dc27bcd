package grid

import (
	"fmt"
	"strings"
)

// FromRows builds a grid from a rectangular nested sequence, converting
// each raw element with conv. Every row must have the same length as the
// first; ragged input fails with ErrShapeMismatch. Zero rows yield a
// well-defined empty grid.
func FromRows[E, C any](rows [][]E, conv func(E) (C, error)) (*Grid[C], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := &Grid[C]{w: w, h: h, cells: make([]C, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, y, len(row), w)
		}
		for x, raw := range row {
			cell, err := conv(raw)
			if err != nil {
				return nil, err
			}
			g.cells[y*w+x] = cell
		}
	}
	return g, nil
}

// FromText builds a grid from a plain-text snapshot: one line per row,
// one character per cell. Surrounding whitespace (notably a trailing
// newline) is trimmed before splitting.
func FromText[C any](text string, conv func(rune) (C, error)) (*Grid[C], error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FromRows(nil, conv)
	}
	lines := strings.Split(trimmed, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return FromRows(rows, conv)
}

// Rows regroups the grid into nested row-major sequences, converting
// each cell with conv. It is the inverse of FromRows.
func Rows[C, E any](g *Grid[C], conv func(C) E) [][]E {
	out := make([][]E, g.h)
	for y := 0; y < g.h; y++ {
		row := make([]E, g.w)
		for x := 0; x < g.w; x++ {
			row[x] = conv(g.cells[y*g.w+x])
		}
		out[y] = row
	}
	return out
}

// Text renders the grid as plain text, one line per row with a trailing
// newline on every row including the last. It is the inverse of FromText.
func Text[C any](g *Grid[C], conv func(C) rune) string {
	var b strings.Builder
	b.Grow(g.h * (g.w + 1))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			b.WriteRune(conv(g.cells[y*g.w+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
