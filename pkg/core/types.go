package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement
// for the presentation layer: identify itself, report its shape, reseed,
// advance a generation, and expose a byte-per-cell display buffer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PatternLoader is implemented by sims that can ingest a plain-text
// pattern snapshot instead of a random reset.
type PatternLoader interface {
	Load(text string) error
}

// StatsProvider is implemented by sims that track generation and
// population counts for the HUD.
type StatsProvider interface {
	Generation() int
	Population() int
}

// Snapshotter is implemented by sims that can emit their current state
// as a plain-text snapshot, one line per row.
type Snapshotter interface {
	Snapshot() string
}

// PaletteProvider is implemented by sims whose cell values index into a
// color palette instead of a plain on/off pair.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
