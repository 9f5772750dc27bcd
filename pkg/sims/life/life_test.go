package life

import (
	"errors"
	"slices"
	"testing"

	"gridlife/pkg/core"
)

func TestParseCell(t *testing.T) {
	if c, err := ParseCell('0'); err != nil || c != Dead {
		t.Fatalf("ParseCell('0') = %v, %v", c, err)
	}
	if c, err := ParseCell('1'); err != nil || c != Alive {
		t.Fatalf("ParseCell('1') = %v, %v", c, err)
	}
	for _, r := range []rune{'2', 'x', ' ', '.'} {
		if _, err := ParseCell(r); !errors.Is(err, ErrInvalidLiteral) {
			t.Fatalf("ParseCell(%q) err = %v, want ErrInvalidLiteral", r, err)
		}
	}
}

func TestRenderCellInvertsParseCell(t *testing.T) {
	for _, r := range []rune{'0', '1'} {
		c, err := ParseCell(r)
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", r, err)
		}
		if got := RenderCell(c); got != r {
			t.Fatalf("RenderCell(ParseCell(%q)) = %q", r, got)
		}
	}
}

func TestPatternRoundTrip(t *testing.T) {
	const src = "010\n010\n010\n"

	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Render(g); got != src {
		t.Fatalf("Render(Parse(src)) = %q, want %q", got, src)
	}
}

func TestEmptyGridStaysDead(t *testing.T) {
	g, err := Parse("000\n000\n000\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	next := Next(g)
	next.Each(func(i int, c Cell) {
		if c != Dead {
			t.Fatalf("cell %d became alive on an empty board", i)
		}
	})
}

func TestLoneCellDies(t *testing.T) {
	g, err := Parse("000\n010\n000\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	next := Next(g)
	if got := Render(next); got != "000\n000\n000\n" {
		t.Fatalf("lone cell survived:\n%s", got)
	}
}

func TestBlockIsStable(t *testing.T) {
	const block = "0000\n0110\n0110\n0000\n"

	g, err := Parse(block)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i := 0; i < 5; i++ {
		g = Next(g)
		if got := Render(g); got != block {
			t.Fatalf("block changed after %d steps:\n%s", i+1, got)
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	const (
		vertical   = "010\n010\n010\n"
		horizontal = "000\n111\n000\n"
	)

	g, err := Parse(vertical)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	g = Next(g)
	if got := Render(g); got != horizontal {
		t.Fatalf("after one step:\n%s\nwant:\n%s", got, horizontal)
	}

	g = Next(g)
	if got := Render(g); got != vertical {
		t.Fatalf("after two steps:\n%s\nwant:\n%s", got, vertical)
	}
}

func TestBoardLoadAndStep(t *testing.T) {
	b := NewBoard(1, 1)
	if err := b.Load("010\n010\n010\n"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if size := b.Size(); size.W != 3 || size.H != 3 {
		t.Fatalf("board adopted %dx%d, want 3x3", size.W, size.H)
	}
	if b.Generation() != 0 || b.Population() != 3 {
		t.Fatalf("gen %d pop %d after load, want 0 and 3", b.Generation(), b.Population())
	}

	b.Step()
	if b.Generation() != 1 {
		t.Fatalf("gen = %d after one step", b.Generation())
	}
	if got := b.Snapshot(); got != "000\n111\n000\n" {
		t.Fatalf("snapshot after one step:\n%s", got)
	}

	want := []uint8{0, 0, 0, 1, 1, 1, 0, 0, 0}
	if !slices.Equal(b.Cells(), want) {
		t.Fatalf("display buffer = %v, want %v", b.Cells(), want)
	}
}

func TestBoardLoadRejectsBadPattern(t *testing.T) {
	b := NewBoard(2, 2)
	if err := b.Load("10\n1\n"); err == nil {
		t.Fatal("ragged pattern accepted")
	}
	if err := b.Load("10\n1x\n"); !errors.Is(err, ErrInvalidLiteral) {
		t.Fatalf("err = %v, want ErrInvalidLiteral", err)
	}
	if err := b.Load("   "); err == nil {
		t.Fatal("empty pattern accepted")
	}
}

func TestBoardResetDeterministic(t *testing.T) {
	a := NewBoard(16, 12)
	b := NewBoard(16, 12)
	a.Reset(99)
	b.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}

	c := NewBoard(16, 12)
	c.Reset(100)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical boards")
	}
}

func TestRegistryFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"w": "10", "h": "7"})
	if size := sim.Size(); size.W != 10 || size.H != 7 {
		t.Fatalf("factory produced %dx%d, want 10x7", size.W, size.H)
	}
	if sim.Name() != "life" {
		t.Fatalf("name = %q", sim.Name())
	}
}
