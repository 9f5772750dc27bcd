package briansbrain

import (
	"slices"
	"testing"
)

func TestFiringCellDecays(t *testing.T) {
	b := New(1, 1)
	if err := b.Load("000\n010\n000\n"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	b.Step()
	if got := b.Snapshot(); got != "000\n020\n000\n" {
		t.Fatalf("after one step:\n%s", got)
	}
	b.Step()
	if got := b.Snapshot(); got != "000\n000\n000\n" {
		t.Fatalf("after two steps:\n%s", got)
	}
}

func TestBirthOnExactlyTwoFiringNeighbors(t *testing.T) {
	b := New(1, 1)
	if err := b.Load("101\n000\n000\n"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// The two firing corners decay; (1,0) and (1,1) each see exactly
	// two firing neighbors and ignite.
	b.Step()
	if got := b.Snapshot(); got != "212\n010\n000\n" {
		t.Fatalf("after one step:\n%s", got)
	}
}

func TestLoadRejectsBadLiterals(t *testing.T) {
	b := New(1, 1)
	if err := b.Load("013\n000\n000\n"); err == nil {
		t.Fatal("literal outside {0,1,2} accepted")
	}
	if err := b.Load("01\n0\n"); err == nil {
		t.Fatal("ragged pattern accepted")
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 12)
	b := New(16, 12)
	a.Reset(5)
	b.Reset(5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
}
