package app

import (
	"strings"
	"testing"

	"gridlife/pkg/sims/life"
)

func TestRunnerEmitsSnapshots(t *testing.T) {
	board := life.NewBoard(1, 1)
	if err := board.Load("010\n010\n010\n"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var out strings.Builder
	runner := &Runner{Sim: board, Steps: 2, Every: 1}
	if err := runner.Run(&out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "gen 1 pop 3") || !strings.Contains(got, "gen 2 pop 3") {
		t.Fatalf("missing generation headers:\n%s", got)
	}
	if !strings.Contains(got, "000\n111\n000\n") {
		t.Fatalf("missing intermediate generation:\n%s", got)
	}
	// The blinker has period two, so the final snapshot matches the input.
	if !strings.HasSuffix(got, "010\n010\n010\n\n") {
		t.Fatalf("unexpected final snapshot:\n%s", got)
	}
}

func TestRunnerFinalOnly(t *testing.T) {
	board := life.NewBoard(1, 1)
	if err := board.Load("010\n010\n010\n"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var out strings.Builder
	runner := &Runner{Sim: board, Steps: 3}
	if err := runner.Run(&out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if strings.Count(got, "gen ") != 1 {
		t.Fatalf("expected a single snapshot:\n%s", got)
	}
	if !strings.Contains(got, "gen 3 pop 3") {
		t.Fatalf("wrong final generation:\n%s", got)
	}
	if !strings.Contains(got, "000\n111\n000\n") {
		t.Fatalf("wrong final state:\n%s", got)
	}
}
