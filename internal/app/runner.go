package app

import (
	"fmt"
	"io"
	"time"

	"gridlife/pkg/core"
)

// Runner drives a simulation without a GUI, emitting text snapshots to
// an io.Writer. When TPS is positive the loop is paced with a fixed
// step ticker; otherwise it runs flat out.
type Runner struct {
	Sim   core.Sim
	Steps int
	TPS   int
	// Every emits a snapshot after every Nth generation. Zero means
	// only the final generation is emitted.
	Every int
}

// Run advances the simulation Steps generations, writing snapshots to w.
func (r *Runner) Run(w io.Writer) error {
	var ticker *core.FixedStep
	if r.TPS > 0 {
		ticker = core.NewFixedStep(r.TPS)
	}

	for done := 0; done < r.Steps; {
		if ticker != nil && !ticker.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		r.Sim.Step()
		done++
		if r.Every > 0 && done%r.Every == 0 && done < r.Steps {
			if err := r.emit(w); err != nil {
				return err
			}
		}
	}
	return r.emit(w)
}

func (r *Runner) emit(w io.Writer) error {
	snap, ok := r.Sim.(core.Snapshotter)
	if !ok {
		return fmt.Errorf("sim %q cannot emit text snapshots", r.Sim.Name())
	}
	if stats, ok := r.Sim.(core.StatsProvider); ok {
		if _, err := fmt.Fprintf(w, "gen %d pop %d\n", stats.Generation(), stats.Population()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, snap.Snapshot()+"\n")
	return err
}
