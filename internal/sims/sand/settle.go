package sand

import "slices"

// SettleResult summarises a headless run from a set of strokes to rest.
type SettleResult struct {
	Seed    int64
	Steps   int
	Settled bool
	Before  Counts
	After   Counts
}

// Conserved reports whether the run kept every material count unchanged.
func (r SettleResult) Conserved() bool { return r.Before == r.After }

// SettleRun resets a sim built from cfg, applies strokes and ticks until a
// tick leaves the grid unchanged or maxSteps ticks have run.
func SettleRun(cfg Config, strokes []Stroke, maxSteps int) (SettleResult, error) {
	sim, err := NewWithConfig(cfg)
	if err != nil {
		return SettleResult{}, err
	}
	sim.Reset(cfg.Seed)
	for _, st := range strokes {
		sim.ApplyStroke(st)
	}

	res := SettleResult{Seed: cfg.Seed, Before: sim.Counts()}
	prev := make([]uint8, len(sim.Cells()))
	for res.Steps < maxSteps {
		copy(prev, sim.Cells())
		sim.Step()
		res.Steps++
		if slices.Equal(prev, sim.Cells()) {
			res.Settled = true
			break
		}
	}
	res.After = sim.Counts()
	return res, nil
}
