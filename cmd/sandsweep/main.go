package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"sandbox/internal/sims/sand"
)

type scenario struct {
	name    string
	strokes []sand.Stroke
}

type job struct {
	scenario scenario
	seed     int64
}

type scenarioResult struct {
	scenario string
	seed     int64
	res      sand.SettleResult
	err      error
}

type kvList map[string]string

func (kv kvList) String() string {
	parts := make([]string, 0, len(kv))
	for k, v := range kv {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (kv kvList) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	return nil
}

func main() {
	steps := flag.Int("steps", 2000, "maximum ticks per run before giving up on settling")
	seeds := flag.Int("seeds", 16, "number of consecutive seeds to sweep per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "slowest runs to list")
	overrides := kvList{}
	flag.Var(overrides, "set", "sand config override key=value (repeatable)")
	flag.Parse()

	base := sand.FromMap(overrides)
	scenarios := buildScenarios(base)

	var jobs []job
	for _, sc := range scenarios {
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, job{scenario: sc, seed: base.Seed + int64(i)})
		}
	}

	fmt.Printf("Sweeping %d runs over %d scenarios (%dx%d, %d workers, %d max steps)\n",
		len(jobs), len(scenarios), base.Width, base.Height, *workers, *steps)

	jobCh := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				cfg := base
				cfg.Seed = j.seed
				res, err := sand.SettleRun(cfg, j.scenario.strokes, *steps)
				results <- scenarioResult{scenario: j.scenario.name, seed: j.seed, res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			jobCh <- j
		}
		close(jobCh)
	}()

	start := time.Now()
	var all []scenarioResult
	failures := 0
	for r := range results {
		if r.err != nil {
			log.Fatalf("sandsweep: %s seed %d: %v", r.scenario, r.seed, r.err)
		}
		if !r.res.Conserved() {
			failures++
			fmt.Printf("Conservation broken in %s seed %d: before=%v after=%v\n",
				r.scenario, r.res.Seed, r.res.Before, r.res.After)
		}
		all = append(all, r)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].res.Steps != all[j].res.Steps {
			return all[i].res.Steps > all[j].res.Steps
		}
		if all[i].scenario != all[j].scenario {
			return all[i].scenario < all[j].scenario
		}
		return all[i].res.Seed < all[j].res.Seed
	})

	fmt.Printf("\nPer scenario (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, sc := range scenarios {
		settled, total, worst := 0, 0, 0
		for _, r := range all {
			if r.scenario != sc.name {
				continue
			}
			total++
			if r.res.Settled {
				settled++
			}
			if r.res.Steps > worst {
				worst = r.res.Steps
			}
		}
		fmt.Printf("  %-10s settled %d/%d, slowest %d ticks\n", sc.name, settled, total, worst)
	}

	fmt.Printf("\nSlowest %d runs:\n", *top)
	for i := 0; i < len(all) && i < *top; i++ {
		r := all[i]
		fmt.Printf("%2d) %-10s seed=%d steps=%d settled=%t sand=%d water=%d\n",
			i+1, r.scenario, r.res.Seed, r.res.Steps, r.res.Settled,
			r.res.After.Of(sand.Sand), r.res.After.Of(sand.Water))
	}

	if failures > 0 {
		log.Fatalf("sandsweep: %d runs lost or gained material", failures)
	}
}

// buildScenarios lays out pours relative to the grid so they scale with -set w/h.
func buildScenarios(cfg sand.Config) []scenario {
	w, h := cfg.Width, cfg.Height
	r := cfg.BrushRadius
	top := h / 4
	return []scenario{
		{name: "sand-pile", strokes: []sand.Stroke{
			{Material: sand.Sand, X: w / 2, Y: top, Radius: r},
		}},
		{name: "water-pool", strokes: []sand.Stroke{
			{Material: sand.Wall, X: w/2 - 2*r, Y: h - 1 - r, Radius: 1},
			{Material: sand.Wall, X: w/2 + 2*r, Y: h - 1 - r, Radius: 1},
			{Material: sand.Water, X: w / 2, Y: top, Radius: r},
		}},
		{name: "sink", strokes: []sand.Stroke{
			{Material: sand.Water, X: w / 2, Y: h / 2, Radius: r},
			{Material: sand.Sand, X: w / 2, Y: top - r, Radius: r},
		}},
		{name: "mixed", strokes: []sand.Stroke{
			{Material: sand.Sand, X: w / 3, Y: top, Radius: r},
			{Material: sand.Water, X: 2 * w / 3, Y: top, Radius: r},
			{Material: sand.Wall, X: w / 2, Y: h / 2, Radius: r / 2},
		}},
	}
}
