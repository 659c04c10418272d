package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"sandbox/internal/sims/sand"
	"sandbox/internal/term"

	"github.com/integrii/flaggy"
)

type envOptions struct {
	interactive bool
	monochrome  bool
	steps       int
	every       int
	tps         int
	strokes     []string
	floor       bool
}

func main() {
	eo, cfg := initOptions()

	sim, err := sand.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("sandterm: %v", err)
	}
	sim.Reset(cfg.Seed)

	strokes, err := sand.ParseStrokes(eo.strokes)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	for _, st := range strokes {
		sim.ApplyStroke(st)
	}

	if eo.interactive {
		if err := term.NewConsole(sim, eo.tps, cfg.Seed).Start(); err != nil {
			log.Fatalf("sandterm: %v", err)
		}
		return
	}

	runHeadless(sim, eo)
}

func runHeadless(sim *sand.Sim, eo *envOptions) {
	r := term.NewRenderer(term.DefaultGlyphs, !eo.monochrome)
	before := sim.Counts()
	start := time.Now()

	printFrame := func() {
		fmt.Println(r.Prop("Tick", "%d", sim.Ticks()))
		fmt.Println(r.Frame(sim, 0, 0))
	}
	if eo.every > 0 {
		printFrame()
	}
	for i := 0; i < eo.steps; i++ {
		sim.Step()
		if eo.every > 0 && sim.Ticks()%eo.every == 0 {
			printFrame()
		}
	}
	if eo.every <= 0 || sim.Ticks()%eo.every != 0 {
		printFrame()
	}

	after := sim.Counts()
	fmt.Println(r.Prop("Elapsed", "%v", time.Since(start).Round(time.Microsecond)))
	for _, m := range sand.Materials()[1:] {
		fmt.Println(r.Prop(m.String(), "%d -> %d", before.Of(m), after.Of(m)))
	}
	if before != after {
		log.Fatalf("sandterm: material counts changed during the run")
	}
}

func initOptions() (*envOptions, sand.Config) {
	cfg := sand.DefaultConfig()
	cfg.Width = 80
	cfg.Height = 40
	eo := &envOptions{steps: 100, every: 0, tps: 30, floor: true}

	flaggy.SetName("sandterm")
	flaggy.SetDescription("Falling-sand sandbox in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Int(&cfg.Width, "x", "width", "Width of the sandbox")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the sandbox")
	flaggy.Int64(&cfg.Seed, "", "seed", "Seed for the tick engine's coin flips")
	flaggy.Bool(&eo.floor, "", "floor", "Lay a wall floor along the bottom row")
	flaggy.Int(&eo.steps, "s", "steps", "Ticks to run in headless mode")
	flaggy.Int(&eo.every, "f", "frames", "Print a frame every N ticks (0 prints only the last)")
	flaggy.Int(&eo.tps, "t", "tps", "Frames per second in interactive mode")
	flaggy.StringSlice(&eo.strokes, "p", "paint", "Stroke to paint before ticking, material@x,y[:radius] (repeatable)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive terminal sandbox")
	flaggy.Bool(&eo.monochrome, "m", "monochrome", "Disable ANSI colours in headless output")

	flaggy.Parse()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive, got " + strconv.Itoa(cfg.Width) + "x" + strconv.Itoa(cfg.Height))
	}
	if eo.steps < 0 {
		eo.steps = 0
	}
	cfg.Floor = eo.floor
	return eo, cfg
}
