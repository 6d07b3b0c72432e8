package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"marching-squares/internal/app"
	"marching-squares/internal/canvas"
)

func main() {
	steps := flag.Int("steps", 9, "number of thresholds to sweep")
	frames := flag.Int("frames", 120, "frames of painting along the scripted stroke")
	dt := flag.Float64("dt", 1.0/60, "seconds per painting frame")
	scatter := flag.Int("scatter", 0, "full-strength stamps to scatter before the stroke")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	canvasCfg, err := cfg.Canvas()
	if err != nil {
		log.Fatal(err)
	}
	state := canvas.New(canvasCfg)
	size := state.Size()

	if *scatter > 0 {
		state.Scatter(canvasCfg.Seed, *scatter)
	}
	state.PaintStroke(size.W/5, size.H/5, 4*size.W/5, 4*size.H/5, *frames, *dt)

	fmt.Printf("Field %dx%d (tile %.0f), radius %.1f, %d frames at %.4fs\n",
		size.W, size.H, state.Tile(), state.Radius(), *frames, *dt)
	fmt.Printf("%-10s %10s %12s %12s\n", "threshold", "segments", "mean shift", "max shift")
	for _, r := range state.ThresholdSweep(*steps) {
		fmt.Printf("%-10.3f %10d %12.3f %12.3f\n", r.Threshold, r.Segments, r.MeanShift, r.MaxShift)
	}
	fmt.Printf("Tessellation passes: %d\n", state.Rebuilds())
}
