//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"marching-squares/internal/app"
	"marching-squares/internal/canvas"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	canvasCfg, err := cfg.Canvas()
	if err != nil {
		log.Fatal(err)
	}

	state := canvas.New(canvasCfg)
	game := app.New(state, cfg.HUDWidth, canvasCfg.Seed)
	w, h := game.Size()

	ebiten.SetWindowTitle("Marching Squares")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
