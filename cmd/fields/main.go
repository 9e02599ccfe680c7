//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mrhappynice/mhn-garbage-pages/internal/app"
	"github.com/mrhappynice/mhn-garbage-pages/internal/config"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/fire"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/orbit"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/swirl"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/tube"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/vortex"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (empty = embedded defaults)")
	field := flag.String("field", "", "field to start on (default from config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	start := cfg.Field
	if *field != "" {
		start = *field
	}

	slog.Info("starting", "field", start, "width", cfg.Screen.Width, "height", cfg.Screen.Height)

	ebiten.SetWindowTitle("garbage pages: " + start)
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Screen.TargetFPS)

	game := app.New(cfg, start)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
