// field-bench runs a field headless for a fixed number of frames at a
// synthetic timestep, records the engine's stats stream, and reports a
// frame-rate summary plus an optional per-frame CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
	"github.com/mrhappynice/mhn-garbage-pages/internal/engine"
	"github.com/mrhappynice/mhn-garbage-pages/internal/telemetry"

	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/fire"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/orbit"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/swirl"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/tube"
	_ "github.com/mrhappynice/mhn-garbage-pages/internal/fields/vortex"
)

func main() {
	field := flag.String("field", "swirl", "field to run")
	frames := flag.Int("frames", 600, "frames to simulate")
	width := flag.Float64("w", 1024, "viewport width in CSS pixels")
	height := flag.Float64("h", 640, "viewport height in CSS pixels")
	density := flag.Float64("density", 0.02, "particle density")
	speed := flag.Float64("speed", 1.0, "time-scale multiplier")
	zoom := flag.Float64("zoom", 1.0, "display scale multiplier")
	zoomAuto := flag.Bool("zoom-auto", false, "enable breathing zoom")
	seed := flag.Int64("seed", 42, "layout seed")
	csvPath := flag.String("csv", "", "write per-frame stats CSV to this path")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	factory, ok := core.Fields()[*field]
	if !ok {
		slog.Error("unknown field", "field", *field)
		os.Exit(1)
	}

	rec := telemetry.NewRecorder()
	surface := &engine.NullSurface{}
	vp := core.Viewport{W: *width, H: *height, DPR: 1}
	params := core.Params{
		Speed:    *speed,
		Density:  *density,
		Zoom:     *zoom,
		ZoomAuto: *zoomAuto,
		Running:  true,
	}
	eng := engine.New(surface, factory(map[string]string{"seed": strconv.FormatInt(*seed, 10)}), vp, params, rec.Observe)
	defer eng.Destroy()

	const step = time.Second / 60
	now := time.Unix(0, 0)
	start := time.Now()
	for i := 0; i < *frames; i++ {
		now = now.Add(step)
		eng.Frame(now)
	}
	elapsed := time.Since(start)

	sum := rec.Summarize()
	slog.Info("bench complete",
		"field", *field,
		"frames", sum.Frames,
		"points", eng.State().Points,
		"mean_fps", fmt.Sprintf("%.1f", sum.MeanFPS),
		"p10_fps", fmt.Sprintf("%.1f", sum.P10FPS),
		"p50_fps", fmt.Sprintf("%.1f", sum.P50FPS),
		"p90_fps", fmt.Sprintf("%.1f", sum.P90FPS),
		"wall", elapsed.String(),
		"frames_per_sec_wall", fmt.Sprintf("%.0f", float64(*frames)/elapsed.Seconds()),
	)

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			slog.Error("create csv", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := rec.WriteCSV(f); err != nil {
			slog.Error("write csv", "error", err)
			os.Exit(1)
		}
		slog.Info("csv written", "path", *csvPath)
	}
}
