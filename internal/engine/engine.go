// Package engine orchestrates a field transform, its point layout, and the
// logical clock into a frame loop drawn through a render surface.
package engine

import (
	"math"
	"sync"
	"time"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

// State is a snapshot of the engine's mutable frame-loop state.
type State struct {
	T         float64
	ZoomPhase float64
	FPS       float64
	Running   bool
	Points    int
	LastFrame time.Time
}

// Engine drives one field. All methods are safe for concurrent use: a
// single mutex serializes parameter updates, resizes, and the frame step,
// so mutations never interleave with a frame. The mutex is never held
// between frames.
type Engine struct {
	mu sync.Mutex

	surface Surface
	field   core.Field
	params  core.Params
	clock   core.Clock
	vp      core.Viewport
	stats   core.StatsFunc

	running   bool
	destroyed bool
	built     bool
}

// New allocates an engine, performs the first fit, and starts running
// unless the initial parameters say otherwise. stats may be nil.
func New(surface Surface, field core.Field, vp core.Viewport, params core.Params, stats core.StatsFunc) *Engine {
	params.Sanitize()
	e := &Engine{
		surface: surface,
		field:   field,
		params:  params,
		vp:      vp,
		stats:   stats,
		running: params.Running,
	}
	e.fit()
	return e
}

// Field exposes the engine's field variant.
func (e *Engine) Field() core.Field { return e.field }

// State returns a copy of the current frame-loop state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		T:         e.clock.T,
		ZoomPhase: e.clock.ZoomPhase,
		FPS:       e.clock.FPS,
		Running:   e.running && !e.destroyed,
		Points:    e.field.Count(),
	}
}

// Play resumes the frame loop. Resuming resets the clock's timestamp
// reference so no logical-time catch-up jump occurs. Idempotent.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed || e.running {
		return
	}
	e.running = true
	e.clock.Resume()
}

// Pause freezes logical time. A paused engine performs no work in Frame, so
// no stray frame can touch the surface after Pause returns. Idempotent.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
}

// Reset zeroes logical time and the breathing phase and clears any
// accumulated field state. Run state and particle layout are untouched.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.clock.Zero()
	e.field.Reset()
}

// SetParams applies a partial parameter update. A density change refits the
// point layout; the other fields take effect on the next frame. Every
// applied field echoes its clamped value through the stats callback.
func (e *Engine) SetParams(p core.Patch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	if p.Speed != nil {
		e.params.Speed = core.SanitizeSpeed(*p.Speed)
		e.emit(core.Stats{Speed: e.params.Speed})
	}
	if p.Zoom != nil {
		e.params.Zoom = core.SanitizeZoom(*p.Zoom)
		e.emit(core.Stats{Zoom: e.params.Zoom})
	}
	if p.ZoomAuto != nil {
		e.params.ZoomAuto = *p.ZoomAuto
	}
	if p.Density != nil {
		e.params.Density = core.SanitizeDensity(*p.Density)
		e.fit()
	}
}

// Params returns the current sanitized parameter set.
func (e *Engine) Params() core.Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params
}

// Resize reacts to a viewport change exactly like a density change: the
// point layout is refit against the new area.
func (e *Engine) Resize(vp core.Viewport) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.vp = vp
	e.fit()
}

// Destroy pauses the engine and turns every further call, Frame included,
// into a no-op.
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	e.destroyed = true
}

// Frame runs one frame: advance the clock, step stateful fields, transform
// every particle, and draw. The host scheduler calls it once per display
// refresh; a paused or destroyed engine returns immediately.
func (e *Engine) Frame(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed || !e.running {
		return
	}
	if !e.vp.Valid() {
		// Not yet measured; defer rendering until a real size arrives.
		return
	}
	if !e.built {
		e.fit()
	}

	amp, freq := e.field.ZoomPulse()
	dt := e.clock.Advance(now, e.params.Speed, e.field.SpeedScale())
	if e.params.ZoomAuto {
		e.clock.ZoomPhase += dt
	}
	fr := core.Frame{
		T:    e.clock.T,
		Zoom: e.clock.EffectiveZoom(e.params.Zoom, e.params.ZoomAuto, amp, freq),
		Vp:   e.vp,
	}

	if st, ok := e.field.(core.Stepper); ok {
		steps := int(math.Round(e.params.Speed))
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			st.Step(fr, dt, e.params.Speed, e.params.Density)
		}
	}
	if pre, ok := e.field.(core.Prepass); ok {
		pre.Prepare(fr)
	}

	e.surface.Fill(e.field.Background())
	n := e.field.Count()
	for i := 0; i < n; i++ {
		p, ok := e.field.At(i, fr)
		if !ok {
			continue
		}
		if p.X < 0 || p.X >= e.vp.W || p.Y < 0 || p.Y >= e.vp.H {
			continue
		}
		e.surface.FillRect(p.X, p.Y, p.Size, p.Size, p.Color)
	}

	e.emit(core.Stats{FPS: e.clock.FPS})
}

// fit recomputes the point layout against the current density and viewport
// and reports the resulting count. Callers hold the mutex.
func (e *Engine) fit() {
	count, _ := e.field.Fit(e.params.Density, e.vp)
	e.built = true
	e.emit(core.Stats{Points: count})
}

func (e *Engine) emit(s core.Stats) {
	if e.stats != nil {
		e.stats(s)
	}
}
