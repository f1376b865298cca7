// Package headless drives the carousel without a window, replaying a
// scripted drag at a fixed tick rate.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/iburimskiy/super-quads/internal/carousel"
)

// Config controls the no-window runner.
type Config struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Stride  float64
	Steps   int
}

// Event is one scripted pointer sample.
type Event struct {
	X     float64
	Phase carousel.Phase
}

// Report summarises a run.
type Report struct {
	Ticks       uint64
	Transitions int
	FinalIndex  int
	Poses       map[carousel.SlideID]*carousel.Pose
}

// DragScript presses at 0, drags right by stride for steps samples, releases,
// then drags back the same distance.
func DragScript(stride float64, steps int) []Event {
	out := make([]Event, 0, 2*steps+4)
	out = append(out, Event{X: 0, Phase: carousel.PhaseStart})
	x := 0.0
	for i := 0; i < steps; i++ {
		x += stride
		out = append(out, Event{X: x, Phase: carousel.PhaseMove})
	}
	out = append(out, Event{X: x, Phase: carousel.PhaseEnd})
	out = append(out, Event{X: x, Phase: carousel.PhaseStart})
	for i := 0; i < steps; i++ {
		x -= stride
		out = append(out, Event{X: x, Phase: carousel.PhaseMove})
	}
	out = append(out, Event{X: x, Phase: carousel.PhaseEnd})
	return out
}

// Run attaches plain poses to every slide and feeds the script one event per
// tick until ctx is done or cfg.Ticks ticks have run (0 = forever). Poses
// from an earlier run on the same carousel are replaced, and its listener is
// removed before Run returns.
func Run(ctx context.Context, c *carousel.Carousel, cfg Config, logf func(format string, args ...any)) (Report, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Stride == 0 {
		cfg.Stride = 6
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 60
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return Report{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	rep := Report{Poses: map[carousel.SlideID]*carousel.Pose{}}
	for _, s := range c.Slides() {
		p := &carousel.Pose{}
		if err := c.Attach(s.ID, p); err != nil {
			return rep, err
		}
		rep.Poses[s.ID] = p
	}
	c.AttachWheel(&carousel.Pose{})
	defer c.OnChange(func(prev, next int) {
		rep.Transitions++
		logf("slide %d -> %d: %s", prev, next, c.Caption())
	})()

	script := DragScript(cfg.Stride, cfg.Steps)
	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			rep.FinalIndex = c.ActiveIndex()
			return rep, ctx.Err()
		case <-t.C:
			ev := script[rep.Ticks%uint64(len(script))]
			c.OnPointerDelta(ev.X, ev.Phase)
			c.Tick(d)
			rep.Ticks++
			if cfg.Ticks > 0 && rep.Ticks >= cfg.Ticks {
				rep.FinalIndex = c.ActiveIndex()
				return rep, nil
			}
		}
	}
}
