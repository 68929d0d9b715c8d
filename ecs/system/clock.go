package system

import (
	"time"

	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/component"
)

// maxClockDelta caps the frame delta so a stalled host (window drag,
// breakpoint) doesn't fast-forward animations on the next tick.
const maxClockDelta = 0.25

// ClockSystem measures the real frame delta into the Clock singleton.
// Tests skip this system and write the Clock entity themselves.
type ClockSystem struct {
	last time.Time
}

func NewClockSystem() *ClockSystem { return &ClockSystem{} }

func (s *ClockSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	now := time.Now()
	dt := 1.0 / 60.0
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	s.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxClockDelta {
		dt = maxClockDelta
	}

	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok {
			c.Delta = dt
			return
		}
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{Delta: dt})
}

// clockDelta returns the current frame delta, falling back to a 60 Hz
// step when no Clock singleton exists.
func clockDelta(w *ecs.World) float64 {
	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok && c.Delta > 0 {
			return c.Delta
		}
	}
	return 1.0 / 60.0
}
