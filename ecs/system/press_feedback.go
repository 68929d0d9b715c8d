package system

import (
	"math"

	"github.com/milk9111/pressfx/common"
	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/component"
)

// PressFeedbackSystem drives the press/release feedback effect: on
// pointer-down the target transform shrinks and every bound visual
// darkens; on pointer-up the transform punches past resting scale while
// colors fade back to their bind-time originals.
//
// All animation is advanced here, once per world update, by the Clock
// singleton's frame delta. There are no goroutines and no timers; a
// session is just phase + elapsed on the component.
type PressFeedbackSystem struct{}

func NewPressFeedbackSystem() *PressFeedbackSystem { return &PressFeedbackSystem{} }

func (s *PressFeedbackSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	dt := clockDelta(w)

	ecs.ForEach(w, component.PressFeedbackComponent.Kind(), func(e ecs.Entity, fb *component.PressFeedback) {
		if fb == nil {
			return
		}

		if !fb.Bound {
			bindFeedback(w, e, fb)
		}

		if ecs.Remove(w, e, component.RebindRequestComponent.Kind()) {
			bindFeedback(w, e, fb)
		}

		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			// stale pointer events must not fire on re-enable
			ecs.Remove(w, e, component.PointerDownRequestComponent.Kind())
			ecs.Remove(w, e, component.PointerUpRequestComponent.Kind())
			deactivateFeedback(w, e, fb)
			return
		}
		fb.Deactivated = false

		if ecs.Remove(w, e, component.PointerDownRequestComponent.Kind()) {
			startPress(w, e, fb)
		}
		if ecs.Remove(w, e, component.PointerUpRequestComponent.Kind()) {
			startRelease(w, e, fb)
		}

		advanceFeedback(w, e, fb, dt)
	})
}

// feedbackDefaults fills unset tuning values in place. A fully zero
// config takes the stock tuning; zero PunchStrength next to configured
// fields means a punch-free release and is kept.
func feedbackDefaults(fb *component.PressFeedback) {
	unconfigured := fb.ScaleAmount == 0 && fb.Duration == 0 &&
		fb.PunchStrength == 0 && fb.PunchDuration == 0 &&
		fb.PressedColorMultiplier == 0
	if fb.ScaleAmount <= 0 {
		fb.ScaleAmount = 0.95
	}
	if fb.Duration <= 0 {
		fb.Duration = 0.1
	}
	if unconfigured {
		fb.PunchStrength = 0.08
	}
	if fb.PunchDuration <= 0 {
		fb.PunchDuration = 0.15
	}
	if fb.PressedColorMultiplier <= 0 || fb.PressedColorMultiplier > 1 {
		fb.PressedColorMultiplier = 0.85
	}
}

// feedbackTarget resolves the transform the effect scales: the explicit
// override when set, the owning entity otherwise. Returns false when the
// target is missing or destroyed, in which case pointer handlers no-op.
func feedbackTarget(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) (*component.Transform, bool) {
	te := e
	if fb.Target != 0 {
		te = ecs.Entity(fb.Target)
	}
	if !ecs.IsAlive(w, te) {
		return nil, false
	}
	return ecs.Get(w, te, component.TransformComponent.Kind())
}

// subtree returns root followed by every Parent-edge descendant,
// breadth-first. Disabled entities are included; binds see the whole
// hierarchy.
func subtree(w *ecs.World, root ecs.Entity) []ecs.Entity {
	out := []ecs.Entity{root}
	seen := map[ecs.Entity]bool{root: true}
	for i := 0; i < len(out); i++ {
		cur := out[i]
		ecs.ForEach(w, component.ParentComponent.Kind(), func(e ecs.Entity, p *component.Parent) {
			if p == nil || ecs.Entity(p.Entity) != cur || seen[e] {
				return
			}
			seen[e] = true
			out = append(out, e)
		})
	}
	return out
}

// forEachBound visits every bound visual handle, images then labels,
// each handle once.
func forEachBound(fb *component.PressFeedback, fn func(h uint64)) {
	seen := make(map[uint64]bool, len(fb.BoundImages)+len(fb.BoundLabels))
	for _, h := range fb.BoundImages {
		if !seen[h] {
			seen[h] = true
			fn(h)
		}
	}
	for _, h := range fb.BoundLabels {
		if !seen[h] {
			seen[h] = true
			fn(h)
		}
	}
}

func containsHandle(list []uint64, e ecs.Entity) bool {
	for _, h := range list {
		if ecs.Entity(h) == e {
			return true
		}
	}
	return false
}

// bindFeedback discovers the visual subtree, adds the explicit includes,
// applies the exclude lists, records the resting scale, and rebuilds the
// original-color cache.
// Repeating it against an unchanged subtree yields identical sets.
func bindFeedback(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) {
	feedbackDefaults(fb)

	if tr, ok := feedbackTarget(w, e, fb); ok {
		if tr.Scale == (common.Vec3{}) {
			tr.Scale = common.Vec3All(1)
		}
		// resting scale is a once-per-lifetime baseline; a rebind while a
		// session is in flight must not adopt the animated scale
		if !fb.Bound || fb.Phase == component.FeedbackIdle {
			fb.RestingScale = tr.Scale
		}
	}

	fb.BoundImages = fb.BoundImages[:0]
	fb.BoundLabels = fb.BoundLabels[:0]
	seenImage := map[uint64]bool{}
	seenLabel := map[uint64]bool{}
	visit := func(v ecs.Entity) {
		if !ecs.IsAlive(w, v) {
			return
		}
		h := uint64(v)
		if ecs.Has(w, v, component.SpriteComponent.Kind()) &&
			!seenImage[h] && !containsHandle(fb.ExcludeImages, v) {
			seenImage[h] = true
			fb.BoundImages = append(fb.BoundImages, h)
		}
		if ecs.Has(w, v, component.LabelComponent.Kind()) &&
			!seenLabel[h] && !containsHandle(fb.ExcludeLabels, v) {
			seenLabel[h] = true
			fb.BoundLabels = append(fb.BoundLabels, h)
		}
	}
	for _, v := range subtree(w, e) {
		visit(v)
	}
	// explicit includes follow the subtree; excludes win either way
	for _, h := range fb.IncludeImages {
		visit(ecs.Entity(h))
	}
	for _, h := range fb.IncludeLabels {
		visit(ecs.Entity(h))
	}

	captureOriginals(w, fb)
	fb.Bound = true
}

// captureOriginals rebuilds the original-color cache from the visuals'
// current colors. First write wins within one pass; entries for entities
// no longer bound are dropped wholesale by the rebuild.
func captureOriginals(w *ecs.World, fb *component.PressFeedback) {
	fb.OriginalColors = make(map[uint64]common.Color, len(fb.BoundImages)+len(fb.BoundLabels))
	record := func(h uint64, c common.Color) {
		if _, ok := fb.OriginalColors[h]; !ok {
			fb.OriginalColors[h] = c
		}
	}
	for _, h := range fb.BoundImages {
		if sp, ok := ecs.Get(w, ecs.Entity(h), component.SpriteComponent.Kind()); ok {
			record(h, sp.Tint)
		}
	}
	for _, h := range fb.BoundLabels {
		if lb, ok := ecs.Get(w, ecs.Entity(h), component.LabelComponent.Kind()); ok {
			record(h, lb.Color)
		}
	}
}

// restoreOriginals writes every cached original color back to its visual,
// silently skipping entities destroyed since capture.
func restoreOriginals(w *ecs.World, fb *component.PressFeedback) {
	for h, c := range fb.OriginalColors {
		writeBoundColor(w, fb, h, c)
	}
}

// writeBoundColor writes c to the visual classes h is bound under, so an
// entity excluded as an image but bound as a label keeps its sprite tint.
func writeBoundColor(w *ecs.World, fb *component.PressFeedback, h uint64, c common.Color) {
	v := ecs.Entity(h)
	if !ecs.IsAlive(w, v) {
		return
	}
	if containsHandle(fb.BoundImages, v) {
		if sp, ok := ecs.Get(w, v, component.SpriteComponent.Kind()); ok {
			sp.Tint = c
		}
	}
	if containsHandle(fb.BoundLabels, v) {
		if lb, ok := ecs.Get(w, v, component.LabelComponent.Kind()); ok {
			lb.Color = c
		}
	}
}

// snapshotStart records the session-start scale and colors. These are the
// interpolation sources; when a session interrupts another mid-flight
// they hold the interrupted values, not the originals.
func snapshotStart(w *ecs.World, fb *component.PressFeedback, tr *component.Transform) {
	fb.StartScale = tr.Scale
	fb.StartColors = make(map[uint64]common.Color, len(fb.OriginalColors))
	for _, h := range fb.BoundImages {
		if sp, ok := ecs.Get(w, ecs.Entity(h), component.SpriteComponent.Kind()); ok {
			fb.StartColors[h] = sp.Tint
		}
	}
	for _, h := range fb.BoundLabels {
		if lb, ok := ecs.Get(w, ecs.Entity(h), component.LabelComponent.Kind()); ok {
			if _, dup := fb.StartColors[h]; !dup {
				fb.StartColors[h] = lb.Color
			}
		}
	}
}

// startPress begins the press animation, cancelling any running session
// in place. No-op when the target transform is gone.
func startPress(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) {
	tr, ok := feedbackTarget(w, e, fb)
	if !ok || !fb.Bound {
		return
	}
	snapshotStart(w, fb, tr)
	fb.Phase = component.FeedbackPressing
	fb.Elapsed = 0
}

// startRelease begins the punch-back animation, cancelling any running
// session in place.
func startRelease(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) {
	tr, ok := feedbackTarget(w, e, fb)
	if !ok || !fb.Bound {
		return
	}
	snapshotStart(w, fb, tr)
	fb.Phase = component.FeedbackReleasing
	fb.Elapsed = 0
}

func advanceFeedback(w *ecs.World, e ecs.Entity, fb *component.PressFeedback, dt float64) {
	switch fb.Phase {
	case component.FeedbackPressing:
		fb.Elapsed += dt
		t := common.Clamp01(fb.Elapsed / fb.Duration)
		if t >= 1 {
			finishPress(w, e, fb)
			return
		}
		// ease-out sine: fast start, slow finish
		eased := math.Sin(t * math.Pi / 2)
		if tr, ok := feedbackTarget(w, e, fb); ok {
			tr.Scale = common.LerpVec3(fb.StartScale, fb.RestingScale.Mul(fb.ScaleAmount), eased)
		}
		forEachBound(fb, func(h uint64) {
			start, ok := fb.StartColors[h]
			orig, ok2 := fb.OriginalColors[h]
			if !ok || !ok2 {
				return
			}
			writeBoundColor(w, fb, h, common.LerpRGB(start, orig.MulRGB(fb.PressedColorMultiplier), eased))
		})

	case component.FeedbackReleasing:
		fb.Elapsed += dt
		t := common.Clamp01(fb.Elapsed / fb.PunchDuration)
		if t >= 1 {
			finishRelease(w, e, fb)
			return
		}
		// one full oscillation whose amplitude decays linearly to zero
		punch := math.Sin(t*2*math.Pi) * (1 - t) * fb.PunchStrength
		if tr, ok := feedbackTarget(w, e, fb); ok {
			tr.Scale = fb.RestingScale.Mul(1 + punch)
		}
		forEachBound(fb, func(h uint64) {
			start, ok := fb.StartColors[h]
			orig, ok2 := fb.OriginalColors[h]
			if !ok || !ok2 {
				return
			}
			writeBoundColor(w, fb, h, common.LerpRGB(start, orig, t))
		})
	}
}

// finishPress snaps scale and colors exactly to their pressed targets so
// no interpolation drift survives, then holds until pointer-up.
func finishPress(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) {
	if tr, ok := feedbackTarget(w, e, fb); ok {
		tr.Scale = fb.RestingScale.Mul(fb.ScaleAmount)
	}
	forEachBound(fb, func(h uint64) {
		start, ok := fb.StartColors[h]
		orig, ok2 := fb.OriginalColors[h]
		if !ok || !ok2 {
			return
		}
		end := orig.MulRGB(fb.PressedColorMultiplier)
		end.A = start.A
		writeBoundColor(w, fb, h, end)
	})
	fb.Phase = component.FeedbackPressed
	fb.Elapsed = 0
}

// finishRelease snaps scale to resting and force-restores every color
// from the original cache, guaranteeing the exact baseline regardless of
// accumulated float drift.
func finishRelease(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) {
	if tr, ok := feedbackTarget(w, e, fb); ok {
		tr.Scale = fb.RestingScale
	}
	restoreOriginals(w, fb)
	fb.Phase = component.FeedbackIdle
	fb.Elapsed = 0
}

// deactivateFeedback cancels any running session and forces the target
// and all visuals back to their resting state, so a hidden or disabled
// widget never stays half-animated. Runs once per disable edge.
func deactivateFeedback(w *ecs.World, e ecs.Entity, fb *component.PressFeedback) {
	if fb.Deactivated {
		return
	}
	fb.Deactivated = true
	fb.Phase = component.FeedbackIdle
	fb.Elapsed = 0
	if tr, ok := feedbackTarget(w, e, fb); ok {
		tr.Scale = fb.RestingScale
	}
	restoreOriginals(w, fb)
}
