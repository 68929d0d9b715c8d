package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/component"
)

// PointerInputSystem translates raw mouse state into pointer request
// components. Pointer-down goes to the topmost enabled hitbox under the
// cursor; pointer-up always goes back to the entity that was pressed,
// wherever the cursor ended up, which is what lets drag-off-and-release
// still play the punch animation. A press and release both inside the
// same hitbox additionally fires a ClickRequest for button entities.
type PointerInputSystem struct {
	pressed ecs.Entity
}

func NewPointerInputSystem() *PointerInputSystem { return &PointerInputSystem{} }

func (s *PointerInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e, ok := HitTest(w, x, y); ok {
			s.pressed = e
			_ = ecs.Add(w, e, component.PointerDownRequestComponent.Kind(), &component.PointerDownRequest{})
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && s.pressed.Valid() {
		e := s.pressed
		s.pressed = 0
		if !ecs.IsAlive(w, e) {
			return
		}
		_ = ecs.Add(w, e, component.PointerUpRequestComponent.Kind(), &component.PointerUpRequest{})

		if ecs.Has(w, e, component.ButtonComponent.Kind()) &&
			!ecs.Has(w, e, component.DisabledComponent.Kind()) &&
			hitboxContains(w, e, x, y) {
			_ = ecs.Add(w, e, component.ClickRequestComponent.Kind(), &component.ClickRequest{})
		}
	}
}

// HitTest returns the enabled entity whose hitbox contains the point.
// When hitboxes overlap the one added last wins, which matches draw
// order for scenes built front-to-back.
func HitTest(w *ecs.World, x, y float64) (ecs.Entity, bool) {
	var hit ecs.Entity
	found := false
	ecs.ForEach2(w, component.HitboxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hb *component.Hitbox, tr *component.Transform) {
		if hb == nil || tr == nil {
			return
		}
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			return
		}
		if boundsFor(hb, tr).ContainsVect(cp.Vector{X: x, Y: y}) {
			hit = e
			found = true
		}
	})
	return hit, found
}

func hitboxContains(w *ecs.World, e ecs.Entity, x, y float64) bool {
	hb, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
	if !ok {
		return false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	return boundsFor(hb, tr).ContainsVect(cp.Vector{X: x, Y: y})
}

// boundsFor builds the hitbox rectangle in screen space. Hitboxes stay at
// resting geometry on purpose: the pressed shrink is cosmetic and must
// not make the widget harder to keep the pointer on.
func boundsFor(hb *component.Hitbox, tr *component.Transform) cp.BB {
	l := tr.X + hb.X
	t := tr.Y + hb.Y
	return cp.NewBB(l, t, l+hb.W, t+hb.H)
}
