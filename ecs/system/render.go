package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pressfx/common"
	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws sprites and labels with their transform scale and
// per-visual color modulation. It draws, it does not Update; the game
// calls Draw from ebiten's draw callback.
type RenderSystem struct {
	face text.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })
	for _, e := range entities {
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || sp.Image == nil {
			continue
		}

		x, y, sx, sy := worldTransform(w, e, tr)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-sp.OriginX, -sp.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(tr.Rotation)
		op.GeoM.Translate(x, y)
		applyColor(&op.ColorScale, sp.Tint)
		screen.DrawImage(sp.Image, op)
	}

	labels := w.Query(component.TransformComponent.Kind(), component.LabelComponent.Kind())
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, e := range labels {
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		lb, ok := ecs.Get(w, e, component.LabelComponent.Kind())
		if !ok || lb.Text == "" {
			continue
		}

		x, y, sx, sy := worldTransform(w, e, tr)
		op := &text.DrawOptions{}
		tw, th := text.Measure(lb.Text, r.face, 0)
		op.GeoM.Translate(-tw/2, -th/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
		applyColor(&op.ColorScale, lb.Color)
		text.Draw(screen, lb.Text, r.face, op)
	}
}

// worldTransform composes an entity's draw position and scale with its
// Parent chain: ancestor scale multiplies in, and the entity's offset
// from each ancestor contracts around that ancestor. A child sitting on
// its parent's anchor stays put while shrinking with it. Chain walks are
// depth-capped so a malformed Parent cycle can't hang the frame.
func worldTransform(w *ecs.World, e ecs.Entity, tr *component.Transform) (x, y, sx, sy float64) {
	x, y = tr.X, tr.Y
	sx, sy = drawScale(tr)

	cur := e
	for depth := 0; depth < 32; depth++ {
		p, ok := ecs.Get(w, cur, component.ParentComponent.Kind())
		if !ok {
			break
		}
		pe := ecs.Entity(p.Entity)
		ptr, ok := ecs.Get(w, pe, component.TransformComponent.Kind())
		if !ok {
			break
		}
		psx, psy := drawScale(ptr)
		x = ptr.X + (x-ptr.X)*psx
		y = ptr.Y + (y-ptr.Y)*psy
		sx *= psx
		sy *= psy
		cur = pe
	}
	return x, y, sx, sy
}

func drawScale(tr *component.Transform) (float64, float64) {
	sx := tr.Scale.X
	if sx == 0 {
		sx = 1
	}
	sy := tr.Scale.Y
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func applyColor(cs *ebiten.ColorScale, c common.Color) {
	// zero-value visuals render untinted
	if c == (common.Color{}) {
		return
	}
	cs.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}
