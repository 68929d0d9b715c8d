package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pressfx/common"
	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/component"
	"github.com/milk9111/pressfx/prefabs"
)

const badgeSize = 14

// MenuButton tracks the entities built for one ButtonSpec.
type MenuButton struct {
	Root  ecs.Entity
	Label ecs.Entity
	Badge ecs.Entity // zero when the button has no badge

	spec prefabs.ButtonSpec
}

// Menu is the built demo scene: one root entity per button plus label and
// badge children hanging off it through Parent edges.
type Menu struct {
	Buttons []MenuButton
}

// BuildMenu creates the button entities described by the menu spec. Each
// button root carries the background sprite, hitbox, click action, and
// the press-feedback component; the label and optional badge are child
// entities so the feedback binder discovers them through the hierarchy.
func BuildMenu(w *ecs.World, theme *prefabs.ThemeSpec, spec *prefabs.MenuSpec) *Menu {
	m := &Menu{}
	if w == nil || spec == nil {
		return m
	}

	for _, bs := range spec.Buttons {
		m.Buttons = append(m.Buttons, buildButton(w, theme, bs))
	}
	return m
}

func buildButton(w *ecs.World, theme *prefabs.ThemeSpec, bs prefabs.ButtonSpec) MenuButton {
	btnColor := common.Color{R: 0.29, G: 0.44, B: 0.65, A: 1}
	if theme != nil && theme.Button != nil {
		btnColor = theme.Button.Color
	}
	if bs.Color != nil {
		btnColor = bs.Color.Color
	}
	labelColor := common.White
	if theme != nil && theme.Label != nil {
		labelColor = theme.Label.Color
	}

	root := ecs.CreateEntity(w)
	_ = ecs.Add(w, root, component.TransformComponent.Kind(), &component.Transform{
		X:     bs.X,
		Y:     bs.Y,
		Scale: common.Vec3All(1),
	})
	_ = ecs.Add(w, root, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   solidImage(int(bs.Width), int(bs.Height)),
		OriginX: bs.Width / 2,
		OriginY: bs.Height / 2,
		Tint:    btnColor,
	})
	_ = ecs.Add(w, root, component.HitboxComponent.Kind(), &component.Hitbox{
		X: -bs.Width / 2,
		Y: -bs.Height / 2,
		W: bs.Width,
		H: bs.Height,
	})
	if bs.Action != "" {
		_ = ecs.Add(w, root, component.ButtonComponent.Kind(), &component.Button{
			Action: bs.Action,
			Script: bs.Script,
		})
	}

	label := ecs.CreateEntity(w)
	_ = ecs.Add(w, label, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(root)})
	_ = ecs.Add(w, label, component.TransformComponent.Kind(), &component.Transform{
		X:     bs.X,
		Y:     bs.Y,
		Scale: common.Vec3All(1),
	})
	_ = ecs.Add(w, label, component.LabelComponent.Kind(), &component.Label{
		Text:  bs.Label,
		Color: labelColor,
	})

	var badge ecs.Entity
	if bs.Badge {
		badgeColor := common.Color{R: 0.85, G: 0.7, B: 0.23, A: 1}
		if bs.BadgeColor != nil {
			badgeColor = bs.BadgeColor.Color
		}
		badge = ecs.CreateEntity(w)
		_ = ecs.Add(w, badge, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(root)})
		_ = ecs.Add(w, badge, component.TransformComponent.Kind(), &component.Transform{
			X:     bs.X + bs.Width/2 - badgeSize,
			Y:     bs.Y - bs.Height/2 + badgeSize,
			Scale: common.Vec3All(1),
		})
		_ = ecs.Add(w, badge, component.SpriteComponent.Kind(), &component.Sprite{
			Image:   solidImage(badgeSize, badgeSize),
			OriginX: badgeSize / 2,
			OriginY: badgeSize / 2,
			Tint:    badgeColor,
		})
	}

	fb := &component.PressFeedback{}
	if bs.Badge && bs.BadgeExcluded {
		fb.ExcludeImages = []uint64{uint64(badge)}
	}
	if theme != nil {
		applyFeedbackSpec(fb, theme.Feedback)
	}
	_ = ecs.Add(w, root, component.PressFeedbackComponent.Kind(), fb)

	if bs.Disabled {
		_ = ecs.Add(w, root, component.DisabledComponent.Kind(), &component.Disabled{})
	}

	return MenuButton{Root: root, Label: label, Badge: badge, spec: bs}
}

// ApplyTheme re-colors the built entities from a (possibly reloaded)
// theme and queues a rebind so the new colors become the originals the
// feedback effect restores to.
func (m *Menu) ApplyTheme(w *ecs.World, theme *prefabs.ThemeSpec) {
	if m == nil || w == nil || theme == nil {
		return
	}

	for _, b := range m.Buttons {
		if sp, ok := ecs.Get(w, b.Root, component.SpriteComponent.Kind()); ok {
			if b.spec.Color != nil {
				sp.Tint = b.spec.Color.Color
			} else if theme.Button != nil {
				sp.Tint = theme.Button.Color
			}
		}
		if lb, ok := ecs.Get(w, b.Label, component.LabelComponent.Kind()); ok && theme.Label != nil {
			lb.Color = theme.Label.Color
		}
		if fb, ok := ecs.Get(w, b.Root, component.PressFeedbackComponent.Kind()); ok {
			applyFeedbackSpec(fb, theme.Feedback)
		}
		_ = ecs.Add(w, b.Root, component.RebindRequestComponent.Kind(), &component.RebindRequest{})
	}
}

func applyFeedbackSpec(fb *component.PressFeedback, spec prefabs.FeedbackSpec) {
	if spec.ScaleAmount > 0 {
		fb.ScaleAmount = spec.ScaleAmount
	}
	if spec.Duration > 0 {
		fb.Duration = spec.Duration
	}
	if spec.PunchStrength != 0 {
		fb.PunchStrength = spec.PunchStrength
	}
	if spec.PunchDuration > 0 {
		fb.PunchDuration = spec.PunchDuration
	}
	if spec.PressedColorMultiplier > 0 && spec.PressedColorMultiplier <= 1 {
		fb.PressedColorMultiplier = spec.PressedColorMultiplier
	}
}

func solidImage(w, h int) *ebiten.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	img.Fill(color.White)
	return img
}
