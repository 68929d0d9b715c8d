package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pressfx/common"
	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/system"
	"github.com/milk9111/pressfx/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int

	world   *ecs.World
	render  *system.RenderSystem
	actions *system.ScriptActionSystem
	watcher *prefabs.Watcher

	menu       *Menu
	background common.Color

	overlay     *Overlay
	showOverlay bool

	quit bool
}

func NewGame(watch bool) *Game {
	theme, err := prefabs.LoadThemeSpec()
	if err != nil {
		log.Printf("failed to load theme: %v", err)
		theme = &prefabs.ThemeSpec{}
	}

	menuSpec, err := prefabs.LoadMenuSpec()
	if err != nil {
		log.Printf("failed to load menu: %v", err)
		menuSpec = &prefabs.MenuSpec{}
	}

	g := &Game{
		world:   ecs.NewWorld(),
		render:  system.NewRenderSystem(),
		actions: system.NewScriptActionSystem(),
	}

	g.world.AddSystem(system.NewClockSystem())
	g.world.AddSystem(system.NewPointerInputSystem())
	g.world.AddSystem(system.NewPressFeedbackSystem())
	g.world.AddSystem(g.actions)

	g.registerActions()
	g.menu = BuildMenu(g.world, theme, menuSpec)
	g.applyTheme(theme)
	g.overlay = NewOverlay(func() { g.showOverlay = false })

	if watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) registerActions() {
	g.actions.Register("quit", func(ecs.Entity) { g.quit = true })
	g.actions.Register("copy_theme", func(ecs.Entity) { copyThemeToClipboard() })
}

// applyTheme pushes theme colors and feedback tuning onto the menu
// entities, then asks each feedback component to rebind so the new
// colors become the restore baseline.
func (g *Game) applyTheme(theme *prefabs.ThemeSpec) {
	if theme == nil {
		return
	}

	g.background = common.Color{R: 0.1, G: 0.12, B: 0.16, A: 1}
	if theme.Background != nil {
		g.background = theme.Background.Color
	}

	if g.menu != nil {
		g.menu.ApplyTheme(g.world, theme)
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.handleReload(path)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) handleReload(path string) {
	switch {
	case strings.HasSuffix(path, ".tengo"):
		g.actions.Invalidate(filepath.Base(path))
		log.Printf("reloaded script %s", filepath.Base(path))
	default:
		theme, err := prefabs.LoadThemeSpec()
		if err != nil {
			log.Printf("theme reload failed: %v", err)
			return
		}
		g.applyTheme(theme)
		log.Printf("reloaded %s", filepath.Base(path))
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showOverlay = !g.showOverlay
	}

	if g.showOverlay {
		g.overlay.Update()
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.background))

	g.render.Draw(g.world, screen)

	if g.showOverlay {
		g.overlay.Draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    F1: help", ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func toNRGBA(c common.Color) color.NRGBA {
	clamp := func(v float64) uint8 {
		return uint8(common.Clamp01(v) * 255)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
