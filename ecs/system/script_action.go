package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pressfx/ecs"
	"github.com/milk9111/pressfx/ecs/component"
	"github.com/milk9111/pressfx/prefabs"
)

// ScriptActionSystem runs button actions when a click lands. An action is
// either a registered Go callback or, when the button's Script flag is
// set, a tengo script loaded through prefabs. Script errors are logged
// and swallowed; a broken action must not take the UI down.
type ScriptActionSystem struct {
	callbacks map[string]func(e ecs.Entity)
	compiled  map[string]*tengo.Compiled
}

func NewScriptActionSystem() *ScriptActionSystem {
	return &ScriptActionSystem{
		callbacks: map[string]func(e ecs.Entity){},
		compiled:  map[string]*tengo.Compiled{},
	}
}

// Register binds a Go callback to an action name.
func (s *ScriptActionSystem) Register(name string, fn func(e ecs.Entity)) {
	if s == nil || name == "" || fn == nil {
		return
	}
	s.callbacks[name] = fn
}

// Invalidate drops the compiled script for path so the next click
// recompiles it. Wired to the prefab watcher for hot reload.
func (s *ScriptActionSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	delete(s.compiled, path)
}

func (s *ScriptActionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.ClickRequestComponent.Kind(), func(e ecs.Entity, _ *component.ClickRequest) {
		ecs.Remove(w, e, component.ClickRequestComponent.Kind())

		btn, ok := ecs.Get(w, e, component.ButtonComponent.Kind())
		if !ok || btn.Action == "" {
			return
		}

		if btn.Script {
			if err := s.runScript(btn.Action, e); err != nil {
				log.Printf("script: action %s: %v", btn.Action, err)
			}
			return
		}

		if fn, ok := s.callbacks[btn.Action]; ok {
			fn(e)
		}
	})
}

func (s *ScriptActionSystem) runScript(path string, e ecs.Entity) error {
	compiled, ok := s.compiled[path]
	if !ok {
		src, err := prefabs.LoadScript(path)
		if err != nil {
			return err
		}
		script := tengo.NewScript(src)
		_ = script.Add("__entity", int64(0))
		script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
		compiled, err = script.Compile()
		if err != nil {
			return err
		}
		s.compiled[path] = compiled
	}

	if err := compiled.Set("__entity", int64(e)); err != nil {
		return err
	}
	return compiled.Run()
}
