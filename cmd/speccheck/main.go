// speccheck validates the prefab specs without starting the game: it
// loads theme.yaml and menu.yaml, sanity-checks the button layout, and
// compiles every script-backed action so a broken tengo file is caught
// before the first click.
//
// Run it from the repo root so the disk copies under prefabs/ are found;
// otherwise the embedded copies are checked instead.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pressfx/prefabs"
)

func main() {
	verbose := flag.Bool("v", false, "log every checked item")
	flag.Parse()

	failed := false
	fail := func(format string, args ...any) {
		failed = true
		log.Printf("speccheck: "+format, args...)
	}
	note := func(format string, args ...any) {
		if *verbose {
			log.Printf("speccheck: "+format, args...)
		}
	}

	theme, err := prefabs.LoadThemeSpec()
	if err != nil {
		fail("theme: %v", err)
	} else {
		fb := theme.Feedback
		if fb.ScaleAmount < 0 || fb.ScaleAmount > 1 {
			fail("theme: scale_amount %v outside [0, 1]", fb.ScaleAmount)
		}
		if fb.PressedColorMultiplier < 0 || fb.PressedColorMultiplier > 1 {
			fail("theme: pressed_color_multiplier %v outside [0, 1]", fb.PressedColorMultiplier)
		}
		if fb.Duration < 0 || fb.PunchDuration < 0 {
			fail("theme: negative duration")
		}
		note("theme ok")
	}

	menu, err := prefabs.LoadMenuSpec()
	if err != nil {
		fail("menu: %v", err)
		os.Exit(1)
	}

	seen := map[string]bool{}
	for _, b := range menu.Buttons {
		if b.Name == "" {
			fail("menu: button with empty name")
			continue
		}
		if seen[b.Name] {
			fail("menu: duplicate button name %q", b.Name)
		}
		seen[b.Name] = true

		if b.Width <= 0 || b.Height <= 0 {
			fail("menu: button %q has size %vx%v", b.Name, b.Width, b.Height)
		}
		if b.Script && b.Action == "" {
			fail("menu: button %q is script-backed with no action", b.Name)
		}

		if b.Script {
			if err := compileAction(b.Action); err != nil {
				fail("menu: button %q action %s: %v", b.Name, b.Action, err)
				continue
			}
			note("button %q script ok", b.Name)
		} else {
			note("button %q ok", b.Name)
		}
	}

	if failed {
		os.Exit(1)
	}
	log.Printf("speccheck: %d buttons ok", len(menu.Buttons))
}

func compileAction(path string) error {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return err
	}
	script := tengo.NewScript(src)
	_ = script.Add("__entity", int64(0))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_, err = script.Compile()
	return err
}
