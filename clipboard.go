package main

import (
	"log"
	"sync"

	"github.com/milk9111/pressfx/prefabs"
	"golang.design/x/clipboard"
)

var clipboardInit sync.Once
var clipboardOK bool

// copyThemeToClipboard puts the current theme yaml on the system
// clipboard. Clipboard access can be unavailable (headless X, wayland
// without the portal); the action just logs and gives up in that case.
func copyThemeToClipboard() {
	clipboardInit.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
			return
		}
		clipboardOK = true
	})
	if !clipboardOK {
		return
	}

	data, err := prefabs.Load("theme.yaml")
	if err != nil {
		log.Printf("copy theme: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("theme copied to clipboard (%d bytes)", len(data))
}
