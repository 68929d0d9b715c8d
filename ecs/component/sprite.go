package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pressfx/common"
)

// Sprite is an image-bearing visual. Tint is the sprite's current color
// modulation; effects mutate it and the renderer applies it at draw time.
type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	Tint    common.Color
}

var SpriteComponent = NewComponent[Sprite]()
