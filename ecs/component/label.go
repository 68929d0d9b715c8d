package component

import "github.com/milk9111/pressfx/common"

// Label is a text-bearing visual. Color is the label's current color;
// effects mutate it the same way they mutate a Sprite's Tint.
type Label struct {
	Text  string
	Color common.Color
}

var LabelComponent = NewComponent[Label]()
