package component

import "github.com/milk9111/pressfx/common"

type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	// Scale is a full 3-component vector. The renderer only applies X and
	// Y; Z is kept so uniform-scale consumers round-trip all three.
	Scale common.Vec3
}

var TransformComponent = NewComponent[Transform]()
