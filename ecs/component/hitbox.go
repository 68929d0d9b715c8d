package component

// Hitbox is a pointer hit-test rectangle. X/Y offset from the owning
// entity's Transform; W/H in screen units. The input system builds a
// cp.BB from it each frame.
type Hitbox struct {
	X float64
	Y float64
	W float64
	H float64
}

var HitboxComponent = NewComponent[Hitbox]()
