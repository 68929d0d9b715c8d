package component

// Button marks an entity as clickable. A click fires when a pointer press
// and the matching release both land on the entity's hitbox.
type Button struct {
	// Action names what the click runs: a registered Go callback, or a
	// tengo script path when Script is set.
	Action string
	Script bool
}

var ButtonComponent = NewComponent[Button]()
