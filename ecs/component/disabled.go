package component

// Disabled marks an entity inactive: pointer input ignores it and any
// running press-feedback session is cancelled and restored. The entity
// still exists in the hierarchy and is still found by subtree binds.
type Disabled struct{}

var DisabledComponent = NewComponent[Disabled]()
