package component

// Parent links an entity into the scene hierarchy. Subtree walks (for
// example the press-feedback binder) follow these edges from a root.
type Parent struct {
	Entity uint64 // parent handle (ecs.Entity is uint64)
}

var ParentComponent = NewComponent[Parent]()
