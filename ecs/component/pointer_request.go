package component

// One-shot request components delivered by the pointer input system (or a
// host/editor command) and consumed by the press-feedback system on its
// next tick. The consumer removes them; they never persist across frames.

// PointerDownRequest reports a pointer press on the entity.
type PointerDownRequest struct{}

var PointerDownRequestComponent = NewComponent[PointerDownRequest]()

// PointerUpRequest reports a pointer release for the entity.
type PointerUpRequest struct{}

var PointerUpRequestComponent = NewComponent[PointerUpRequest]()

// ClickRequest reports a completed press-and-release on the entity's
// hitbox. Consumed by the script action system.
type ClickRequest struct{}

var ClickRequestComponent = NewComponent[ClickRequest]()

// RebindRequest asks the press-feedback system to rediscover the entity's
// visual subtree and rebuild its original-color cache.
type RebindRequest struct{}

var RebindRequestComponent = NewComponent[RebindRequest]()
