package component

import "github.com/milk9111/pressfx/common"

// FeedbackPhase is the press-feedback state machine phase.
type FeedbackPhase int

const (
	FeedbackIdle FeedbackPhase = iota
	// FeedbackPressing shrinks toward the pressed scale and darkens.
	FeedbackPressing
	// FeedbackPressed holds the pressed pose until pointer-up.
	FeedbackPressed
	// FeedbackReleasing punches past resting scale and restores colors.
	FeedbackReleasing
)

// PressFeedback shrinks and darkens a widget subtree while the pointer is
// held on it, then springs back past resting scale on release. The zero
// value is usable: the system fills in defaults on first bind.
//
// At most one animation runs at a time; a new press or release cancels
// whatever is in flight and starts from the interpolated values it left
// behind.
type PressFeedback struct {
	// Target optionally overrides which entity's Transform is scaled
	// (ecs.Entity is uint64). Zero means the owning entity.
	Target uint64

	// ScaleAmount is the pressed scale as a fraction of resting scale.
	ScaleAmount float64
	// Duration is the press transition length in seconds.
	Duration float64
	// PunchStrength is the release overshoot amplitude. Zero on an
	// otherwise configured component means no overshoot.
	PunchStrength float64
	// PunchDuration is the release transition length in seconds.
	PunchDuration float64
	// PressedColorMultiplier darkens bound visuals while pressed; RGB
	// only, range 0-1.
	PressedColorMultiplier float64

	// IncludeImages and IncludeLabels list entities bound in addition to
	// the subtree, for visuals that live elsewhere in the scene.
	IncludeImages []uint64
	IncludeLabels []uint64

	// ExcludeImages and ExcludeLabels list entities the binder must leave
	// alone even when they sit inside the subtree or an include list.
	ExcludeImages []uint64
	ExcludeLabels []uint64

	// ----- runtime state, managed by PressFeedbackSystem -----

	Phase   FeedbackPhase
	Elapsed float64

	// Deactivated records that the disable-edge restore has already run,
	// so a disabled widget is forced to baseline once, not every frame.
	Deactivated bool

	// Bound is set once the binder has resolved the subtree and resting
	// scale.
	Bound bool
	// RestingScale is the target transform's scale at bind time, the
	// canonical neutral size.
	RestingScale common.Vec3

	// BoundImages and BoundLabels are the filtered visual sets. Entries
	// are weak references: every access re-checks liveness.
	BoundImages []uint64
	BoundLabels []uint64

	// OriginalColors maps each bound visual to the color it had at bind
	// time, the baseline both restore paths return to.
	OriginalColors map[uint64]common.Color

	// StartScale and StartColors snapshot the values at the start of the
	// current animation, which differ from the originals when a session
	// interrupts another mid-flight.
	StartScale  common.Vec3
	StartColors map[uint64]common.Color
}

var PressFeedbackComponent = NewComponent[PressFeedback]()
