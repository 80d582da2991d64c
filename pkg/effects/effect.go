// Package effects implements the prioritized effect chain and the engine
// that drives it over a sequence of frames. Effects are small value objects
// wrapping a concrete operation; the chain orders them by priority class and
// applies the active ones in place using pooled scratch buffers.
package effects

import (
	"math"

	"github.com/user/framefx/pkg/filters"
	"github.com/user/framefx/pkg/frame"
)

// Priority classes order effects within a chain. Lower values run first.
// Color work happens before stylistic filters, geometry runs after both, and
// transitions (which blend whole frames) always come last.
type Priority int

const (
	PriorityColorCorrection Priority = 1
	PriorityFilter          Priority = 2
	PriorityTransform       Priority = 3
	PriorityTransition      Priority = 4
)

// Op is a concrete effect operation. Implementations live in this package
// so the chain can rely on a closed set of behaviors.
type Op interface {
	// Priority returns the ordering class for the chain sort.
	Priority() Priority

	// apply mutates the frame in place and reports whether the operation
	// ran. A false return means the frame was left untouched.
	apply(f *frame.Frame) bool
}

// Effect pairs an operation with its enablement state and active time
// window. The window is half-open: an effect applies to timestamps in
// [Start, End).
type Effect struct {
	Op      Op
	Enabled bool
	Start   float64
	End     float64
}

// ActiveAt reports whether the effect should run for a frame at the given
// timestamp in seconds.
func (e *Effect) ActiveAt(ts float64) bool {
	return e.Enabled && ts >= e.Start && ts < e.End
}

func newEffect(op Op) Effect {
	return Effect{Op: op, Enabled: true, Start: 0, End: math.Inf(1)}
}

// ColorCorrectionOp adjusts brightness, contrast, saturation, hue, gamma
// and exposure in a single pass.
type ColorCorrectionOp struct {
	Params filters.ColorCorrectionParams
}

func (o *ColorCorrectionOp) Priority() Priority        { return PriorityColorCorrection }
func (o *ColorCorrectionOp) apply(f *frame.Frame) bool { return filters.ColorCorrection(f, o.Params) }

// NewColorCorrection creates an always-active color correction effect.
func NewColorCorrection(params filters.ColorCorrectionParams) Effect {
	return newEffect(&ColorCorrectionOp{Params: params})
}

// FilterOp applies an intensity-controlled stylistic filter.
type FilterOp struct {
	Kind      filters.Kind
	Intensity float64
}

func (o *FilterOp) Priority() Priority        { return PriorityFilter }
func (o *FilterOp) apply(f *frame.Frame) bool { return filters.Apply(f, o.Kind, o.Intensity) }

// NewFilter creates an always-active filter effect.
func NewFilter(kind filters.Kind, intensity float64) Effect {
	return newEffect(&FilterOp{Kind: kind, Intensity: intensity})
}

// BlurOp applies a box blur with explicit parameters, unlike the
// intensity-mapped blur available through FilterOp.
type BlurOp struct {
	Params filters.BlurParams
}

func (o *BlurOp) Priority() Priority        { return PriorityFilter }
func (o *BlurOp) apply(f *frame.Frame) bool { return filters.Blur(f, o.Params) }

// NewBlur creates an always-active blur effect.
func NewBlur(params filters.BlurParams) Effect {
	return newEffect(&BlurOp{Params: params})
}

// TransformOp applies geometric scale, rotation, flips and cropping.
type TransformOp struct {
	Params filters.TransformParams
}

func (o *TransformOp) Priority() Priority        { return PriorityTransform }
func (o *TransformOp) apply(f *frame.Frame) bool { return filters.Transform(f, o.Params) }

// NewTransform creates an always-active transform effect.
func NewTransform(params filters.TransformParams) Effect {
	return newEffect(&TransformOp{Params: params})
}

// TransitionOp marks a transition slot in the chain. Transitions need a
// second frame, which the single-frame chain does not carry, so applying
// one here is a no-op; the processing stage resolves the actual blend using
// the transitions package. Keeping the slot in the chain preserves the
// ordering guarantee that transitions sort after everything else.
type TransitionOp struct {
	Params TransitionParams
}

// TransitionParams describes a scheduled transition.
type TransitionParams struct {
	Kind     int
	Progress float64
}

func (o *TransitionOp) Priority() Priority        { return PriorityTransition }
func (o *TransitionOp) apply(f *frame.Frame) bool { return true }

// NewTransition creates an always-active transition placeholder effect.
func NewTransition(params TransitionParams) Effect {
	return newEffect(&TransitionOp{Params: params})
}
