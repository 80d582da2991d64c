package pipeline

import (
	"github.com/user/framefx/pkg/effects"
	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/transitions"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains parameters for reading a clip.
type DecodeInput struct {
	// Path is the directory holding the clip's image files.
	Path string

	// TargetWidth and TargetHeight resize decoded frames when both are
	// positive; zero keeps the source geometry.
	TargetWidth  int
	TargetHeight int
}

// DecodeResult contains the decoded clip.
type DecodeResult struct {
	Frames []*frame.Frame
	Width  int
	Height int
}

// =============================================================================
// Process Stage Types
// =============================================================================

// TransitionSpec schedules a blend from the primary clip into the secondary
// clip. Start and Duration are in seconds on the primary clip's timeline.
type TransitionSpec struct {
	Kind     transitions.Kind
	Start    float64
	Duration float64
}

// ProcessInput contains the clips and effect lists for the process stage.
// Secondary and Transition are optional; when both are set, frames inside
// the transition window are blended with the secondary clip after each
// clip's own effect chain has run.
type ProcessInput struct {
	Frames           []*frame.Frame
	Effects          []effects.Effect
	Secondary        []*frame.Frame
	SecondaryEffects []effects.Effect
	Transition       *TransitionSpec
	FPS              float64

	// EngineOptions sizes the per-clip engines' frame pools. The zero
	// value selects the engine defaults.
	EngineOptions effects.Options
}

// ProcessResult contains the processed frames.
type ProcessResult struct {
	Frames []*frame.Frame
	Stats  effects.Stats
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the frames to encode.
type EncodeInput struct {
	Frames []*frame.Frame
	FPS    float64
}

// EncodeResult contains the encoding output.
type EncodeResult struct {
	VideoData  []byte
	DurationMs int
	FileSize   int64
}
