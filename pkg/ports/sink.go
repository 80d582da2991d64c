package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving per-frame snapshots while a job runs so filter and
// transition output can be inspected without re-running the export.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveJobJSON saves the resolved job configuration as JSON.
	SaveJobJSON(data []byte) error

	// SaveDecodedFrame saves an input frame before any effects run.
	SaveDecodedFrame(index int, img image.Image) error

	// SaveProcessedFrame saves a frame after the effect chain ran.
	SaveProcessedFrame(index int, img image.Image) error
}
