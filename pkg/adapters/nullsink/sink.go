// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/framefx/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveJobJSON does nothing.
func (s *Sink) SaveJobJSON(data []byte) error {
	return nil
}

// SaveDecodedFrame does nothing.
func (s *Sink) SaveDecodedFrame(index int, img image.Image) error {
	return nil
}

// SaveProcessedFrame does nothing.
func (s *Sink) SaveProcessedFrame(index int, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
