package mocks

import (
	"image"
	"sync"

	"github.com/user/framefx/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	JobJSON         []byte
	DecodedFrames   map[int]image.Image
	ProcessedFrames map[int]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:         enabled,
		DecodedFrames:   make(map[int]image.Image),
		ProcessedFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveJobJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JobJSON = data
	return nil
}

func (m *DebugSink) SaveDecodedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DecodedFrames[index] = img
	return nil
}

func (m *DebugSink) SaveProcessedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessedFrames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
