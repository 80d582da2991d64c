package mocks

import (
	"github.com/user/framefx/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource.
type FrameSource struct {
	ReadFramesFunc func(path string) ([]ports.SourceFrame, error)

	// Recorded calls for verification
	ReadFramesCalls []string
}

func (m *FrameSource) ReadFrames(path string) ([]ports.SourceFrame, error) {
	m.ReadFramesCalls = append(m.ReadFramesCalls, path)
	if m.ReadFramesFunc != nil {
		return m.ReadFramesFunc(path)
	}
	return nil, nil
}

var _ ports.FrameSource = (*FrameSource)(nil)
