package mocks

import (
	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	StartFunc    func(width, height int, fps float64) error
	AddFrameFunc func(f *frame.Frame) error
	FinishFunc   func() ([]byte, error)

	// Recorded calls for verification
	StartCalled   bool
	StartWidth    int
	StartHeight   int
	StartFPS      float64
	AddFrameCalls []AddFrameCall
	FinishCalled  bool
	CancelCalled  bool
}

// AddFrameCall records a call to AddFrame.
type AddFrameCall struct {
	Timestamp   float64
	FrameNumber int
}

func (m *VideoEncoder) Start(width, height int, fps float64) error {
	m.StartCalled = true
	m.StartWidth = width
	m.StartHeight = height
	m.StartFPS = fps
	if m.StartFunc != nil {
		return m.StartFunc(width, height, fps)
	}
	return nil
}

func (m *VideoEncoder) AddFrame(f *frame.Frame) error {
	m.AddFrameCalls = append(m.AddFrameCalls, AddFrameCall{
		Timestamp:   f.Timestamp,
		FrameNumber: f.FrameNumber,
	})
	if m.AddFrameFunc != nil {
		return m.AddFrameFunc(f)
	}
	return nil
}

func (m *VideoEncoder) Finish() ([]byte, error) {
	m.FinishCalled = true
	if m.FinishFunc != nil {
		return m.FinishFunc()
	}
	// Return minimal MP4 ftyp header
	return []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'}, nil
}

func (m *VideoEncoder) Cancel() {
	m.CancelCalled = true
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)
