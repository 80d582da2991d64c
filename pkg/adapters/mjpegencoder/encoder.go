// Package mjpegencoder provides an MP4 video encoder that stores each frame
// as an independent JPEG sample (Motion JPEG). Every sample is a keyframe,
// which keeps the container logic simple and makes the output scrubbable in
// any player; the cost is a larger file than an inter-coded codec would
// produce.
package mjpegencoder

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"sync"

	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/ports"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 85

// Encoder implements ports.VideoEncoder with stdlib JPEG compression and an
// mp4ff fragmented container.
type Encoder struct {
	mu sync.Mutex

	width   int
	height  int
	fps     float64
	quality int
	started bool

	frames []encodedFrame
}

type encodedFrame struct {
	data  []byte
	index int
}

// New creates a new MJPEG encoder with the given JPEG quality (1-100);
// values outside that range select DefaultQuality.
func New(quality int) *Encoder {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Encoder{quality: quality}
}

// Start initializes the encoder for the given geometry and frame rate.
func (e *Encoder) Start(width, height int, fps float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("mjpegencoder: invalid dimensions %dx%d", width, height)
	}
	if fps <= 0 {
		return fmt.Errorf("mjpegencoder: invalid fps %v", fps)
	}
	e.width = width
	e.height = height
	e.fps = fps
	e.frames = nil
	e.started = true
	return nil
}

// AddFrame compresses one frame and appends it as a sample.
func (e *Encoder) AddFrame(f *frame.Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return fmt.Errorf("mjpegencoder: AddFrame before Start")
	}
	if !f.Valid() {
		return fmt.Errorf("mjpegencoder: invalid frame")
	}
	if f.Width != e.width || f.Height != e.height {
		return fmt.Errorf("mjpegencoder: frame is %dx%d, encoder expects %dx%d",
			f.Width, f.Height, e.width, e.height)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, f.ToImage(), &jpeg.Options{Quality: e.quality}); err != nil {
		return fmt.Errorf("mjpegencoder: encode frame %d: %w", len(e.frames), err)
	}
	e.frames = append(e.frames, encodedFrame{data: buf.Bytes(), index: len(e.frames)})
	return nil
}

// Finish builds and returns the MP4 container.
func (e *Encoder) Finish() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil, fmt.Errorf("mjpegencoder: Finish before Start")
	}
	data, err := e.buildMP4()
	e.started = false
	e.frames = nil
	return data, err
}

// Cancel discards buffered samples.
func (e *Encoder) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.frames = nil
	e.started = false
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
