// Package y4mencoder provides a YUV4MPEG2 encoder. Y4M is an uncompressed
// interchange format understood by ffmpeg and most analysis tools, which
// makes it useful for inspecting filter output without any codec in the
// way. Frames are converted to 4:2:0 YUV before writing.
package y4mencoder

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/ports"
)

// Encoder implements ports.VideoEncoder writing raw YUV4MPEG2 output.
type Encoder struct {
	mu sync.Mutex

	width   int
	height  int
	started bool
	buf     bytes.Buffer
}

// New creates a new Y4M encoder.
func New() *Encoder {
	return &Encoder{}
}

// Start writes the stream header. Width and height must be even because the
// chroma planes are subsampled 2x2.
func (e *Encoder) Start(width, height int, fps float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("y4mencoder: dimensions must be positive and even, got %dx%d", width, height)
	}
	if fps <= 0 {
		return fmt.Errorf("y4mencoder: invalid fps %v", fps)
	}

	e.width = width
	e.height = height
	e.buf.Reset()

	// Frame rate as a rational with millisecond precision.
	num := int(fps * 1000)
	fmt.Fprintf(&e.buf, "YUV4MPEG2 W%d H%d F%d:1000 Ip A1:1 C420\n", width, height, num)
	e.started = true
	return nil
}

// AddFrame converts one frame to YUV 4:2:0 and appends it.
func (e *Encoder) AddFrame(f *frame.Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return fmt.Errorf("y4mencoder: AddFrame before Start")
	}
	if !f.Valid() {
		return fmt.Errorf("y4mencoder: invalid frame")
	}
	if f.Width != e.width || f.Height != e.height {
		return fmt.Errorf("y4mencoder: frame is %dx%d, encoder expects %dx%d",
			f.Width, f.Height, e.width, e.height)
	}

	rgbData := f.Data
	switch f.Format {
	case frame.FormatRGBA:
		rgbData = make([]byte, frame.BufferSize(frame.FormatRGB, f.Width, f.Height))
		frame.RGBAToRGB(f.Data, rgbData, f.Width, f.Height)
	case frame.FormatRGB:
	default:
		return fmt.Errorf("y4mencoder: unsupported format %s", f.Format)
	}
	yuvData := make([]byte, frame.BufferSize(frame.FormatYUV420, f.Width, f.Height))
	frame.RGBToYUV420(rgbData, yuvData, f.Width, f.Height)

	e.buf.WriteString("FRAME\n")
	e.buf.Write(yuvData)
	return nil
}

// Finish returns the complete stream.
func (e *Encoder) Finish() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil, fmt.Errorf("y4mencoder: Finish before Start")
	}
	e.started = false
	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	e.buf.Reset()
	return out, nil
}

// Cancel discards buffered output.
func (e *Encoder) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.Reset()
	e.started = false
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
