// Package frame defines the pixel-buffer value object shared by the
// filters, effects engine, and export path.
package frame

import (
	"fmt"
)

// Format identifies the pixel layout of a frame buffer.
type Format int

const (
	// FormatRGB is packed 3 bytes per pixel.
	FormatRGB Format = iota
	// FormatRGBA is packed 4 bytes per pixel. All filters operate on RGBA.
	FormatRGBA
	// FormatYUV420 is planar Y, then quarter-resolution U and V planes.
	FormatYUV420
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatYUV420:
		return "yuv420"
	default:
		return "unknown"
	}
}

// BytesPerPixel returns the packed pixel size, or 0 for planar formats.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

// BufferSize returns the byte size of a buffer holding a width x height
// frame in format f.
func BufferSize(f Format, width, height int) int {
	switch f {
	case FormatRGB:
		return width * height * 3
	case FormatRGBA:
		return width * height * 4
	case FormatYUV420:
		return width*height + 2*((width/2)*(height/2))
	default:
		return 0
	}
}

// Frame is a pixel buffer with its geometry and timing metadata. The buffer
// may be owned by the frame or borrowed from a pool or a caller; the frame
// itself does not track ownership.
type Frame struct {
	Data        []byte
	Width       int
	Height      int
	Stride      int // bytes per row (packed formats); Y-plane stride for YUV420
	Format      Format
	Timestamp   float64 // seconds
	FrameNumber int
}

// NewRGBA allocates a zeroed RGBA frame.
func NewRGBA(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: invalid dimensions %dx%d", width, height)
	}
	return &Frame{
		Data:   make([]byte, width*height*4),
		Width:  width,
		Height: height,
		Stride: width * 4,
		Format: FormatRGBA,
	}, nil
}

// WrapRGBA wraps a caller-owned RGBA buffer without copying. The buffer
// length must be exactly width*height*4.
func WrapRGBA(data []byte, width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: invalid dimensions %dx%d", width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("frame: buffer length %d does not match %dx%d RGBA", len(data), width, height)
	}
	return &Frame{
		Data:   data,
		Width:  width,
		Height: height,
		Stride: width * 4,
		Format: FormatRGBA,
	}, nil
}

// Valid reports whether the frame holds a consistent pixel buffer. It is
// nil-safe; filters treat invalid frames as a silent no-op.
func (f *Frame) Valid() bool {
	if f == nil || f.Data == nil || f.Width <= 0 || f.Height <= 0 {
		return false
	}
	return len(f.Data) == BufferSize(f.Format, f.Width, f.Height)
}

// Clone returns a deep copy of the frame with its own buffer.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	c := *f
	c.Data = make([]byte, len(f.Data))
	copy(c.Data, f.Data)
	return &c
}

// CopyFrom copies pixel data and timing metadata from src. Both frames must
// share geometry and format; mismatches are reported as an error.
func (f *Frame) CopyFrom(src *Frame) error {
	if !f.Valid() || !src.Valid() {
		return fmt.Errorf("frame: copy between invalid frames")
	}
	if f.Width != src.Width || f.Height != src.Height || f.Format != src.Format {
		return fmt.Errorf("frame: copy geometry mismatch %dx%d/%s vs %dx%d/%s",
			f.Width, f.Height, f.Format, src.Width, src.Height, src.Format)
	}
	copy(f.Data, src.Data)
	f.Timestamp = src.Timestamp
	f.FrameNumber = src.FrameNumber
	return nil
}
