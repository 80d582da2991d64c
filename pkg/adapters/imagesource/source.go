// Package imagesource reads a clip from a directory of still images.
// File names are read in sorted order, so zero-padded numbering gives the
// expected frame sequence.
package imagesource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framefx/pkg/ports"
)

// Source implements ports.FrameSource over a FileSystem and a Renderer.
type Source struct {
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Source.
func New(fs ports.FileSystem, renderer ports.Renderer) *Source {
	return &Source{fs: fs, renderer: renderer}
}

// ReadFrames decodes every PNG and JPEG file under path in name order.
// Files with other extensions are ignored.
func (s *Source) ReadFrames(path string) ([]ports.SourceFrame, error) {
	names, err := s.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("imagesource: read dir %s: %w", path, err)
	}

	var frames []ports.SourceFrame
	for _, name := range names {
		format, ok := formatForName(name)
		if !ok {
			continue
		}
		data, err := s.fs.ReadFile(filepath.Join(path, name))
		if err != nil {
			return nil, fmt.Errorf("imagesource: read %s: %w", name, err)
		}
		img, err := s.renderer.DecodeImage(data, format)
		if err != nil {
			return nil, fmt.Errorf("imagesource: decode %s: %w", name, err)
		}
		frames = append(frames, ports.SourceFrame{Image: img, Index: len(frames)})
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("imagesource: no image files in %s", path)
	}
	return frames, nil
}

func formatForName(name string) (ports.ImageFormat, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return ports.FormatPNG, true
	case ".jpg", ".jpeg":
		return ports.FormatJPEG, true
	default:
		return 0, false
	}
}

// Ensure Source implements ports.FrameSource
var _ ports.FrameSource = (*Source)(nil)
