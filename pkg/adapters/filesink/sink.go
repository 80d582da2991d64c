// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/framefx/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveJobJSON saves the resolved job configuration as JSON.
func (s *Sink) SaveJobJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "job.json")
	return s.fs.WriteFile(path, data)
}

// SaveDecodedFrame saves an input frame before any effects run.
func (s *Sink) SaveDecodedFrame(index int, img image.Image) error {
	return s.saveFrame("decoded", index, img)
}

// SaveProcessedFrame saves a frame after the effect chain ran.
func (s *Sink) SaveProcessedFrame(index int, img image.Image) error {
	return s.saveFrame("processed", index, img)
}

func (s *Sink) saveFrame(kind string, index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", kind)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", kind, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
