// Package decode implements the clip reading stage.
package decode

import (
	"context"
	"fmt"

	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
)

// Stage reads a clip from a frame source and converts it to RGBA frames.
type Stage struct {
	source   ports.FrameSource
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(source ports.FrameSource, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		source:   source,
		renderer: renderer,
		logger:   logger.WithComponent("decode"),
	}
}

// Execute reads every frame of the clip. All frames are normalized to the
// geometry of the first frame (or the requested target geometry), so the
// rest of the pipeline can assume a uniform frame size.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	result := pipeline.DecodeResult{}

	s.logger.Debug("Reading frames from %s", input.Path)
	sources, err := s.source.ReadFrames(input.Path)
	if err != nil {
		return result, fmt.Errorf("read frames: %w", err)
	}

	width, height := input.TargetWidth, input.TargetHeight
	if width <= 0 || height <= 0 {
		bounds := sources[0].Image.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	}

	frames := make([]*frame.Frame, 0, len(sources))
	for _, src := range sources {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		img := src.Image
		bounds := img.Bounds()
		if bounds.Dx() != width || bounds.Dy() != height {
			img = s.renderer.ResizeImage(img, width, height)
		}
		f := frame.FromImage(img)
		if f == nil {
			return result, fmt.Errorf("convert frame %d", src.Index)
		}
		f.FrameNumber = src.Index
		frames = append(frames, f)
	}

	s.logger.Debug("Decoded %d frames (%dx%d)", len(frames), width, height)

	result.Frames = frames
	result.Width = width
	result.Height = height
	return result, nil
}
