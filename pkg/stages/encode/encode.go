// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
)

// Stage encodes processed frames into a video container.
type Stage struct {
	encoder ports.VideoEncoder
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.VideoEncoder, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes all frames into a video.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to encode")
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("invalid fps %v", input.FPS)
	}

	// Get dimensions from first frame
	first := input.Frames[0]
	if err := s.encoder.Start(first.Width, first.Height, input.FPS); err != nil {
		return result, fmt.Errorf("start encoding: %w", err)
	}

	s.logger.Debug("Encoding %d frames at %.1f fps", len(input.Frames), input.FPS)

	// Encode each frame
	for i, f := range input.Frames {
		select {
		case <-ctx.Done():
			s.encoder.Cancel()
			return result, ctx.Err()
		default:
		}

		if err := s.encoder.AddFrame(f); err != nil {
			s.encoder.Cancel()
			return result, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}

	// Finalize encoding
	data, err := s.encoder.Finish()
	if err != nil {
		return result, fmt.Errorf("finish encoding: %w", err)
	}

	result.VideoData = data
	result.DurationMs = int(float64(len(input.Frames)) / input.FPS * 1000)
	result.FileSize = int64(len(data))

	return result, nil
}
