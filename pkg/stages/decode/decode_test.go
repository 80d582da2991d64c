package decode

import (
	"context"
	"fmt"
	"image"
	"testing"

	"github.com/user/framefx/pkg/adapters/logger"
	"github.com/user/framefx/pkg/mocks"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
)

func sourceWithFrames(sizes []image.Rectangle) *mocks.FrameSource {
	return &mocks.FrameSource{
		ReadFramesFunc: func(path string) ([]ports.SourceFrame, error) {
			frames := make([]ports.SourceFrame, len(sizes))
			for i, r := range sizes {
				frames[i] = ports.SourceFrame{Image: image.NewRGBA(r), Index: i}
			}
			return frames, nil
		},
	}
}

func TestDecodeUniformClip(t *testing.T) {
	source := sourceWithFrames([]image.Rectangle{
		image.Rect(0, 0, 32, 24),
		image.Rect(0, 0, 32, 24),
	})
	stage := NewStage(source, &mocks.Renderer{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "clip"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Width != 32 || result.Height != 24 {
		t.Errorf("geometry %dx%d, want 32x24", result.Width, result.Height)
	}
	if len(result.Frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(result.Frames))
	}
	for i, f := range result.Frames {
		if f.FrameNumber != i {
			t.Errorf("frame %d has FrameNumber %d", i, f.FrameNumber)
		}
		if f.Width != 32 || f.Height != 24 {
			t.Errorf("frame %d is %dx%d", i, f.Width, f.Height)
		}
	}
	if len(source.ReadFramesCalls) != 1 || source.ReadFramesCalls[0] != "clip" {
		t.Errorf("ReadFrames calls = %v", source.ReadFramesCalls)
	}
}

func TestDecodeResizesToTarget(t *testing.T) {
	source := sourceWithFrames([]image.Rectangle{image.Rect(0, 0, 100, 80)})

	resized := 0
	renderer := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			resized++
			return image.NewRGBA(image.Rect(0, 0, width, height))
		},
	}
	stage := NewStage(source, renderer, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.DecodeInput{
		Path:         "clip",
		TargetWidth:  50,
		TargetHeight: 40,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resized != 1 {
		t.Errorf("ResizeImage called %d times, want 1", resized)
	}
	if result.Frames[0].Width != 50 || result.Frames[0].Height != 40 {
		t.Errorf("frame is %dx%d, want 50x40", result.Frames[0].Width, result.Frames[0].Height)
	}
}

func TestDecodeNormalizesMixedSizes(t *testing.T) {
	// Second frame differs from the first; it must be resized to match.
	source := sourceWithFrames([]image.Rectangle{
		image.Rect(0, 0, 32, 24),
		image.Rect(0, 0, 64, 48),
	})
	stage := NewStage(source, &mocks.Renderer{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "clip"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for i, f := range result.Frames {
		if f.Width != 32 || f.Height != 24 {
			t.Errorf("frame %d is %dx%d, want 32x24", i, f.Width, f.Height)
		}
	}
}

func TestDecodeSourceError(t *testing.T) {
	source := &mocks.FrameSource{
		ReadFramesFunc: func(path string) ([]ports.SourceFrame, error) {
			return nil, fmt.Errorf("no such directory")
		},
	}
	stage := NewStage(source, &mocks.Renderer{}, logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.DecodeInput{Path: "missing"}); err == nil {
		t.Error("expected error from failing source")
	}
}
