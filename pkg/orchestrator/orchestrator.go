// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/user/framefx/pkg/effects"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputDir     string
	SecondaryDir string
	OutputPath   string

	// Geometry; zero keeps the source dimensions.
	Width  int
	Height int

	// Timing
	FPS float64

	// Effect chains
	Effects          []effects.Effect
	SecondaryEffects []effects.Effect

	// Transition between the primary and secondary clips (optional).
	Transition *pipeline.TransitionSpec

	// Engine pool sizing; the zero value selects engine defaults.
	EngineOptions effects.Options
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FPS: 30.0,
	}
}

// RunResult summarizes a completed job.
type RunResult struct {
	FrameCount      int
	Width           int
	Height          int
	DurationMs      int
	VideoFileSize   int64
	FramesProcessed uint64
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	decodeStage  pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	processStage pipeline.Stage[pipeline.ProcessInput, pipeline.ProcessResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	processStage pipeline.Stage[pipeline.ProcessInput, pipeline.ProcessResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:  decodeStage,
		processStage: processStage,
		encodeStage:  encodeStage,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// jobSummary is what the debug sink records about a run.
type jobSummary struct {
	InputDir     string  `json:"input_dir"`
	SecondaryDir string  `json:"secondary_dir,omitempty"`
	OutputPath   string  `json:"output_path"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	FPS          float64 `json:"fps"`
	EffectCount  int     `json:"effect_count"`
	Transition   string  `json:"transition,omitempty"`
	FrameCount   int     `json:"frame_count"`
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting job"))

	if config.InputDir == "" {
		return RunResult{}, fmt.Errorf("no input directory")
	}
	if config.OutputPath == "" {
		return RunResult{}, fmt.Errorf("no output path")
	}

	// 1. Decode primary clip
	o.logger.Info(l10n.F("Reading frames from %s", config.InputDir))
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{
		Path:         config.InputDir,
		TargetWidth:  config.Width,
		TargetHeight: config.Height,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to read input: %s", err))
		return RunResult{}, fmt.Errorf("decode stage: %w", err)
	}
	o.logger.Info(l10n.F("Decoded %d frames (%dx%d)", len(decoded.Frames), decoded.Width, decoded.Height))

	// 2. Decode secondary clip when a transition is scheduled. It is forced
	// to the primary clip's geometry so the blend operators line up.
	var secondary pipeline.DecodeResult
	if config.Transition != nil {
		if config.SecondaryDir == "" {
			return RunResult{}, fmt.Errorf("transition configured without a secondary clip")
		}
		o.logger.Info(l10n.F("Reading frames from %s", config.SecondaryDir))
		secondary, err = o.decodeStage.Execute(ctx, pipeline.DecodeInput{
			Path:         config.SecondaryDir,
			TargetWidth:  decoded.Width,
			TargetHeight: decoded.Height,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to read input: %s", err))
			return RunResult{}, fmt.Errorf("decode secondary: %w", err)
		}
	}

	// Save job debug output
	if o.sink.Enabled() {
		summary := jobSummary{
			InputDir:     config.InputDir,
			SecondaryDir: config.SecondaryDir,
			OutputPath:   config.OutputPath,
			Width:        decoded.Width,
			Height:       decoded.Height,
			FPS:          config.FPS,
			EffectCount:  len(config.Effects),
			FrameCount:   len(decoded.Frames),
		}
		if config.Transition != nil {
			summary.Transition = config.Transition.Kind.String()
		}
		if data, err := json.MarshalIndent(summary, "", "  "); err == nil {
			o.sink.SaveJobJSON(data)
		}
		for i, f := range decoded.Frames {
			o.sink.SaveDecodedFrame(i, f.ToImage())
		}
	}

	// 3. Apply effect chains and transitions
	o.logger.Info(l10n.F("Applying %d effects to %d frames", len(config.Effects), len(decoded.Frames)))
	processed, err := o.processStage.Execute(ctx, pipeline.ProcessInput{
		Frames:           decoded.Frames,
		Effects:          config.Effects,
		Secondary:        secondary.Frames,
		SecondaryEffects: config.SecondaryEffects,
		Transition:       config.Transition,
		FPS:              config.FPS,
		EngineOptions:    config.EngineOptions,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("process stage: %w", err)
	}

	if o.sink.Enabled() {
		for i, f := range processed.Frames {
			o.sink.SaveProcessedFrame(i, f.ToImage())
		}
	}

	// 4. Encode video
	o.logger.Info(l10n.F("Encoding %d frames at %.1f fps", len(processed.Frames), config.FPS))
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Frames: processed.Frames,
		FPS:    config.FPS,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode video: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info(l10n.F("Video encoded: %d bytes", len(encoded.VideoData)))

	// 5. Write output file
	if err := o.fs.WriteFile(config.OutputPath, encoded.VideoData); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))

	o.logger.Info(l10n.T("Job completed successfully"))

	return RunResult{
		FrameCount:      len(processed.Frames),
		Width:           decoded.Width,
		Height:          decoded.Height,
		DurationMs:      encoded.DurationMs,
		VideoFileSize:   encoded.FileSize,
		FramesProcessed: processed.Stats.FramesProcessed,
	}, nil
}
