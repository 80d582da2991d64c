// Package process implements the effect application stage.
package process

import (
	"context"
	"fmt"

	"github.com/user/framefx/pkg/effects"
	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
	"github.com/user/framefx/pkg/transitions"
)

// Stage runs effect chains over a clip and resolves scheduled transitions.
// The primary and secondary clips get independent engines so their effect
// chains and scratch pools never interfere.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new process stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("process")}
}

// Execute processes every frame in place and returns the primary clip.
// Frame i is stamped with timestamp i/FPS. Inside the transition window the
// primary frame is blended with the secondary frame of the same index,
// after both clips' chains have run.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProcessInput) (pipeline.ProcessResult, error) {
	result := pipeline.ProcessResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("no frames to process")
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("invalid fps %v", input.FPS)
	}
	if input.Transition != nil {
		if len(input.Secondary) == 0 {
			return result, fmt.Errorf("transition scheduled but no secondary clip")
		}
		if input.Transition.Duration <= 0 {
			return result, fmt.Errorf("transition duration must be positive")
		}
	}

	primary, err := newEngineWithEffects(input.EngineOptions, input.Effects)
	if err != nil {
		return result, fmt.Errorf("primary engine: %w", err)
	}
	defer primary.Close()

	var secondary *effects.Engine
	if input.Transition != nil {
		secondary, err = newEngineWithEffects(input.EngineOptions, input.SecondaryEffects)
		if err != nil {
			return result, fmt.Errorf("secondary engine: %w", err)
		}
		defer secondary.Close()
	}

	s.logger.Debug("Applying %d effects to %d frames", len(input.Effects), len(input.Frames))

	warnedShort := false
	// The clamped last secondary frame can be blended into several primary
	// frames; track which secondary frames already ran their chain so none
	// is processed twice.
	processed := make([]bool, len(input.Secondary))
	for i, f := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		ts := float64(i) / input.FPS
		if err := primary.Process(f, ts); err != nil {
			return result, fmt.Errorf("frame %d: %w", i, err)
		}

		if input.Transition == nil {
			continue
		}
		progress, inWindow := transitionProgress(input.Transition, ts)
		if !inWindow {
			continue
		}

		idx := i
		if idx >= len(input.Secondary) {
			if !warnedShort {
				s.logger.Warn("Secondary clip shorter than transition window")
				warnedShort = true
			}
			idx = len(input.Secondary) - 1
		}
		sf := input.Secondary[idx]
		if sf.Width != f.Width || sf.Height != f.Height {
			return result, fmt.Errorf("secondary frame %d is %dx%d, primary is %dx%d",
				idx, sf.Width, sf.Height, f.Width, f.Height)
		}
		if !processed[idx] {
			if err := secondary.Process(sf, ts); err != nil {
				return result, fmt.Errorf("secondary frame %d: %w", idx, err)
			}
			processed[idx] = true
		}

		if err := blend(input.Transition.Kind, f, sf, progress); err != nil {
			return result, fmt.Errorf("transition at frame %d: %w", i, err)
		}
	}

	s.logger.Debug("Processing completed")

	result.Frames = input.Frames
	result.Stats = primary.Stats()
	return result, nil
}

// transitionProgress maps a timestamp into the transition's [0,1] progress;
// the window is half-open at the end.
func transitionProgress(spec *pipeline.TransitionSpec, ts float64) (float64, bool) {
	if ts < spec.Start || ts >= spec.Start+spec.Duration {
		return 0, false
	}
	return (ts - spec.Start) / spec.Duration, true
}

// blend overwrites a with the transition of a into b.
func blend(kind transitions.Kind, a, b *frame.Frame, progress float64) error {
	out, err := frame.NewRGBA(a.Width, a.Height)
	if err != nil {
		return err
	}
	if err := transitions.Apply(kind, a, b, out, progress); err != nil {
		return err
	}
	copy(a.Data, out.Data)
	return nil
}

func newEngineWithEffects(opts effects.Options, list []effects.Effect) (*effects.Engine, error) {
	engine, err := effects.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	for i, e := range list {
		if _, err := engine.Chain().Add(e); err != nil {
			engine.Close()
			return nil, fmt.Errorf("add effect %d: %w", i, err)
		}
	}
	return engine, nil
}
