// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/user/framefx/pkg/effects"
	"github.com/user/framefx/pkg/filters"
	"github.com/user/framefx/pkg/orchestrator"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/transitions"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for a framefx job.
type Config struct {
	// Input/Output
	InputDir     string `yaml:"input"`
	SecondaryDir string `yaml:"secondary"`
	OutputPath   string `yaml:"output"`

	// Geometry; zero keeps the source dimensions.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Timing
	FPS float64 `yaml:"fps"`

	// Effect chains
	Effects          []EffectConfig `yaml:"effects"`
	SecondaryEffects []EffectConfig `yaml:"secondary_effects"`

	// Transition between the primary and secondary clips.
	Transition *TransitionConfig `yaml:"transition"`

	// Encoding
	Encoder EncoderConfig `yaml:"encoder"`

	// Engine pool sizing; zero values select engine defaults.
	Pool PoolConfig `yaml:"pool"`

	// Logging/Debug
	LogLevel string `yaml:"log_level"`
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// EffectConfig describes one entry of an effect chain. Type selects the
// operation: "color_correction", "transform", or any filter name such as
// "sepia" or "blur". Filter entries use Intensity; color correction and
// transform entries use their dedicated parameter fields.
type EffectConfig struct {
	Type      string  `yaml:"type"`
	Intensity float64 `yaml:"intensity"`

	// Scheduling; a nil Enabled means enabled, a zero End means open-ended.
	Enabled *bool   `yaml:"enabled"`
	Start   float64 `yaml:"start"`
	End     float64 `yaml:"end"`

	// color_correction
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Saturation float64 `yaml:"saturation"`
	Hue        float64 `yaml:"hue"`
	Gamma      float64 `yaml:"gamma"`
	Exposure   float64 `yaml:"exposure"`

	// transform
	Scale          float64 `yaml:"scale"`
	Rotation       float64 `yaml:"rotation"`
	FlipHorizontal bool    `yaml:"flip_horizontal"`
	FlipVertical   bool    `yaml:"flip_vertical"`
	CropX          float64 `yaml:"crop_x"`
	CropY          float64 `yaml:"crop_y"`
	CropWidth      float64 `yaml:"crop_width"`
	CropHeight     float64 `yaml:"crop_height"`

	// blur
	Radius     float64 `yaml:"radius"`
	Iterations int     `yaml:"iterations"`
}

// TransitionConfig schedules a transition to the secondary clip.
type TransitionConfig struct {
	Type     string  `yaml:"type"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
}

// EncoderConfig selects the output container and quality.
type EncoderConfig struct {
	Format  string `yaml:"format"` // "mp4" or "y4m"
	Quality int    `yaml:"quality"`
}

// PoolConfig sizes the engine's scratch block pool.
type PoolConfig struct {
	BlockSize  int `yaml:"block_size"`
	BlockCount int `yaml:"block_count"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		FPS: 30.0,

		Encoder: EncoderConfig{
			Format:  "mp4",
			Quality: 85,
		},

		LogLevel: "info",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToEffect builds the effect this entry describes. Unknown types are an
// error rather than a silent skip so configuration typos surface early.
func (e EffectConfig) ToEffect() (effects.Effect, error) {
	var eff effects.Effect

	switch e.Type {
	case "color_correction":
		p := filters.ColorCorrectionParams{
			Brightness: e.Brightness,
			Contrast:   e.Contrast,
			Saturation: e.Saturation,
			Hue:        e.Hue,
			Gamma:      e.Gamma,
			Exposure:   e.Exposure,
		}
		if p.Gamma == 0 {
			p.Gamma = 1
		}
		eff = effects.NewColorCorrection(p)
	case "transform":
		p := filters.DefaultTransform()
		if e.Scale != 0 {
			p.Scale = e.Scale
		}
		p.Rotation = e.Rotation
		p.FlipHorizontal = e.FlipHorizontal
		p.FlipVertical = e.FlipVertical
		p.CropX = e.CropX
		p.CropY = e.CropY
		if e.CropWidth != 0 {
			p.CropWidth = e.CropWidth
		}
		if e.CropHeight != 0 {
			p.CropHeight = e.CropHeight
		}
		eff = effects.NewTransform(p)
	case "blur":
		if e.Radius != 0 || e.Iterations != 0 {
			eff = effects.NewBlur(filters.BlurParams{Radius: e.Radius, Iterations: e.Iterations})
		} else {
			eff = effects.NewFilter(filters.KindBlur, e.Intensity)
		}
	default:
		kind, ok := filters.ParseKind(e.Type)
		if !ok {
			return effects.Effect{}, fmt.Errorf("unknown effect type %q", e.Type)
		}
		eff = effects.NewFilter(kind, e.Intensity)
	}

	if e.Enabled != nil {
		eff.Enabled = *e.Enabled
	}
	eff.Start = e.Start
	if e.End > 0 {
		eff.End = e.End
	} else {
		eff.End = math.Inf(1)
	}
	return eff, nil
}

func toEffects(entries []EffectConfig) ([]effects.Effect, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]effects.Effect, 0, len(entries))
	for i, e := range entries {
		eff, err := e.ToEffect()
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		out = append(out, eff)
	}
	return out, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	primary, err := toEffects(c.Effects)
	if err != nil {
		return orchestrator.Config{}, err
	}
	secondary, err := toEffects(c.SecondaryEffects)
	if err != nil {
		return orchestrator.Config{}, fmt.Errorf("secondary: %w", err)
	}

	cfg := orchestrator.Config{
		InputDir:     c.InputDir,
		SecondaryDir: c.SecondaryDir,
		OutputPath:   c.OutputPath,

		Width:  c.Width,
		Height: c.Height,
		FPS:    c.FPS,

		Effects:          primary,
		SecondaryEffects: secondary,

		EngineOptions: effects.Options{
			BlockSize:  c.Pool.BlockSize,
			BlockCount: c.Pool.BlockCount,
		},
	}

	if c.Transition != nil {
		kind, ok := transitions.ParseKind(c.Transition.Type)
		if !ok {
			return orchestrator.Config{}, fmt.Errorf("unknown transition type %q", c.Transition.Type)
		}
		if c.Transition.Duration <= 0 {
			return orchestrator.Config{}, fmt.Errorf("transition duration must be positive")
		}
		cfg.Transition = &pipeline.TransitionSpec{
			Kind:     kind,
			Start:    c.Transition.Start,
			Duration: c.Transition.Duration,
		}
	}

	return cfg, nil
}
