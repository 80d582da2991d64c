// Package main provides the CLI entry point for framefx.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framefx/pkg/adapters/filesink"
	"github.com/user/framefx/pkg/adapters/ggrenderer"
	"github.com/user/framefx/pkg/adapters/imagesource"
	"github.com/user/framefx/pkg/adapters/logger"
	"github.com/user/framefx/pkg/adapters/mjpegencoder"
	"github.com/user/framefx/pkg/adapters/nullsink"
	"github.com/user/framefx/pkg/adapters/osfilesystem"
	"github.com/user/framefx/pkg/adapters/y4mencoder"
	"github.com/user/framefx/pkg/config"
	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/orchestrator"
	"github.com/user/framefx/pkg/pipeline"
	"github.com/user/framefx/pkg/ports"
	"github.com/user/framefx/pkg/stages/decode"
	"github.com/user/framefx/pkg/stages/encode"
	"github.com/user/framefx/pkg/stages/process"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "framefx",
		Usage:   l10n.T("Apply effect chains and transitions to image sequences"),
		Version: version,
		Commands: []*cli.Command{
			processCommand(),
			transitionCommand(),
			demoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func processCommand() *cli.Command {
	return &cli.Command{
		Name:      "process",
		Usage:     l10n.T("Process an image sequence into a video"),
		ArgsUsage: "[input directory]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Job configuration YAML file")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output video file path")},
			&cli.StringFlag{Name: "secondary", Usage: l10n.T("Secondary image sequence directory for transitions")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Output width (default: source width)")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Output height (default: source height)")},
			&cli.Float64Flag{Name: "fps", Value: 30, Usage: l10n.T("Output frame rate")},
			&cli.StringSliceFlag{Name: "effect", Aliases: []string{"e"}, Usage: l10n.T("Effect to apply, as name or name:intensity (repeatable)")},
			&cli.StringFlag{Name: "transition", Usage: l10n.T("Transition to the secondary clip (fade, dissolve, wipe_left, ...)")},
			&cli.Float64Flag{Name: "transition-start", Usage: l10n.T("Transition start time in seconds")},
			&cli.Float64Flag{Name: "transition-duration", Value: 1, Usage: l10n.T("Transition duration in seconds")},
		}, outputFlags()...),
		Action: runProcess,
	}
}

func transitionCommand() *cli.Command {
	return &cli.Command{
		Name:      "transition",
		Usage:     l10n.T("Blend two image sequences with a transition"),
		ArgsUsage: "[primary directory] [secondary directory]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output video file path")},
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "fade", Usage: l10n.T("Transition type (fade, dissolve, wipe_left, ...)")},
			&cli.Float64Flag{Name: "start", Usage: l10n.T("Transition start time in seconds")},
			&cli.Float64Flag{Name: "duration", Value: 1, Usage: l10n.T("Transition duration in seconds")},
			&cli.Float64Flag{Name: "fps", Value: 30, Usage: l10n.T("Output frame rate")},
		}, outputFlags()...),
		Action: runTransition,
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: l10n.T("Render a synthetic test pattern video"),
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output video file path")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Value: 640, Usage: l10n.T("Output width")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Value: 480, Usage: l10n.T("Output height")},
			&cli.IntFlag{Name: "frames", Aliases: []string{"n"}, Value: 90, Usage: l10n.T("Number of frames to render")},
			&cli.Float64Flag{Name: "fps", Value: 30, Usage: l10n.T("Output frame rate")},
			&cli.StringSliceFlag{Name: "effect", Aliases: []string{"e"}, Usage: l10n.T("Effect to apply, as name or name:intensity (repeatable)")},
		}, outputFlags()...),
		Action: runDemo,
	}
}

// outputFlags are shared by every command that encodes video.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "mp4", Usage: l10n.T("Output container (mp4 or y4m)")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: mjpegencoder.DefaultQuality, Usage: l10n.T("JPEG quality for MP4 output (1-100)")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
	}
}

func runProcess(c *cli.Context) error {
	cfg, err := buildJobConfig(c)
	if err != nil {
		return err
	}
	return runJob(c, cfg)
}

func runTransition(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return errors.New(l10n.T("transition needs a primary and a secondary directory"))
	}

	cfg := config.Defaults()
	cfg.InputDir = c.Args().Get(0)
	cfg.SecondaryDir = c.Args().Get(1)
	cfg.OutputPath = c.String("output")
	cfg.FPS = c.Float64("fps")
	cfg.Encoder.Format = c.String("format")
	cfg.Encoder.Quality = c.Int("quality")
	cfg.Debug = c.Bool("debug")
	cfg.DebugDir = c.String("debug-dir")
	cfg.LogLevel = c.String("log-level")
	cfg.Transition = &config.TransitionConfig{
		Type:     c.String("type"),
		Start:    c.Float64("start"),
		Duration: c.Float64("duration"),
	}
	return runJob(c, cfg)
}

func runJob(c *cli.Context, cfg config.Config) error {
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	enc, err := newEncoder(cfg.Encoder)
	if err != nil {
		return err
	}

	sink, err := newSink(cfg, fs, renderer)
	if err != nil {
		return err
	}

	orch := orchestrator.New(
		decode.NewStage(imagesource.New(fs, renderer), renderer, log),
		process.NewStage(log),
		encode.NewStage(enc, log),
		fs,
		sink,
		log,
	)

	orchConfig, err := cfg.ToOrchestratorConfig()
	if err != nil {
		return err
	}

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Wrote %d frames (%dx%d, %d ms) to %s",
		result.FrameCount, result.Width, result.Height, result.DurationMs, cfg.OutputPath))
	return nil
}

func runDemo(c *cli.Context) error {
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	width := c.Int("width")
	height := c.Int("height")
	frameCount := c.Int("frames")
	if frameCount < 1 {
		return fmt.Errorf("frame count must be at least 1")
	}

	effectList, err := parseEffectFlags(c.StringSlice("effect"))
	if err != nil {
		return err
	}

	renderer := ggrenderer.New()
	frames := make([]*frame.Frame, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		f := frame.FromImage(ggrenderer.TestPattern(renderer, width, height, i, frameCount))
		if f == nil {
			return fmt.Errorf("render test pattern frame %d", i)
		}
		f.FrameNumber = i
		frames = append(frames, f)
	}

	processInput := pipeline.ProcessInput{
		Frames: frames,
		FPS:    c.Float64("fps"),
	}
	for _, e := range effectList {
		eff, err := e.ToEffect()
		if err != nil {
			return err
		}
		processInput.Effects = append(processInput.Effects, eff)
	}

	processed, err := process.NewStage(log).Execute(ctx, processInput)
	if err != nil {
		return err
	}

	enc, err := newEncoder(config.EncoderConfig{Format: c.String("format"), Quality: c.Int("quality")})
	if err != nil {
		return err
	}
	encoded, err := encode.NewStage(enc, log).Execute(ctx, pipeline.EncodeInput{
		Frames: processed.Frames,
		FPS:    c.Float64("fps"),
	})
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	if err := fs.WriteFile(c.String("output"), encoded.VideoData); err != nil {
		return err
	}
	log.Info(l10n.F("Output saved to %s", c.String("output")))
	return nil
}

// buildJobConfig loads the YAML config when given and applies flag
// overrides on top.
func buildJobConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.Args().Len() > 0 {
		cfg.InputDir = c.Args().First()
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("secondary") {
		cfg.SecondaryDir = c.String("secondary")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
	}
	if c.IsSet("format") {
		cfg.Encoder.Format = c.String("format")
	}
	if c.IsSet("quality") {
		cfg.Encoder.Quality = c.Int("quality")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if c.IsSet("effect") {
		effectList, err := parseEffectFlags(c.StringSlice("effect"))
		if err != nil {
			return cfg, err
		}
		cfg.Effects = append(cfg.Effects, effectList...)
	}

	if c.IsSet("transition") {
		cfg.Transition = &config.TransitionConfig{
			Type:     c.String("transition"),
			Start:    c.Float64("transition-start"),
			Duration: c.Float64("transition-duration"),
		}
	}

	if cfg.InputDir == "" {
		return cfg, errors.New(l10n.T("no input directory (pass it as an argument or set input: in the config)"))
	}
	if cfg.OutputPath == "" {
		return cfg, errors.New(l10n.T("no output path (use -o or set output: in the config)"))
	}
	return cfg, nil
}

// parseEffectFlags turns "name" or "name:intensity" flag values into
// effect entries.
func parseEffectFlags(values []string) ([]config.EffectConfig, error) {
	var out []config.EffectConfig
	for _, v := range values {
		name, arg, hasArg := strings.Cut(v, ":")
		e := config.EffectConfig{Type: name, Intensity: 1}
		if hasArg {
			intensity, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("effect %q: invalid intensity %q", name, arg)
			}
			e.Intensity = intensity
		}
		out = append(out, e)
	}
	return out, nil
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

func newEncoder(ec config.EncoderConfig) (ports.VideoEncoder, error) {
	switch ec.Format {
	case "mp4":
		return mjpegencoder.New(ec.Quality), nil
	case "y4m":
		return y4mencoder.New(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", ec.Format)
	}
}

func newSink(cfg config.Config, fs ports.FileSystem, renderer ports.Renderer) (ports.DebugSink, error) {
	if !cfg.Debug {
		return nullsink.New(), nil
	}
	if err := fs.MkdirAll(cfg.DebugDir); err != nil {
		return nil, fmt.Errorf("create debug directory: %w", err)
	}
	return filesink.New(cfg.DebugDir, fs, renderer), nil
}

func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}
