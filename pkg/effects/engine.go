package effects

import (
	"fmt"
	"time"

	"github.com/user/framefx/pkg/adapters/logger"
	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/framepool"
	"github.com/user/framefx/pkg/ports"
)

// Options configures an Engine. Zero values select defaults suitable for
// full HD RGBA frames.
type Options struct {
	// BlockSize is the byte size of one pooled scratch block. Defaults to
	// 1920*1080*4, one full HD RGBA frame.
	BlockSize int

	// BlockCount is the number of blocks in the pool. Defaults to 8.
	BlockCount int

	// Logger receives chain warnings and engine lifecycle messages.
	// Defaults to a no-op logger.
	Logger ports.Logger
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.BlockSize <= 0 {
		out.BlockSize = 1920 * 1080 * 4
	}
	if out.BlockCount <= 0 {
		out.BlockCount = 8
	}
	if out.Logger == nil {
		out.Logger = logger.NewNoop()
	}
	return out
}

// Stats captures engine counters. FramesProcessed counts every Process
// call, including failed ones; LastProcessTime is the wall time of the most
// recent call.
type Stats struct {
	FramesProcessed uint64
	LastProcessTime time.Duration
}

// Engine owns a frame pool and an effect chain and applies the chain to
// frames one at a time. Not safe for concurrent use; run one engine per
// stream.
type Engine struct {
	pool   *framepool.Pool
	chain  *Chain
	logger ports.Logger
	stats  Stats
	closed bool
}

// NewEngine creates an engine with its own pool and an empty chain.
func NewEngine(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	pool, err := framepool.New(opts.BlockSize, opts.BlockCount)
	if err != nil {
		return nil, fmt.Errorf("effects: create pool: %w", err)
	}
	log := opts.Logger.WithComponent("effects")
	return &Engine{
		pool:   pool,
		chain:  NewChain(pool, log),
		logger: log,
	}, nil
}

// Chain exposes the engine's effect chain for adding and removing effects.
func (e *Engine) Chain() *Chain {
	return e.chain
}

// Pool exposes the engine's frame pool, mainly for diagnostics.
func (e *Engine) Pool() *framepool.Pool {
	return e.pool
}

// Process stamps the frame with the given timestamp and runs the chain over
// it. The stats counter advances even when the chain fails, so callers can
// correlate failure counts with frame numbers.
func (e *Engine) Process(f *frame.Frame, timestamp float64) error {
	if e.closed {
		return fmt.Errorf("effects: engine closed")
	}
	if !f.Valid() {
		return fmt.Errorf("effects: invalid frame")
	}
	f.Timestamp = timestamp

	start := time.Now()
	err := e.chain.Apply(f)
	e.stats.LastProcessTime = time.Since(start)
	e.stats.FramesProcessed++

	if err != nil {
		e.logger.Warn("frame %d failed: %v", f.FrameNumber, err)
		return err
	}
	return nil
}

// Stats returns a copy of the engine counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Close releases the chain's scratch buffers. The engine must not be used
// afterwards.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.chain.Close()
	e.closed = true
}
