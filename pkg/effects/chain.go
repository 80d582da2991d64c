package effects

import (
	"fmt"
	"sort"

	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/framepool"
	"github.com/user/framefx/pkg/ports"
)

// MaxEffects caps the number of effects a single chain can hold.
const MaxEffects = 32

// Chain holds an ordered list of effects and applies the active ones to
// frames in priority order. Intermediate results live in two pooled scratch
// buffers that ping-pong between passes, so a chain of any length allocates
// at most two blocks. Not safe for concurrent use.
type Chain struct {
	effects []Effect
	sorted  bool
	pool    *framepool.Pool
	logger  ports.Logger

	temp1, temp2 *framepool.Block
}

// NewChain creates an empty chain drawing scratch memory from pool.
func NewChain(pool *framepool.Pool, logger ports.Logger) *Chain {
	return &Chain{
		effects: make([]Effect, 0, MaxEffects),
		pool:    pool,
		logger:  logger,
	}
}

// Add appends an effect and returns its index. It returns -1 and an error
// when the chain is full.
func (c *Chain) Add(e Effect) (int, error) {
	if len(c.effects) >= MaxEffects {
		return -1, fmt.Errorf("effects: chain full (%d effects)", MaxEffects)
	}
	c.effects = append(c.effects, e)
	c.sorted = false
	return len(c.effects) - 1, nil
}

// Remove deletes the effect at index, shifting later effects down. Indices
// of effects added after the removed one therefore change.
func (c *Chain) Remove(index int) error {
	if index < 0 || index >= len(c.effects) {
		return fmt.Errorf("effects: index %d out of range [0,%d)", index, len(c.effects))
	}
	c.effects = append(c.effects[:index], c.effects[index+1:]...)
	return nil
}

// Clear removes all effects.
func (c *Chain) Clear() {
	c.effects = c.effects[:0]
	c.sorted = true
}

// Len returns the number of effects in the chain.
func (c *Chain) Len() int {
	return len(c.effects)
}

// Effect returns a pointer to the effect at index for in-place updates such
// as toggling Enabled or re-windowing. Returns nil when out of range.
func (c *Chain) Effect(index int) *Effect {
	if index < 0 || index >= len(c.effects) {
		return nil
	}
	return &c.effects[index]
}

// sortByPriority orders effects by priority class. The sort is stable so
// effects with equal priority keep their insertion order.
func (c *Chain) sortByPriority() {
	if c.sorted {
		return
	}
	sort.SliceStable(c.effects, func(i, j int) bool {
		return c.effects[i].Op.Priority() < c.effects[j].Op.Priority()
	})
	c.sorted = true
}

// ensureScratch leases the two scratch blocks, sized for frames of up to
// the pool's block size.
func (c *Chain) ensureScratch(frameBytes int) error {
	if frameBytes > c.pool.BlockSize() {
		return fmt.Errorf("effects: frame needs %d bytes, pool blocks are %d",
			frameBytes, c.pool.BlockSize())
	}
	if c.temp1 == nil {
		if c.temp1 = c.pool.Alloc(); c.temp1 == nil {
			return fmt.Errorf("effects: scratch allocation failed, pool exhausted")
		}
	}
	if c.temp2 == nil {
		if c.temp2 = c.pool.Alloc(); c.temp2 == nil {
			c.temp1.Close()
			c.temp1 = nil
			return fmt.Errorf("effects: scratch allocation failed, pool exhausted")
		}
	}
	return nil
}

// Apply runs every enabled effect whose window covers the frame's timestamp,
// in priority order, mutating the frame in place. An effect whose operation
// declines to run is logged and skipped without aborting the chain.
func (c *Chain) Apply(f *frame.Frame) error {
	if !f.Valid() {
		return fmt.Errorf("effects: invalid frame")
	}
	if len(c.effects) == 0 {
		return nil
	}
	c.sortByPriority()

	frameBytes := len(f.Data)
	if err := c.ensureScratch(frameBytes); err != nil {
		return err
	}

	// cur points at the buffer holding the latest result. The first applied
	// effect works on the frame itself; later ones work on a scratch copy so
	// a failing effect never leaves a half-written frame.
	cur := f
	scratch := &frame.Frame{
		Width: f.Width, Height: f.Height, Stride: f.Stride,
		Format: f.Format, Timestamp: f.Timestamp, FrameNumber: f.FrameNumber,
	}
	next := c.temp1
	applied := 0

	for i := range c.effects {
		e := &c.effects[i]
		if !e.ActiveAt(f.Timestamp) {
			continue
		}
		if applied > 0 {
			scratch.Data = next.Data[:frameBytes]
			copy(scratch.Data, cur.Data)
			cur = scratch
			scratch = &frame.Frame{
				Width: f.Width, Height: f.Height, Stride: f.Stride,
				Format: f.Format, Timestamp: f.Timestamp, FrameNumber: f.FrameNumber,
			}
			if next == c.temp1 {
				next = c.temp2
			} else {
				next = c.temp1
			}
		}
		if !e.Op.apply(cur) {
			c.logger.Warn("effect %d did not apply, skipping", i)
			continue
		}
		applied++
	}

	if cur != f {
		copy(f.Data, cur.Data)
	}
	return nil
}

// Close releases the scratch buffers back to the pool.
func (c *Chain) Close() {
	if c.temp1 != nil {
		c.temp1.Close()
		c.temp1 = nil
	}
	if c.temp2 != nil {
		c.temp2.Close()
		c.temp2 = nil
	}
}
