package effects

import (
	"bytes"
	"math"
	"testing"

	"github.com/user/framefx/pkg/adapters/logger"
	"github.com/user/framefx/pkg/filters"
	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/framepool"
)

func solidFrame(t *testing.T, w, h int, r, g, b, a uint8) *frame.Frame {
	t.Helper()
	f, err := frame.NewRGBA(w, h)
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	for i := 0; i < len(f.Data); i += 4 {
		f.Data[i] = r
		f.Data[i+1] = g
		f.Data[i+2] = b
		f.Data[i+3] = a
	}
	return f
}

func newTestChain(t *testing.T, blocks int) (*Chain, *framepool.Pool) {
	t.Helper()
	pool, err := framepool.New(4*4*4, blocks)
	if err != nil {
		t.Fatalf("framepool.New: %v", err)
	}
	c := NewChain(pool, logger.NewNoop())
	t.Cleanup(c.Close)
	return c, pool
}

// testOp lets tests observe chain ordering and force apply failures.
type testOp struct {
	prio Priority
	fn   func(f *frame.Frame) bool
}

func (o *testOp) Priority() Priority        { return o.prio }
func (o *testOp) apply(f *frame.Frame) bool { return o.fn(f) }

func TestEmptyChainIsIdentity(t *testing.T) {
	c, pool := newTestChain(t, 2)
	f := solidFrame(t, 4, 4, 11, 22, 33, 255)
	want := append([]byte(nil), f.Data...)

	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !bytes.Equal(f.Data, want) {
		t.Error("empty chain must not modify the frame")
	}
	if pool.UsedCount() != 0 {
		t.Error("empty chain should not lease scratch blocks")
	}
}

func TestChainCapacity(t *testing.T) {
	c, _ := newTestChain(t, 2)
	for i := 0; i < MaxEffects; i++ {
		idx, err := c.Add(NewFilter(filters.KindSepia, 0.5))
		if err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
		if idx != i {
			t.Fatalf("Add returned index %d, want %d", idx, i)
		}
	}
	idx, err := c.Add(NewFilter(filters.KindSepia, 0.5))
	if err == nil || idx != -1 {
		t.Errorf("Add beyond capacity = (%d, %v), want (-1, error)", idx, err)
	}
	if c.Len() != MaxEffects {
		t.Errorf("Len = %d, want %d", c.Len(), MaxEffects)
	}
}

func TestRemoveShiftsAndClear(t *testing.T) {
	c, _ := newTestChain(t, 2)
	c.Add(NewFilter(filters.KindSepia, 0.1))
	c.Add(NewFilter(filters.KindVintage, 0.2))
	c.Add(NewFilter(filters.KindVignette, 0.3))

	if err := c.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len after remove = %d, want 2", c.Len())
	}
	op := c.Effect(1).Op.(*FilterOp)
	if op.Kind != filters.KindVignette {
		t.Error("Remove should shift later effects down")
	}
	if err := c.Remove(5); err == nil {
		t.Error("Remove out of range should fail")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestDisabledEffectLeavesFrameUntouched(t *testing.T) {
	c, _ := newTestChain(t, 2)
	e := NewFilter(filters.KindBlackWhite, 1.0)
	e.Enabled = false
	c.Add(e)

	f := solidFrame(t, 4, 4, 200, 50, 10, 255)
	want := append([]byte(nil), f.Data...)
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !bytes.Equal(f.Data, want) {
		t.Error("disabled effect must leave the frame byte-identical")
	}
}

func TestPriorityOrdering(t *testing.T) {
	c, _ := newTestChain(t, 2)

	var order []Priority
	record := func(p Priority) *testOp {
		return &testOp{prio: p, fn: func(f *frame.Frame) bool {
			order = append(order, p)
			return true
		}}
	}
	// Insert in reverse priority order; the chain must still run color
	// correction first and the transition slot last.
	c.Add(newEffect(record(PriorityTransition)))
	c.Add(newEffect(record(PriorityTransform)))
	c.Add(newEffect(record(PriorityFilter)))
	c.Add(newEffect(record(PriorityColorCorrection)))

	f := solidFrame(t, 4, 4, 100, 100, 100, 255)
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []Priority{PriorityColorCorrection, PriorityFilter, PriorityTransform, PriorityTransition}
	for i, p := range want {
		if order[i] != p {
			t.Fatalf("execution order %v, want %v", order, want)
		}
	}
}

func TestEqualPriorityKeepsInsertionOrder(t *testing.T) {
	c, _ := newTestChain(t, 2)

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		c.Add(newEffect(&testOp{prio: PriorityFilter, fn: func(f *frame.Frame) bool {
			order = append(order, i)
			return true
		}}))
	}
	f := solidFrame(t, 4, 4, 100, 100, 100, 255)
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("execution order %v, want insertion order", order)
		}
	}
}

func TestFailedEffectIsSkipped(t *testing.T) {
	c, _ := newTestChain(t, 2)
	c.Add(newEffect(&testOp{prio: PriorityFilter, fn: func(f *frame.Frame) bool { return false }}))
	c.Add(NewColorCorrection(filters.ColorCorrectionParams{Brightness: 0.1, Gamma: 1}))

	f := solidFrame(t, 4, 4, 128, 128, 128, 255)
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if f.Data[0] != 153 {
		t.Errorf("pixel = %d, want 153 from the surviving effect", f.Data[0])
	}
}

func TestActiveWindowIsHalfOpen(t *testing.T) {
	e := NewFilter(filters.KindSepia, 1.0)
	e.Start = 1.0
	e.End = 2.0

	cases := []struct {
		ts   float64
		want bool
	}{
		{0.5, false},
		{1.0, true},
		{1.999, true},
		{2.0, false},
	}
	for _, tc := range cases {
		if got := e.ActiveAt(tc.ts); got != tc.want {
			t.Errorf("ActiveAt(%v) = %v, want %v", tc.ts, got, tc.want)
		}
	}
	if math.IsInf(NewFilter(filters.KindSepia, 1).End, 1) != true {
		t.Error("default window should extend to +Inf")
	}
}

func TestWindowedEffectSkipsFrame(t *testing.T) {
	c, _ := newTestChain(t, 2)
	e := NewColorCorrection(filters.ColorCorrectionParams{Brightness: 0.1, Gamma: 1})
	e.Start = 1.0
	e.End = 2.0
	c.Add(e)

	f := solidFrame(t, 4, 4, 128, 128, 128, 255)
	f.Timestamp = 0.5
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if f.Data[0] != 128 {
		t.Errorf("frame outside window changed to %d", f.Data[0])
	}

	f.Timestamp = 1.5
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if f.Data[0] != 153 {
		t.Errorf("frame inside window = %d, want 153", f.Data[0])
	}
}

func TestScratchExhaustionIsRecoverable(t *testing.T) {
	c, pool := newTestChain(t, 1)
	c.Add(NewFilter(filters.KindSepia, 0.5))

	f := solidFrame(t, 4, 4, 128, 128, 128, 255)
	if err := c.Apply(f); err == nil {
		t.Fatal("expected scratch allocation failure with a one-block pool")
	}
	if pool.UsedCount() != 0 {
		t.Errorf("failed allocation leaked %d blocks", pool.UsedCount())
	}
}

func TestFrameLargerThanBlockFails(t *testing.T) {
	c, _ := newTestChain(t, 2)
	c.Add(NewFilter(filters.KindSepia, 0.5))

	f := solidFrame(t, 8, 8, 128, 128, 128, 255)
	if err := c.Apply(f); err == nil {
		t.Fatal("expected error for frame larger than a pool block")
	}
}

func TestMultiEffectPipeline(t *testing.T) {
	c, _ := newTestChain(t, 2)
	c.Add(NewColorCorrection(filters.ColorCorrectionParams{Brightness: 0.1, Gamma: 1}))
	c.Add(NewFilter(filters.KindBlackWhite, 1.0))
	c.Add(NewFilter(filters.KindSepia, 1.0))

	f := solidFrame(t, 4, 4, 100, 150, 200, 255)
	if err := c.Apply(f); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// After full black-and-white conversion the sepia matrix should leave
	// red >= green >= blue.
	r, g, b := f.Data[0], f.Data[1], f.Data[2]
	if r < g || g < b {
		t.Errorf("pixel = [%d %d %d], want warm sepia ordering", r, g, b)
	}
	if f.Data[3] != 255 {
		t.Errorf("alpha = %d, want 255", f.Data[3])
	}
}

func TestEngineDefaults(t *testing.T) {
	e, err := NewEngine(Options{BlockSize: 4 * 4 * 4, BlockCount: 2})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	if e.Pool().BlockCount() != 2 {
		t.Errorf("BlockCount = %d, want 2", e.Pool().BlockCount())
	}

	d, err := NewEngine(Options{})
	if err != nil {
		t.Fatalf("NewEngine defaults: %v", err)
	}
	defer d.Close()
	if d.Pool().BlockSize() != 1920*1080*4 {
		t.Errorf("default BlockSize = %d", d.Pool().BlockSize())
	}
	if d.Pool().BlockCount() != 8 {
		t.Errorf("default BlockCount = %d", d.Pool().BlockCount())
	}
}

func TestEngineProcessStampsAndCounts(t *testing.T) {
	e, err := NewEngine(Options{BlockSize: 4 * 4 * 4, BlockCount: 2})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	e.Chain().Add(NewColorCorrection(filters.ColorCorrectionParams{Brightness: 0.1, Gamma: 1}))

	f := solidFrame(t, 4, 4, 128, 128, 128, 255)
	if err := e.Process(f, 3.25); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if f.Timestamp != 3.25 {
		t.Errorf("Timestamp = %v, want 3.25", f.Timestamp)
	}
	if f.Data[0] != 153 {
		t.Errorf("pixel = %d, want 153", f.Data[0])
	}
	if got := e.Stats().FramesProcessed; got != 1 {
		t.Errorf("FramesProcessed = %d, want 1", got)
	}

	// A failing frame still advances the counter.
	big := solidFrame(t, 8, 8, 0, 0, 0, 255)
	if err := e.Process(big, 4.0); err == nil {
		t.Error("expected failure for oversized frame")
	}
	if got := e.Stats().FramesProcessed; got != 2 {
		t.Errorf("FramesProcessed after failure = %d, want 2", got)
	}
}

func TestEngineClosedRejectsFrames(t *testing.T) {
	e, err := NewEngine(Options{BlockSize: 4 * 4 * 4, BlockCount: 2})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.Close()
	e.Close() // idempotent

	f := solidFrame(t, 4, 4, 0, 0, 0, 255)
	if err := e.Process(f, 0); err == nil {
		t.Error("closed engine should reject frames")
	}
}
