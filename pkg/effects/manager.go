package effects

import (
	"sync"

	"github.com/user/framefx/pkg/frame"
	"github.com/user/framefx/pkg/ports"
)

// Handle identifies an engine owned by a Manager. The zero handle is never
// valid. Handles carry a generation counter, so a handle to a destroyed
// engine stays invalid even when its slot is reused.
type Handle uint64

func makeHandle(gen uint32, idx int) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx+1))
}

func (h Handle) split() (gen uint32, idx int, ok bool) {
	low := uint32(h)
	if low == 0 {
		return 0, 0, false
	}
	return uint32(h >> 32), int(low - 1), true
}

type slot struct {
	engine *Engine
	gen    uint32
}

// Manager multiplexes several independent engines behind opaque handles.
// Every method fails softly on stale or zero handles so callers driving the
// manager from an external control surface never crash it. Safe for
// concurrent use.
type Manager struct {
	mu     sync.Mutex
	slots  []slot
	opts   Options
	logger ports.Logger
}

// NewManager creates an empty manager; engines it creates use opts.
func NewManager(opts Options) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		opts:   opts,
		logger: opts.Logger.WithComponent("effects-manager"),
	}
}

// Create builds a new engine and returns its handle, or 0 on failure.
func (m *Manager) Create() Handle {
	engine, err := NewEngine(m.opts)
	if err != nil {
		m.logger.Error("create engine: %v", err)
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		if m.slots[i].engine == nil {
			m.slots[i].engine = engine
			m.slots[i].gen++
			return makeHandle(m.slots[i].gen, i)
		}
	}
	m.slots = append(m.slots, slot{engine: engine})
	return makeHandle(0, len(m.slots)-1)
}

// resolve returns the engine for h, or nil when h is zero, stale or out of
// range. Callers must hold m.mu.
func (m *Manager) resolve(h Handle) *Engine {
	gen, idx, ok := h.split()
	if !ok || idx >= len(m.slots) {
		return nil
	}
	s := &m.slots[idx]
	if s.engine == nil || s.gen != gen {
		return nil
	}
	return s.engine
}

// Destroy closes the engine behind h and retires the handle. Destroying an
// unknown handle is a no-op.
func (m *Manager) Destroy(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.resolve(h)
	if engine == nil {
		return
	}
	_, idx, _ := h.split()
	engine.Close()
	m.slots[idx].engine = nil
}

// AddEffect appends an effect to the engine's chain and returns its index,
// or -1 when the handle is invalid or the chain is full.
func (m *Manager) AddEffect(h Handle, e Effect) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.resolve(h)
	if engine == nil {
		return -1
	}
	idx, err := engine.Chain().Add(e)
	if err != nil {
		m.logger.Warn("add effect: %v", err)
		return -1
	}
	return idx
}

// RemoveEffect removes the effect at index from the engine's chain.
func (m *Manager) RemoveEffect(h Handle, index int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.resolve(h)
	if engine == nil {
		return false
	}
	return engine.Chain().Remove(index) == nil
}

// ClearEffects empties the engine's chain.
func (m *Manager) ClearEffects(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.resolve(h)
	if engine == nil {
		return false
	}
	engine.Chain().Clear()
	return true
}

// ProcessFrame wraps a raw RGBA buffer and runs the engine's chain over it
// in place. The buffer must be exactly width*height*4 bytes. Returns false
// on an invalid handle, a malformed buffer or a chain failure.
func (m *Manager) ProcessFrame(h Handle, buf []byte, width, height int, timestamp float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.resolve(h)
	if engine == nil {
		return false
	}
	f, err := frame.WrapRGBA(buf, width, height)
	if err != nil {
		m.logger.Warn("process frame: %v", err)
		return false
	}
	if err := engine.Process(f, timestamp); err != nil {
		return false
	}
	return true
}

// Stats returns the engine's counters; ok is false for invalid handles.
func (m *Manager) Stats(h Handle) (stats Stats, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.resolve(h)
	if engine == nil {
		return Stats{}, false
	}
	return engine.Stats(), true
}

// Close destroys every remaining engine.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		if m.slots[i].engine != nil {
			m.slots[i].engine.Close()
			m.slots[i].engine = nil
		}
	}
}
