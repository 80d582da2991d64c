// Package framepool provides a fixed-block memory pool for frame buffers.
package framepool

import (
	"fmt"
)

// Pool is a fixed-size block allocator for frame-sized buffers. Reusing a
// single backing slab avoids per-frame heap churn on the processing path.
//
// Allocation is a first-fit linear scan over the block set, O(blockCount).
// This is a known limitation of the design, not a defect; block counts are
// single digits in practice.
//
// A Pool is not safe for concurrent use. Callers that process frames from
// multiple goroutines must use one pool per goroutine or serialize access.
type Pool struct {
	slab      []byte
	blockSize int
	used      []bool
	usedCount int
}

// New creates a pool of blockCount blocks of blockSize bytes each.
func New(blockSize, blockCount int) (*Pool, error) {
	if blockSize <= 0 || blockCount <= 0 {
		return nil, fmt.Errorf("framepool: invalid geometry %d x %d", blockSize, blockCount)
	}
	return &Pool{
		slab:      make([]byte, blockSize*blockCount),
		blockSize: blockSize,
		used:      make([]bool, blockCount),
	}, nil
}

// BlockSize returns the size of each block in bytes.
func (p *Pool) BlockSize() int {
	return p.blockSize
}

// BlockCount returns the total number of blocks.
func (p *Pool) BlockCount() int {
	return len(p.used)
}

// UsedCount returns the number of blocks currently allocated.
func (p *Pool) UsedCount() int {
	return p.usedCount
}

// Alloc returns a free block, or nil if the pool is exhausted. Exhaustion is
// a recoverable, per-call condition: the caller fails the current operation
// and may retry after a Free. Blocks are zeroed before reuse.
func (p *Pool) Alloc() *Block {
	if p == nil || p.usedCount >= len(p.used) {
		return nil
	}
	for i := range p.used {
		if !p.used[i] {
			p.used[i] = true
			p.usedCount++
			off := i * p.blockSize
			return &Block{
				Data: p.slab[off : off+p.blockSize : off+p.blockSize],
				pool: p,
				idx:  i,
			}
		}
	}
	return nil
}

// Free returns a block to the pool. Blocks that are nil, belong to another
// pool, or were already freed are ignored. The block's memory is zeroed so
// stale pixel data cannot leak into the next borrower.
func (p *Pool) Free(b *Block) {
	if p == nil || b == nil || b.pool != p {
		return
	}
	if b.idx < 0 || b.idx >= len(p.used) || !p.used[b.idx] {
		return
	}
	for i := range b.Data {
		b.Data[i] = 0
	}
	p.used[b.idx] = false
	p.usedCount--
	b.pool = nil
}

// Block is a borrowed slice of pool memory. The holder owns Data until the
// block is returned via Pool.Free or Close.
type Block struct {
	Data []byte
	pool *Pool
	idx  int
}

// Close returns the block to its pool. It is idempotent and safe to defer,
// so a borrow is released on every exit path.
func (b *Block) Close() error {
	if b != nil && b.pool != nil {
		b.pool.Free(b)
	}
	return nil
}
