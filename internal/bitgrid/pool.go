package bitgrid

import "sync"

// Pool is a thread-safe pool for reusing Grid instances.
//
// The thinning engine allocates one removal mask per invocation; concurrent
// bands of the same height draw from the same bucket.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Grid
	maxSize int // max grids per bucket
}

// poolKey identifies a bucket of identically sized grids.
type poolKey struct {
	rows int
	cols int
}

// NewPool creates a pool that retains at most maxPerBucket grids per size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Grid),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared grid with the given dimensions, reusing a pooled
// one when available. It returns nil for invalid dimensions.
func (p *Pool) Get(rows, cols int) *Grid {
	key := poolKey{rows: rows, cols: cols}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		g := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		g.Clear()
		return g
	}
	p.mu.Unlock()

	g, err := New(rows, cols)
	if err != nil {
		return nil
	}
	return g
}

// Put returns a grid to the pool. Nil grids and grids beyond the bucket
// limit are dropped.
func (p *Pool) Put(g *Grid) {
	if g == nil {
		return
	}
	key := poolKey{rows: g.rows, cols: g.cols}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, g)
}

// Len returns the number of pooled grids across all sizes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

var defaultPool = NewPool(8)

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
