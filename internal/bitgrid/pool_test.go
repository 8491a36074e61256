package bitgrid

import (
	"sync"
	"testing"
)

func TestPool_GetReturnsCleared(t *testing.T) {
	p := NewPool(4)
	g := p.Get(3, 4)
	if g == nil {
		t.Fatal("Get() returned nil")
	}
	g.Set(1, 1, 1)
	p.Put(g)

	again := p.Get(3, 4)
	if again != g {
		t.Error("Get() should reuse the pooled grid")
	}
	if again.Count() != 0 {
		t.Errorf("reused grid Count() = %d, want 0", again.Count())
	}
}

func TestPool_InvalidDimensions(t *testing.T) {
	p := NewPool(4)
	if g := p.Get(0, 5); g != nil {
		t.Error("Get(0, 5) should return nil")
	}
	p.Put(nil) // must not panic
}

func TestPool_BucketLimit(t *testing.T) {
	p := NewPool(2)
	for range 5 {
		g, _ := New(2, 2)
		p.Put(g)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPool_SeparateBuckets(t *testing.T) {
	p := NewPool(0)
	a, _ := New(2, 2)
	b, _ := New(3, 3)
	p.Put(a)
	p.Put(b)
	if got := p.Get(3, 3); got != b {
		t.Error("Get(3, 3) should return the 3x3 grid")
	}
	if got := p.Get(2, 2); got != a {
		t.Error("Get(2, 2) should return the 2x2 grid")
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := NewPool(16)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				g := p.Get(8, 8)
				g.Set(0, 0, 1)
				p.Put(g)
			}
		}()
	}
	wg.Wait()
	if p.Len() > 16 {
		t.Errorf("Len() = %d exceeds bucket limit", p.Len())
	}
}

func TestDefaultPool(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	g := Default().Get(1, 1)
	if g == nil || g.Rows() != 1 {
		t.Fatal("Default().Get(1, 1) returned wrong grid")
	}
	Default().Put(g)
}
