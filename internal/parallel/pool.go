package parallel

import (
	"cmp"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
)

// bandJob is one band queued on a BandPool. The worker that picks it up
// writes the band's result into out.
type bandJob struct {
	band Band
	thin func(Band) bandResult
	out  *bandResult
	wg   *sync.WaitGroup
}

func (j *bandJob) run() {
	defer j.wg.Done()
	*j.out = j.thin(j.band)
}

// BandPool thins bands on a fixed set of goroutines.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty, so one band that needs many passes does not leave the remaining
// workers idle.
//
// Thread safety: Run may be called from several goroutines at once.
// Close must not run concurrently with Run.
type BandPool struct {
	workers int
	queues  []chan *bandJob
	done    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// NewBandPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewBandPool(workers int) *BandPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &BandPool{
		workers: workers,
		queues:  make([]chan *bandJob, workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan *bandJob, max(workers*4, 8))
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *BandPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case j := <-own:
			j.run()
			continue
		case <-p.done:
			p.drain(own)
			return
		default:
		}

		if j := p.steal(id); j != nil {
			j.run()
			continue
		}

		select {
		case j := <-own:
			j.run()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

// drain runs the jobs left in queue without blocking.
func (p *BandPool) drain(queue chan *bandJob) {
	for {
		select {
		case j := <-queue:
			j.run()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *BandPool) steal(id int) *bandJob {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case j := <-p.queues[i]:
			return j
		default:
		}
	}
	return nil
}

// Run thins every band with thin and returns the results in band order,
// one per band. It returns once all bands have finished.
//
// Bands that read more rows are queued first. Edge bands borrow padding
// from one side only, so they are the cheapest and fill in the tail.
// On a closed pool the bands run on the calling goroutine.
func (p *BandPool) Run(bands []Band, thin func(Band) bandResult) []bandResult {
	results := make([]bandResult, len(bands))
	if len(bands) == 0 {
		return results
	}
	if p.closed.Load() {
		for i, b := range bands {
			results[i] = thin(b)
		}
		return results
	}

	order := make([]int, len(bands))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(bands[b].FetchRows(), bands[a].FetchRows())
	})

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for n, i := range order {
		j := &bandJob{band: bands[i], thin: thin, out: &results[i], wg: &wg}
		select {
		case p.queues[n%p.workers] <- j:
		case <-p.done:
			j.run()
		}
	}
	wg.Wait()
	return results
}

// Close stops the workers after the queued bands have run.
// Close is safe to call multiple times.
func (p *BandPool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *BandPool) Workers() int {
	return p.workers
}
