// Package worker runs a fixed set of goroutines over submitted items and
// hands back one result per item. Replay uses it to check records in
// parallel while keeping their input order.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"
)

// WorkItem is one submitted value and its position in the input.
type WorkItem[T any] struct {
	Value T
	Index int
}

// Result is what a ProcessFunc produced for the item at Index.
type Result[R any] struct {
	Value R
	Index int
	Error error
}

// ProcessFunc handles a single item. It runs on a pool goroutine.
type ProcessFunc[T, R any] func(item WorkItem[T]) Result[R]

// Pool feeds submitted items to its workers.
//
// Lifecycle: Start, any number of Submit calls, then Close from the
// submitting goroutine while another goroutine drains Results or Collect.
type Pool[T, R any] struct {
	workers int
	buffer  int
	fn      ProcessFunc[T, R]

	in  chan WorkItem[T]
	out chan Result[R]

	running   sync.WaitGroup
	closeOnce sync.Once
	stopped   atomic.Bool
}

type settings struct {
	workers int
	buffer  int
}

// PoolOption configures NewPoolWithOptions.
type PoolOption func(*settings)

// WithWorkers sets the goroutine count. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the channel capacity. Values below 1 are ignored.
func WithBufferSize(n int) PoolOption {
	return func(s *settings) {
		if n > 0 {
			s.buffer = n
		}
	}
}

// NewPool creates a pool. Worker and buffer counts are clamped to at least 1.
func NewPool[T, R any](workers, buffer int, fn ProcessFunc[T, R]) *Pool[T, R] {
	workers = max(workers, 1)
	buffer = max(buffer, 1)
	return &Pool[T, R]{
		workers: workers,
		buffer:  buffer,
		fn:      fn,
		in:      make(chan WorkItem[T], buffer),
		out:     make(chan Result[R], buffer),
	}
}

// NewPoolWithOptions creates a pool with one worker and a buffer of 10
// unless the options say otherwise.
func NewPoolWithOptions[T, R any](fn ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	s := settings{workers: 1, buffer: 10}
	for _, o := range opts {
		o(&s)
	}
	return NewPool(s.workers, s.buffer, fn)
}

// Start launches the workers.
func (p *Pool[T, R]) Start() {
	p.running.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop()
	}
}

func (p *Pool[T, R]) loop() {
	defer p.running.Done()
	for item := range p.in {
		// after Stop, queued items are dropped so Close can finish
		if p.stopped.Load() {
			continue
		}
		p.out <- p.fn(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.in <- item
}

// Stop makes workers skip whatever is still queued. Results already
// produced are still delivered.
func (p *Pool[T, R]) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool[T, R]) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and closes Results.
// Calling it more than once is harmless.
func (p *Pool[T, R]) Close() {
	p.closeOnce.Do(func() {
		close(p.in)
		p.running.Wait()
		close(p.out)
	})
}

// Results is closed once Close has returned.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.out
}

// Collect reads Results to the end and returns them ordered by Index.
func (p *Pool[T, R]) Collect() []Result[R] {
	var all []Result[R]
	for r := range p.out {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all
}

// NumWorkers returns the goroutine count.
func (p *Pool[T, R]) NumWorkers() int { return p.workers }

// BufferSize returns the capacity of the work and result channels.
func (p *Pool[T, R]) BufferSize() int { return p.buffer }
