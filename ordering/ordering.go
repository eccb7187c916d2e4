// Package ordering holds two small multi-goroutine experiments over raw atomics
// that probe the memory-ordering guarantees a spinlock relies on.
//
// RunSeqCst is deterministic in what it may produce: two flags are each stored once
// and two observers check them, and because all of Go's sync/atomic operations take
// part in a single total order, at least one observer always sees both flags set.
// Its result can therefore be checked with SeqCstResult.Valid.
//
// RunRelaxed only demonstrates that different interleavings give different results.
// It always terminates, but nothing about its result is guaranteed and callers must
// not assert on it.
package ordering

import (
	"sync"
	"sync/atomic"
	"time"
)

// SeqCstResult is the outcome of one RunSeqCst.
type SeqCstResult struct {
	// XObserverSawY reports whether the goroutine waiting on x found y already set.
	XObserverSawY bool
	// YObserverSawX reports whether the goroutine waiting on y found x already set.
	YObserverSawX bool
	// Count is the value of the shared counter after both observers finished.
	Count int64
}

// Valid reports whether r is reachable when every flag access is sequentially
// consistent: the count is 1 or 2 and matches the observers' checks.
func (r SeqCstResult) Valid() bool {
	var want int64
	if r.XObserverSawY {
		want++
	}
	if r.YObserverSawX {
		want++
	}
	return r.Count == want && (r.Count == 1 || r.Count == 2)
}

// RunSeqCst runs the two-flag experiment once.
//
// One goroutine stores true into x and another stores true into y, each after its
// configured delay. Two observers spin until x (respectively y) is set, then
// increment a shared counter if the other flag is set as well.
func RunSeqCst(opts ...Option) SeqCstResult {
	cfg := newConfig(opts)

	var x, y atomic.Bool
	var z atomic.Int64
	var res SeqCstResult
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		sleep(cfg.xDelay)
		x.Store(true)
	}()
	go func() {
		defer wg.Done()
		sleep(cfg.yDelay)
		y.Store(true)
	}()
	go func() {
		defer wg.Done()
		for !x.Load() {
		}
		if y.Load() {
			res.XObserverSawY = true
			z.Add(1)
		}
	}()
	go func() {
		defer wg.Done()
		for !y.Load() {
		}
		if x.Load() {
			res.YObserverSawX = true
			z.Add(1)
		}
	}()
	wg.Wait()

	res.Count = z.Load()
	return res
}

// RelaxedResult is the outcome of one RunRelaxed.
type RelaxedResult struct {
	R1 uint64 // y as read by the goroutine that then copies it into x
	R2 uint64 // x as read by the goroutine that then stores 42 into y
}

// RunRelaxed runs the copy-through experiment once.
//
// The first goroutine sleeps for the configured duration, reads y into R1 and
// stores R1 into x. The second reads x into R2 and stores 42 into y. Which of
// the reachable pairs comes out depends on scheduling.
func RunRelaxed(opts ...Option) RelaxedResult {
	cfg := newConfig(opts)

	var x, y atomic.Uint64
	var res RelaxedResult
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		sleep(cfg.sleep)
		r1 := y.Load()
		x.Store(r1)
		res.R1 = r1
	}()
	go func() {
		defer wg.Done()
		r2 := x.Load()
		y.Store(42)
		res.R2 = r2
	}()
	wg.Wait()

	return res
}

// Tally runs fn runs times and counts how often each outcome occurred.
func Tally[K comparable](runs int, fn func() K) map[K]int {
	counts := make(map[K]int)
	for range runs {
		counts[fn()]++
	}
	return counts
}

func sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
