package spin

import "runtime"

// Strategy decides what a waiter does between two loads of a held lock.
//
// Pause is called after every load that still observes the lock as held.
// spins counts the consecutive failed loads of the current acquisition
// attempt, starting at 1, and is reset after every CAS attempt.
// A Strategy only shapes contention; the lock is correct for any of them.
type Strategy interface {
	Pause(spins int)
}

// Spin is a pure busy-wait. It is the default strategy.
type Spin struct{}

// Pause does nothing.
func (Spin) Pause(int) {}

// Yield gives up the processor on every failed load.
type Yield struct{}

// Pause yields to the scheduler.
func (Yield) Pause(int) { runtime.Gosched() }

const defaultMaxBackoff = 16

// Backoff yields an exponentially growing number of times, capped at Max.
// A zero Max means 16.
type Backoff struct {
	Max int
}

// Pause yields min(2^(spins-1), Max) times.
func (b Backoff) Pause(spins int) {
	for range b.yields(spins) {
		runtime.Gosched()
	}
}

func (b Backoff) yields(spins int) int {
	limit := b.Max
	if limit <= 0 {
		limit = defaultMaxBackoff
	}
	// Shifting past the cap would overflow for long waits.
	n := 1
	for i := 1; i < spins && n < limit; i++ {
		n <<= 1
	}
	return min(n, limit)
}

const defaultAdaptiveSpins = 16

// Adaptive busy-spins for Spins loads and then yields once, starting over.
// A zero Spins means 16.
type Adaptive struct {
	Spins int
}

// Pause yields on every Spins-th failed load.
func (a Adaptive) Pause(spins int) {
	if a.shouldYield(spins) {
		runtime.Gosched()
	}
}

func (a Adaptive) shouldYield(spins int) bool {
	every := a.Spins
	if every <= 0 {
		every = defaultAdaptiveSpins
	}
	return spins%every == 0
}
