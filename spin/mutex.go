// Package spin implements a spinlock-backed mutex that owns the value it protects.
//
// A Mutex[T] couples a single atomic lock flag with a value of type T. The value is
// only reachable while the flag is held, through one of:
//   - WithLock, which runs a function with exclusive access and returns its result
//   - Mutex.Do, the result-less form of WithLock
//   - Mutex.Lock and Mutex.TryLock, which return a Guard scoped to the critical section
//
// Acquisition is test-and-test-and-set: a waiter issues a compare-and-swap only after
// a plain load has observed the lock free, so contended waiters spin on a shared cache
// line instead of hammering it with exclusive operations. What a waiter does between
// loads is chosen by a Strategy (Spin, Yield, Backoff or Adaptive).
//
// Example usage:
//
//	counter := spin.New(0)
//
//	// Closure form, lock released on every exit path.
//	n := spin.WithLock(counter, func(v *int) int {
//	    *v++
//	    return *v
//	})
//
//	// Guard form.
//	g := counter.Lock()
//	defer g.Unlock()
//	*g.Value() += n
//
// The lock is not fair, not reentrant and never parks the goroutine. Calling WithLock
// (or Lock) on a Mutex the calling goroutine already holds deadlocks forever.
// A panic inside the critical section releases the lock and keeps propagating; the
// Mutex is not poisoned.
package spin

import "sync/atomic"

const (
	unlocked = false
	locked   = true
)

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Mutex is a spinlock that owns a value of type T.
//
// The zero value is an unlocked Mutex holding the zero T and using the Spin strategy.
// A Mutex must not be copied after first use; share it by pointer.
type Mutex[T any] struct {
	_        noCopy
	state    atomic.Bool
	strategy Strategy
	v        T
}

// New creates an unlocked Mutex holding v.
func New[T any](v T, opts ...Option) *Mutex[T] {
	cfg := config{strategy: Spin{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Mutex[T]{strategy: cfg.strategy, v: v}
}

// WithLock acquires m, calls fn with exclusive access to the protected value and
// releases m, returning whatever fn returned.
// Every write fn makes is visible to the next goroutine that acquires m.
func WithLock[T, R any](m *Mutex[T], fn func(v *T) R) R {
	m.acquire()
	defer m.release()
	return fn(&m.v)
}

// Do is WithLock for functions that return nothing.
func (m *Mutex[T]) Do(fn func(v *T)) {
	m.acquire()
	defer m.release()
	fn(&m.v)
}

// Lock acquires m and returns a Guard giving access to the protected value until
// Guard.Unlock is called.
func (m *Mutex[T]) Lock() *Guard[T] {
	m.acquire()
	return &Guard[T]{m: m}
}

// TryLock attempts to acquire m without waiting.
// It returns a Guard and true on success, and nil and false if m is held.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	if !m.state.CompareAndSwap(unlocked, locked) {
		return nil, false
	}
	return &Guard[T]{m: m}, true
}

// Locked reports whether m was held at the moment of the call.
// The answer may be stale by the time it is returned.
func (m *Mutex[T]) Locked() bool { return m.state.Load() }

func (m *Mutex[T]) acquire() {
	// Fast path for the uncontended case.
	if m.state.CompareAndSwap(unlocked, locked) {
		return
	}

	strategy := m.strategy
	if strategy == nil {
		strategy = Spin{}
	}

	for {
		// Only read while the lock is held so waiters share the cache line.
		for spins := 1; m.state.Load() == locked; spins++ {
			strategy.Pause(spins)
		}

		if m.state.CompareAndSwap(unlocked, locked) {
			return
		}
	}
}

func (m *Mutex[T]) release() { m.state.Store(unlocked) }
