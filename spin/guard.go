package spin

// Guard represents a held Mutex. It is the only handle to the protected value
// outside of WithLock and Do, and it stops working once Unlock is called.
//
// A Guard belongs to the critical section that created it; pair every Lock with
// a deferred Unlock so the Mutex is released even if the section panics.
type Guard[T any] struct {
	m        *Mutex[T]
	released bool
}

// Value returns a pointer to the protected value.
// The pointer must not be retained or used after Unlock.
func (g *Guard[T]) Value() *T {
	if g.released {
		panic("spin: use of released Guard")
	}
	return &g.m.v
}

// Unlock releases the Mutex. Unlocking a Guard twice panics.
func (g *Guard[T]) Unlock() {
	if g.released {
		panic("spin: unlock of released Guard")
	}
	g.released = true
	g.m.release()
}
