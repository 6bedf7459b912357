package queue

import "sync/atomic"

// ownerGuard detects concurrent calls into a single-owner structure.
type ownerGuard struct {
	active atomic.Uint32
}

// acquire panics if another call is already in progress.
func (g *ownerGuard) acquire(op string) {
	if !g.active.CompareAndSwap(0, 1) {
		panic("queue: concurrent " + op + " on Queue - only one owner allowed")
	}
}

func (g *ownerGuard) release() {
	g.active.Store(0)
}
