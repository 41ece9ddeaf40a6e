package service

import "sync/atomic"

// DispatchLock is a single-slot, non-reentrant guard over dispatch cycles.
// One lock lives for the whole process and is shared by the router and the dispatcher.
type DispatchLock struct {
	inFlight atomic.Bool
}

func NewDispatchLock() *DispatchLock {
	return &DispatchLock{}
}

// TryAcquire moves Idle to InFlight. It never blocks.
func (l *DispatchLock) TryAcquire() bool {
	return l.inFlight.CompareAndSwap(false, true)
}

// Release moves the lock back to Idle. Releasing an idle lock is a no-op.
func (l *DispatchLock) Release() {
	l.inFlight.Store(false)
}

func (l *DispatchLock) InFlight() bool {
	return l.inFlight.Load()
}
