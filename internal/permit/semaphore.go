// Package permit implements the counted permit semaphore the channel
// package uses to meter buffer occupancy. It is deliberately a raw
// POSIX-style counting semaphore: Post increments the count
// unconditionally, with no requirement that a matching Wait preceded it,
// rather than golang.org/x/sync/semaphore.Weighted, whose Release panics
// if it is not backed by a prior Acquire. The channel's close cascade
// depends on exactly that unconditional post: Close always posts one
// permit per side regardless of whether anything is waiting to consume
// it.
package permit

import "sync"

// Semaphore is a counting semaphore guarded by a condition variable.
type Semaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

// New returns a semaphore with an initial count of n.
func New(n int) *Semaphore {
	s := &Semaphore{count: n}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Wait blocks until a permit is available, then takes it.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	for s.count == 0 {
		s.cond.Wait()
	}
	s.count--
	s.mu.Unlock()
}

// TryWait takes a permit if one is immediately available, without
// blocking. It reports whether it succeeded.
func (s *Semaphore) TryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}

// Post returns a permit, waking one blocked Wait if any is pending.
func (s *Semaphore) Post() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	s.cond.Signal()
}
