// Package token implements the per-select notification token: a one-shot,
// coalescing wake-up signal owned by a single Select call. Its pointer
// identity is what every channel's waiter list keys on.
package token

import "context"

// Token is a binary, self-coalescing signal: any number of Signal calls
// between two Wait calls are collapsed into a single wake-up. That is
// sufficient for Select, which always rescans all of its ops on every
// wake rather than trusting the signal to say which op became ready.
type Token struct {
	wake chan struct{}
}

// New returns a fresh, unsignalled token.
func New() *Token {
	return &Token{wake: make(chan struct{}, 1)}
}

// Signal wakes any goroutine blocked in Wait. It never blocks itself:
// if a signal is already pending, this call is a no-op.
func (t *Token) Signal() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Wait blocks until Signal has been called at least once since the last
// Wait returned, or until ctx is done.
func (t *Token) Wait(ctx context.Context) error {
	select {
	case <-t.wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
