// Package channel implements a generic synchronous message-passing
// channel: bounded and rendezvous buffering, blocking and non-blocking
// Send/Receive, graceful Close, and a multi-way Select that waits on an
// arbitrary set of prospective send/receive operations and completes the
// first one that becomes ready.
//
// A Channel[T] is a shared object, not a pair of endpoints: any number of
// goroutines may Send, Receive, Close, or Select on it concurrently.
package channel

import (
	"sync"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/thrasher-corp/chantex/internal/permit"
	"github.com/thrasher-corp/chantex/internal/queue"
	"github.com/thrasher-corp/chantex/internal/waiterlist"
	"github.com/thrasher-corp/chantex/token"
)

// Channel is a generic, capacity-bounded FIFO channel between goroutines.
// Capacity zero makes it a rendezvous-style channel backed by one internal
// staging slot: a Send completes as soon as that slot is empty, without
// waiting for a receiver, and a further Send blocks (or returns
// StatusWouldBlock) until a receiver has taken the staged item. Cap still
// reports zero.
type Channel[T any] struct {
	id       uuid.UUID
	capacity int

	mu     sync.Mutex
	buffer *queue.Queue[T]
	closed bool

	sendPermits *permit.Semaphore
	recvPermits *permit.Semaphore

	sendersMu      sync.Mutex
	sendersWaiting *waiterlist.List

	recvsMu      sync.Mutex
	recvsWaiting *waiterlist.List
}

// New returns a ready Channel[T] with the given capacity. A capacity of
// zero is legal and creates a rendezvous channel.
func New[T any](capacity int) (*Channel[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "channel: generating id")
	}
	// capacity 0 uses a 1-slot staging buffer internally; see DESIGN.md.
	bufCap := capacity
	if bufCap == 0 {
		bufCap = 1
	}
	return &Channel[T]{
		id:             id,
		capacity:       capacity,
		buffer:         queue.New[T](bufCap),
		sendPermits:    permit.New(bufCap),
		recvPermits:    permit.New(0),
		sendersWaiting: waiterlist.New(),
		recvsWaiting:   waiterlist.New(),
	}, nil
}

// ID returns this channel's identity, assigned once at construction. It is
// only useful for debugging/logging; it is never used for routing.
func (c *Channel[T]) ID() uuid.UUID {
	return c.id
}

// Cap returns the channel's capacity.
func (c *Channel[T]) Cap() int {
	return c.capacity
}

// Send delivers item to the channel. If blocking is true, Send waits for
// room (or for the channel to close); if false, it returns StatusWouldBlock
// immediately when there is none.
func (c *Channel[T]) Send(item T, blocking bool) Status {
	if blocking {
		c.sendPermits.Wait()
	} else if !c.sendPermits.TryWait() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return StatusClosed
		}
		return StatusWouldBlock
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.sendPermits.Post()
		return StatusClosed
	}
	c.buffer.Add(item)
	c.mu.Unlock()

	c.recvPermits.Post()
	c.signal(&c.recvsMu, c.recvsWaiting)
	return StatusSuccess
}

// Receive takes the oldest item from the channel. If blocking is true,
// Receive waits for an item (or for the channel to close); if false, it
// returns StatusWouldBlock immediately when there is none.
func (c *Channel[T]) Receive(blocking bool) (T, Status) {
	var zero T
	if blocking {
		c.recvPermits.Wait()
	} else if !c.recvPermits.TryWait() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return zero, StatusClosed
		}
		return zero, StatusWouldBlock
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.recvPermits.Post()
		return zero, StatusClosed
	}
	item := c.buffer.Remove()
	c.mu.Unlock()

	c.sendPermits.Post()
	c.signal(&c.sendersMu, c.sendersWaiting)
	return item, StatusSuccess
}

// Close marks the channel closed. Every goroutine currently blocked in
// Send, Receive, or Select on this channel returns StatusClosed within
// bounded time. Close is idempotent: calls after the first return
// StatusClosed instead of StatusSuccess.
func (c *Channel[T]) Close() Status {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return StatusClosed
	}
	c.closed = true
	// One post per side is enough to start the cascade: every
	// Closed-returning path above re-posts its permit before returning,
	// so the wave propagates through every blocked waiter in finite
	// time, whether or not anything was waiting when Close ran.
	c.sendPermits.Post()
	c.recvPermits.Post()
	c.mu.Unlock()

	c.signal(&c.sendersMu, c.sendersWaiting)
	c.signal(&c.recvsMu, c.recvsWaiting)
	return StatusSuccess
}

// Destroy checks that Close has already succeeded and returns ErrNotClosed
// otherwise. It frees nothing itself; the garbage collector reclaims the
// channel's buffer, permits and waiter lists. The caller is responsible for
// having joined every goroutine that could still be touching the channel.
func (c *Channel[T]) Destroy() error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		return errors.Wrapf(ErrNotClosed, "channel %s", c.id)
	}
	return nil
}

func (c *Channel[T]) signal(mu *sync.Mutex, list *waiterlist.List) {
	mu.Lock()
	list.Each(func(tok *token.Token) { tok.Signal() })
	mu.Unlock()
}

// The following methods implement the unexported selectable interface so
// a *Channel[T] can participate in a heterogeneous Select call. They are
// thin, non-blocking wrappers around the same state Send/Receive/Close
// mutate, never a second code path.

func (c *Channel[T]) register(dir Direction, tok *token.Token) {
	switch dir {
	case dirSend:
		c.sendersMu.Lock()
		c.sendersWaiting.Insert(tok)
		c.sendersMu.Unlock()
	case dirReceive:
		c.recvsMu.Lock()
		c.recvsWaiting.Insert(tok)
		c.recvsMu.Unlock()
	}
}

func (c *Channel[T]) deregister(dir Direction, tok *token.Token) {
	switch dir {
	case dirSend:
		c.sendersMu.Lock()
		c.sendersWaiting.Remove(tok)
		c.sendersMu.Unlock()
	case dirReceive:
		c.recvsMu.Lock()
		c.recvsWaiting.Remove(tok)
		c.recvsMu.Unlock()
	}
}

func (c *Channel[T]) trySend(item any) Status {
	typed, ok := item.(T)
	if !ok {
		return StatusOtherError
	}
	return c.Send(typed, false)
}

func (c *Channel[T]) tryReceive(out any) Status {
	ptr, ok := out.(*T)
	if !ok {
		return StatusOtherError
	}
	item, status := c.Receive(false)
	if status == StatusSuccess {
		*ptr = item
	}
	return status
}
