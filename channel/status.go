package channel

import "github.com/pkg/errors"

// Status is the closed enumeration of outcomes a Send, Receive, or Select
// can return. It is deliberately not a Go error: WouldBlock and Closed are
// routine, expected outcomes a caller branches on, not failures.
type Status int

const (
	// StatusSuccess means the operation completed as requested.
	StatusSuccess Status = iota
	// StatusWouldBlock means a non-blocking Send/Receive could not
	// proceed at the instant it was observed. Select never returns this;
	// it blocks instead.
	StatusWouldBlock
	// StatusClosed means the channel was closed; no data was transferred.
	// For Close itself, it means the channel was already closed.
	StatusClosed
	// StatusOtherError means a selectable operation's erased payload did
	// not match the channel's element type. SendOp/ReceiveOp tie item's
	// type to the channel's at compile time, so no path reachable
	// through the public API produces this; trySend/tryReceive still
	// check it rather than trust the type-erased selectable interface.
	StatusOtherError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWouldBlock:
		return "would_block"
	case StatusClosed:
		return "closed"
	case StatusOtherError:
		return "other_error"
	default:
		return "unknown_status"
	}
}

var (
	// ErrInvalidCapacity is returned by New when capacity is negative.
	ErrInvalidCapacity = errors.New("channel: capacity must be >= 0")
	// ErrNotClosed is returned by Destroy when called on a channel that
	// has not had Close called on it yet.
	ErrNotClosed = errors.New("channel: destroy called before close")
)
