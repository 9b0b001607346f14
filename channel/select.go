package channel

import (
	"context"

	"github.com/thrasher-corp/chantex/token"
)

// Direction distinguishes a prospective Send op from a prospective
// Receive op within a Select call.
type Direction int

const (
	dirSend Direction = iota
	dirReceive
)

// selectable is the non-generic face every *Channel[T] presents to
// Select, letting one call mix channels of different element types.
type selectable interface {
	register(dir Direction, tok *token.Token)
	deregister(dir Direction, tok *token.Token)
	trySend(item any) Status
	tryReceive(out any) Status
}

// Op is one prospective send or receive operation passed to Select. Build
// one with SendOp or ReceiveOp; the zero value is not usable.
type Op struct {
	target selectable
	dir    Direction
	item   any
	out    any
}

// SendOp builds a prospective send of item on ch for use with Select.
func SendOp[T any](ch *Channel[T], item T) Op {
	return Op{target: ch, dir: dirSend, item: item}
}

// ReceiveOp builds a prospective receive on ch for use with Select. On a
// successful receive, the result is written to *out. out's slot belongs
// solely to this op: even if the same channel also appears in a Send op
// elsewhere in the same Select call, that op's item is a separate field
// and can never be overwritten by this op's write-back.
func ReceiveOp[T any](ch *Channel[T], out *T) Op {
	return Op{target: ch, dir: dirReceive, out: out}
}

// Select waits on every op in ops and completes exactly one: the
// lowest-indexed op that is ready. If none is ready on entry, Select
// blocks until a send, receive, or close on any participating channel
// makes one ready, then rescans. It returns the index of the op it
// completed and that op's status, which is StatusSuccess or StatusClosed
// (never StatusWouldBlock, since Select blocks instead of returning that).
func Select(ops ...Op) (int, Status) {
	tok := token.New()

	for i := range ops {
		ops[i].target.register(ops[i].dir, tok)
	}

	for {
		for i := range ops {
			var status Status
			switch ops[i].dir {
			case dirSend:
				status = ops[i].target.trySend(ops[i].item)
			case dirReceive:
				status = ops[i].target.tryReceive(ops[i].out)
			}
			if status != StatusWouldBlock {
				deregisterAll(ops, tok)
				return i, status
			}
		}
		// Select has no deadline; context.Background() never cancels.
		_ = tok.Wait(context.Background())
	}
}

func deregisterAll(ops []Op, tok *token.Token) {
	for i := range ops {
		ops[i].target.deregister(ops[i].dir, tok)
	}
}
