// Package waiterlist implements the channel's waiter registry: the set of
// selector notification tokens currently waiting for a send or receive
// opportunity on one channel. Rather than a raw intrusive doubly-linked
// list of waiter pointers, it is a set keyed on pointer identity, which a
// Go map gives for free.
//
// A List is not safe for concurrent use; callers must serialise access
// externally (the channel package does so under its own senders/receivers
// mutex, never the channel's main mutex, see channel.Channel).
package waiterlist

import "github.com/thrasher-corp/chantex/token"

// List is an identity-keyed set of *token.Token.
type List struct {
	waiters map[*token.Token]struct{}
}

// New returns an empty waiter list.
func New() *List {
	return &List{waiters: make(map[*token.Token]struct{})}
}

// Insert registers tok in the list. It is idempotent by pointer identity:
// inserting the same token twice (as happens when one Select call spans
// the same channel more than once) leaves the list unchanged the second
// time.
func (l *List) Insert(tok *token.Token) {
	l.waiters[tok] = struct{}{}
}

// Remove deregisters tok. Removing a token that was never inserted, or
// that was already removed, is a no-op.
func (l *List) Remove(tok *token.Token) {
	delete(l.waiters, tok)
}

// Each calls fn once per currently-registered token, in unspecified order.
// fn must not mutate the list.
func (l *List) Each(fn func(*token.Token)) {
	for tok := range l.waiters {
		fn(tok)
	}
}

// Len reports how many distinct tokens are currently registered.
func (l *List) Len() int {
	return len(l.waiters)
}
