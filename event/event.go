// Package event implements a typed, synchronous event broadcaster.
//
// An event owns a table of subscribers and invokes all of them, in
// registration order, when fired with a fixed argument list. Events are
// declared with the Event0 through Event4 family, one type per supported
// handler arity. Handlers are registered either anonymously with
// Subscribe, or bound to a (receiver, method) pair with the Bind family
// of functions.
//
// Events are single-threaded: registration and firing must be serialized
// externally if used across goroutines. The eventbus package provides a
// channel-based bridge for concurrent consumers.
package event

// Flag describes additional parameters for handler binding.
type Flag int

// The different types of binding flags.
//
// Both flags currently resolve to the same observable behavior, since the
// subscriber table always refuses a duplicate identity on insert. OnlyUnique
// states the intent explicitly at the call site.
const (
	Default Flag = iota
	OnlyUnique
)

// record pairs a subscription identity with its bound handler.
type record[H any] struct {
	id      Identity
	handler H
}

// base holds the subscriber table shared by every event arity.
//
// Subscribers are kept as an ordered list of records with an identity
// index alongside, so dispatch follows strict insertion order while
// membership checks and removal stay keyed.
type base[H any] struct {
	records []record[H]
	index   map[Identity]int
	tokens  uint64
}

// Subscribe registers an anonymous handler and returns a fresh identity
// token for it. The token is the only way to address the subscription
// later; pass it to Unsubscribe to remove the handler.
func (b *base[H]) Subscribe(handler H) Identity {
	b.tokens++
	id := token(b.tokens)

	b.add(id, handler, Default)

	return id
}

// Unsubscribe removes the subscription with the given identity.
// An absent identity is a silent no-op.
func (b *base[H]) Unsubscribe(id Identity) {
	b.remove(id)
}

// HasSubscriber returns whether a subscription with the given identity
// is present in the table.
func (b *base[H]) HasSubscriber(id Identity) bool {
	_, ok := b.index[id]
	return ok
}

// Len returns the number of live subscriptions.
func (b *base[H]) Len() int {
	return len(b.records)
}

// add inserts a handler into the table.
// A handler with an identity already present in the table is silently ignored.
func (b *base[H]) add(id Identity, handler H, flag Flag) {
	// disallow non-unique handlers
	if flag == OnlyUnique && b.HasSubscriber(id) {
		return
	}

	// The table refuses duplicate identities on insert regardless,
	// which is what makes Default observably match OnlyUnique.
	if b.HasSubscriber(id) {
		return
	}

	if b.index == nil {
		b.index = make(map[Identity]int)
	}

	b.index[id] = len(b.records)
	b.records = append(b.records, record[H]{id: id, handler: handler})
}

// remove deletes a handler from the table by its identity.
// A non-existent identity is silently ignored.
func (b *base[H]) remove(id Identity) {
	at, ok := b.index[id]
	if !ok {
		return
	}

	delete(b.index, id)
	b.records = append(b.records[:at], b.records[at+1:]...)

	for slot := at; slot < len(b.records); slot++ {
		b.index[b.records[slot].id] = slot
	}
}
