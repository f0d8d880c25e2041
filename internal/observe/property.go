// Package observe adapts firm-go signals to the observable-property
// contract the view-model layer is written against: unconditional
// notification on set, and scoped connections that stop delivering
// once released.
package observe

import (
	"sort"

	firm "github.com/davidroman0O/firm-go"
)

// Property holds a value and notifies every observer on each Set,
// including sets that write a value equal to the current one. Reads
// never register reactive dependencies.
//
// Observers are kept in an indexed list on the property itself so a
// released connection removes exactly its own callback; a single
// dispatcher subscribed to the underlying signal fans notifications
// out in registration order.
type Property[T any] struct {
	signal    *firm.Signal[T]
	observers map[int]func(T)
	nextID    int
}

// NewProperty creates a property holding initial.
func NewProperty[T any](initial T) *Property[T] {
	s := firm.NewSignal(initial)
	// Force-publish semantics: writing the same value still notifies.
	s.SetEqualityFn(func(a, b T) bool { return false })

	p := &Property[T]{
		signal:    s,
		observers: make(map[int]func(T)),
	}
	s.Subscribe(p.dispatch)
	return p
}

// Value returns the current value.
func (p *Property[T]) Value() T {
	return p.signal.Peek()
}

// Set stores v and notifies all observers, unconditionally.
func (p *Property[T]) Set(v T) {
	p.signal.Set(v)
}

// Observe registers fn to be called with the new value on every Set.
// The returned connection must be released before the observer's
// context goes away, otherwise the callback keeps firing into it.
func (p *Property[T]) Observe(fn func(T)) *Connection {
	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	return &Connection{release: func() {
		delete(p.observers, id)
	}}
}

func (p *Property[T]) dispatch(v T) {
	ids := make([]int, 0, len(p.observers))
	for id := range p.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		// An observer may have been released by an earlier callback.
		if fn, ok := p.observers[id]; ok {
			fn(v)
		}
	}
}

// Connection is a scoped subscription token. Releasing it guarantees
// the observer callback is never invoked again.
type Connection struct {
	release func()
}

// Release unsubscribes. Safe to call more than once.
func (c *Connection) Release() {
	if c == nil || c.release == nil {
		return
	}
	c.release()
	c.release = nil
}

// ConnectionBag collects connections so a component can release all of
// its subscriptions when it is torn down.
type ConnectionBag struct {
	conns []*Connection
}

// Add appends a connection to the bag.
func (b *ConnectionBag) Add(c *Connection) {
	b.conns = append(b.conns, c)
}

// ReleaseAll releases every held connection and empties the bag.
func (b *ConnectionBag) ReleaseAll() {
	for _, c := range b.conns {
		c.Release()
	}
	b.conns = nil
}
