package tuple

import (
	"fmt"
	"sync/atomic"

	"github.com/codewandler/clstr-msg/core/reflector"
)

// slots is the fixed-arity value sequence behind a cell. Each arity has its own
// struct so slot types stay static; dynSlots backs messages built at run time.
type slots[S any] interface {
	size() int
	at(i int) any
	// share copies every slot; nested tuples become holders of their own.
	share() S
	descriptors() []reflector.Descriptor
}

// storage is the type-erased view of a cell used by Message and the comparator.
type storage interface {
	size() int
	at(i int) any
	descriptorAt(i int) reflector.Descriptor
	acquire()
	release()
}

// cell is the reference-counted value store. refs counts explicit holders
// (constructors, Share, Message, As); plain copies of a tuple value are not
// counted. A cell is never written once a tuple value has been handed out, so
// any number of copies and goroutines may read it. descs is read-only and
// shared with clones.
type cell[S slots[S]] struct {
	refs  atomic.Int32
	data  S
	descs []reflector.Descriptor
}

func newCell[S slots[S]](data S) *cell[S] {
	return &cell[S]{data: data, descs: data.descriptors()}
}

// held returns c with one holder's stake.
func held[S slots[S]](c *cell[S]) *cell[S] {
	c.acquire()
	return c
}

// cellOf returns c, or a detached zero cell for the zero tuple and released
// tuples.
func cellOf[S slots[S]](c *cell[S]) *cell[S] {
	if c == nil {
		var zero S
		return newCell(zero)
	}
	return c
}

func (c *cell[S]) size() int                               { return c.data.size() }
func (c *cell[S]) at(i int) any                            { return c.data.at(i) }
func (c *cell[S]) descriptorAt(i int) reflector.Descriptor { return c.descs[i] }

func (c *cell[S]) acquire() {
	if c != nil {
		c.refs.Add(1)
	}
}

// release gives up one stake. Tuples copied by assignment may release the
// same cell more than once; the count never drops below zero.
func (c *cell[S]) release() {
	if c == nil {
		return
	}
	for {
		n := c.refs.Load()
		if n <= 0 || c.refs.CompareAndSwap(n, n-1) {
			return
		}
	}
}

func (c *cell[S]) share() *cell[S] {
	c.acquire()
	return c
}

// privatize is the only way to obtain writable slots. It clones c into a cell
// owned by the caller alone and gives up the caller's stake in c. Every other
// copy or holder of c keeps the old values.
func privatize[S slots[S]](c *cell[S]) *cell[S] {
	if c == nil {
		var zero S
		return held(newCell(zero))
	}
	nc := &cell[S]{data: c.data.share(), descs: c.descs}
	nc.refs.Store(1)
	c.release()
	return nc
}

type anySharer interface{ shareAny() any }

// shareSlot registers nested tuples and messages as holders of their storage
// when they are copied out of, or into, an enclosing tuple.
func shareSlot[T any](v T) T {
	if s, ok := any(v).(anySharer); ok {
		return s.shareAny().(T)
	}
	return v
}

func slotOutOfRange(i, n int) string {
	return fmt.Sprintf("tuple: slot index %d out of range [0:%d]", i, n)
}

// dynSlots backs messages assembled from values whose static types are unknown.
type dynSlots []any

func (s dynSlots) size() int    { return len(s) }
func (s dynSlots) at(i int) any { return s[i] }

func (s dynSlots) share() dynSlots {
	out := make(dynSlots, len(s))
	for i, v := range s {
		out[i] = shareSlot(v)
	}
	return out
}

func (s dynSlots) descriptors() []reflector.Descriptor {
	out := make([]reflector.Descriptor, len(s))
	for i, v := range s {
		out[i] = reflector.DescriptorOf(v)
	}
	return out
}
