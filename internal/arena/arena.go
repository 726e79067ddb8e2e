// Package arena provides a generic append-only allocator.
//
// AST node storage lives in an Arena bound to a single compile session, and
// interned string bytes live in the companion Bytes arena. Elements
// are never moved once allocated; ids are 1-based, dense, and stable for the
// lifetime of the arena. Disposing the owning session drops the arena (and
// everything it holds) in one step, which sidesteps ownership cycles that a
// pointer-graph representation would otherwise require.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// ID is a 1-based handle into an Arena. The zero value means "no element".
type ID uint32

// Arena is a generic typed arena for allocating elements.
type Arena[T any] struct {
	data []*T
}

// New creates an Arena with a capacity hint; capHint may be zero.
func New[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Alloc appends a value to the arena and returns its 1-based id.
func (a *Arena[T]) Alloc(value T) ID {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at id, or nil if id is 0.
// The returned pointer lives for the lifetime of the arena and may be
// mutated in place by callers that need to patch a forward reference.
func (a *Arena[T]) Get(id ID) *T {
	if id == 0 {
		return nil
	}
	return a.data[id-1]
}

// Len returns the number of elements currently held by the arena.
func (a *Arena[T]) Len() ID {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena: length overflow: %w", err))
	}
	return ID(n)
}

// Slice returns a defensive copy of the arena contents in allocation order.
func (a *Arena[T]) Slice() []T {
	out := make([]T, len(a.data))
	for i, p := range a.data {
		out[i] = *p
	}
	return out
}
