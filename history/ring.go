// SPDX-License-Identifier: EPL-2.0

// Package history keeps bounded undo and redo stacks of buffer snapshots.
package history

// Ring is a fixed-capacity stack. Pushing onto a full ring drops the oldest
// entry. The zero value is not usable; create one with NewRing.
type Ring[T any] struct {
	items []T
	head  int // index of the oldest entry
	size  int
}

// NewRing returns an empty ring holding at most capacity entries.
// capacity is raised to 1 when smaller.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{items: make([]T, max(1, capacity))}
}

// Push adds v as the newest entry. It reports whether the oldest entry was
// evicted to make room.
func (r *Ring[T]) Push(v T) (evicted bool) {
	if r.size == len(r.items) {
		r.items[r.head] = v
		r.head = (r.head + 1) % len(r.items)
		return true
	}

	r.items[(r.head+r.size)%len(r.items)] = v
	r.size++

	return false
}

// Pop removes and returns the newest entry.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	i := (r.head + r.size - 1) % len(r.items)
	v := r.items[i]
	r.items[i] = zero
	r.size--

	return v, true
}

// Peek returns the newest entry without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}

	return r.items[(r.head+r.size-1)%len(r.items)], true
}

func (r *Ring[T]) Len() int { return r.size }
func (r *Ring[T]) Cap() int { return len(r.items) }

// Clear drops every entry and releases the references.
func (r *Ring[T]) Clear() {
	clear(r.items)
	r.head, r.size = 0, 0
}
