// Package buffer implements a growable buffer of fixed-size elements.
//
// A Buffer keeps its own length and capacity rather than relying on the
// built-in append, so growth is always by doubling and capacity changes are
// explicit. Out-of-range access panics instead of returning garbage.
package buffer

import "fmt"

// Buffer is a resizable sequence of elements of type T.
// The zero value is an empty buffer ready to use.
//
// Invariants: Len() <= Cap(), and the backing storage is nil iff Cap() == 0.
type Buffer[T any] struct {
	data []T // backing storage; len(data) is the capacity
	n    int // number of live elements
}

// New returns an empty buffer.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the number of elements the buffer can hold without growing.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Resize reallocates the storage to hold exactly n elements.
// If n is smaller than the current length, the length is truncated to n.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("buffer: negative size %d", n))
	}
	if n == 0 {
		b.data = nil
		b.n = 0
		return
	}
	data := make([]T, n)
	if b.n > n {
		b.n = n
	}
	copy(data, b.data[:b.n])
	b.data = data
}

// Append copies v past the current end, doubling the capacity first
// if the write would overflow it.
func (b *Buffer[T]) Append(v T) {
	if b.n == len(b.data) {
		b.grow()
	}
	b.data[b.n] = v
	b.n++
}

func (b *Buffer[T]) grow() {
	c := 2 * len(b.data)
	if c == 0 {
		c = 1
	}
	b.Resize(c)
}

// Remove pops the last element. The popped slot is zeroed so the buffer
// does not keep its referents alive.
func (b *Buffer[T]) Remove() {
	if b.n == 0 {
		panic("buffer: Remove on empty buffer")
	}
	b.n--
	var zero T
	b.data[b.n] = zero
}

// Get returns the element at index i.
// It panics if i is not in [0, Len()).
func (b *Buffer[T]) Get(i int) T {
	b.check(i)
	return b.data[i]
}

// At returns a pointer to the element at index i, valid until the next
// call that changes the capacity. It panics if i is not in [0, Len()).
func (b *Buffer[T]) At(i int) *T {
	b.check(i)
	return &b.data[i]
}

// Last returns the final element. It panics if the buffer is empty.
func (b *Buffer[T]) Last() T {
	return b.Get(b.n - 1)
}

func (b *Buffer[T]) check(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("buffer: index %d out of range [0:%d]", i, b.n))
	}
}

// Slice returns the live elements as a slice sharing the buffer's storage.
func (b *Buffer[T]) Slice() []T {
	return b.data[:b.n:b.n]
}

// Free releases the storage and zeroes length and capacity.
// Calling Free more than once is harmless.
func (b *Buffer[T]) Free() {
	b.data = nil
	b.n = 0
}
