/*
Package block implements fixed-capacity storage units for block lists.

A block holds a contiguous prefix of elements inside an array of fixed
capacity. Inserting into a full block never grows it; instead the element
falling off the end is handed back to the caller as a "carry", which a block
list forwards into the next block.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package block

import (
	"fmt"
	"strings"
)

// Block stores up to Cap() elements in positions [0, Len()).
//
// Blocks are mutable. Once a block is owned by a list, clients should not
// modify it directly.
type Block[T any] struct {
	items []T // len(items) == capacity
	n     int
}

// New creates an empty block with the given capacity.
func New[T any](capacity int) (*Block[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Block[T]{items: make([]T, capacity)}, nil
}

// FromSlice creates a block of the given capacity holding a copy of items.
func FromSlice[T any](capacity int, items []T) (*Block[T], error) {
	b, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	if len(items) > capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrBlockTooSmall, len(items), capacity)
	}
	b.n = copy(b.items, items)
	return b, nil
}

// Len returns the number of elements in the block.
func (b *Block[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.n
}

// Cap returns the fixed capacity of the block.
func (b *Block[T]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// IsFull reports whether no further element fits into the block.
func (b *Block[T]) IsFull() bool {
	return b.n == len(b.items)
}

// IsEmpty reports whether the block has no elements.
func (b *Block[T]) IsEmpty() bool {
	return b == nil || b.n == 0
}

// At returns the element at block-local index i.
func (b *Block[T]) At(i int) (T, error) {
	if i < 0 || i >= b.n {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return b.items[i], nil
}

// Set replaces the element at block-local index i.
func (b *Block[T]) Set(i int, v T) error {
	if i < 0 || i >= b.n {
		return ErrIndexOutOfBounds
	}
	b.items[i] = v
	return nil
}

// InsertFirst inserts v at the head of the block.
//
// If the block was full, the last element is evicted and returned as carry
// with spilled set to true.
func (b *Block[T]) InsertFirst(v T) (carry T, spilled bool) {
	carry, spilled, _ = b.InsertAt(0, v)
	return
}

// InsertAt inserts v at block-local index i, 0 ≤ i ≤ Len().
//
// Elements at i and beyond shift right. If the block was full, the element
// falling off the end is returned as carry with spilled set to true. This may
// be v itself, if i == Cap().
func (b *Block[T]) InsertAt(i int, v T) (carry T, spilled bool, err error) {
	if i < 0 || i > b.n {
		return carry, false, ErrIndexOutOfBounds
	}
	if b.IsFull() {
		if i == b.n {
			return v, true, nil
		}
		carry, spilled = b.items[b.n-1], true
		copy(b.items[i+1:], b.items[i:b.n-1])
		b.items[i] = v
		return carry, spilled, nil
	}
	copy(b.items[i+1:b.n+1], b.items[i:b.n])
	b.items[i] = v
	b.n++
	return carry, false, nil
}

// Append inserts v at the tail of the block. A full block spills v.
func (b *Block[T]) Append(v T) (carry T, spilled bool) {
	if b.IsFull() {
		return v, true
	}
	b.items[b.n] = v
	b.n++
	return carry, false
}

// RemoveFirst removes and returns the head element.
func (b *Block[T]) RemoveFirst() (T, error) {
	return b.RemoveAt(0)
}

// RemoveLast removes and returns the tail element.
func (b *Block[T]) RemoveLast() (T, error) {
	return b.RemoveAt(b.n - 1)
}

// RemoveAt removes and returns the element at block-local index i.
func (b *Block[T]) RemoveAt(i int) (T, error) {
	var zero T
	if b.n == 0 {
		return zero, ErrEmptyBlock
	}
	if i < 0 || i >= b.n {
		return zero, ErrIndexOutOfBounds
	}
	v := b.items[i]
	copy(b.items[i:], b.items[i+1:b.n])
	b.n--
	b.items[b.n] = zero // do not retain removed elements
	return v, nil
}

// Truncate keeps the first n elements and drops the rest.
func (b *Block[T]) Truncate(n int) error {
	if n < 0 || n > b.n {
		return ErrIndexOutOfBounds
	}
	clear(b.items[n:b.n])
	b.n = n
	return nil
}

// Clear removes all elements.
func (b *Block[T]) Clear() {
	clear(b.items[:b.n])
	b.n = 0
}

// Reverse reverses the order of the elements in place.
func (b *Block[T]) Reverse() {
	for i, j := 0, b.n-1; i < j; i, j = i+1, j-1 {
		b.items[i], b.items[j] = b.items[j], b.items[i]
	}
}

// Items returns a copy of the elements.
func (b *Block[T]) Items() []T {
	if b == nil {
		return nil
	}
	return append([]T(nil), b.items[:b.n]...)
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (b *Block[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < b.n; i++ {
		if pred(b.items[i]) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether at least one element satisfies pred.
func (b *Block[T]) ContainsFunc(pred func(T) bool) bool {
	return b.IndexFunc(pred) >= 0
}

// Contains reports whether v is present in b.
func Contains[T comparable](b *Block[T], v T) bool {
	return b.ContainsFunc(func(x T) bool { return x == v })
}

// String returns a bracketed listing of the elements, e.g. "[1 2 3]/5",
// where the number after the slash is the capacity.
func (b *Block[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < b.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", b.items[i])
	}
	fmt.Fprintf(&sb, "]/%d", b.Cap())
	return sb.String()
}
