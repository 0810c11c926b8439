package blocks

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/blocks/block"
)

// List is a flat list of elements, stored in a sequence of blocks.
//
// Every block except the last is full, the last block is never full, and an
// empty block may only occur at the tail. positions caches the logical index
// of the first element of every block:
//
//	positions[0] == 0
//	positions[i+1] == positions[i] + blocks[i].Len()
//
// A List is not safe for concurrent use.
type List[T any] struct {
	cfg       Config[T]
	blocks    []*block.Block[T]
	positions []int
	count     int
}

// New creates an empty list with validated configuration.
func New[T any](cfg Config[T]) (*List[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &List[T]{cfg: cfg.normalized()}
	if err := l.reset(); err != nil {
		return nil, err
	}
	return l, nil
}

// WithCapacity creates an empty list whose blocks all have the given capacity.
func WithCapacity[T any](capacity int) (*List[T], error) {
	return New(Config[T]{Extender: ConstantExtender(capacity)})
}

// FromSlice creates a list holding a copy of items.
func FromSlice[T any](cfg Config[T], items []T) (*List[T], error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := l.Append(items...); err != nil {
		return nil, err
	}
	return l, nil
}

// Config returns a copy of the effective list configuration.
func (l *List[T]) Config() Config[T] {
	return l.cfg
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// BlockCount returns the number of blocks, including the open tail block.
func (l *List[T]) BlockCount() int {
	if l == nil {
		return 0
	}
	return len(l.blocks)
}

// At returns the element at logical position p.
func (l *List[T]) At(p int) (T, error) {
	if p < 0 || p >= l.Len() {
		var zero T
		return zero, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfBounds, p, l.Len())
	}
	bi, off := l.locate(p)
	return l.blocks[bi].At(off)
}

// Set replaces the element at logical position p.
func (l *List[T]) Set(p int, v T) error {
	if p < 0 || p >= l.Len() {
		return fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfBounds, p, l.Len())
	}
	bi, off := l.locate(p)
	return l.blocks[bi].Set(off, v)
}

// Items returns a copy of all elements in logical order.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	items := make([]T, 0, l.Len())
	for _, b := range l.blocks {
		items = append(items, b.Items()...)
	}
	return items
}

// All returns an iterator over positions and elements in logical order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for bi, b := range l.blocks {
			for i := 0; i < b.Len(); i++ {
				v, _ := b.At(i)
				if !yield(l.positions[bi]+i, v) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over positions and elements in reverse order.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for bi := len(l.blocks) - 1; bi >= 0; bi-- {
			b := l.blocks[bi]
			for i := b.Len() - 1; i >= 0; i-- {
				v, _ := b.At(i)
				if !yield(l.positions[bi]+i, v) {
					return
				}
			}
		}
	}
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (l *List[T]) IndexFunc(pred func(T) bool) int {
	for bi, b := range l.blocks {
		if i := b.IndexFunc(pred); i >= 0 {
			return l.positions[bi] + i
		}
	}
	return -1
}

// ContainsFunc reports whether at least one element satisfies pred.
func (l *List[T]) ContainsFunc(pred func(T) bool) bool {
	return l.IndexFunc(pred) >= 0
}

// Index returns the position of the first occurrence of v in l, or -1.
func Index[T comparable](l *List[T], v T) int {
	return l.IndexFunc(func(x T) bool { return x == v })
}

// Contains reports whether v is present in l.
func Contains[T comparable](l *List[T], v T) bool {
	return Index(l, v) >= 0
}

// Clone returns a deep copy of the list structure. Elements are copied by value.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		cfg:       l.cfg,
		blocks:    make([]*block.Block[T], len(l.blocks)),
		positions: append([]int(nil), l.positions...),
		count:     l.count,
	}
	for i, b := range l.blocks {
		nb, err := block.FromSlice(b.Cap(), b.Items())
		assert(err == nil, "list.Clone: cannot copy block")
		c.blocks[i] = nb
	}
	return c
}

// String returns the elements of the list as "[a b c]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for p, v := range l.All() {
		if p > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Internal helpers ------------------------------------------------------

// locate returns the index of the block holding logical position p, together
// with the block-local offset. p must be in [0, Len()).
func (l *List[T]) locate(p int) (int, int) {
	assert(p >= 0 && p < l.count, "list.locate: position out of bounds")
	bi := l.search(p, 0, len(l.blocks)-1)
	return bi, p - l.positions[bi]
}

// search halves [lo, hi] recursively and returns the last block whose start
// position is ≤ p. An empty tail block starts at Len() and is never selected.
func (l *List[T]) search(p, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	mid := (lo + hi + 1) / 2
	if l.positions[mid] <= p {
		return l.search(p, mid, hi)
	}
	return l.search(p, lo, mid-1)
}

// newBlock creates a block for block index bi, sized by the extender.
func (l *List[T]) newBlock(bi int) (*block.Block[T], error) {
	capacity := l.cfg.Extender(bi)
	b, err := block.New[T](capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: extender yields capacity %d for block %d", ErrInvariant, capacity, bi)
	}
	return b, nil
}

// reset drops all blocks and starts over with a single, empty block.
func (l *List[T]) reset() error {
	b, err := l.newBlock(0)
	if err != nil {
		return err
	}
	l.blocks = []*block.Block[T]{b}
	l.positions = []int{0}
	l.count = 0
	return nil
}

// ensureSpace re-establishes the open tail block after a structural mutation.
//
// If the tail block is full, a new block is appended. If the tail block is empty
// and its predecessor is not full, the tail is dropped.
func (l *List[T]) ensureSpace() error {
	last := len(l.blocks) - 1
	tail := l.blocks[last]
	if tail.IsFull() {
		b, err := l.newBlock(last + 1)
		if err != nil {
			return err
		}
		l.blocks = append(l.blocks, b)
		l.positions = append(l.positions, l.count)
		tracer().Debugf("block list: appended block #%d with capacity %d", last+1, b.Cap())
		return nil
	}
	if tail.IsEmpty() && last > 0 && !l.blocks[last-1].IsFull() {
		l.blocks[last] = nil
		l.blocks = l.blocks[:last]
		l.positions = l.positions[:last]
		tracer().Debugf("block list: dropped empty tail block #%d", last)
	}
	return nil
}

// recompute rebuilds the positions cache and the element count from the blocks.
func (l *List[T]) recompute() {
	l.positions = l.positions[:0]
	pos := 0
	for _, b := range l.blocks {
		l.positions = append(l.positions, pos)
		pos += b.Len()
	}
	l.count = pos
}

// shiftPositions adds delta to the start positions of all blocks after bi.
func (l *List[T]) shiftPositions(bi, delta int) {
	for j := bi + 1; j < len(l.positions); j++ {
		l.positions[j] += delta
	}
}
