package blocks

import (
	"fmt"
	"slices"
)

// Reverse reverses the order of the elements in place.
//
// Every block is reversed locally, then the order of the blocks is reversed.
// An empty tail block is left in place, so it remains the open slot. A partially
// filled tail would end up at the front; in this case the blocks are compacted
// to restore the invariant that only the last block is non-full.
func (l *List[T]) Reverse() error {
	last := len(l.blocks) - 1
	for _, b := range l.blocks {
		b.Reverse()
	}
	if l.blocks[last].IsEmpty() {
		slices.Reverse(l.blocks[:last])
	} else {
		slices.Reverse(l.blocks)
	}
	if len(l.blocks) > 1 && !l.blocks[0].IsFull() {
		l.compact()
	}
	l.recompute()
	return l.ensureSpace()
}

// Multiply creates a new list consisting of |factor| concatenated copies of l.
// A negative factor additionally reverses the result; a factor of 0 yields an
// empty list.
func (l *List[T]) Multiply(factor int) (*List[T], error) {
	out, err := New(l.cfg)
	if err != nil {
		return nil, err
	}
	items := l.Items()
	n := factor
	if n < 0 {
		n = -n
	}
	for range n {
		if err := out.Append(items...); err != nil {
			return nil, err
		}
	}
	if factor < 0 {
		if err := out.Reverse(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Add creates a new list with the elements of l followed by the elements of other.
func (l *List[T]) Add(other *List[T]) (*List[T], error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil list", ErrIllegalArguments)
	}
	out := l.Clone()
	if err := out.Append(other.Items()...); err != nil {
		return nil, err
	}
	return out, nil
}

// Subtract creates a new list without the last n elements of l.
func (l *List[T]) Subtract(n int) (*List[T], error) {
	out := l.Clone()
	if err := out.Shrink(n); err != nil {
		return nil, err
	}
	return out, nil
}

// compact refills the blocks front to back, keeping their order and capacities.
// Surplus empty blocks at the tail are dropped; the caller has to recompute
// positions.
func (l *List[T]) compact() {
	items := l.Items()
	i := 0
	for _, b := range l.blocks {
		b.Clear()
		for ; i < len(items) && !b.IsFull(); i++ {
			b.Append(items[i])
		}
	}
	n := len(l.blocks)
	for n > 1 && l.blocks[n-1].IsEmpty() && !l.blocks[n-2].IsFull() {
		n--
	}
	clear(l.blocks[n:])
	l.blocks = l.blocks[:n]
	tracer().Debugf("block list: compacted into %d blocks", n)
}
