package blocks

import (
	"fmt"
)

// Append appends elements at the end of the list.
func (l *List[T]) Append(items ...T) error {
	for _, v := range items {
		tail := l.blocks[len(l.blocks)-1]
		_, spilled := tail.Append(v)
		assert(!spilled, "list.Append: tail block is full")
		l.count++
		if err := l.ensureSpace(); err != nil {
			return err
		}
	}
	return nil
}

// InsertFirst inserts v at the head of the list.
func (l *List[T]) InsertFirst(v T) error {
	return l.InsertAt(0, v)
}

// InsertAt inserts v at logical position p, shifting subsequent elements to the
// right. p == Len() appends v.
//
// The element is inserted into the block owning p. If that block was full, its
// last element is carried into the head of the next block, and so on, until a
// block absorbs the carry.
func (l *List[T]) InsertAt(p int, v T) error {
	if p < 0 || p > l.count {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, p, l.count)
	}
	if p == l.count {
		return l.Append(v)
	}
	bi, off := l.locate(p)
	carry, spilled, err := l.blocks[bi].InsertAt(off, v)
	if err != nil {
		return err
	}
	first := bi
	for spilled {
		bi++
		assert(bi < len(l.blocks), "list.InsertAt: carry cascade ran past the tail")
		carry, spilled = l.blocks[bi].InsertFirst(carry)
	}
	if bi > first {
		tracer().Debugf("block list: insert at %d cascaded over %d blocks", p, bi-first)
	}
	// only the absorbing block grew; blocks in between are still full
	l.shiftPositions(bi, 1)
	l.count++
	return l.ensureSpace()
}

// RemoveFirst removes and returns the head element.
func (l *List[T]) RemoveFirst() (T, error) {
	return l.RemoveAt(0)
}

// RemoveLast removes and returns the tail element.
func (l *List[T]) RemoveLast() (T, error) {
	return l.RemoveAt(l.count - 1)
}

// RemoveAt removes and returns the element at logical position p.
//
// The block owning p shrinks by one and is refilled from the head of the next
// block, which in turn is refilled from its successor, up to the last non-empty
// block.
func (l *List[T]) RemoveAt(p int) (T, error) {
	var zero T
	if l.count == 0 {
		return zero, ErrEmptyList
	}
	if p < 0 || p >= l.count {
		return zero, fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfBounds, p, l.count)
	}
	bi, off := l.locate(p)
	v, err := l.blocks[bi].RemoveAt(off)
	if err != nil {
		return zero, err
	}
	j := bi
	for ; j+1 < len(l.blocks) && !l.blocks[j+1].IsEmpty(); j++ {
		x, err := l.blocks[j+1].RemoveFirst()
		assert(err == nil, "list.RemoveAt: cannot refill from next block")
		_, spilled := l.blocks[j].Append(x)
		assert(!spilled, "list.RemoveAt: refilled block overflows")
	}
	l.shiftPositions(j, -1)
	l.count--
	return v, l.ensureSpace()
}

// RemoveMultiple removes count consecutive elements starting at position p.
//
// Removing zero elements is a no-op for every p in [0, Len()]. A run reaching the
// end of the list drops whole blocks; otherwise the elements behind the run are
// shifted to the front.
func (l *List[T]) RemoveMultiple(count, p int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}
	if p < 0 || p > l.count || p+count > l.count {
		return fmt.Errorf("%w: remove %d at %d, length %d", ErrIndexOutOfBounds, count, p, l.count)
	}
	if count == 0 {
		return nil
	}
	if p+count == l.count {
		return l.truncate(p)
	}
	dbi, doff := l.locate(p)
	sbi, soff := l.locate(p + count)
	for src := p + count; src < l.count; src++ {
		v, err := l.blocks[sbi].At(soff)
		assert(err == nil, "list.RemoveMultiple: source out of range")
		err = l.blocks[dbi].Set(doff, v)
		assert(err == nil, "list.RemoveMultiple: target out of range")
		if doff++; doff == l.blocks[dbi].Len() {
			dbi, doff = dbi+1, 0
		}
		if soff++; soff == l.blocks[sbi].Len() {
			sbi, soff = sbi+1, 0
		}
	}
	return l.truncate(l.count - count)
}

// Clear removes all elements and blocks, leaving a single empty block.
func (l *List[T]) Clear() error {
	return l.reset()
}

// Grow appends n elements produced by the generator. The generator is called
// with the logical position of the new element.
func (l *List[T]) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot grow by %d", ErrIllegalArguments, n)
	}
	for range n {
		v, err := l.cfg.Generate(l.count)
		if err != nil {
			return err
		}
		if err = l.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Shrink removes the last n elements.
func (l *List[T]) Shrink(n int) error {
	if n < 0 || n > l.count {
		return fmt.Errorf("%w: cannot shrink by %d, length %d", ErrIllegalArguments, n, l.count)
	}
	return l.RemoveMultiple(n, l.count-n)
}

// Resize grows or shrinks the list to n elements.
func (l *List[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrIllegalArguments, n)
	}
	if n >= l.count {
		return l.Grow(n - l.count)
	}
	return l.Shrink(l.count - n)
}

// truncate keeps the first p elements, dropping whole blocks behind p.
func (l *List[T]) truncate(p int) error {
	if p >= l.count {
		return nil
	}
	k, off := l.locate(p)
	if dropped := len(l.blocks) - k - 1; dropped > 0 {
		tracer().Debugf("block list: truncate at %d drops %d blocks", p, dropped)
	}
	clear(l.blocks[k+1:])
	l.blocks = l.blocks[:k+1]
	l.positions = l.positions[:k+1]
	err := l.blocks[k].Truncate(off)
	assert(err == nil, "list.truncate: block offset out of range")
	l.count = p
	return l.ensureSpace()
}
