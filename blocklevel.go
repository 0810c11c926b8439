package blocks

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/blocks/block"
)

// Block returns the block at block index i.
//
// The block is still owned by the list. Clients must not modify it, as this
// would corrupt the list's position cache.
func (l *List[T]) Block(i int) (*block.Block[T], error) {
	if i < 0 || i >= len(l.blocks) {
		return nil, fmt.Errorf("%w: block %d of %d", ErrIndexOutOfBounds, i, len(l.blocks))
	}
	return l.blocks[i], nil
}

// Blocks returns an iterator over the blocks, together with the logical
// position of their first element.
func (l *List[T]) Blocks() iter.Seq2[int, *block.Block[T]] {
	return func(yield func(int, *block.Block[T]) bool) {
		for i, b := range l.blocks {
			if !yield(l.positions[i], b) {
				return
			}
		}
	}
}

// SetBlock replaces the block at block index i by b.
//
// Only the final block may be non-full and blocks without capacity are
// rejected. b must not already be part of the list. The list takes ownership
// of b: the caller must neither modify b afterwards nor hand it to another
// list, as the lists would then share storage.
func (l *List[T]) SetBlock(i int, b *block.Block[T]) error {
	if i < 0 || i >= len(l.blocks) {
		return fmt.Errorf("%w: block %d of %d", ErrIndexOutOfBounds, i, len(l.blocks))
	}
	if err := l.checkForeign(b); err != nil {
		return err
	}
	candidate := slices.Clone(l.blocks)
	candidate[i] = b
	return l.commitBlocks(candidate)
}

// InsertBlock inserts b at block index i, 0 ≤ i ≤ BlockCount().
//
// Blocks at i and beyond move one slot to the right. Inserting behind an empty
// tail block replaces the tail. Only the final block may be non-full, thus a
// non-full block may only be inserted as the new final block. As with SetBlock,
// the list takes ownership of b.
func (l *List[T]) InsertBlock(b *block.Block[T], i int) error {
	if i < 0 || i > len(l.blocks) {
		return fmt.Errorf("%w: block %d of %d", ErrIndexOutOfBounds, i, len(l.blocks))
	}
	if err := l.checkForeign(b); err != nil {
		return err
	}
	candidate := slices.Clone(l.blocks)
	last := len(candidate) - 1
	if i == len(candidate) && candidate[last].IsEmpty() {
		candidate[last] = b
	} else {
		candidate = slices.Insert(candidate, i, b)
	}
	return l.commitBlocks(candidate)
}

// SwapBlock exchanges the blocks at block indices i and j.
//
// The final block is the open slot of the list and may not be swapped.
func (l *List[T]) SwapBlock(i, j int) error {
	n := len(l.blocks)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: swap blocks %d and %d of %d", ErrIndexOutOfBounds, i, j, n)
	}
	if i == n-1 || j == n-1 {
		return fmt.Errorf("%w: final block may not be swapped", ErrIllegalArguments)
	}
	l.blocks[i], l.blocks[j] = l.blocks[j], l.blocks[i]
	l.recompute()
	return nil
}

func (l *List[T]) checkForeign(b *block.Block[T]) error {
	if b == nil {
		return fmt.Errorf("%w: nil block", ErrIllegalArguments)
	}
	if slices.Contains(l.blocks, b) {
		return fmt.Errorf("%w: block is already owned by this list", ErrIllegalArguments)
	}
	return nil
}

// commitBlocks installs a new sequence of blocks if it respects the placement
// rules.
func (l *List[T]) commitBlocks(blocks []*block.Block[T]) error {
	for i, b := range blocks {
		if b.Cap() == 0 {
			return fmt.Errorf("%w: block at index %d has no capacity", ErrInvariant, i)
		}
		if i < len(blocks)-1 && !b.IsFull() {
			return fmt.Errorf("%w: non-full block %s at index %d precedes the final block",
				ErrInvariant, b, i)
		}
	}
	l.blocks = blocks
	l.recompute()
	return l.ensureSpace()
}
