package blocks

import "fmt"

// Check validates the structural invariants of a list.
//
// This checker is intentionally strict and is meant to be used in tests and
// while debugging client code which manipulates blocks directly.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvariant)
	}
	if len(l.blocks) == 0 {
		return fmt.Errorf("%w: list has no blocks", ErrInvariant)
	}
	if len(l.positions) != len(l.blocks) {
		return fmt.Errorf("%w: %d positions for %d blocks", ErrInvariant, len(l.positions), len(l.blocks))
	}
	last := len(l.blocks) - 1
	pos := 0
	for i, b := range l.blocks {
		if b == nil {
			return fmt.Errorf("%w: nil block at index %d", ErrInvariant, i)
		}
		if b.Cap() == 0 {
			return fmt.Errorf("%w: block %d has no capacity", ErrInvariant, i)
		}
		if l.positions[i] != pos {
			return fmt.Errorf("%w: block %d starts at %d, expected %d", ErrInvariant, i, l.positions[i], pos)
		}
		if i < last && !b.IsFull() {
			return fmt.Errorf("%w: interior block %d is not full (%d/%d)", ErrInvariant, i, b.Len(), b.Cap())
		}
		if i == last && b.IsFull() {
			return fmt.Errorf("%w: final block %d is full", ErrInvariant, i)
		}
		pos += b.Len()
	}
	if pos != l.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrInvariant, pos, l.count)
	}
	return nil
}
