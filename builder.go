package blocks

import "fmt"

// ErrListCompleted signals that a builder has already completed a list and
// it's illegal to further add elements.
const ErrListCompleted = BlocksError("forbidden to add elements; list has been completed")

// Builder incrementally stages elements and finalizes them into a List.
//
// Builder collects elements at either end and materializes the list only when
// List() is called. Staged elements at the front are kept in reverse order, so
// prepending is as cheap as appending. The list is then filled block by block,
// without any carry cascades.
type Builder[T any] struct {
	cfg Config[T]
	// front keeps prepended elements in reverse logical order.
	front []T
	// back keeps appended elements in logical order.
	back []T

	done  bool
	dirty bool
	list  *List[T]
}

// NewBuilder creates a new and empty builder for lists with configuration cfg.
func NewBuilder[T any](cfg Config[T]) *Builder[T] {
	return &Builder[T]{cfg: cfg}
}

// List returns the list built from all staged elements.
//
// It is illegal to continue adding elements after List has been called, but
// List may be called multiple times. Every call returns the same list.
func (b *Builder[T]) List() (*List[T], error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	if b.dirty || b.list == nil {
		l, err := b.build()
		if err != nil {
			return nil, err
		}
		b.list = l
		b.dirty = false
	}
	b.done = true
	if b.list.IsEmpty() {
		tracer().Debugf("list builder: list is empty")
	}
	return b.list, nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.list = nil
}

// Append stages elements at the end of the list.
func (b *Builder[T]) Append(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	b.back = append(b.back, items...)
	b.dirty = true
	return nil
}

// Prepend stages elements at the front of the list, keeping their order.
func (b *Builder[T]) Prepend(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	for i := len(items) - 1; i >= 0; i-- {
		b.front = append(b.front, items[i])
	}
	b.dirty = true
	return nil
}

// Generate stages n elements at the end, produced by the configured generator.
// The generator is called with the logical index the element will have.
func (b *Builder[T]) Generate(n int) error {
	if b == nil || n < 0 {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrListCompleted
	}
	base := len(b.front) + len(b.back)
	for i := range n {
		v, err := b.cfg.Generate(base + i)
		if err != nil {
			return fmt.Errorf("list builder: %w", err)
		}
		b.back = append(b.back, v)
	}
	b.dirty = true
	return nil
}

func (b *Builder[T]) build() (*List[T], error) {
	l, err := New(b.cfg)
	if err != nil {
		return nil, err
	}
	for i := len(b.front) - 1; i >= 0; i-- {
		if err = l.Append(b.front[i]); err != nil {
			return nil, err
		}
	}
	if err = l.Append(b.back...); err != nil {
		return nil, err
	}
	return l, nil
}
