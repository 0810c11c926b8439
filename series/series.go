/*
Package series implements named, flat, growable lists.

A series is the simple sibling of a block list: all elements live in a single
backing slice, and every operation is a direct slice manipulation. Series carry
a name and a generator, which synthesizes elements when a series grows. They
are used as result containers, e.g. for sequences of primes or digits.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package series

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/blocks"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'blocks'
func tracer() tracing.Trace {
	return tracing.Select("blocks")
}

// Config configures a series.
type Config[T any] struct {
	// Generator synthesizes elements when a series grows. Defaults to blocks.Absent.
	Generator blocks.Generator[T]
	// AllowAbsent permits absent generator results, which are then stored as
	// the zero value of T.
	AllowAbsent bool
}

func (cfg Config[T]) generate(index int) (T, error) {
	bcfg := blocks.Config[T]{Generator: cfg.Generator, AllowAbsent: cfg.AllowAbsent}
	return bcfg.Generate(index)
}

// Series is a named flat list of elements.
//
// The zero value is an empty, unnamed series without a generator.
type Series[T any] struct {
	name  string
	cfg   Config[T]
	items []T
}

// New creates an empty series.
func New[T any](name string, cfg Config[T]) *Series[T] {
	return &Series[T]{name: name, cfg: cfg}
}

// FromSlice creates a series holding a copy of items.
func FromSlice[T any](name string, cfg Config[T], items []T) *Series[T] {
	return &Series[T]{name: name, cfg: cfg, items: slices.Clone(items)}
}

// Of creates an unnamed series of the given elements.
func Of[T any](items ...T) *Series[T] {
	return FromSlice("", Config[T]{}, items)
}

// Name returns the name of the series.
func (s *Series[T]) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// SetName renames the series.
func (s *Series[T]) SetName(name string) {
	s.name = name
}

// Len returns the number of elements.
func (s *Series[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the series has no elements.
func (s *Series[T]) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the element at position p.
func (s *Series[T]) At(p int) (T, error) {
	if p < 0 || p >= s.Len() {
		var zero T
		return zero, outOfBounds(p, s.Len())
	}
	return s.items[p], nil
}

// Set replaces the element at position p.
func (s *Series[T]) Set(p int, v T) error {
	if p < 0 || p >= s.Len() {
		return outOfBounds(p, s.Len())
	}
	s.items[p] = v
	return nil
}

// Append appends elements at the end.
func (s *Series[T]) Append(items ...T) {
	s.items = append(s.items, items...)
}

// InsertFirst inserts v at the head.
func (s *Series[T]) InsertFirst(v T) {
	s.items = slices.Insert(s.items, 0, v)
}

// InsertAt inserts v at position p, 0 ≤ p ≤ Len().
func (s *Series[T]) InsertAt(p int, v T) error {
	if p < 0 || p > s.Len() {
		return outOfBounds(p, s.Len())
	}
	s.items = slices.Insert(s.items, p, v)
	return nil
}

// RemoveFirst removes and returns the head element.
func (s *Series[T]) RemoveFirst() (T, error) {
	return s.RemoveAt(0)
}

// RemoveLast removes and returns the tail element.
func (s *Series[T]) RemoveLast() (T, error) {
	return s.RemoveAt(s.Len() - 1)
}

// RemoveAt removes and returns the element at position p.
func (s *Series[T]) RemoveAt(p int) (T, error) {
	var zero T
	if s.Len() == 0 {
		return zero, blocks.ErrEmptyList
	}
	if p < 0 || p >= s.Len() {
		return zero, outOfBounds(p, s.Len())
	}
	v := s.items[p]
	s.items = slices.Delete(s.items, p, p+1)
	return v, nil
}

// RemoveMultiple removes count consecutive elements starting at position p.
func (s *Series[T]) RemoveMultiple(count, p int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", blocks.ErrIllegalArguments, count)
	}
	if p < 0 || p > s.Len() || p+count > s.Len() {
		return fmt.Errorf("%w: remove %d at %d, length %d", blocks.ErrIndexOutOfBounds, count, p, s.Len())
	}
	s.items = slices.Delete(s.items, p, p+count)
	return nil
}

// Clear removes all elements.
func (s *Series[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Reverse reverses the order of the elements in place.
func (s *Series[T]) Reverse() {
	slices.Reverse(s.items)
}

// Grow appends n elements produced by the generator, which is called with the
// position of the new element.
func (s *Series[T]) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot grow by %d", blocks.ErrIllegalArguments, n)
	}
	s.items = slices.Grow(s.items, n)
	for range n {
		v, err := s.cfg.generate(len(s.items))
		if err != nil {
			tracer().Errorf("series %q: %v", s.name, err)
			return err
		}
		s.items = append(s.items, v)
	}
	return nil
}

// Shrink removes the last n elements.
func (s *Series[T]) Shrink(n int) error {
	if n < 0 || n > s.Len() {
		return fmt.Errorf("%w: cannot shrink by %d, length %d", blocks.ErrIllegalArguments, n, s.Len())
	}
	return s.RemoveMultiple(n, s.Len()-n)
}

// Resize grows or shrinks the series to n elements.
func (s *Series[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", blocks.ErrIllegalArguments, n)
	}
	if n >= s.Len() {
		return s.Grow(n - s.Len())
	}
	return s.Shrink(s.Len() - n)
}

// Multiply creates a new series of |factor| concatenated copies of s, reversed
// if factor is negative.
func (s *Series[T]) Multiply(factor int) *Series[T] {
	n := factor
	if n < 0 {
		n = -n
	}
	out := &Series[T]{name: s.name, cfg: s.cfg, items: make([]T, 0, n*s.Len())}
	for range n {
		out.items = append(out.items, s.items...)
	}
	if factor < 0 {
		out.Reverse()
	}
	return out
}

// Add creates a new series with the elements of s followed by those of other.
func (s *Series[T]) Add(other *Series[T]) *Series[T] {
	out := s.Clone()
	if other != nil {
		out.items = append(out.items, other.items...)
	}
	return out
}

// Subtract creates a new series without the last n elements of s.
func (s *Series[T]) Subtract(n int) (*Series[T], error) {
	out := s.Clone()
	if err := out.Shrink(n); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone returns a copy of s.
func (s *Series[T]) Clone() *Series[T] {
	return &Series[T]{name: s.name, cfg: s.cfg, items: slices.Clone(s.items)}
}

// Items returns a copy of the elements.
func (s *Series[T]) Items() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// All returns an iterator over positions and elements.
func (s *Series[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (s *Series[T]) IndexFunc(pred func(T) bool) int {
	if s == nil {
		return -1
	}
	return slices.IndexFunc(s.items, pred)
}

// ContainsFunc reports whether at least one element satisfies pred.
func (s *Series[T]) ContainsFunc(pred func(T) bool) bool {
	return s.IndexFunc(pred) >= 0
}

// Contains reports whether v is present in s.
func Contains[T comparable](s *Series[T], v T) bool {
	return s.ContainsFunc(func(x T) bool { return x == v })
}

// Equal reports whether a and b hold the same elements. Names are not compared.
func Equal[T comparable](a, b *Series[T]) bool {
	return slices.Equal(a.Items(), b.Items())
}

// String returns the series as "name[a, b, c]".
func (s *Series[T]) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name())
	sb.WriteByte('[')
	for i, v := range s.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func outOfBounds(p, n int) error {
	return fmt.Errorf("%w: position %d, length %d", blocks.ErrIndexOutOfBounds, p, n)
}
