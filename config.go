package blocks

import "fmt"

// DefaultBlockCapacity is the block capacity used if a Config has no extender.
const DefaultBlockCapacity = 16

// Extender decides the capacity of a newly created block, given the index the
// block will occupy in the list.
type Extender func(blockIndex int) int

// ConstantExtender returns an extender creating blocks of equal capacity.
func ConstantExtender(capacity int) Extender {
	return func(int) int {
		return capacity
	}
}

// DoublingExtender returns an extender starting with blocks of the given
// capacity and doubling the capacity for every further block, up to limit.
func DoublingExtender(capacity, limit int) Extender {
	return func(blockIndex int) int {
		c := capacity
		for i := 0; i < blockIndex && c < limit; i++ {
			c *= 2
		}
		return min(c, limit)
	}
}

// Generator synthesizes the element for a logical index. A result of false
// denotes an absent value.
type Generator[T any] func(index int) (T, bool)

// Fill returns a generator producing v for every index.
func Fill[T any](v T) Generator[T] {
	return func(int) (T, bool) {
		return v, true
	}
}

// FromFunc turns a total function into a generator.
func FromFunc[T any](f func(int) T) Generator[T] {
	return func(index int) (T, bool) {
		return f(index), true
	}
}

// Absent is a generator which never produces a value.
func Absent[T any](int) (T, bool) {
	var zero T
	return zero, false
}

// Config configures a block list.
type Config[T any] struct {
	// Extender sizes new blocks. Defaults to DefaultBlockCapacity for every block.
	Extender Extender
	// Generator synthesizes elements when a list grows. Defaults to Absent.
	Generator Generator[T]
	// AllowAbsent permits absent generator results, which are then stored as
	// the zero value of T. If false, an absent result is an invariant violation.
	AllowAbsent bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Extender == nil {
		cfg.Extender = ConstantExtender(DefaultBlockCapacity)
	}
	if cfg.Generator == nil {
		cfg.Generator = Absent[T]
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if c := cfg.Extender(0); c <= 0 {
		return fmt.Errorf("%w: extender yields capacity %d for first block", ErrIllegalArguments, c)
	}
	return nil
}

// Generate calls the configured generator for index and checks the result
// against the absent-value capability of the configuration.
func (cfg Config[T]) Generate(index int) (T, error) {
	cfg = cfg.normalized()
	v, ok := cfg.Generator(index)
	if !ok {
		var zero T
		if !cfg.AllowAbsent {
			return zero, fmt.Errorf("%w: generator produced absent value for index %d", ErrInvariant, index)
		}
		return zero, nil
	}
	return v, nil
}
