package block

import "errors"

var (
	// ErrInvalidCapacity signals a non-positive block capacity.
	ErrInvalidCapacity = errors.New("block: capacity must be positive")
	// ErrIndexOutOfBounds signals an invalid block-local index.
	ErrIndexOutOfBounds = errors.New("block: index out of bounds")
	// ErrEmptyBlock signals a removal from a block without elements.
	ErrEmptyBlock = errors.New("block: block is empty")
	// ErrBlockTooSmall signals that initial items exceed the block capacity.
	ErrBlockTooSmall = errors.New("block: items exceed block capacity")
)
