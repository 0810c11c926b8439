/*
Package blocks offers a segmented list: a flat, indexable sequence of elements
stored in a chain of fixed-capacity blocks.

Block Lists

A block list (sometimes called an unrolled or chunked array) keeps its elements
distributed across blocks of bounded size. Every block except the last one is
completely filled; the last block is the "open" slot receiving appended
elements. A parallel table of block start offsets lets the list find the block
holding a logical index by binary search, in O(log b) for b blocks.

Inserting into a full block pushes the block's last element (the carry) into the
head of the following block, and so on, until a block absorbs the carry without
overflowing. Removal runs the inverse cascade, refilling every block from the
head of its successor. After each mutation the list re-establishes its single
invariant: if the tail block has filled up, a new block is appended (its
capacity decided by an extender function); if the tail block has become empty
while its predecessor is no longer full, the tail is dropped.

	Operation     |   Block list         |  Slice
	--------------+----------------------+--------
	Index         |   O(log b)           |   O(1)
	Append        |   O(1)               |   O(1) amortized
	Insert        |   O(log b + b + B)   |   O(n)
	Delete        |   O(log b + b + B)   |   O(n)
	Truncate      |   O(b)               |   O(1)

where B is the block capacity. Blocks never reallocate, so growing a large list
never copies its contents.

Lists may be grown by a generator function, which synthesizes the element for
a logical index. Whether a generator may yield an absent value is decided once,
when the list is configured.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package blocks

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// BlocksError is an error type for the blocks module.
type BlocksError string

func (e BlocksError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position lies outside of a list.
const ErrIndexOutOfBounds = BlocksError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = BlocksError("illegal arguments")

// ErrEmptyList is flagged when removing elements from an empty list.
const ErrEmptyList = BlocksError("operation on empty list")

// ErrInvariant is flagged when an operation would break a structural
// invariant, e.g. a generator producing an absent value for a list which does
// not allow absent values, or a non-full block placed before the tail.
const ErrInvariant = BlocksError("invariant violation")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
