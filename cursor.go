package blocks

// Cursor navigates a list element by element.
//
// The cursor tracks the block and block-local offset of its position, so moving
// it does not search the position cache. A cursor is invalidated by any
// structural mutation of its list and has to be re-seeked afterwards.
type Cursor[T any] struct {
	list *List[T]
	pos  int
	bi   int // block holding pos
	off  int // offset of pos within block bi
}

// NewCursor creates a cursor at the start of the list.
func (l *List[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Pos returns the current logical cursor position, 0 ≤ Pos() ≤ Len().
func (c *Cursor[T]) Pos() int {
	if c == nil {
		return 0
	}
	return c.pos
}

// Seek moves the cursor to logical position p, which may be Len().
func (c *Cursor[T]) Seek(p int) error {
	if c == nil {
		return ErrIllegalArguments
	}
	if p < 0 || p > c.list.Len() {
		return ErrIndexOutOfBounds
	}
	c.pos = p
	if p == c.list.Len() {
		c.bi = len(c.list.blocks) - 1
		c.off = c.list.blocks[c.bi].Len()
		return nil
	}
	c.bi, c.off = c.list.locate(p)
	return nil
}

// Next returns the element at the current cursor position and advances by one.
//
// If the cursor is at the end of the list, ok is false.
func (c *Cursor[T]) Next() (v T, ok bool) {
	if c == nil || c.pos >= c.list.Len() {
		return v, false
	}
	for c.off >= c.list.blocks[c.bi].Len() {
		c.bi, c.off = c.bi+1, 0
	}
	v, err := c.list.blocks[c.bi].At(c.off)
	if err != nil {
		return v, false
	}
	c.off++
	c.pos++
	return v, true
}

// Prev returns the element before the current cursor position and moves back
// by one.
//
// If the cursor is at the start of the list, ok is false.
func (c *Cursor[T]) Prev() (v T, ok bool) {
	if c == nil || c.pos == 0 {
		return v, false
	}
	for c.off == 0 {
		c.bi--
		c.off = c.list.blocks[c.bi].Len()
	}
	c.off--
	v, err := c.list.blocks[c.bi].At(c.off)
	if err != nil {
		return v, false
	}
	c.pos--
	return v, true
}
