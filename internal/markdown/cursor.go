package markdown

// Cursor is a moving view over the input document. Exactly one Cursor
// exists per parse invocation and every parser function shares it by
// pointer: a successful parse advances it past what was consumed, a
// failed parse leaves it where it was.
type Cursor struct {
	src string
	pos int
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Remaining reports whether there is input left to consume.
func (c *Cursor) Remaining() bool {
	return c.pos < len(c.src)
}

// Pos returns the current absolute offset into the document.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek sets the absolute offset directly.
func (c *Cursor) Seek(offset int) {
	c.pos = offset
}

// Rest returns the unconsumed remainder of the document. It does not
// advance the cursor; callers use it for lookahead matching.
func (c *Cursor) Rest() string {
	return c.src[c.pos:]
}

// From returns the document content starting at an arbitrary offset.
func (c *Cursor) From(offset int) string {
	return c.src[offset:]
}

// Attempt runs parse and rewinds to the starting position when it
// reports no match. Parsers with multiple failure exits go through
// Attempt instead of restoring the position by hand on each one.
func (c *Cursor) Attempt(parse func() (string, bool)) (string, bool) {
	saved := c.pos
	out, ok := parse()
	if !ok {
		c.pos = saved
	}
	return out, ok
}
