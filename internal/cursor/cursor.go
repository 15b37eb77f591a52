// Package cursor provides the parser's input reader.
//
// A Cursor walks a pattern string one byte at a time. It never returns an
// error itself; reading past the end of the pattern yields a NUL byte
// (0x00), which is distinct from every character the grammar accepts
// (printable ASCII 0x20..0x7E and their escapes) and so doubles as the
// end-of-input sentinel, mirroring a NUL-terminated C string.
package cursor

// Cursor is a zero-indexed offset into a pattern string.
type Cursor struct {
	pattern string
	offset  int
}

// New returns a Cursor positioned at the start of pattern.
func New(pattern string) *Cursor {
	return &Cursor{pattern: pattern}
}

// Peek returns the byte at the current offset without consuming it.
// Returns 0 (NUL) at or past end of input.
func (c *Cursor) Peek() byte {
	if c.offset >= len(c.pattern) {
		return 0
	}
	return c.pattern[c.offset]
}

// PeekAhead returns the byte one past the current offset without
// consuming anything. Returns 0 (NUL) at or past end of input.
//
// This two-character lookahead exists solely to resolve the ambiguity of
// '-' inside a bracketed set: it is a literal only when immediately
// followed by ']'.
func (c *Cursor) PeekAhead() byte {
	if c.offset+1 >= len(c.pattern) {
		return 0
	}
	return c.pattern[c.offset+1]
}

// Eat consumes and returns the byte at the current offset, advancing it.
// Returns 0 (NUL) at or past end of input without advancing further.
func (c *Cursor) Eat() byte {
	b := c.Peek()
	if c.offset < len(c.pattern) {
		c.offset++
	}
	return b
}

// Offset returns the current zero-indexed offset into the pattern.
func (c *Cursor) Offset() int {
	return c.offset
}
