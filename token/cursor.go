package token

// Cursor is a read position over an immutable input buffer.
type Cursor struct {
	doc *PosDoc
	i   int
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{doc: NewPosDoc(d)}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.i
}

// Len returns the number of bytes left to consume.
func (c *Cursor) Len() int {
	return len(c.doc.d) - c.i
}

func (c *Cursor) AtEnd() bool {
	return c.Len() == 0
}

// Rest returns the unconsumed input. The result must not be modified.
func (c *Cursor) Rest() []byte {
	return c.doc.d[c.i:]
}

func (c *Cursor) Pos() *Pos {
	if c.AtEnd() {
		return c.doc.end()
	}
	return c.doc.Pos(c.i)
}

func (c *Cursor) consume(n int) {
	c.i += n
}
