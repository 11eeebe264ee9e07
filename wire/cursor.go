package wire

// Cursor reads consecutive values from a View.
// Every successful read advances the cursor by the size of the value read.
// A failing read leaves the cursor where it was.
type Cursor struct {
	view     View
	consumed int
}

// NewCursor creates a cursor positioned at the start of b.
func NewCursor(b View) *Cursor {
	return &Cursor{view: b}
}

// Remaining returns the unread bytes.
func (c *Cursor) Remaining() View {
	return c.view
}

// Consumed returns the number of bytes read so far.
func (c *Cursor) Consumed() int {
	return c.consumed
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return ErrInvalidData
	}
	if err := c.view.need(n); err != nil {
		return err
	}
	c.advance(n)
	return nil
}

func (c *Cursor) advance(n int) {
	c.view = c.view[n:]
	c.consumed += n
}

// read decodes v at the cursor's position and advances by v's encode size.
// Values which report a size larger than the bytes left (for example lazy
// arrays, which do not touch their elements while decoding) fail with
// ErrUnexpectedEOF.
func (c *Cursor) read(v Sizer, p Params) error {
	if err := decodeInto(v, c.view, p); err != nil {
		return err
	}
	n := v.EncodeSize()
	if n < 0 || n > len(c.view) {
		return ErrUnexpectedEOF
	}
	c.advance(n)
	return nil
}

// Read decodes a T at the cursor's position, handing args to T as parameters,
// and advances the cursor past it.
//
//	c := wire.NewCursor(b)
//	count, err := wire.Read[wire.U16](c)
//	records, err := wire.Read[wire.Array[Record]](c, count)
func Read[T any, PT Ptr[T]](c *Cursor, args ...any) (T, error) {
	var v T
	p, err := NewParams(args...)
	if err != nil {
		return v, err
	}
	if err := c.read(PT(&v), p); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
