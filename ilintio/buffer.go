package ilintio

import (
	"fmt"

	"github.com/brimdata/ilint"
)

// BufferWriter is a sink that lends out writable space.  Buffer returns a
// slice of at least n bytes (all remaining space when n is zero) and Advance
// commits the first n bytes of the slice most recently returned by Buffer.
type BufferWriter interface {
	Buffer(n int) ([]byte, error)
	Advance(n int) error
}

// Encode requests exactly ilint.Size(u) bytes from w, encodes u into them and
// advances w past them.
func Encode(w BufferWriter, u uint64) error {
	n := ilint.Size(u)
	b, err := w.Buffer(n)
	if err != nil {
		return err
	}
	if len(b) < n {
		return fmt.Errorf("%w: sink lent %d bytes for a %d-byte value", ilint.ErrTooFewBytes, len(b), n)
	}
	if _, err := ilint.PutUint(b[:n], u); err != nil {
		return err
	}
	return w.Advance(n)
}

func EncodeInt(w BufferWriter, i int64) error {
	return Encode(w, ilint.ToUnsigned(i))
}

// FixedBuffer is a BufferWriter over a caller-supplied slice.  Asking for
// more space than remains is ilint.ErrTooFewBytes.
type FixedBuffer struct {
	buf []byte
	off int
}

func NewFixedBuffer(b []byte) *FixedBuffer {
	return &FixedBuffer{buf: b}
}

func (f *FixedBuffer) remaining() int {
	return len(f.buf) - f.off
}

func (f *FixedBuffer) Buffer(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ilint.ErrInvalidRange, n)
	}
	if n > f.remaining() {
		return nil, fmt.Errorf("%w: asked for %d bytes, %d remain", ilint.ErrTooFewBytes, n, f.remaining())
	}
	return f.buf[f.off:], nil
}

func (f *FixedBuffer) Advance(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative advance %d", ilint.ErrInvalidRange, n)
	}
	if n > f.remaining() {
		return fmt.Errorf("%w: advance of %d bytes, %d remain", ilint.ErrTooFewBytes, n, f.remaining())
	}
	f.off += n
	return nil
}

// Bytes returns the bytes written so far.
func (f *FixedBuffer) Bytes() []byte {
	return f.buf[:f.off]
}

// GrowBuffer is a BufferWriter that grows as needed.  The zero value is an
// empty buffer ready to use.
type GrowBuffer struct {
	buf []byte
}

func (g *GrowBuffer) Buffer(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ilint.ErrInvalidRange, n)
	}
	if n == 0 {
		n = ilint.MaxSize
	}
	if cap(g.buf)-len(g.buf) < n {
		b := make([]byte, len(g.buf), 2*cap(g.buf)+n)
		copy(b, g.buf)
		g.buf = b
	}
	return g.buf[len(g.buf):cap(g.buf)], nil
}

func (g *GrowBuffer) Advance(n int) error {
	if n < 0 || n > cap(g.buf)-len(g.buf) {
		return fmt.Errorf("%w: advance of %d bytes, %d available", ilint.ErrInvalidRange, n, cap(g.buf)-len(g.buf))
	}
	g.buf = g.buf[:len(g.buf)+n]
	return nil
}

func (g *GrowBuffer) Bytes() []byte {
	return g.buf
}

func (g *GrowBuffer) Reset() {
	g.buf = g.buf[:0]
}
