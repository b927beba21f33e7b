package ilint

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Uint decodes the value at the start of b and returns it along with the
// number of bytes it occupied.  Bytes after the value are ignored.
func Uint(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: empty buffer", ErrInvalidRange)
	}
	if b[0] < Base {
		return uint64(b[0]), 1, nil
	}
	n := int(b[0]-Base) + 2
	if len(b) < n {
		return 0, 0, fmt.Errorf("%w: header 0x%02x needs %d bytes, have %d", ErrTooFewBytes, b[0], n, len(b))
	}
	var tail uint64
	for _, c := range b[1:n] {
		tail = tail<<8 | uint64(c)
	}
	if tail > Max {
		return 0, 0, ErrTooLarge
	}
	return tail + Base, n, nil
}

// UintRange decodes a value from the count bytes of b starting at offset.
// The range must lie within b and hold at least one byte.
func UintRange(b []byte, offset, count int) (uint64, error) {
	if offset < 0 || offset >= len(b) {
		return 0, fmt.Errorf("%w: offset %d outside buffer of length %d", ErrInvalidRange, offset, len(b))
	}
	if count < 1 || count > len(b)-offset {
		return 0, fmt.Errorf("%w: count %d at offset %d outside buffer of length %d", ErrInvalidRange, count, offset, len(b))
	}
	u, _, err := Uint(b[offset : offset+count])
	return u, err
}

// ReadUint decodes one value from r.  If r is exhausted before the first
// byte, ReadUint returns io.EOF so a caller can read a sequence of values
// until the source ends.  Running out after the header byte is
// ErrTooFewBytes.
func ReadUint(r io.ByteReader) (uint64, error) {
	c, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if c < Base {
		return uint64(c), nil
	}
	var tail uint64
	for k := int(c-Base) + 1; k > 0; k-- {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("%w: header 0x%02x is missing %d tail bytes", ErrTooFewBytes, c, k)
			}
			return 0, err
		}
		tail = tail<<8 | uint64(b)
	}
	if tail > Max {
		return 0, ErrTooLarge
	}
	return tail + Base, nil
}

// Narrow converts a decoded value to a narrower unsigned type, returning
// ErrTooLarge if u does not fit.
func Narrow[T constraints.Unsigned](u uint64) (T, error) {
	t := T(u)
	if uint64(t) != u {
		return 0, fmt.Errorf("%w: %d overflows %T", ErrTooLarge, u, t)
	}
	return t, nil
}
