// Package ilint implements ILInt, a self-describing variable-length encoding
// for 64-bit unsigned integers.
//
// A value less than Base (0xf8) is encoded as a single byte holding the value
// itself.  Any other value v is encoded as a header byte followed by v-Base
// as a big-endian tail of one to eight bytes.  The header is Base+(n-2),
// where n is the total length of the encoding, so a decoder learns the
// length of a value from its first byte.  The encoder always picks the
// shortest tail, which makes every value's encoding unique.
//
// Signed integers are mapped onto unsigned ones by interleaving negative and
// positive values (see ToUnsigned) so that values of small magnitude encode
// to short byte sequences regardless of sign.
package ilint

import (
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// Base is the smallest header byte of a multi-byte encoding.
	Base = 0xf8
	// Max is the largest tail that can be added to Base without
	// overflowing 64 bits.
	Max = math.MaxUint64 - Base
	// MaxSize is the length of the longest encoding.
	MaxSize = 9
)

var (
	ErrTooFewBytes  = errors.New("ilint: too few bytes")
	ErrTooLarge     = errors.New("ilint: value too large")
	ErrInvalidRange = errors.New("ilint: invalid range")
	ErrNotReady     = errors.New("ilint: value not ready")
)

// Size returns the number of bytes needed to encode u.
func Size(u uint64) int {
	if u < Base {
		return 1
	}
	u -= Base
	n := 2
	for u > 0xff {
		u >>= 8
		n++
	}
	return n
}

// AppendUint appends the encoding of u to dst and returns the extended
// buffer.
func AppendUint(dst []byte, u uint64) []byte {
	n := Size(u)
	if n == 1 {
		return append(dst, byte(u))
	}
	dst = append(dst, byte(Base+n-2))
	u -= Base
	for shift := (n - 2) * 8; shift >= 0; shift -= 8 {
		dst = append(dst, byte(u>>shift))
	}
	return dst
}

// EncodeUint returns the encoding of u in a slice of exactly Size(u) bytes.
func EncodeUint(u uint64) []byte {
	return AppendUint(make([]byte, 0, Size(u)), u)
}

// WriteUint writes the encoding of u to w one byte at a time.  An error from
// w is returned as is and leaves the bytes already written in place.
func WriteUint(w io.ByteWriter, u uint64) error {
	n := Size(u)
	if n == 1 {
		return w.WriteByte(byte(u))
	}
	if err := w.WriteByte(byte(Base + n - 2)); err != nil {
		return err
	}
	u -= Base
	for shift := (n - 2) * 8; shift >= 0; shift -= 8 {
		if err := w.WriteByte(byte(u >> shift)); err != nil {
			return err
		}
	}
	return nil
}

// fixed is an io.ByteWriter over a slice that cannot grow.
type fixed struct {
	buf []byte
	n   int
}

func (f *fixed) WriteByte(c byte) error {
	if f.n >= len(f.buf) {
		return fmt.Errorf("%w: buffer holds only %d bytes", ErrTooFewBytes, len(f.buf))
	}
	f.buf[f.n] = c
	f.n++
	return nil
}

// PutUint encodes u into dst and returns the number of bytes written.  If dst
// is too short, PutUint returns ErrTooFewBytes along with the number of
// bytes that did fit.
func PutUint(dst []byte, u uint64) (int, error) {
	f := fixed{buf: dst}
	err := WriteUint(&f, u)
	return f.n, err
}
