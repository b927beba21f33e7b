// Package ilintio connects ILInt encoding and decoding to io.Reader and
// io.Writer streams and to buffer-oriented sinks.
//
// A value stream is a plain concatenation of ILInt encodings with no other
// framing.  Writer and Reader optionally wrap the stream in LZ4 frames.
package ilintio

import (
	"errors"
	"fmt"
	"io"

	"github.com/brimdata/ilint"
	"github.com/brimdata/ilint/pkg/retry"
)

// ByteReader adapts an io.Reader to io.ByteReader for sources that may
// momentarily have nothing to deliver, such as pipes and sockets.  A read
// that yields neither a byte nor an error is retried according to the
// policy before ReadByte gives up with ilint.ErrTooFewBytes.
type ByteReader struct {
	reader io.Reader
	policy retry.Policy
	buf    [1]byte
}

func NewByteReader(r io.Reader, p retry.Policy) *ByteReader {
	return &ByteReader{reader: r, policy: p}
}

func (b *ByteReader) ReadByte() (byte, error) {
	err := b.policy.Do(func() (bool, error) {
		n, err := b.reader.Read(b.buf[:])
		if n == 1 {
			return true, nil
		}
		if err == nil || errors.Is(err, io.ErrNoProgress) {
			return false, nil
		}
		return false, err
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			err = fmt.Errorf("%w: no data after %d reads", ilint.ErrTooFewBytes, b.policy.Attempts)
		}
		return 0, err
	}
	return b.buf[0], nil
}

// Decode reads exactly one value from r using the default retry policy.
// Unlike ilint.ReadUint, an empty stream is an error.
func Decode(r io.Reader) (uint64, error) {
	u, err := ilint.ReadUint(NewByteReader(r, retry.Default))
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: empty stream", ilint.ErrTooFewBytes)
	}
	return u, err
}

func DecodeInt(r io.Reader) (int64, error) {
	u, err := Decode(r)
	return ilint.ToSigned(u), err
}
