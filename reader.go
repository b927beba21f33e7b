package ilint

import (
	"errors"
	"io"
)

type state uint8

const (
	notStarted state = iota
	awaitingTail
	ready
	failed
)

// Reader decodes a single value from bytes delivered incrementally, so a
// value may be split across reads, packets or buffers.  Once Ready, the
// value is available from Value until Reset is called, after which the
// Reader may decode another value.  The zero Reader is ready to use.
//
// A Reader is not safe for concurrent use.  Values decoded in parallel each
// need their own Reader.
type Reader struct {
	state     state
	remaining int
	acc       uint64
}

// NewReader returns a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Reset discards any partially decoded value and readies r for a new one.
func (r *Reader) Reset() {
	*r = Reader{}
}

// Ready returns true when a complete value has been decoded.
func (r *Reader) Ready() bool {
	return r.state == ready
}

// Value returns the decoded value.  It returns ErrNotReady unless the
// receiver is Ready.
func (r *Reader) Value() (uint64, error) {
	if r.state != ready {
		return 0, ErrNotReady
	}
	return r.acc, nil
}

// Accept feeds the next byte of the encoding to r and returns true when the
// value is complete.  A tail that overflows 64 bits returns ErrTooLarge and
// leaves r failed: every further call returns ErrTooLarge until Reset.
// Once the value is complete, Accept ignores c and returns true.
func (r *Reader) Accept(c byte) (bool, error) {
	switch r.state {
	case notStarted:
		if c < Base {
			r.acc = uint64(c)
			r.state = ready
			return true, nil
		}
		r.remaining = int(c-Base) + 1
		r.state = awaitingTail
		return false, nil
	case awaitingTail:
		r.acc = r.acc<<8 | uint64(c)
		if r.acc > Max {
			r.state = failed
			return false, ErrTooLarge
		}
		r.remaining--
		if r.remaining > 0 {
			return false, nil
		}
		r.acc += Base
		r.state = ready
		return true, nil
	case ready:
		return true, nil
	}
	return false, ErrTooLarge
}

// Consume feeds bytes from b to r until the value is complete or b is
// exhausted.  It returns whether the value is complete and the number of
// bytes of b consumed.  Bytes after the end of the value are not consumed.
func (r *Reader) Consume(b []byte) (bool, int, error) {
	if r.state == ready {
		return true, 0, nil
	}
	for k, c := range b {
		done, err := r.Accept(c)
		if err != nil {
			return false, k + 1, err
		}
		if done {
			return true, k + 1, nil
		}
	}
	return false, len(b), nil
}

// ConsumeFrom is like Consume but pulls bytes from src.  Running out of
// input (io.EOF) is not an error; r simply remains not Ready.
func (r *Reader) ConsumeFrom(src io.ByteReader) (bool, int, error) {
	if r.state == ready {
		return true, 0, nil
	}
	var n int
	for {
		c, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			return false, n, err
		}
		n++
		done, err := r.Accept(c)
		if err != nil || done {
			return done, n, err
		}
	}
}

// ConsumeChunks is like Consume for input held in a sequence of buffers, any
// of which may be empty.  The count of bytes consumed spans all chunks.
func (r *Reader) ConsumeChunks(chunks [][]byte) (bool, int, error) {
	var n int
	for _, chunk := range chunks {
		done, k, err := r.Consume(chunk)
		n += k
		if err != nil || done {
			return done, n, err
		}
	}
	return r.state == ready, n, nil
}
