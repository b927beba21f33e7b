package ilintio

import (
	"errors"
	"fmt"
	"io"

	"github.com/brimdata/ilint"
	"github.com/brimdata/ilint/pkg/retry"
	"github.com/pierrec/lz4/v4"
)

const DefaultReadSize = 64 * 1024

type ReaderOpts struct {
	// Compressed indicates the stream is wrapped in LZ4 frames.
	Compressed bool
	// Size is the read buffer size.  Zero means DefaultReadSize.
	Size int
	// Retry governs reads that return no data and no error.  The zero
	// Policy means retry.Default.
	Retry retry.Policy
}

// Reader reads a stream of values.  Values may straddle reads from the
// underlying reader.
type Reader struct {
	reader io.Reader
	retry  retry.Policy
	buffer []byte
	cursor []byte
	eof    bool
	dec    ilint.Reader
	count  int
}

func NewReader(r io.Reader, opts ReaderOpts) *Reader {
	if opts.Compressed {
		r = lz4.NewReader(r)
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultReadSize
	}
	policy := opts.Retry
	if policy.Attempts == 0 {
		policy = retry.Default
	}
	return &Reader{
		reader: r,
		retry:  policy,
		buffer: make([]byte, size),
	}
}

// Read returns the next value in the stream or io.EOF when the stream ends
// cleanly.  A value cut short by the end of the stream is
// ilint.ErrTooFewBytes.
func (r *Reader) Read() (uint64, error) {
	r.dec.Reset()
	var started bool
	for {
		if len(r.cursor) == 0 {
			if r.eof {
				if started {
					return 0, fmt.Errorf("%w: stream ends inside value %d", ilint.ErrTooFewBytes, r.count)
				}
				return 0, io.EOF
			}
			if err := r.fill(); err != nil {
				return 0, err
			}
			continue
		}
		started = true
		done, n, err := r.dec.Consume(r.cursor)
		r.cursor = r.cursor[n:]
		if err != nil {
			return 0, fmt.Errorf("value %d: %w", r.count, err)
		}
		if done {
			r.count++
			return r.dec.Value()
		}
	}
}

func (r *Reader) ReadInt() (int64, error) {
	u, err := r.Read()
	return ilint.ToSigned(u), err
}

// Count returns the number of values read.
func (r *Reader) Count() int {
	return r.count
}

func (r *Reader) fill() error {
	err := r.retry.Do(func() (bool, error) {
		n, err := r.reader.Read(r.buffer)
		r.cursor = r.buffer[:n]
		if errors.Is(err, io.EOF) {
			r.eof = true
			return true, nil
		}
		if errors.Is(err, io.ErrNoProgress) {
			err = nil
		}
		return n > 0, err
	})
	if errors.Is(err, retry.ErrExhausted) {
		err = fmt.Errorf("%w: no data after %d reads", ilint.ErrTooFewBytes, r.retry.Attempts)
	}
	return err
}
