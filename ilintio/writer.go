package ilintio

import (
	"io"

	"github.com/brimdata/ilint"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/multierr"
)

const DefaultFlushThresh = 32 * 1024

type WriterOpts struct {
	// Compress wraps the stream in LZ4 frames.
	Compress bool
	// FlushThresh is the number of buffered bytes that triggers a write
	// to the underlying writer.  Zero means DefaultFlushThresh.
	FlushThresh int
}

// Writer writes a stream of values.
type Writer struct {
	closer io.Closer
	writer io.Writer
	lz     *lz4.Writer
	buf    []byte
	thresh int
	count  int
}

func NewWriter(w io.WriteCloser, opts WriterOpts) *Writer {
	thresh := opts.FlushThresh
	if thresh <= 0 {
		thresh = DefaultFlushThresh
	}
	writer := &Writer{
		closer: w,
		writer: w,
		buf:    make([]byte, 0, thresh+ilint.MaxSize),
		thresh: thresh,
	}
	if opts.Compress {
		writer.lz = lz4.NewWriter(w)
		writer.writer = writer.lz
	}
	return writer
}

func (w *Writer) Write(u uint64) error {
	w.buf = ilint.AppendUint(w.buf, u)
	w.count++
	if len(w.buf) >= w.thresh {
		return w.Flush()
	}
	return nil
}

func (w *Writer) WriteInt(i int64) error {
	return w.Write(ilint.ToUnsigned(i))
}

// Count returns the number of values written.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes any buffered values to the underlying writer.  Compressed
// data may remain in the current LZ4 frame until Close.
func (w *Writer) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.writer.Write(w.buf)
	w.buf = w.buf[:0]
	return err
}

// Close flushes the stream, ends any LZ4 frame and closes the underlying
// writer.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.lz != nil {
		err = multierr.Append(err, w.lz.Close())
	}
	return multierr.Append(err, w.closer.Close())
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
