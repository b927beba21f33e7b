package decode

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/brimdata/ilint"
	"github.com/brimdata/ilint/cli/inputflags"
	"github.com/brimdata/ilint/cli/outputflags"
	"github.com/brimdata/ilint/cmd/ilint/root"
	"github.com/brimdata/ilint/ilintio"
	"github.com/brimdata/ilint/pkg/charm"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var Cmd = &charm.Spec{
	Name:  "decode",
	Usage: "decode [options] [file|hex]...",
	Short: "decode ILInt values",
	Long: `
The decode command decodes ILInt values and prints them in decimal, one per
line.  With -s, values are zigzag mapped back to signed integers.

With -i binary (the default), each argument is a file holding a stream of
encodings written back to back, as written by "ilint encode".  The file "-"
(or no argument) is standard input.  Files are decoded concurrently and
printed in the order given.  A file that ends inside a value or holds an
encoding that overflows 64 bits is reported after the values preceding the
error are printed, and decoding continues with the remaining files.  The -z
flag reads LZ4 compressed streams and -readsize sets the size of each read.

With -i hex, each argument is a string of hexadecimal digits holding one or
more encodings.`,
	New: New,
}

type Command struct {
	*root.Command
	signed     bool
	outputFile string
	parallel   int
	inputFlags inputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.signed, "s", false, "decode signed values")
	f.StringVar(&c.outputFile, "o", "", "write values to output file")
	f.IntVar(&c.parallel, "P", runtime.GOMAXPROCS(0), "maximum number of files decoded at once")
	c.inputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.inputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	var results []*result
	if c.inputFlags.Format == inputflags.FormatHex {
		if len(args) == 0 {
			return errors.New("no hex values given")
		}
		results = c.decodeHex(args)
	} else {
		if len(args) == 0 {
			args = []string{"-"}
		}
		results = c.decodeFiles(ctx, args)
	}
	w, err := outputflags.OpenFile(c.outputFile)
	if err != nil {
		return err
	}
	var errs []error
	for _, r := range results {
		if _, err := w.Write(r.out.Bytes()); err != nil {
			errs = append(errs, err)
			break
		}
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.name, r.err))
		}
	}
	errs = append(errs, w.Close())
	return multierr.Combine(errs...)
}

type result struct {
	name  string
	out   bytes.Buffer
	count int
	err   error
}

func (c *Command) decodeHex(args []string) []*result {
	results := make([]*result, len(args))
	for k, arg := range args {
		r := &result{name: arg}
		results[k] = r
		b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			r.err = err
			continue
		}
		if len(b) == 0 {
			r.err = ilint.ErrInvalidRange
			continue
		}
		for len(b) > 0 {
			u, n, err := ilint.Uint(b)
			if err != nil {
				r.err = err
				break
			}
			r.emit(u, c.signed)
			b = b[n:]
		}
	}
	return results
}

func (c *Command) decodeFiles(ctx context.Context, paths []string) []*result {
	logger := c.LogFlags.Logger()
	results := make([]*result, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	if c.parallel > 0 {
		group.SetLimit(c.parallel)
	}
	for k, path := range paths {
		r := &result{name: path}
		results[k] = r
		group.Go(func() error {
			r.err = c.decodeFile(ctx, r)
			if r.err != nil {
				logger.Warn("decode failed", zap.String("path", r.name), zap.Int("values", r.count), zap.Error(r.err))
			} else {
				logger.Debug("decoded file", zap.String("path", r.name), zap.Int("values", r.count))
			}
			// Errors are reported per file.
			return nil
		})
	}
	group.Wait()
	return results
}

func (c *Command) decodeFile(ctx context.Context, r *result) error {
	file, err := c.inputFlags.Open(r.name)
	if err != nil {
		return err
	}
	defer file.Close()
	reader := ilintio.NewReader(file, c.inputFlags.Options())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		u, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		r.emit(u, c.signed)
	}
}

func (r *result) emit(u uint64, signed bool) {
	r.out.WriteString(root.FormatValue(u, signed))
	r.out.WriteByte('\n')
	r.count++
}
