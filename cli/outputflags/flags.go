package outputflags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/ilint/ilintio"
	"github.com/brimdata/ilint/pkg/terminal"
)

const (
	FormatBinary = "binary"
	FormatHex    = "hex"
)

type Flags struct {
	ilintio.WriterOpts
	DefaultFormat string
	Format        string
	outputFile    string
	forceBinary   bool
}

func (f *Flags) Options() ilintio.WriterOpts {
	return f.WriterOpts
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	if f.DefaultFormat == "" {
		f.DefaultFormat = FormatBinary
	}
	fs.StringVar(&f.Format, "f", f.DefaultFormat, "format for output data [binary,hex]")
	fs.StringVar(&f.outputFile, "o", "", "write data to output file")
	fs.BoolVar(&f.Compress, "z", false, "compress binary output with LZ4")
	fs.BoolVar(&f.forceBinary, "B", false, "allow binary output be sent to a terminal")
}

func (f *Flags) Init() error {
	switch f.Format {
	case FormatBinary, FormatHex:
	default:
		return fmt.Errorf("unknown output format: %q", f.Format)
	}
	if f.Compress && f.Format != FormatBinary {
		return errors.New("-z requires binary output")
	}
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	if f.outputFile == "" && f.Format == FormatBinary && !f.forceBinary &&
		terminal.IsTerminalFile(os.Stdout) {
		if f.Compress {
			return errors.New("compressed output to a terminal requires -B")
		}
		f.Format = FormatHex
	}
	return nil
}

func (f *Flags) FileName() string {
	return f.outputFile
}

// Open opens the output file, or standard output if none was given.
func (f *Flags) Open() (io.WriteCloser, error) {
	return OpenFile(f.outputFile)
}

// OpenFile creates the file at path or, if path is empty or "-", returns
// standard output wrapped so that Close leaves it open.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return ilintio.NopCloser(os.Stdout), nil
	}
	return os.Create(path)
}
