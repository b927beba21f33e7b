package inputflags

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/units"
	"github.com/brimdata/ilint/ilintio"
)

const (
	FormatBinary = "binary"
	FormatHex    = "hex"
)

type Flags struct {
	ilintio.ReaderOpts
	Format   string
	readSize string
}

func (f *Flags) Options() ilintio.ReaderOpts {
	return f.ReaderOpts
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Format, "i", FormatBinary, "format of input data [binary,hex]")
	fs.BoolVar(&f.Compressed, "z", false, "binary input is LZ4 compressed")
	fs.StringVar(&f.readSize, "readsize", units.Base2Bytes(ilintio.DefaultReadSize).String(),
		"size of reads from binary input, as '4KiB' or '1MB', etc.")
}

// Init is called after flags have been parsed.
func (f *Flags) Init() error {
	switch f.Format {
	case FormatBinary, FormatHex:
	default:
		return fmt.Errorf("unknown input format: %q", f.Format)
	}
	if f.Compressed && f.Format != FormatBinary {
		return fmt.Errorf("-z requires binary input")
	}
	size, err := units.ParseStrictBytes(f.readSize)
	if err != nil {
		return fmt.Errorf("-readsize: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("-readsize must be positive: %s", f.readSize)
	}
	f.Size = int(size)
	return nil
}

// Open opens the file at path for reading.  The path "-" means standard
// input.
func (f *Flags) Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
