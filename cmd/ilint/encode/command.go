package encode

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"

	"github.com/brimdata/ilint"
	"github.com/brimdata/ilint/cli/outputflags"
	"github.com/brimdata/ilint/cmd/ilint/root"
	"github.com/brimdata/ilint/ilintio"
	"github.com/brimdata/ilint/pkg/charm"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var Cmd = &charm.Spec{
	Name:  "encode",
	Usage: "encode [options] value...",
	Short: "encode integers as ILInt",
	Long: `
The encode command encodes each integer argument as ILInt.  Arguments are
decimal unless prefixed with 0x.  With -s, arguments are signed and are
zigzag mapped before encoding.

With -f hex, each encoding is printed as a line of hexadecimal.  With
-f binary (the default), the encodings are written back to back as a value
stream that "ilint decode" reads.  Binary output to a terminal is printed
as hex instead unless -B is given.  The -z flag compresses binary output
with LZ4.`,
	New: New,
}

type Command struct {
	*root.Command
	signed      bool
	outputFlags outputflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.signed, "s", false, "encode signed values")
	c.outputFlags.SetFlags(f)
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init(&c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return errors.New("no values to encode")
	}
	vals, err := root.ParseValues(args, c.signed)
	if err != nil {
		return err
	}
	w, err := c.outputFlags.Open()
	if err != nil {
		return err
	}
	if c.outputFlags.Format == outputflags.FormatHex {
		for _, u := range vals {
			if _, err = fmt.Fprintln(w, hex.EncodeToString(ilint.EncodeUint(u))); err != nil {
				break
			}
		}
		return multierr.Append(err, w.Close())
	}
	writer := ilintio.NewWriter(w, c.outputFlags.Options())
	for _, u := range vals {
		if err = writer.Write(u); err != nil {
			break
		}
	}
	err = multierr.Append(err, writer.Close())
	if err == nil {
		c.LogFlags.Logger().Debug("encoded values",
			zap.String("path", c.outputFlags.FileName()),
			zap.Int("values", writer.Count()),
			zap.Bool("compressed", c.outputFlags.Compress))
	}
	return err
}
