package size

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/brimdata/ilint"
	"github.com/brimdata/ilint/cli/outputflags"
	"github.com/brimdata/ilint/cmd/ilint/root"
	"github.com/brimdata/ilint/pkg/charm"
	"go.uber.org/multierr"
)

var Cmd = &charm.Spec{
	Name:  "size",
	Usage: "size [options] value...",
	Short: "print the ILInt encoded size of integers",
	Long: `
The size command prints the number of bytes in the ILInt encoding of each
integer argument, one per line.  With -s, arguments are signed and the size
is that of their zigzag mapping.`,
	New: New,
}

type Command struct {
	*root.Command
	signed     bool
	outputFile string
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.signed, "s", false, "sizes of signed values")
	f.StringVar(&c.outputFile, "o", "", "write sizes to output file")
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return errors.New("no values given")
	}
	vals, err := root.ParseValues(args, c.signed)
	if err != nil {
		return err
	}
	w, err := outputflags.OpenFile(c.outputFile)
	if err != nil {
		return err
	}
	return multierr.Append(printSizes(w, vals), w.Close())
}

func printSizes(w io.Writer, vals []uint64) error {
	for _, u := range vals {
		if _, err := fmt.Fprintln(w, ilint.Size(u)); err != nil {
			return err
		}
	}
	return nil
}
