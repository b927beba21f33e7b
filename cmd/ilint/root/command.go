package root

import (
	"context"
	"flag"

	"github.com/brimdata/ilint/cli"
	"github.com/brimdata/ilint/cli/logflags"
	"github.com/brimdata/ilint/pkg/charm"
)

var Ilint = &charm.Spec{
	Name:  "ilint",
	Usage: "ilint <command> [options] [arguments...]",
	Short: "encode and decode ILInt values",
	Long: `
ilint is a command-line tool for working with ILInt, a variable-length
encoding of 64-bit integers.  Values below 248 take a single byte and
larger values take between 2 and 9 bytes, the first of which gives the
length of the encoding.

Signed values are mapped onto unsigned ones with a zigzag mapping so
that small magnitudes of either sign have short encodings.  Use -s with
any command to work with signed values.`,
	New: New,
}

type Command struct {
	charm.Command
	cli.Flags
	LogFlags logflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	c.LogFlags.SetFlags(f)
	return c, nil
}

// Init initializes the logger and the given flag groups.
func (c *Command) Init(all ...cli.Initializer) (context.Context, func(), error) {
	return c.Flags.Init(append([]cli.Initializer{&c.LogFlags}, all...)...)
}

func (c *Command) Run(args []string) error {
	_, cancel, err := c.Init()
	if err != nil {
		return err
	}
	defer cancel()
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}
