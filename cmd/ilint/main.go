package main

import (
	"fmt"
	"os"

	"github.com/brimdata/ilint/cmd/ilint/decode"
	"github.com/brimdata/ilint/cmd/ilint/encode"
	"github.com/brimdata/ilint/cmd/ilint/root"
	"github.com/brimdata/ilint/cmd/ilint/size"
	"github.com/brimdata/ilint/pkg/charm"
)

func init() {
	ilint := root.Ilint
	ilint.Add(encode.Cmd)
	ilint.Add(decode.Cmd)
	ilint.Add(size.Cmd)
	ilint.Add(charm.Help)
}

func main() {
	if err := root.Ilint.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
