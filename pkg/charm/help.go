package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/ilint/pkg/terminal"
	"github.com/kr/text"
)

var Help = &Spec{
	Name:  "help",
	Usage: "help [command]",
	Short: "display help for a command",
	Long: `
For help on the top-level command just type "help".
For help on a subcommand, type "help command" where command is the name of
the command.  For help on command nested further, type "help cmd1 cmd2" and
so forth.`,
	HiddenFlags: "v",
	New: func(parent Command, f *flag.FlagSet) (Command, error) {
		c := &HelpCommand{}
		f.BoolVar(&c.vflag, "v", false, "show hidden commands and flags")
		return c, nil
	},
}

// helpOutput is where help is written.
var helpOutput io.Writer = os.Stderr

type HelpCommand struct {
	vflag bool
}

func (c *HelpCommand) Run(args []string) error {
	p, err := c.search(args)
	if err != nil {
		return err
	}
	displayHelp(p, c.vflag)
	return nil
}

// search instantiates the commands named by args starting at the root of
// the tree containing Help.
func (c *HelpCommand) search(args []string) (path, error) {
	spec := Help.Root()
	inst, err := newInstance(nil, spec)
	if err != nil {
		return nil, err
	}
	p := path{inst}
	for k, arg := range args {
		child := spec.lookupSub(arg)
		if child == nil {
			return nil, fmt.Errorf("no such command: %s", strings.Join(args[:k+1], " "))
		}
		inst, err = newInstance(inst.command, child)
		if err != nil {
			return nil, err
		}
		p = append(p, inst)
		spec = child
	}
	return p, nil
}

// flagMap maps each name in the comma-separated list flags to true.
func flagMap(flags string) map[string]bool {
	m := make(map[string]bool)
	for _, name := range strings.Split(flags, ",") {
		if name = strings.TrimSpace(name); name != "" {
			m[name] = true
		}
	}
	return m
}

const tab = "    "

func header(heading string) string {
	return "\033[1m" + heading + "\033[0m"
}

func formatParagraph(body string, lineWidth int) string {
	var chunks []string
	for _, paragraph := range strings.Split(body, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) >= lineWidth {
			paragraph = text.Wrap(strings.Join(strings.Fields(paragraph), " "), lineWidth)
		}
		chunks = append(chunks, strings.ReplaceAll(paragraph, "\n", "\n"+tab))
	}
	return tab + strings.Join(chunks, "\n\n"+tab) + "\n\n"
}

func helpItem(heading, body string) {
	fmt.Fprint(helpOutput, header(heading)+"\n"+tab+body+"\n\n")
}

func helpDesc(heading, body string) {
	lineWidth := terminal.Width() - len(tab) - 5
	fmt.Fprint(helpOutput, header(heading)+"\n"+formatParagraph(body, lineWidth))
}

func helpList(heading string, lines []string) {
	fmt.Fprint(helpOutput, header(heading)+"\n"+tab+strings.Join(lines, "\n"+tab)+"\n\n")
}

func commands(spec *Spec, vflag bool) []string {
	var lines []string
	for _, child := range spec.children {
		name := child.Name
		if child.Hidden {
			if !vflag {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+child.Short)
	}
	return lines
}

// options lists the flags of the last command in p followed by those of
// each command above it.
func (p path) options(vflag bool) []string {
	var lines []string
	for k := len(p) - 1; k >= 0; k-- {
		opts := p[k].options(vflag)
		if len(opts) == 0 {
			continue
		}
		if k != len(p)-1 {
			lines = append(lines, "", "["+p[:k+1].pathname()+" flags]")
		}
		lines = append(lines, opts...)
	}
	if len(lines) == 0 {
		return []string{"no flags for this command"}
	}
	return lines
}

func displayHelp(p path, vflag bool) {
	spec := p.last().spec
	helpItem("NAME", p.pathname()+" - "+spec.Short)
	helpDesc("USAGE", spec.Usage)
	helpList("OPTIONS", p.options(vflag))
	if len(spec.children) > 0 {
		helpList("COMMANDS", commands(spec, vflag))
	}
	helpDesc("DESCRIPTION", spec.Long)
}
