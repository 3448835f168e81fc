package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const banner = `
  ___ __ __ _____ ___ ___ __  __ _   _ __  __
 | __|\ \ /|_   _| _ \ __|  \/  | | | |  \/  |
 | _|  >  <  | | |   / _|| |\/| | |_| | |\/| |
 |___|/_/\_\ |_| |_|_\___|_|  |_|\___/|_|  |_|
`

type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string)
}

// PrintUsage writes the banner and the list of sub-commands.
func (c *CmdTree) PrintUsage(w io.Writer, args []string) {
	fmt.Fprintln(w, banner[1:])
	fmt.Fprintf(w, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(w, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		pad := 16 - len(sub.Name)
		if pad < 1 {
			pad = 1
		}
		spaces := strings.Repeat(" ", pad)
		fmt.Fprintf(w, "  %s%s%s\n", sub.Name, spaces, sub.Help)
	}
	fmt.Fprintln(w)
}

func (c *CmdTree) Usage(args []string) {
	c.PrintUsage(os.Stderr, args)
	os.Exit(2)
}

// Resolve walks the tree along args and returns the command that handles
// them, with args rewritten so that args[0] names the full command path.
// It returns the deepest matching node when no leaf matches.
func (c *CmdTree) Resolve(args []string) (*CmdTree, []string) {
	if c.Fun != nil || len(args) <= 1 {
		return c, args
	}
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			name := args[0] + " " + args[1]
			sargs := append([]string{name}, args[2:]...)
			return sub.Resolve(sargs)
		}
	}
	return c, args
}

func (c *CmdTree) Execute(args []string) {
	node, nargs := c.Resolve(args)
	if node.Fun == nil {
		node.Usage(nargs)
		return
	}
	node.Fun(nargs)
}
