package tools

import (
	"fmt"
	"io"
	"os"

	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/utils/comparison"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Compare prints the pairwise ordering of typed integer literals.
type Compare struct {
	args []string
	out  io.Writer
	opts options
}

func RunCompare(args []string) {
	c := &Compare{args: args, out: os.Stdout}
	if err := c.run(); err != nil {
		exit("Compare", err)
	}
}

func (c *Compare) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <integer>...\n", c.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Prints a table of how each integer (row) orders against each other one (column).\n")
	fmt.Fprintf(os.Stderr, "Put -- before the integers when the first one is negative.\n")
	fmt.Fprintf(os.Stderr, "\n")
}

func (c *Compare) run() error {
	flagset := newFlagSet(c.args[0], c.usage)
	c.opts.register(flagset)
	if err := flagset.Parse(c.args[1:]); err != nil {
		return err
	}
	defer c.opts.finish()
	if err := c.opts.apply(os.Stderr); err != nil {
		return err
	}

	if flagset.NArg() < 2 {
		flagset.Usage()
		return errors.Wrap(core.ErrArgumentCount, "expected at least two integers")
	}
	nums, err := ParseLiterals(flagset.Args())
	if err != nil {
		return err
	}

	c.render(flagset.Args(), nums)
	return nil
}

func (c *Compare) render(labels []string, nums []comparison.Number) {
	tbl := tablewriter.NewWriter(c.out)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetHeader(append([]string{""}, labels...))
	tbl.SetBorder(core.GetConfigBoolDefault("compare.border", true))

	for i, l := range nums {
		row := []string{labels[i]}
		for _, r := range nums {
			row = append(row, relation(l, r))
		}
		tbl.Append(row)
	}
	tbl.Render()
}

func relation(l, r comparison.Number) string {
	switch {
	case l.Less(r):
		return "<"
	case l.Greater(r):
		return ">"
	default:
		return "="
	}
}
