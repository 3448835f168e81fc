package tools

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/utils/comparison"
	"github.com/pkg/errors"
)

// Demo selects the extremum of three integers and repeatedly increments it
// in place, showing that the selection aliases the argument.
type Demo struct {
	args []string
	out  io.Writer
	opts options

	lowest     bool
	iterations int
}

func RunDemo(args []string) {
	d := &Demo{args: args, out: os.Stdout}
	if err := d.run(); err != nil {
		exit("Demo", err)
	}
}

func (d *Demo) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <a> <b> <c>\n", d.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Increments the highest (or lowest) of three integers in place and\n")
	fmt.Fprintf(os.Stderr, "prints all three after every step.\n")
	fmt.Fprintf(os.Stderr, "Put -- before the integers when the first one is negative.\n")
	fmt.Fprintf(os.Stderr, "\n")
}

func (d *Demo) run() error {
	flagset := newFlagSet(d.args[0], d.usage)
	d.opts.register(flagset)
	flagset.BoolVar(&d.lowest, "lowest", false, "Increment the lowest value instead of the highest")
	flagset.IntVar(&d.iterations, "iterations", -1, "Number of increments (default from config, or 10)")
	if err := flagset.Parse(d.args[1:]); err != nil {
		return err
	}
	defer d.opts.finish()
	if err := d.opts.apply(os.Stderr); err != nil {
		return err
	}

	if flagset.NArg() != 3 {
		flagset.Usage()
		return errors.Wrapf(core.ErrArgumentCount, "expected 3 integers, got %d", flagset.NArg())
	}

	if d.iterations < 0 {
		d.iterations = core.GetConfigIntDefault("demo.iterations", 10)
	}
	if !isFlagSet(flagset, "lowest") {
		switch mode := core.GetConfigStringDefault("demo.mode", "highest"); mode {
		case "highest":
		case "lowest":
			d.lowest = true
		default:
			return errors.Wrapf(core.ErrBadMode, "%q", mode)
		}
	}

	var values [3]int
	for i, arg := range flagset.Args() {
		v, err := strconv.ParseInt(arg, 0, strconv.IntSize)
		if err != nil {
			return errors.Wrapf(core.ErrBadLiteral, "%q: %v", arg, err)
		}
		values[i] = int(v)
	}

	d.increment(&values[0], &values[1], &values[2])
	return nil
}

func (d *Demo) increment(a, b, c *int) {
	selectRef := comparison.HighestRef[int]
	if d.lowest {
		selectRef = comparison.LowestRef[int]
	}
	core.LogDebug("Demo", "Incrementing ", d.iterations, " times, lowest=", d.lowest)

	fmt.Fprintf(d.out, "a==%d, b==%d, c==%d\n", *a, *b, *c)
	for i := 0; i < d.iterations; i++ {
		v := selectRef(a, b, c)
		*v++
		fmt.Fprintf(d.out, "value==%d - a==%d, b==%d, c==%d\n", *v, *a, *b, *c)
	}
}

func isFlagSet(flagset *flag.FlagSet, name string) bool {
	found := false
	flagset.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
