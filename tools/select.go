package tools

import (
	"fmt"
	"io"
	"os"

	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/utils/comparison"
	"github.com/pkg/errors"
)

// Select prints the lowest or highest of typed integer literals.
type Select struct {
	args    []string
	out     io.Writer
	opts    options
	highest bool
}

func RunLowest(args []string) {
	s := &Select{args: args, out: os.Stdout}
	if err := s.run(); err != nil {
		exit("Lowest", err)
	}
}

func RunHighest(args []string) {
	s := &Select{args: args, out: os.Stdout, highest: true}
	if err := s.run(); err != nil {
		exit("Highest", err)
	}
}

func (s *Select) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <integer>...\n", s.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Prints the %s of the integers by true value, with its type.\n", s.name())
	fmt.Fprintf(os.Stderr, "Integers take an optional type suffix: i, i8, i16, i32, i64, u, u8, u16, u32, u64.\n")
	fmt.Fprintf(os.Stderr, "Put -- before the integers when the first one is negative.\n")
	fmt.Fprintf(os.Stderr, "\n")
}

func (s *Select) name() string {
	if s.highest {
		return "highest"
	}
	return "lowest"
}

func (s *Select) run() error {
	flagset := newFlagSet(s.args[0], s.usage)
	s.opts.register(flagset)
	if err := flagset.Parse(s.args[1:]); err != nil {
		return err
	}
	defer s.opts.finish()
	if err := s.opts.apply(os.Stderr); err != nil {
		return err
	}

	if flagset.NArg() < 1 {
		flagset.Usage()
		return errors.Wrap(core.ErrArgumentCount, "expected at least one integer")
	}
	nums, err := ParseLiterals(flagset.Args())
	if err != nil {
		return err
	}

	var result comparison.Number
	if s.highest {
		result = comparison.HighestNumber(nums[0], nums[1:]...)
	} else {
		result = comparison.LowestNumber(nums[0], nums[1:]...)
	}
	core.LogDebug("Select", "Selected ", s.name(), " of ", len(nums), " values")

	fmt.Fprintf(s.out, "%s (%s)\n", result, result.TypeName())
	return nil
}
