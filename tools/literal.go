package tools

import (
	"strconv"
	"strings"

	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/utils/comparison"
	"github.com/pkg/errors"
)

type literalParser func(digits string) (comparison.Number, error)

var literalSuffixes = map[string]literalParser{
	"":    parseSigned[int](strconv.IntSize),
	"i":   parseSigned[int](strconv.IntSize),
	"i8":  parseSigned[int8](8),
	"i16": parseSigned[int16](16),
	"i32": parseSigned[int32](32),
	"i64": parseSigned[int64](64),
	"u":   parseUnsigned[uint](strconv.IntSize),
	"u8":  parseUnsigned[uint8](8),
	"u16": parseUnsigned[uint16](16),
	"u32": parseUnsigned[uint32](32),
	"u64": parseUnsigned[uint64](64),
}

// ParseLiteral parses an integer literal with an optional type suffix, such
// as "-2", "0u", "0xffu8" or "300i16". Digits follow Go syntax with base
// prefixes; a literal without suffix is an int.
func ParseLiteral(literal string) (comparison.Number, error) {
	s := strings.ToLower(literal)
	digits, suffix := s, ""
	if i := strings.LastIndexAny(s, "iu"); i >= 0 {
		digits, suffix = s[:i], s[i:]
	}

	parse, ok := literalSuffixes[suffix]
	if !ok {
		return comparison.Number{}, errors.Wrapf(core.ErrBadSuffix, "%q", literal)
	}
	n, err := parse(digits)
	if err != nil {
		return comparison.Number{}, errors.Wrapf(core.ErrBadLiteral, "%q: %v", literal, err)
	}
	return n, nil
}

// ParseLiterals parses every literal, stopping at the first failure.
func ParseLiterals(literals []string) ([]comparison.Number, error) {
	nums := make([]comparison.Number, 0, len(literals))
	for _, literal := range literals {
		n, err := ParseLiteral(literal)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func parseSigned[T int | int8 | int16 | int32 | int64](bitSize int) literalParser {
	return func(digits string) (comparison.Number, error) {
		v, err := strconv.ParseInt(digits, 0, bitSize)
		if err != nil {
			return comparison.Number{}, err
		}
		return comparison.Num(T(v)), nil
	}
}

func parseUnsigned[T uint | uint8 | uint16 | uint32 | uint64](bitSize int) literalParser {
	return func(digits string) (comparison.Number, error) {
		v, err := strconv.ParseUint(digits, 0, bitSize)
		if err != nil {
			return comparison.Number{}, err
		}
		return comparison.Num(T(v)), nil
	}
}
