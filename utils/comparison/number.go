package comparison

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is an integer operand of any Go integer type, used to select the
// lowest or highest among integers of mixed width and signedness.
//
// A Number built with NumRef aliases the caller's storage: its value is read
// through the pointer, and Ref hands the pointer back.
type Number struct {
	bits   uint64 // sign- or zero-extended to 64 bits
	width  uint8  // bytes
	signed bool
	kind   any // typed nil *T, identifies the Go type
	ref    any // *T when aliasing
	load   func() uint64
}

// Num captures a copy of v.
func Num[T constraints.Integer](v T) Number {
	return Number{
		bits:   extend(v),
		width:  uint8(unsafe.Sizeof(v)),
		signed: isSigned[T](),
		kind:   (*T)(nil),
	}
}

// NumRef captures an alias of *p.
func NumRef[T constraints.Integer](p *T) Number {
	n := Num(*p)
	n.ref = p
	n.load = func() uint64 { return extend(*p) }
	return n
}

// Value converts n to T with Go conversion semantics.
func Value[T constraints.Integer](n Number) T {
	return T(n.value())
}

// Ref returns the storage n aliases, if n aliases a *T.
func Ref[T constraints.Integer](n Number) (*T, bool) {
	p, ok := n.ref.(*T)
	return p, ok
}

func (n Number) Signed() bool {
	return n.signed
}

// Width returns the size of the operand type in bytes.
func (n Number) Width() int {
	return int(n.width)
}

func (n Number) IsRef() bool {
	return n.ref != nil
}

func (n Number) Int64() int64 {
	return int64(n.value())
}

func (n Number) Uint64() uint64 {
	return n.value()
}

// TypeName returns the name of the operand's Go type.
func (n Number) TypeName() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n.kind), "*")
}

func (n Number) String() string {
	if n.signed {
		return strconv.FormatInt(int64(n.value()), 10)
	}
	return strconv.FormatUint(n.value(), 10)
}

// Less reports whether n is strictly lower than o by true integer value.
func (n Number) Less(o Number) bool {
	return less(n, o)
}

// Greater reports whether n is strictly higher than o by true integer value.
func (n Number) Greater(o Number) bool {
	return less(o, n)
}

func (n Number) value() uint64 {
	if n.load != nil {
		return n.load()
	}
	return n.bits
}

// detach drops the alias, keeping the current value.
func (n Number) detach() Number {
	n.bits = n.value()
	n.ref = nil
	n.load = nil
	return n
}

// convert materializes n's value in the given integer type.
func (n Number) convert(width uint8, signed bool) Number {
	bits := truncate(n.value(), width)
	if signed {
		bits = signExtend(bits, width)
	}
	return Number{
		bits:   bits,
		width:  width,
		signed: signed,
		kind:   kindOf(width, signed),
	}
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

func extend[T constraints.Integer](v T) uint64 {
	if isSigned[T]() {
		return uint64(int64(v))
	}
	return uint64(v)
}

func truncate(bits uint64, width uint8) uint64 {
	if width >= 8 {
		return bits
	}
	return bits & (1<<(8*uint(width)) - 1)
}

func signExtend(bits uint64, width uint8) uint64 {
	if width >= 8 {
		return bits
	}
	shift := 64 - 8*uint(width)
	return uint64(int64(bits<<shift) >> shift)
}

func kindOf(width uint8, signed bool) any {
	switch {
	case width == 1 && signed:
		return (*int8)(nil)
	case width == 1:
		return (*uint8)(nil)
	case width == 2 && signed:
		return (*int16)(nil)
	case width == 2:
		return (*uint16)(nil)
	case width == 4 && signed:
		return (*int32)(nil)
	case width == 4:
		return (*uint32)(nil)
	case signed:
		return (*int64)(nil)
	default:
		return (*uint64)(nil)
	}
}
