// Package comparison selects the lowest or highest of one or more values.
//
// Values of a single ordered type are compared natively. Integers of mixed
// width and signedness are compared by true value through Number, so that a
// negative signed value never passes for a huge unsigned one.
//
// Every selector takes a head argument and a variadic tail; when several
// candidates are equal, the leftmost one is selected.
package comparison

import "golang.org/x/exp/constraints"

// Lowest returns the lowest of its arguments.
func Lowest[T constraints.Ordered](first T, rest ...T) T {
	return fold(ascending[T], first, rest)
}

// Highest returns the highest of its arguments.
func Highest[T constraints.Ordered](first T, rest ...T) T {
	return fold(descending[T], first, rest)
}

// LowestRef returns the pointer to the lowest of the pointed-to values.
// Writing through the result changes the selected argument.
func LowestRef[T constraints.Ordered](first *T, rest ...*T) *T {
	return fold(func(a, b *T) bool { return ascending(*a, *b) }, first, rest)
}

// HighestRef returns the pointer to the highest of the pointed-to values.
// Writing through the result changes the selected argument.
func HighestRef[T constraints.Ordered](first *T, rest ...*T) *T {
	return fold(func(a, b *T) bool { return descending(*a, *b) }, first, rest)
}

// LowestOf returns the lowest of its arguments under their Less method.
func LowestOf[T Lesser[T]](first T, rest ...T) T {
	return fold(func(a, b T) bool { return a.Less(b) }, first, rest)
}

// HighestOf returns the highest of its arguments under their Less method.
func HighestOf[T Lesser[T]](first T, rest ...T) T {
	return fold(func(a, b T) bool { return b.Less(a) }, first, rest)
}

// LowestNumber returns the lowest of integers of any width and signedness.
//
// If every argument is an alias (NumRef) of the same Go type, the result
// aliases the selected argument. If the arguments share a signedness, the
// result is a copy in the widest argument type. Otherwise the result is a copy
// in the unsigned type as wide as the widest argument, holding the selected
// value's bit pattern; Value converts it back to a signed type.
func LowestNumber(first Number, rest ...Number) Number {
	return foldNumbers(less, first, rest)
}

// HighestNumber returns the highest of integers of any width and signedness,
// with the same aliasing and result type rules as LowestNumber.
func HighestNumber(first Number, rest ...Number) Number {
	return foldNumbers(greater, first, rest)
}
