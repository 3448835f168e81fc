package comparison

import "golang.org/x/exp/constraints"

// Lesser is implemented by types that define their own natural order.
type Lesser[T any] interface {
	Less(other T) bool
}

// Less reports whether l is strictly lower than r, comparing integers of any
// width and signedness by their true value. A negative signed value is lower
// than every unsigned value.
func Less[L, R constraints.Integer](l L, r R) bool {
	return less(Num(l), Num(r))
}

// Greater reports whether l is strictly higher than r.
func Greater[L, R constraints.Integer](l L, r R) bool {
	return Less(r, l)
}

func less(l, r Number) bool {
	lv, rv := l.value(), r.value()
	if l.signed == r.signed {
		if l.signed {
			return int64(lv) < int64(rv)
		}
		return lv < rv
	}

	// Mixed signedness: compare in the wider of the two types, made unsigned,
	// once the signed side is known to be non-negative.
	w := widest(l, r)
	if l.signed {
		return int64(lv) < 0 || truncate(lv, w) < truncate(rv, w)
	}
	return int64(rv) >= 0 && truncate(lv, w) < truncate(rv, w)
}

func greater(l, r Number) bool {
	return less(r, l)
}

func widest(l, r Number) uint8 {
	if l.width >= r.width {
		return l.width
	}
	return r.width
}

func ascending[T constraints.Ordered](a, b T) bool {
	return a < b
}

func descending[T constraints.Ordered](a, b T) bool {
	return ascending(b, a)
}
