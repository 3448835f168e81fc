package comparison

// fold returns the element of first, rest... that no other element precedes.
// The tail is reduced first; among equal candidates the leftmost wins.
func fold[T any](precedes func(a, b T) bool, first T, rest []T) T {
	if len(rest) == 0 {
		return first
	}
	right := fold(precedes, rest[0], rest[1:])
	if precedes(right, first) {
		return right
	}
	return first
}

// tagged is a reduction candidate. Once operands of different signedness
// have met, the candidate is carried in their common unsigned type and
// wasSigned remembers the signedness of the operand it logically holds.
type tagged struct {
	Number
	normalized bool
	wasSigned  bool
}

// logical returns the candidate's true value for comparison.
func (t tagged) logical() Number {
	if t.normalized && t.wasSigned {
		return t.Number.convert(t.width, true)
	}
	return t.Number
}

func (t tagged) logicallySigned() bool {
	if t.normalized {
		return t.wasSigned
	}
	return t.signed
}

func foldNumbers(precedes func(a, b Number) bool, first Number, rest []Number) Number {
	return foldTagged(precedes, first, rest).Number
}

func foldTagged(precedes func(a, b Number) bool, first Number, rest []Number) tagged {
	if len(rest) == 0 {
		return tagged{Number: first}
	}
	right := foldTagged(precedes, rest[0], rest[1:])
	rightValue := right.logical()
	takeRight := precedes(rightValue, first)

	// Signedness conflict, now or further right: materialize the selection in
	// the common unsigned type.
	if right.normalized || first.signed != right.signed {
		chosen, wasSigned := first, first.signed
		if takeRight {
			chosen, wasSigned = rightValue, right.logicallySigned()
		}
		common := widest(first, right.Number)
		converted := chosen.convert(common, false)
		if kind := unsignedKind(common, first, right.Number); kind != nil {
			converted.kind = kind
		}
		return tagged{
			Number:     converted,
			normalized: true,
			wasSigned:  wasSigned,
		}
	}

	chosen := first
	if takeRight {
		chosen = right.Number
	}
	switch {
	case first.kind == right.kind && first.IsRef() && right.IsRef():
		return tagged{Number: chosen}
	case first.kind == right.kind:
		return tagged{Number: chosen.detach()}
	case first.width > right.width:
		return tagged{Number: widen(chosen, first)}
	case right.width > first.width:
		return tagged{Number: widen(chosen, right.Number)}
	default:
		return tagged{Number: chosen.convert(first.width, first.signed)}
	}
}

// widen materializes n in the Go type of wider, keeping n's value.
func widen(n Number, wider Number) Number {
	n = n.detach()
	n.width = wider.width
	n.kind = wider.kind
	return n
}

// unsignedKind returns the Go type of the first operand that is unsigned and
// of the given width, or nil.
func unsignedKind(width uint8, operands ...Number) any {
	for _, o := range operands {
		if !o.signed && o.width == width {
			return o.kind
		}
	}
	return nil
}
