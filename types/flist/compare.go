package flist

import (
	"gopkg.in/typ.v4"
)

// Equal reports whether lists a and b hold the same number of elements
// with equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares element values with eq.
func EqualFunc[T any](a, b *List[T], eq func(a, b T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	cb := b.ReadFront()
	for ca := a.ReadFront(); !ca.IsEnd(); ca = ca.Next() {
		if !eq(ca.Value(), cb.Value()) {
			return false
		}
		cb = cb.Next()
	}
	return true
}

// Compare performs a lexicographic comparison of lists a and b using the
// natural ordering of the element type: the first pair of unequal elements
// decides the result, and if one list is a prefix of the other the shorter
// list is less. Returns -1 if a < b, 0 if a == b, +1 if a > b.
func Compare[T typ.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, typ.Compare[T])
}

// CompareFunc is like Compare but orders element values with cmp, which is
// expected to return 0 if a == b, a negative value if a < b, and a positive
// value if a > b.
func CompareFunc[T any](a, b *List[T], cmp func(a, b T) int) int {
	ca, cb := a.ReadFront(), b.ReadFront()
	for !ca.IsEnd() && !cb.IsEnd() {
		if c := cmp(ca.Value(), cb.Value()); c != 0 {
			return c
		}
		ca, cb = ca.Next(), cb.Next()
	}
	switch {
	case !cb.IsEnd():
		return -1
	case !ca.IsEnd():
		return 1
	}
	return 0
}

// Less reports whether list a lexicographically precedes list b.
// The remaining order relations derive by negation and argument reversal:
// a > b is Less(b, a), a <= b is !Less(b, a), a >= b is !Less(a, b).
func Less[T typ.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}
