package array

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// SortFunc sorts the receiver in place by a three-way comparator (negative
// when x orders before y, zero when equal, positive otherwise). The sort
// is stable: elements the comparator calls equal keep their relative
// order. Returns the receiver.
func (a *Array[T]) SortFunc(cmp func(x, y T) int) *Array[T] {
	slices.SortStableFunc(a.elems, cmp)
	return a
}

// Sort sorts the array in place by the element type's natural ordering
// and returns it.
func Sort[T constraints.Ordered](a *Array[T]) *Array[T] {
	slices.Sort(a.elems)
	return a
}

// Reverse returns a new array with the elements in reverse order; the
// receiver is left untouched.
func (a *Array[T]) Reverse() *Array[T] {
	out := make([]T, len(a.elems))
	for i, v := range a.elems {
		out[len(out)-1-i] = v
	}
	return &Array[T]{elems: out}
}

// Concat returns a new array holding the receiver's elements followed by
// items; the receiver is left untouched.
func (a *Array[T]) Concat(items ...T) *Array[T] {
	out := make([]T, 0, len(a.elems)+len(items))
	out = append(out, a.elems...)
	out = append(out, items...)
	return &Array[T]{elems: out}
}

// Join concatenates the elements' string forms with sep between them
// (default ","). An empty array joins to "".
func (a *Array[T]) Join(sep ...string) string {
	separator := ","
	if len(sep) > 0 {
		separator = sep[0]
	}
	var b strings.Builder
	for i, v := range a.elems {
		if i > 0 {
			b.WriteString(separator)
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
