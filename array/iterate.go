package array

import "github.com/bits-and-blooms/bitset"

// The traversal operations below visit indices in ascending order (only
// ReduceRight descends) and iterate over the backing storage as it was
// when the call started. A callback that mutates the array it is
// traversing gets unspecified results; callers wanting that must not.

// ForEach invokes fn on every element, in order, for its side effects.
func (a *Array[T]) ForEach(fn func(v T, i int)) {
	for i, v := range a.elems {
		fn(v, i)
	}
}

// Every reports whether pred holds for all elements, stopping at the
// first failure. It is vacuously true on an empty array.
func (a *Array[T]) Every(pred func(v T, i int) bool) bool {
	for i, v := range a.elems {
		if !pred(v, i) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element, stopping at
// the first match.
func (a *Array[T]) Some(pred func(v T, i int) bool) bool {
	for i, v := range a.elems {
		if pred(v, i) {
			return true
		}
	}
	return false
}

// Filter returns a new array with the elements for which pred is true,
// order preserved.
func (a *Array[T]) Filter(pred func(v T, i int) bool) *Array[T] {
	out := &Array[T]{}
	for i, v := range a.elems {
		if pred(v, i) {
			out.elems = append(out.elems, v)
		}
	}
	return out
}

// FindAll is Filter under its other name.
func (a *Array[T]) FindAll(pred func(v T, i int) bool) *Array[T] {
	return a.Filter(pred)
}

// Map returns a new array of fn(element, index, receiver) results, same
// length and order as the receiver.
func (a *Array[T]) Map(fn func(v T, i int, a *Array[T]) T) *Array[T] {
	out := make([]T, len(a.elems))
	for i, v := range a.elems {
		out[i] = fn(v, i, a)
	}
	return &Array[T]{elems: out}
}

// Reduce folds left to right. The accumulator starts as a pointer to the
// optional initial value, or nil when none is given; fn sees that nil on
// the very first element and decides what to make of it. On an empty
// array the initial accumulator comes back unchanged.
func (a *Array[T]) Reduce(fn func(acc *T, v T, i int) *T, initial ...T) *T {
	var acc *T
	if len(initial) > 0 {
		v := initial[0]
		acc = &v
	}
	for i, v := range a.elems {
		acc = fn(acc, v, i)
	}
	return acc
}

// ReduceRight folds right to left with the same accumulator contract as
// Reduce.
func (a *Array[T]) ReduceRight(fn func(acc *T, v T, i int) *T, initial ...T) *T {
	var acc *T
	if len(initial) > 0 {
		v := initial[0]
		acc = &v
	}
	for i := len(a.elems) - 1; i >= 0; i-- {
		acc = fn(acc, a.elems[i], i)
	}
	return acc
}

// RemoveAll deletes, in place, every element for which pred is true and
// returns how many were dropped. The removal set is decided against the
// pre-mutation indices, then applied in one pass.
func (a *Array[T]) RemoveAll(pred func(v T, i int) bool) int {
	marks := bitset.New(uint(len(a.elems)))
	for i, v := range a.elems {
		if pred(v, i) {
			marks.Set(uint(i))
		}
	}
	removed := int(marks.Count())
	if removed > 0 {
		a.removeMarked(marks)
	}
	return removed
}
