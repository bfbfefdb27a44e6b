// Package array provides a growable, 0-indexed generic sequence whose
// operation set mirrors the mutation and query surface of a scripting
// language array: index access, splice/fill/copy region edits and the
// usual higher-order traversals.
package array

import (
	"errors"
	"fmt"

	"github.com/sooomo/arr"
)

var ErrIndexOutOfRange = errors.New("array: index out of range")

// Array is an ordered sequence of T backed by exclusively owned storage.
// The zero value is an empty, ready to use array. It is not safe for
// concurrent use without external locking.
type Array[T any] struct {
	elems []T
}

var _ arr.Sequence[int] = (*Array[int])(nil)

func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewSized returns an array holding length zero values of T.
func NewSized[T any](length int) *Array[T] {
	if length < 0 {
		length = 0
	}
	return &Array[T]{elems: make([]T, length)}
}

func Of[T any](items ...T) *Array[T] {
	a := &Array[T]{elems: make([]T, len(items))}
	copy(a.elems, items)
	return a
}

// From copies items into a new array; the caller keeps ownership of the
// input slice.
func From[T any](items []T) *Array[T] {
	return Of(items...)
}

func (a *Array[T]) Len() int { return len(a.elems) }

func (a *Array[T]) Size() int { return len(a.elems) }

func (a *Array[T]) IsEmpty() bool { return len(a.elems) == 0 }

func (a *Array[T]) Clear() { a.elems = nil }

// Get reads the element at i. The index is not normalized; i must be in
// [0, Len()), anything else panics with ErrIndexOutOfRange.
func (a *Array[T]) Get(i int) T {
	if i < 0 || i >= len(a.elems) {
		panic(ErrIndexOutOfRange)
	}
	return a.elems[i]
}

// Set writes the element at i, with the same index contract as Get.
func (a *Array[T]) Set(i int, v T) {
	if i < 0 || i >= len(a.elems) {
		panic(ErrIndexOutOfRange)
	}
	a.elems[i] = v
}

// At reads the element at i, counting from the end when i is negative.
// Returns nil when the resolved index is out of range.
func (a *Array[T]) At(i int) *T {
	if i < 0 {
		i += len(a.elems)
	}
	if i < 0 || i >= len(a.elems) {
		return nil
	}
	v := a.elems[i]
	return &v
}

// Push appends items and returns the new length.
func (a *Array[T]) Push(items ...T) int {
	a.elems = append(a.elems, items...)
	return len(a.elems)
}

// Pop removes and returns the last element, or nil when empty.
func (a *Array[T]) Pop() *T {
	n := len(a.elems)
	if n == 0 {
		return nil
	}
	v := a.elems[n-1]
	var zero T
	a.elems[n-1] = zero
	a.elems = a.elems[:n-1]
	return &v
}

// Shift removes and returns the first element, or nil when empty.
func (a *Array[T]) Shift() *T {
	n := len(a.elems)
	if n == 0 {
		return nil
	}
	v := a.elems[0]
	copy(a.elems, a.elems[1:])
	var zero T
	a.elems[n-1] = zero
	a.elems = a.elems[:n-1]
	return &v
}

// Unshift prepends items and returns the new length.
func (a *Array[T]) Unshift(items ...T) int {
	a.insert(0, items)
	return len(a.elems)
}

// Insert places item at index i, shifting later elements up. A negative i
// counts from the end; the resolved index is clamped to [0, Len()].
func (a *Array[T]) Insert(i int, item T) {
	a.insert(a.normIndex(i), []T{item})
}

// InsertRange places items at index i with the same index contract as
// Insert.
func (a *Array[T]) InsertRange(i int, items []T) {
	a.insert(a.normIndex(i), items)
}

func (a *Array[T]) insert(i int, items []T) {
	n := len(items)
	if n == 0 {
		return
	}
	a.elems = append(a.elems, items...)
	copy(a.elems[i+n:], a.elems[i:])
	copy(a.elems[i:i+n], items)
}

// Keys returns the index sequence 0..Len()-1.
func (a *Array[T]) Keys() []int {
	out := make([]int, len(a.elems))
	for i := range out {
		out[i] = i
	}
	return out
}

// Values returns a snapshot copy of the elements.
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.elems))
	copy(out, a.elems)
	return out
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.elems)
}
