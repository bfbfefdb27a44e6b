package array

import "github.com/bits-and-blooms/bitset"

// normIndex resolves a possibly negative index against the current length
// (negative means offset from the end), then clamps the result to
// [0, Len()]. Normalization always happens before clamping.
func (a *Array[T]) normIndex(i int) int {
	length := len(a.elems)
	if i < 0 {
		i += length
	}
	return clamp(i, 0, length)
}

// normRange resolves optional [start, end) bounds. Omitted start defaults
// to 0 and omitted end to Len(). A negative end resolves to Len()+end, and
// in that case a negative start resolves against the already-resolved end
// instead of the length. Both bounds are clamped to [0, Len()] only after
// resolution, and an inverted range collapses to empty.
func (a *Array[T]) normRange(bounds []int) (int, int) {
	length := len(a.elems)
	start, end := 0, length
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	base := length
	if end < 0 {
		end += length
		base = end
	}
	if start < 0 {
		start += base
	}
	start = clamp(start, 0, length)
	end = clamp(end, 0, length)
	if end < start {
		end = start
	}
	return start, end
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// Slice returns a new, independently owned array holding the elements in
// [start, end) after index resolution. Out-of-range bounds are clamped,
// never rejected. The receiver is left untouched.
func (a *Array[T]) Slice(bounds ...int) *Array[T] {
	start, end := a.normRange(bounds)
	out := make([]T, end-start)
	copy(out, a.elems[start:end])
	return &Array[T]{elems: out}
}

// Splice removes deleteCount elements at the resolved start index, then
// inserts items in their place. It returns the removed elements as a new
// array, in their original order. The removal set is fixed against the
// pre-mutation indices before anything moves, so insertion can never skip
// or duplicate a slot.
func (a *Array[T]) Splice(start, deleteCount int, items ...T) *Array[T] {
	begin := a.normIndex(start)
	if deleteCount < 0 {
		deleteCount = 0
	}
	if rest := len(a.elems) - begin; deleteCount > rest {
		deleteCount = rest
	}

	removed := make([]T, deleteCount)
	copy(removed, a.elems[begin:begin+deleteCount])

	marks := bitset.New(uint(len(a.elems)))
	for i := begin; i < begin+deleteCount; i++ {
		marks.Set(uint(i))
	}
	a.removeMarked(marks)
	a.insert(begin, items)

	return &Array[T]{elems: removed}
}

// removeMarked drops every element whose index is set in marks, keeping
// the rest in order. The vacated tail is zeroed so removed elements are
// not retained by the backing storage.
func (a *Array[T]) removeMarked(marks *bitset.BitSet) {
	kept := a.elems[:0]
	for i, v := range a.elems {
		if !marks.Test(uint(i)) {
			kept = append(kept, v)
		}
	}
	var zero T
	tail := a.elems[len(kept):]
	for i := range tail {
		tail[i] = zero
	}
	a.elems = kept
}

// CopyWithin copies the resolved [start, end) region so that it begins at
// the resolved target index, overwriting what was there. The length never
// changes; the copied region is truncated to fit. The source is
// snapshotted first, so overlapping ranges read pre-write values.
func (a *Array[T]) CopyWithin(target int, bounds ...int) *Array[T] {
	to := a.normIndex(target)
	start, end := a.normRange(bounds)
	count := end - start
	if room := len(a.elems) - to; count > room {
		count = room
	}
	if count <= 0 {
		return a
	}
	src := make([]T, count)
	copy(src, a.elems[start:start+count])
	copy(a.elems[to:to+count], src)
	return a
}

// Fill overwrites every element in the resolved [start, end) range with
// value and returns the receiver.
func (a *Array[T]) Fill(value T, bounds ...int) *Array[T] {
	start, end := a.normRange(bounds)
	for i := start; i < end; i++ {
		a.elems[i] = value
	}
	return a
}
