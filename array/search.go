package array

// Find returns the first element satisfying pred, or nil when none does.
func (a *Array[T]) Find(pred func(v T, i int) bool) *T {
	for i, v := range a.elems {
		if pred(v, i) {
			v := v
			return &v
		}
	}
	return nil
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func (a *Array[T]) FindIndex(pred func(v T, i int) bool) int {
	for i, v := range a.elems {
		if pred(v, i) {
			return i
		}
	}
	return -1
}

// FindLast scans ascending and keeps the most recent match, so the last
// satisfying element wins. Returns nil when none matches.
func (a *Array[T]) FindLast(pred func(v T, i int) bool) *T {
	var found *T
	for i, v := range a.elems {
		if pred(v, i) {
			v := v
			found = &v
		}
	}
	return found
}

// FindLastIndex is the index form of FindLast, returning -1 when nothing
// matches.
func (a *Array[T]) FindLastIndex(pred func(v T, i int) bool) int {
	found := -1
	for i, v := range a.elems {
		if pred(v, i) {
			found = i
		}
	}
	return found
}

// IndexOf returns the index of the first element equal to v at or after
// fromIndex (default 0; negative counts from the end, clamped low to 0),
// or -1. Equality is the element type's own == comparison; element types
// without a usable == go through FindIndex instead.
func IndexOf[T comparable](a *Array[T], v T, fromIndex ...int) int {
	n := len(a.elems)
	start := 0
	if len(fromIndex) > 0 {
		start = fromIndex[0]
		if start < 0 {
			start += n
		}
		if start < 0 {
			start = 0
		}
	}
	for i := start; i < n; i++ {
		if a.elems[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v at or
// before fromIndex (default Len()-1; negative counts from the end, and a
// start that resolves below 0 means no match), or -1.
func LastIndexOf[T comparable](a *Array[T], v T, fromIndex ...int) int {
	n := len(a.elems)
	start := n - 1
	if len(fromIndex) > 0 {
		start = fromIndex[0]
		if start < 0 {
			start += n
		}
		if start > n-1 {
			start = n - 1
		}
	}
	for i := start; i >= 0; i-- {
		if a.elems[i] == v {
			return i
		}
	}
	return -1
}

// Includes reports whether some element at or after fromIndex equals v.
func Includes[T comparable](a *Array[T], v T, fromIndex ...int) bool {
	return IndexOf(a, v, fromIndex...) >= 0
}
