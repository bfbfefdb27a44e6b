package arr

// Collection is the minimal contract shared by the containers in this
// module.
type Collection[T any] interface {
	Size() int
	IsEmpty() bool
	Clear()
}

// Sequence is an ordered, 0-indexed collection with random access.
// Indices passed to Get and Set must already be valid.
type Sequence[T any] interface {
	Collection[T]
	Len() int
	Get(i int) T
	Set(i int, v T)
	Values() []T
}
