package array

// Dynamic is Array specialized to heterogeneous elements. It is a plain
// alias, not a separate implementation; every Array operation applies.
// Equality searches (Includes, IndexOf) compare interface values the way
// Go does, so two elements are equal when their dynamic types and values
// are, and comparing an uncomparable dynamic value panics — use the
// predicate forms for those.
type Dynamic = Array[any]

func NewDynamic() *Dynamic {
	return New[any]()
}

func DynamicOf(items ...any) *Dynamic {
	return Of(items...)
}

func DynamicFrom(items []any) *Dynamic {
	return From(items)
}
