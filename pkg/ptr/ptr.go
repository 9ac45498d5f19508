package ptr

// Of returns a pointer to t.
func Of[T any](t T) *T {
	return &t
}

// ValueOr dereferences t, falling back to or when t is nil.
func ValueOr[T any](t *T, or T) T {
	if t == nil {
		return or
	}
	return *t
}
