package filters

// Change is one field of a filter patch. The zero value leaves the field
// untouched.
type Change[T any] struct {
	touched bool
	cleared bool
	value   T
}

// Set overwrites the field. Setting an empty value removes it.
func Set[T any](v T) Change[T] {
	return Change[T]{touched: true, value: v}
}

// Clear removes the field.
func Clear[T any]() Change[T] {
	return Change[T]{touched: true, cleared: true}
}

func (c Change[T]) Touched() bool {
	return c.touched
}

// Value returns the new value; ok is false for untouched and cleared fields.
func (c Change[T]) Value() (v T, ok bool) {
	if !c.touched || c.cleared {
		return v, false
	}
	return c.value, true
}
