// Package ptr provides helpers for optional values held as pointers.
package ptr

// Of returns a pointer to a copy of v.
// Use it to turn literals and expression results into optional values.
func Of[T any](v T) *T {
	return &v
}

// ValueOr returns the value p points to,
// or fallback if p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
