// Package sliceutil holds generic helpers for slices
// that the standard library does not provide.
package sliceutil

// Transform builds a slice by applying f
// to all elements of the given slice, in order.
// It returns nil for an empty slice.
func Transform[From, To any](from []From, f func(From) To) []To {
	if len(from) == 0 {
		return nil
	}
	to := make([]To, len(from))
	for i, v := range from {
		to[i] = f(v)
	}
	return to
}

// Filter returns the items for which keep reports true,
// preserving their order.
//
// Filter reuses the storage of items.
// The original slice must not be used after this.
func Filter[T any](items []T, keep func(T) bool) []T {
	kept := items[:0]
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
