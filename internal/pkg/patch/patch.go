// Package patch supports the partial PUT semantics of the company and
// coupon-rule endpoints, where a nil field means "leave untouched".
package patch

// Coalesce returns the value ptr points to when the field was supplied,
// otherwise the current stored value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
