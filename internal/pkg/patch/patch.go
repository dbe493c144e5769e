package patch

// Coalesce dereferences ptr, or returns fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
