package ptr

func Of[T any](v T) *T {
	return &v
}

// Deref returns the pointed value or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func Or[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
