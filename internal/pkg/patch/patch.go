package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable resolves a clearable optional field of a partial update.
// clear wins over set; a nil set keeps current.
func Nullable[T any](set *T, clear bool, current *T) *T {
	if clear {
		return nil
	}
	if set != nil {
		return set
	}
	return current
}
