package utils

// RotateOnce moves every item one position toward index 0, wrapping the
// first item to the end.
func RotateOnce[T any](items []T) []T {
	if len(items) == 0 {
		return items
	}
	tmp := items[0]
	copy(items, items[1:])
	items[len(items)-1] = tmp
	return items
}

// RotateOnceR moves every item one position toward the end, wrapping the
// last item to index 0.
func RotateOnceR[T any](items []T) []T {
	if len(items) == 0 {
		return items
	}
	tmp := items[len(items)-1]
	copy(items[1:], items)
	items[0] = tmp
	return items
}

// Clone returns a copy of items that does not share its backing array.
func Clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
