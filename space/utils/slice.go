package utils

// Reverse reverses items in place with a two pointer swap.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// Splice removes deleteCount items at index and inserts values in their
// place. The result never aliases values.
func Splice[T any](items []T, index, deleteCount int, values ...T) []T {
	end := min(index+deleteCount, len(items))
	out := make([]T, 0, len(items)-(end-index)+len(values))
	out = append(out, items[:index]...)
	out = append(out, values...)
	out = append(out, items[end:]...)
	return out
}

// RemoveIndexes drops the items at the given ascending indexes.
func RemoveIndexes[T any](items []T, indexes []int) []T {
	if len(indexes) == 0 {
		return items
	}
	out := items[:0]
	next := 0
	for i, item := range items {
		if next < len(indexes) && indexes[next] == i {
			next++
			continue
		}
		out = append(out, item)
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}
