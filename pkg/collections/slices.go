package collections

// Chunk splits items into consecutive slices of at most size elements.
// The last chunk holds the remainder. A non-positive size returns nil.
// Chunks share the backing array of items.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, items[i:end:end])
	}
	return chunks
}

// Unique returns the distinct elements of items in first-occurrence order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Flatten recursively expands nested []any values into a single flat slice.
// Elements that are not []any are kept as they are.
func Flatten(items []any) []any {
	result := make([]any, 0, len(items))
	return flattenInto(result, items)
}

func flattenInto(dst, items []any) []any {
	for _, item := range items {
		if nested, ok := item.([]any); ok {
			dst = flattenInto(dst, nested)
			continue
		}
		dst = append(dst, item)
	}
	return dst
}
