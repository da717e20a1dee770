package utils

// Pairs returns every unordered pair of items exactly once, in the order
// (0,1), (0,2), ..., (1,2), ...
func Pairs[T any](items []T) [][2]T {
	var pairs [][2]T
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			pairs = append(pairs, [2]T{items[i], items[j]})
		}
	}
	return pairs
}
