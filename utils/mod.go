package utils

// FindIndex returns the index of item in slice, -1 when absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// RemoveAt drops the element at index i, preserving order.
func RemoveAt[T any](slice []T, i int) []T {
	return append(slice[:i], slice[i+1:]...)
}
