package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]int{4, 5, 6, 7}, 6), "Should find the element's index")
	require.Equal(t, -1, FindIndex([]int{4, 5, 6, 7}, 9), "Should report a missing element as -1")
	require.Equal(t, -1, FindIndex(nil, 9))
}

func TestRemoveAt(t *testing.T) {
	require.Equal(t, []int{4, 6, 7}, RemoveAt([]int{4, 5, 6, 7}, 1), "Should drop the element and keep the order")
	require.Equal(t, []int{5, 6, 7}, RemoveAt([]int{4, 5, 6, 7}, 0))
	require.Equal(t, []int{4, 5, 6}, RemoveAt([]int{4, 5, 6, 7}, 3))
	require.Empty(t, RemoveAt([]int{4}, 0))
}
