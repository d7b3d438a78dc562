// Package batch partitions an ordered sequence into fixed-size groups,
// used to lay watchlist rows out in a grid.
package batch

import (
	"errors"
	"fmt"
)

// ErrGroupSize reports a group size below 1. Programmer error, never retried.
var ErrGroupSize = errors.New("group size must be at least one")

// Batch splits items into groups of size elements each. The final group may
// be shorter when the input length is not an exact multiple; it is never
// padded. Groups are subslice views of the input and must be treated as
// read-only.
func Batch[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrGroupSize, size)
	}
	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[start:end:end])
	}
	return groups, nil
}
