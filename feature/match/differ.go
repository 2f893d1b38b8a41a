package match

import (
	"cmp"
	"slices"
)

// DiffSorted compares two sorted slices in a single merge pass and
// returns the elements present in only one of them. Equal elements are
// consumed from both sides and appear in neither output, so diffing a
// slice against itself yields two empty results.
//
// Both inputs must already be sorted ascending.
func DiffSorted[T cmp.Ordered](a, b []T) (onlyA, onlyB []T) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			onlyA = append(onlyA, a[i])
			i++
		default:
			onlyB = append(onlyB, b[j])
			j++
		}
	}
	onlyA = append(onlyA, a[i:]...)
	onlyB = append(onlyB, b[j:]...)
	return onlyA, onlyB
}

// sortedUnique returns a sorted copy of ids with duplicates removed.
func sortedUnique[T cmp.Ordered](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	slices.Sort(out)
	unique := out[:1]
	for _, v := range out[1:] {
		if v != unique[len(unique)-1] {
			unique = append(unique, v)
		}
	}
	return unique
}
