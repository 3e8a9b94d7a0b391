package intersection

import mapset "github.com/deckarep/golang-set/v2"

// Intersect returns the elements of toScan that also appear in toSet, in
// toScan's order. toSet is materialized into a lookup set, toScan is iterated.
//
// Both inputs are expected to hold unique values. If toScan repeats a value
// present in toSet, every repetition is kept in the result.
func Intersect(toSet, toScan []int) []int {
	lookup := mapset.NewThreadUnsafeSetWithSize[int](len(toSet))
	for _, v := range toSet {
		lookup.Add(v)
	}

	result := make([]int, 0, min(len(toSet), len(toScan)))
	for _, v := range toScan {
		if lookup.Contains(v) {
			result = append(result, v)
		}
	}

	return result
}

// IntersectBySize intersects a and b, turning the smaller of the two into the
// lookup set when smallerToSet is true and the larger one otherwise. On equal
// lengths b counts as the smaller sequence.
func IntersectBySize(a, b []int, smallerToSet bool) []int {
	smaller, larger := b, a
	if len(a) < len(b) {
		smaller, larger = a, b
	}

	if smallerToSet {
		return Intersect(smaller, larger)
	}
	return Intersect(larger, smaller)
}
