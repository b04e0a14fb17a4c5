package search

// NotFound is the sentinel index returned when the target is absent
// from the dataset. It is distinct from every valid index.
const NotFound = -1

// Algorithm is the capability the timing harness measures: locate a
// target in an ascending, duplicate-free slice of integers.
//
// Implementations must not mutate the input slice and must never read
// outside its bounds, no matter how far the target lies outside the
// dataset's value range.
type Algorithm interface {
	// Name identifies the algorithm in logs and result rows.
	Name() string
	// Search returns the index of target in data, or NotFound.
	Search(data []int, target int) int
}
