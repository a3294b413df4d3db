package models

// SelectionResult is the outcome of a weighted group pick for one request.
// Index is 1-based; zero means no group was chosen.
type SelectionResult struct {
	Group    string
	Index    int
	Keywords []string
}

// Chosen reports whether a group was picked.
func (s SelectionResult) Chosen() bool {
	return s.Index > 0
}
