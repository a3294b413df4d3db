package rotation

import "math/rand/v2"

// RandomSource supplies the randomness for group and keyword selection.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Perm returns a permutation of [0, n).
	Perm(n int) []int
}

// DefaultSource uses the goroutine-safe top-level math/rand/v2 generator.
var DefaultSource RandomSource = globalSource{}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Perm(n int) []int { return rand.Perm(n) }
