package fund

import "math/rand/v2"

// Selector picks an index in [0, n). Callers never pass n <= 0.
type Selector interface {
	Pick(n int) int
}

// RandomSelector picks uniformly at random.
type RandomSelector struct{}

func (RandomSelector) Pick(n int) int { return rand.IntN(n) }

// FixedSelector always picks the same position, wrapped into range.
type FixedSelector int

func (f FixedSelector) Pick(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}
