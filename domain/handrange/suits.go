package handrange

import (
	"math/rand/v2"

	"github.com/luca-patrignani/hand-range/domain/poker"
)

// RandomSuits returns two different suits, each of the 12 ordered pairs being
// equally likely. The second index is drawn among the three remaining slots
// and shifted past the first one, so no retry is ever needed.
func RandomSuits(rng *rand.Rand) (uint8, uint8) {
	n1 := rng.IntN(4)
	n2 := rng.IntN(3)
	if n2 >= n1 {
		n2++
	}
	return poker.Suits[n1], poker.Suits[n2]
}
