package deck

import "math/rand/v2"

// Shuffle puts every card back and reorders the deck.
func (d *Deck) Shuffle() {
	d.lastDrawnCard = 0
	d.order = permutation(d.rng, DeckSize)
}

// Helper function to generate a random permutation of size permSize
func permutation(rng *rand.Rand, permSize int) []int {
	return rng.Perm(permSize)
}
