package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/luca-patrignani/hand-range/domain/poker"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrDeckEmpty is returned when every card of the deck has been drawn.
var ErrDeckEmpty = errors.New("no cards left in the deck")

// Deck is a 52 card deck used to deal community cards around hole cards
// that were drawn from ranges.
type Deck struct {
	rng            *rand.Rand
	cardCollection [DeckSize]poker.Card // card i is the card numbered i+1
	order          []int
	lastDrawnCard  int
}

// New returns an unshuffled deck that shuffles with rng.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range DeckSize {
		c, err := poker.IntToCard(i + 1)
		if err != nil {
			panic(err)
		}
		d.cardCollection[i] = c
	}
	d.order = make([]int, DeckSize)
	for i := range d.order {
		d.order[i] = i
	}
	return d
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return DeckSize - d.lastDrawnCard
}

// DrawCard returns the next card of the deck.
func (d *Deck) DrawCard() (poker.Card, error) {
	if d.lastDrawnCard >= DeckSize {
		return poker.Card{}, ErrDeckEmpty
	}
	c := d.cardCollection[d.order[d.lastDrawnCard]]
	d.lastDrawnCard++
	return c, nil
}

// DealExcluding shuffles the deck and draws n cards, skipping every card in
// exclude. Cards already held by players go in exclude.
func (d *Deck) DealExcluding(n int, exclude ...poker.Card) ([]poker.Card, error) {
	d.Shuffle()
	dealt := make([]poker.Card, 0, n)
	for len(dealt) < n {
		c, err := d.DrawCard()
		if err != nil {
			return nil, err
		}
		if isExcluded(c, exclude) {
			continue
		}
		dealt = append(dealt, c)
	}
	return dealt, nil
}

// DealBoard deals the five community cards around the given hole cards.
func (d *Deck) DealBoard(exclude ...poker.Card) ([5]poker.Card, error) {
	var board [5]poker.Card
	cards, err := d.DealExcluding(len(board), exclude...)
	if err != nil {
		return board, err
	}
	copy(board[:], cards)
	return board, nil
}

func isExcluded(c poker.Card, exclude []poker.Card) bool {
	for _, e := range exclude {
		if c == e {
			return true
		}
	}
	return false
}
