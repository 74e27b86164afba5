package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Eval7 scores the best five card hand made from two hole cards and a five card
// board. Higher scores win, equal scores split.
func Eval7(hole [2]Card, board [5]Card) (int16, error) {
	finalHand, err := makeFinalHand(hole, board)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&finalHand), nil
}

// Showdown compares two hole card pairs on the same board. It returns 1 when a
// wins, -1 when b wins and 0 on a split.
func Showdown(a, b [2]Card, board [5]Card) (int, error) {
	scoreA, err := Eval7(a, board)
	if err != nil {
		return 0, fmt.Errorf("first hand: %w", err)
	}
	scoreB, err := Eval7(b, board)
	if err != nil {
		return 0, fmt.Errorf("second hand: %w", err)
	}
	switch {
	case scoreA > scoreB:
		return 1, nil
	case scoreB > scoreA:
		return -1, nil
	default:
		return 0, nil
	}
}

// Describe returns the name of the hand formed by cards, e.g. "pair of aces".
func Describe(cards ...Card) (string, error) {
	converted := make([]poker.Card, len(cards))
	for i, c := range cards {
		lc, err := toLibCard(c)
		if err != nil {
			return "", err
		}
		converted[i] = lc
	}
	return poker.Describe(converted)
}

func makeFinalHand(hole [2]Card, board [5]Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	for i, c := range board {
		card, err := toLibCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	for i, c := range hole {
		card, err := toLibCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid player card: %w", err)
		}
		finalHand[5+i] = card
	}
	return finalHand, nil
}

func toLibCard(c Card) (poker.Card, error) {
	if c.rank == 0 {
		var faceDown poker.Card
		return faceDown, fmt.Errorf("invalid card %d, %d", c.suit, c.rank)
	}
	return poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
}
