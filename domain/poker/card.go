package poker

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (low in straights, high in value)
)

// Suits lists the four suits in index order.
var Suits = [4]uint8{Club, Diamond, Heart, Spade}

// Card represents a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// FromValue builds the card of the given value and suit. It panics on a suit
// outside 0-3, values are valid by construction.
func FromValue(v Value, suit uint8) Card {
	c, err := NewCard(suit, v.Rank())
	if err != nil {
		panic(err)
	}
	return c
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8(((rawCard - 1) % 13) + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

// ParseCard reads a two character card such as "As", "Td" or "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	v, ok := ParseValue(s[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	var suit uint8
	switch s[1] {
	case 'c':
		suit = Club
	case 'd':
		suit = Diamond
	case 'h':
		suit = Heart
	case 's':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	return FromValue(v, suit), nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Value returns the rank of the Card in showdown order.
func (c Card) Value() Value {
	return ValueOfRank(c.rank)
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, K, Q, J, T or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	if c.rank == 0 {
		return "?" + suit
	}
	return string(c.Value().Char()) + suit
}

// Notation returns the plain two character form used by ParseCard, e.g. "Ah".
func (c Card) Notation() string {
	return string(c.Value().Char()) + string("cdhs"[c.suit&3])
}
