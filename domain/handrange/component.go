package handrange

import (
	"cmp"

	"github.com/luca-patrignani/hand-range/domain/poker"
)

// Kind tells how the two hole cards of a component relate.
type Kind uint8

const (
	KindPair Kind = iota
	KindSuited
	KindOffsuit
)

// Number of physical two card hands behind one component of each kind:
// a pair picks 2 of 4 suits, suited cards share one of 4 suits, offsuit cards
// take 4 suits for the high card and 3 for the low card.
const (
	pairCombos    = 6
	suitedCombos  = 4
	offsuitCombos = 12
)

func (k Kind) String() string {
	switch k {
	case KindPair:
		return "pair"
	case KindSuited:
		return "suited"
	case KindOffsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// RangeComponent is the atomic unit of a range: a pair at one value, or two
// distinct values that are either suited or offsuit. High > Low holds for the
// suited and offsuit kinds, High == Low for pairs.
//
// Components are comparable and used directly as map keys.
type RangeComponent struct {
	Kind Kind
	High poker.Value
	Low  poker.Value
}

// Pair returns the component for a pocket pair of v.
func Pair(v poker.Value) RangeComponent {
	return RangeComponent{Kind: KindPair, High: v, Low: v}
}

// Suited returns the suited component of two distinct values, in any order.
func Suited(a, b poker.Value) RangeComponent {
	high, low := order(a, b)
	return RangeComponent{Kind: KindSuited, High: high, Low: low}
}

// Offsuit returns the offsuit component of two distinct values, in any order.
func Offsuit(a, b poker.Value) RangeComponent {
	high, low := order(a, b)
	return RangeComponent{Kind: KindOffsuit, High: high, Low: low}
}

// Combinations is the number of concrete hands the component stands for.
func (c RangeComponent) Combinations() int {
	switch c.Kind {
	case KindPair:
		return pairCombos
	case KindSuited:
		return suitedCombos
	default:
		return offsuitCombos
	}
}

// Compare orders components by kind, then high value, then low value.
// The order only fixes iteration, it has no poker meaning.
func (c RangeComponent) Compare(o RangeComponent) int {
	if r := cmp.Compare(c.Kind, o.Kind); r != 0 {
		return r
	}
	if r := cmp.Compare(c.High, o.High); r != 0 {
		return r
	}
	return cmp.Compare(c.Low, o.Low)
}

// String renders the component in range notation: "QQ", "AKs", "T9o".
func (c RangeComponent) String() string {
	s := []byte{c.High.Char(), c.Low.Char()}
	switch c.Kind {
	case KindSuited:
		s = append(s, 's')
	case KindOffsuit:
		s = append(s, 'o')
	}
	return string(s)
}

func order(a, b poker.Value) (poker.Value, poker.Value) {
	if a < b {
		return b, a
	}
	return a, b
}
