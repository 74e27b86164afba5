package handrange

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"github.com/luca-patrignani/hand-range/domain/poker"
)

// Range is a parsed starting hand range such as "AA,AKs,J9+".
// It is immutable once built and can be shared between goroutines, as long as
// each goroutine draws with its own *rand.Rand.
type Range struct {
	text       string
	components componentSet
	table      []weightEntry
	total      int
}

// weightEntry pairs a component with the running total of combinations up to
// and including it.
type weightEntry struct {
	cumulative int
	component  RangeComponent
}

// New parses notation, a comma separated list of tokens, into a Range.
// Tokens are not trimmed. Parsing stops at the first bad token, which is
// reported as a *ParseError; a notation with no component at all fails with
// ErrEmptyRange.
func New(notation string) (*Range, error) {
	set := componentSet{}
	for _, token := range strings.Split(notation, ",") {
		if token == "" {
			continue
		}
		if err := parseToken(token, set); err != nil {
			return nil, err
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("notation %q: %w", notation, ErrEmptyRange)
	}

	r := &Range{
		text:       notation,
		components: set,
		table:      make([]weightEntry, 0, len(set)),
	}
	for _, c := range sortedComponents(set) {
		r.total += c.Combinations()
		r.table = append(r.table, weightEntry{cumulative: r.total, component: c})
	}
	return r, nil
}

// MustNew is like New but panics on error. It is meant for notation literals.
func MustNew(notation string) *Range {
	r, err := New(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// Text returns the notation the range was built from, unmodified.
func (r *Range) Text() string {
	return r.text
}

// ComponentCount returns the number of distinct components after expansion.
func (r *Range) ComponentCount() int {
	return len(r.components)
}

// Combinations returns how many concrete two card hands the range covers.
func (r *Range) Combinations() int {
	return r.total
}

// Components returns the components of the range in a fixed order.
func (r *Range) Components() []RangeComponent {
	out := make([]RangeComponent, len(r.table))
	for i, e := range r.table {
		out[i] = e.component
	}
	return out
}

// Has reports whether c is one of the components of the range.
func (r *Range) Has(c RangeComponent) bool {
	_, ok := r.components[c]
	return ok
}

// Contains reports whether the hand made of a and b falls inside the range.
// The order of the two cards does not matter.
func (r *Range) Contains(a, b poker.Card) bool {
	return r.Has(Classify(a, b))
}

// Classify returns the component a two card hand belongs to.
func Classify(a, b poker.Card) RangeComponent {
	va, vb := a.Value(), b.Value()
	switch {
	case va == vb:
		return Pair(va)
	case a.Suit() == b.Suit():
		return Suited(va, vb)
	default:
		return Offsuit(va, vb)
	}
}

// Draw picks a hand from the range. Components are weighted by the number of
// hands they stand for, so over many draws every concrete hand in the range is
// equally likely. The higher card of unpaired hands comes first.
func (r *Range) Draw(rng *rand.Rand) (poker.Card, poker.Card) {
	c := r.pick(rng.IntN(r.total))
	switch c.Kind {
	case KindPair:
		s1, s2 := RandomSuits(rng)
		return poker.FromValue(c.High, s1), poker.FromValue(c.Low, s2)
	case KindSuited:
		s := poker.Suits[rng.IntN(len(poker.Suits))]
		return poker.FromValue(c.High, s), poker.FromValue(c.Low, s)
	default:
		s1, s2 := RandomSuits(rng)
		return poker.FromValue(c.High, s1), poker.FromValue(c.Low, s2)
	}
}

// pick returns the first component whose running total exceeds n.
func (r *Range) pick(n int) RangeComponent {
	i := sort.Search(len(r.table), func(i int) bool {
		return r.table[i].cumulative > n
	})
	if i == len(r.table) {
		panic(fmt.Sprintf("handrange: %d outside weight table of %q (total %d)", n, r.text, r.total))
	}
	return r.table[i].component
}

func (r *Range) String() string {
	return r.text
}

func sortedComponents(set componentSet) []RangeComponent {
	out := make([]RangeComponent, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.SortFunc(out, RangeComponent.Compare)
	return out
}
