package handrange

import (
	"unicode/utf8"

	"github.com/luca-patrignani/hand-range/domain/poker"
)

type componentSet map[RangeComponent]struct{}

func (s componentSet) add(c RangeComponent) {
	s[c] = struct{}{}
}

// parseToken expands one comma separated token into set. The token shapes are
// told apart by their length alone:
//
//	XY     pair, or both suitedness of two values
//	XYq    one suitedness (q is s, o or u), or XX+ / XY+
//	XYq+   kicker widening restricted to one suitedness
//	XX-YY  closed range of pairs
func parseToken(token string, set componentSet) error {
	chars := []rune(token)
	switch len(chars) {
	case 2:
		return parseExact(token, chars, set)
	case 3:
		return parseQualified(token, chars, set)
	case 4:
		return parseQualifiedPlus(token, chars, set)
	case 5:
		return parsePairRange(token, chars, set)
	default:
		return malformed(token, "expected 2 to 5 characters")
	}
}

func parseExact(token string, chars []rune, set componentSet) error {
	a, b, err := parseValues(token, chars[0], chars[1])
	if err != nil {
		return err
	}
	if a == b {
		set.add(Pair(a))
		return nil
	}
	set.add(Suited(a, b))
	set.add(Offsuit(a, b))
	return nil
}

func parseQualified(token string, chars []rune, set componentSet) error {
	q := chars[2]
	plus := isPlus(q)
	suited, offsuit := qualifier(q)
	if !plus && !suited && !offsuit {
		return malformed(token, "no modifier")
	}
	a, b, err := parseValues(token, chars[0], chars[1])
	if err != nil {
		return err
	}

	if a == b {
		if !plus {
			return malformed(token, "a pair cannot be suited or offsuit")
		}
		for v := range valuesBetween(a, poker.ValueAce) {
			set.add(Pair(v))
		}
		return nil
	}
	if plus {
		widenKicker(a, b, true, true, set)
		return nil
	}
	if suited {
		set.add(Suited(a, b))
	} else {
		set.add(Offsuit(a, b))
	}
	return nil
}

func parseQualifiedPlus(token string, chars []rune, set componentSet) error {
	suited, offsuit := qualifier(chars[2])
	if !isPlus(chars[3]) {
		return malformed(token, "expected a trailing plus")
	}
	if !suited && !offsuit {
		return malformed(token, "expected s, o or u before the plus")
	}
	if chars[0] == chars[1] {
		return malformed(token, "a pair cannot be suited or offsuit")
	}
	a, b, err := parseValues(token, chars[0], chars[1])
	if err != nil {
		return err
	}
	widenKicker(a, b, suited, offsuit, set)
	return nil
}

func parsePairRange(token string, chars []rune, set componentSet) error {
	if chars[2] != '-' {
		return malformed(token, "expected a dash in the middle")
	}
	if chars[0] != chars[1] || chars[3] != chars[4] {
		return malformed(token, "both ends of a dash range must be pairs")
	}
	a, b, err := parseValues(token, chars[0], chars[3])
	if err != nil {
		return err
	}
	low, high := min(a, b), max(a, b)
	for v := range valuesBetween(low, high) {
		set.add(Pair(v))
	}
	return nil
}

// widenKicker keeps the higher of a and b fixed and walks the lower one up
// until it would meet the higher, so "J9+" gives J9, JT and never JJ.
func widenKicker(a, b poker.Value, suited, offsuit bool, set componentSet) {
	high, low := order(a, b)
	for kicker := range valuesBetween(low, high) {
		if kicker == high {
			break
		}
		if suited {
			set.add(Suited(high, kicker))
		}
		if offsuit {
			set.add(Offsuit(high, kicker))
		}
	}
}

// valuesBetween yields every value from low to high inclusive.
func valuesBetween(low, high poker.Value) func(yield func(poker.Value) bool) {
	return func(yield func(poker.Value) bool) {
		if low > high {
			return
		}
		for v := low; ; {
			if !yield(v) || v == high {
				return
			}
			next, ok := v.Next()
			if !ok {
				return
			}
			v = next
		}
	}
}

func parseValues(token string, x, y rune) (poker.Value, poker.Value, error) {
	a, err := parseValue(token, x)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseValue(token, y)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseValue(token string, r rune) (poker.Value, error) {
	if r < utf8.RuneSelf {
		if v, ok := poker.ParseValue(byte(r)); ok {
			return v, nil
		}
	}
	return 0, invalidRank(token, r)
}

func isPlus(r rune) bool {
	return r == '+'
}

func qualifier(r rune) (suited bool, offsuit bool) {
	return r == 's', r == 'o' || r == 'u'
}
