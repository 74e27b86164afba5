package poker

// Value is a card rank in showdown order, Two lowest and Ace highest.
// Unlike Card.Rank, where the ace is 1, values compare with the usual operators.
type Value uint8

const (
	ValueTwo Value = iota
	ValueThree
	ValueFour
	ValueFive
	ValueSix
	ValueSeven
	ValueEight
	ValueNine
	ValueTen
	ValueJack
	ValueQueen
	ValueKing
	ValueAce
)

const valueChars = "23456789TJQKA"

// ParseValue maps one of the characters 23456789TJQKA to its Value.
// Lowercase face letters are not accepted.
func ParseValue(c byte) (Value, bool) {
	for i := 0; i < len(valueChars); i++ {
		if valueChars[i] == c {
			return Value(i), true
		}
	}
	return 0, false
}

// ValueOfRank converts a card rank (Ace=1 ... King=13) to a Value.
func ValueOfRank(rank uint8) Value {
	if rank == Ace {
		return ValueAce
	}
	return Value(rank - 2)
}

// Rank converts v back to a card rank (Ace=1 ... King=13).
func (v Value) Rank() uint8 {
	if v == ValueAce {
		return Ace
	}
	return uint8(v) + 2
}

// Next returns the value directly above v. There is nothing above the ace.
func (v Value) Next() (Value, bool) {
	if v >= ValueAce {
		return v, false
	}
	return v + 1, true
}

// Char returns the notation character of v.
func (v Value) Char() byte {
	if v > ValueAce {
		return '?'
	}
	return valueChars[v]
}

func (v Value) String() string {
	return string(v.Char())
}
