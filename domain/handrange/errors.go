package handrange

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRankChar is returned when a rank position holds a character
	// outside 23456789TJQKA.
	ErrInvalidRankChar = errors.New("invalid rank character")
	// ErrMalformedToken is returned when a token has an unsupported length or
	// its dash, qualifier or plus is misplaced.
	ErrMalformedToken = errors.New("malformed token")
	// ErrEmptyRange is returned when the notation yields no component at all.
	ErrEmptyRange = errors.New("empty range")
)

// ParseError reports the token that stopped the construction of a Range.
// It unwraps to ErrInvalidRankChar or ErrMalformedToken.
type ParseError struct {
	Token  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %q: %s: %v", e.Token, e.Reason, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(token, reason string) error {
	return &ParseError{Token: token, Reason: reason, Err: ErrMalformedToken}
}

func invalidRank(token string, c rune) error {
	return &ParseError{Token: token, Reason: fmt.Sprintf("unrecognized rank %q", c), Err: ErrInvalidRankChar}
}
