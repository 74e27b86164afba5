// Package report holds the outcome of a range against range simulation and
// its binary encoding.
package report

import (
	"fmt"
	"os"

	"go.dedis.ch/protobuf"
)

// Result is the tally of a simulation between range A and range B.
type Result struct {
	RangeA        string
	RangeB        string
	ComponentsA   int
	ComponentsB   int
	CombinationsA int
	CombinationsB int
	Evaluations   int
	Dealings      int
	WinsA         int
	WinsB         int
	Draws         int
	Collisions    int // evaluations skipped because the hands kept sharing a card
	Seed          uint64
	Secure        bool
}

// Total is the number of showdowns played.
func (r Result) Total() int {
	return r.WinsA + r.WinsB + r.Draws
}

// PercentA is the share of showdowns won outright by range A.
func (r Result) PercentA() float64 {
	return share(r.WinsA, r.Total())
}

// PercentB is the share of showdowns won outright by range B.
func (r Result) PercentB() float64 {
	return share(r.WinsB, r.Total())
}

// EquityA counts wins of range A plus half of the split pots.
func (r Result) EquityA() float64 {
	return shareHalf(2*r.WinsA+r.Draws, r.Total())
}

// EquityB counts wins of range B plus half of the split pots.
func (r Result) EquityB() float64 {
	return shareHalf(2*r.WinsB+r.Draws, r.Total())
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func shareHalf(twice, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(twice) / float64(2*total)
}

// Encode serializes r as a protobuf message.
func Encode(r Result) ([]byte, error) {
	data, err := protobuf.Encode(&r)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return data, nil
}

// Decode parses a message produced by Encode.
func Decode(data []byte) (Result, error) {
	var r Result
	if err := protobuf.Decode(data, &r); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}
	return r, nil
}

// WriteFile encodes r into path.
func WriteFile(path string, r Result) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile decodes the result stored at path.
func ReadFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Decode(data)
}
