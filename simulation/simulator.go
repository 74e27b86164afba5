// Package simulation plays two hand ranges against each other: it draws a hand
// from each range, deals community cards around them and counts who wins the
// showdown.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/luca-patrignani/hand-range/config"
	"github.com/luca-patrignani/hand-range/domain/deck"
	"github.com/luca-patrignani/hand-range/domain/poker"
	"github.com/luca-patrignani/hand-range/report"
)

// Range is what the simulator needs from a hand range.
// *handrange.Range satisfies it.
type Range interface {
	Contains(a, b poker.Card) bool
	Draw(rng *rand.Rand) (poker.Card, poker.Card)
	Text() string
	ComponentCount() int
	Combinations() int
}

type Simulator struct {
	ranges      [2]Range
	evaluations int
	drawTries   int
	dealings    int
	rng         *rand.Rand
	logger      *slog.Logger
	progress    func(done, total int)
}

// New prepares a simulation of range a against range b. Without options it
// uses the defaults of the config package and a randomly seeded generator.
func New(a, b Range, opts ...option) *Simulator {
	s := Simulator{
		ranges:      [2]Range{a, b},
		evaluations: config.DefaultEvaluations,
		drawTries:   config.DefaultDrawTries,
		dealings:    config.DefaultDealings,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// Run plays the simulation. The range drawing first alternates between
// evaluations so that a narrow range does not always get first pick of the
// cards. An evaluation whose hands still share a card after every redraw is
// counted as a collision and skipped. Cancelling ctx stops the run between
// two evaluations and returns the partial result with ctx.Err().
func (s *Simulator) Run(ctx context.Context) (report.Result, error) {
	res := report.Result{
		RangeA:        s.ranges[0].Text(),
		RangeB:        s.ranges[1].Text(),
		ComponentsA:   s.ranges[0].ComponentCount(),
		ComponentsB:   s.ranges[1].ComponentCount(),
		CombinationsA: s.ranges[0].Combinations(),
		CombinationsB: s.ranges[1].Combinations(),
		Evaluations:   s.evaluations,
		Dealings:      s.dealings,
	}
	d := deck.New(s.rng)
	turn := s.rng.IntN(len(s.ranges))

	for i := range s.evaluations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		other := (turn + 1) % len(s.ranges)

		first, err := s.draw(turn)
		if err != nil {
			return res, err
		}
		second, ok, err := s.drawApart(other, first)
		if err != nil {
			return res, err
		}
		if !ok {
			res.Collisions++
			s.logger.Warn("there was a hard to resolve collision",
				"first", s.ranges[turn].Text(),
				"second", s.ranges[other].Text(),
				"tries", s.drawTries)
			s.notify(i + 1)
			continue
		}

		var hands [2][2]poker.Card
		hands[turn] = first
		hands[other] = second
		for range s.dealings {
			board, err := d.DealBoard(hands[0][0], hands[0][1], hands[1][0], hands[1][1])
			if err != nil {
				return res, fmt.Errorf("deal board: %w", err)
			}
			outcome, err := poker.Showdown(hands[0], hands[1], board)
			if err != nil {
				return res, fmt.Errorf("showdown: %w", err)
			}
			switch outcome {
			case 1:
				res.WinsA++
			case -1:
				res.WinsB++
			default:
				res.Draws++
			}
		}
		turn = other
		s.notify(i + 1)
	}

	s.logger.Info("simulation finished",
		"ranges", res.RangeA+" vs "+res.RangeB,
		"wins_a", res.WinsA,
		"wins_b", res.WinsB,
		"draws", res.Draws,
		"collisions", res.Collisions)
	return res, nil
}

func (s *Simulator) draw(idx int) ([2]poker.Card, error) {
	r := s.ranges[idx]
	a, b := r.Draw(s.rng)
	if !r.Contains(a, b) {
		return [2]poker.Card{}, fmt.Errorf("range %q drew %v %v outside itself", r.Text(), a, b)
	}
	return [2]poker.Card{a, b}, nil
}

// drawApart draws from range idx until the hand shares no card with taken,
// giving up after drawTries redraws.
func (s *Simulator) drawApart(idx int, taken [2]poker.Card) ([2]poker.Card, bool, error) {
	for try := 0; try <= s.drawTries; try++ {
		h, err := s.draw(idx)
		if err != nil {
			return h, false, err
		}
		if !collides(h, taken) {
			return h, true, nil
		}
	}
	return [2]poker.Card{}, false, nil
}

func collides(a, b [2]poker.Card) bool {
	return a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1]
}

func (s *Simulator) notify(done int) {
	if s.progress != nil {
		s.progress(done, s.evaluations)
	}
}
