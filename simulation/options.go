package simulation

import (
	"log/slog"
	"math/rand/v2"

	"github.com/luca-patrignani/hand-range/config"
)

type option func(Simulator) Simulator

// WithEvaluations sets how many pairs of hands are drawn from the ranges.
func WithEvaluations(n int) option {
	return func(s Simulator) Simulator {
		s.evaluations = n
		return s
	}
}

// WithDrawTries sets how many times the second hand is redrawn when it shares
// a card with the first one.
func WithDrawTries(n int) option {
	return func(s Simulator) Simulator {
		s.drawTries = n
		return s
	}
}

// WithDealings sets how many boards are dealt for every pair of hands.
func WithDealings(n int) option {
	return func(s Simulator) Simulator {
		s.dealings = n
		return s
	}
}

func WithRand(rng *rand.Rand) option {
	return func(s Simulator) Simulator {
		s.rng = rng
		return s
	}
}

func WithLogger(logger *slog.Logger) option {
	return func(s Simulator) Simulator {
		s.logger = logger
		return s
	}
}

// WithProgress registers a callback invoked after every evaluation.
func WithProgress(progress func(done, total int)) option {
	return func(s Simulator) Simulator {
		s.progress = progress
		return s
	}
}

// WithConfig applies the counts of cfg.
func WithConfig(cfg config.Config) option {
	return func(s Simulator) Simulator {
		s.evaluations = cfg.Evaluations
		s.drawTries = cfg.DrawTries
		s.dealings = cfg.Dealings
		return s
	}
}
