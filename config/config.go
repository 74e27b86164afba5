package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when neither flags nor the environment say otherwise.
const (
	DefaultEvaluations = 20  // hands drawn from the ranges
	DefaultDrawTries   = 20  // redraws before giving up on a card collision
	DefaultDealings    = 200 // boards dealt and evaluated per drawn pair of hands
)

type Config struct {
	Evaluations int
	DrawTries   int
	Dealings    int
	Seed        uint64 // 0 picks a random seed
	Secure      bool
}

// Load reads the simulator settings from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Evaluations: DefaultEvaluations,
		DrawTries:   DefaultDrawTries,
		Dealings:    DefaultDealings,
	}
	var err error
	if cfg.Evaluations, err = positiveInt("HANDRANGE_EVALUATIONS", cfg.Evaluations); err != nil {
		return Config{}, err
	}
	if cfg.DrawTries, err = positiveInt("HANDRANGE_DRAW_TRIES", cfg.DrawTries); err != nil {
		return Config{}, err
	}
	if cfg.Dealings, err = positiveInt("HANDRANGE_DEALINGS", cfg.Dealings); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("HANDRANGE_SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("invalid HANDRANGE_SEED=%q: %w", v, err)
		}
	}
	if v := os.Getenv("HANDRANGE_SECURE"); v != "" {
		if cfg.Secure, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("invalid HANDRANGE_SECURE=%q: %w", v, err)
		}
	}
	return cfg, nil
}

func positiveInt(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s=%q: must be positive", name, v)
	}
	return n, nil
}
