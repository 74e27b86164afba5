package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-range/config"
	"github.com/luca-patrignani/hand-range/domain/deck"
	"github.com/luca-patrignani/hand-range/domain/handrange"
	"github.com/luca-patrignani/hand-range/report"
	"github.com/luca-patrignani/hand-range/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	evaluationsFlag := flag.Int("evaluations", cfg.Evaluations, "hands drawn from the ranges")
	dealingsFlag := flag.Int("dealings", cfg.Dealings, "boards dealt for every pair of hands")
	drawTriesFlag := flag.Int("draw-tries", cfg.DrawTries, "redraws allowed when the two hands share a card")
	seedFlag := flag.Uint64("seed", cfg.Seed, "random seed, 0 for a random one")
	secureFlag := flag.Bool("secure", cfg.Secure, "draw from a cryptographically secure source (ignores -seed)")
	outFlag := flag.String("out", "", "write the simulation result to this file")
	checkFlag := flag.String("check", "", "tell whether a hand such as AsKd is in the first range")
	sampleFlag := flag.Int("sample", 0, "draw this many hands from the first range")
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] <range> [range]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hand ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Range", pterm.FgDarkGray.ToStyle()),
	).Render()

	ranges := make([]*handrange.Range, flag.NArg())
	for i, notation := range flag.Args() {
		r, err := handrange.New(notation)
		if err != nil {
			logger.Error("invalid range", "range", notation, "error", err)
			os.Exit(1)
		}
		ranges[i] = r
		printRange(r)
	}

	rng, seed := newRand(*seedFlag, *secureFlag)
	if !*secureFlag {
		pterm.Info.Printfln("Seed: %d", seed)
	}

	if *checkFlag != "" {
		a, b, err := parseHand(*checkFlag)
		if err != nil {
			logger.Error("invalid hand", "hand", *checkFlag, "error", err)
			os.Exit(1)
		}
		if ranges[0].Contains(a, b) {
			pterm.Success.Printfln("%s%s is in %s", a, b, ranges[0].Text())
		} else {
			pterm.Warning.Printfln("%s%s is not in %s", a, b, ranges[0].Text())
		}
	}

	if *sampleFlag > 0 {
		pterm.Println(sampleBox(ranges[0], rng, *sampleFlag))
	}

	if len(ranges) < 2 {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar, _ := pterm.DefaultProgressbar.WithTotal(*evaluationsFlag).WithTitle("Simulating").Start()
	sim := simulation.New(ranges[0], ranges[1],
		simulation.WithEvaluations(*evaluationsFlag),
		simulation.WithDealings(*dealingsFlag),
		simulation.WithDrawTries(*drawTriesFlag),
		simulation.WithRand(rng),
		simulation.WithLogger(logger),
		simulation.WithProgress(func(done, total int) {
			bar.Increment()
		}),
	)
	res, err := sim.Run(ctx)
	_, _ = bar.Stop()
	if err != nil {
		logger.Error("simulation stopped", "error", err)
		os.Exit(1)
	}
	res.Seed = seed
	res.Secure = *secureFlag

	printResult(res)

	if *outFlag != "" {
		if err := report.WriteFile(*outFlag, res); err != nil {
			logger.Error("could not write result", "path", *outFlag, "error", err)
			os.Exit(1)
		}
		pterm.Success.Printfln("Result written to %s", *outFlag)
	}
}

// newRand returns the generator for the run and the seed it was built from.
// A zero seed is replaced by a random one so the run can still be replayed.
func newRand(seed uint64, secure bool) (*rand.Rand, uint64) {
	if secure {
		return deck.NewSecureRand(), 0
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed)), seed
}
