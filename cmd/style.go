package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-range/domain/handrange"
	"github.com/luca-patrignani/hand-range/domain/poker"
	"github.com/luca-patrignani/hand-range/report"
)

func printRange(r *handrange.Range) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rangeTable(r)).Srender()
	if err != nil {
		table = err.Error()
	}
	info := pterm.Sprintfln("Components: %d\nCombinations: %d\n", r.ComponentCount(), r.Combinations())
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|" + r.Text() + "|")).WithTitleTopCenter().Sprint(info + table))
}

// rangeTable lists the components of r grouped by kind, one row per kind.
func rangeTable(r *handrange.Range) [][]string {
	rows := [][]string{{"Kind", "Components", "Combinations"}}
	byKind := map[handrange.Kind][]string{}
	combos := map[handrange.Kind]int{}
	for _, c := range r.Components() {
		byKind[c.Kind] = append(byKind[c.Kind], c.String())
		combos[c.Kind] += c.Combinations()
	}
	for _, k := range []handrange.Kind{handrange.KindPair, handrange.KindSuited, handrange.KindOffsuit} {
		if len(byKind[k]) == 0 {
			continue
		}
		rows = append(rows, []string{k.String(), strings.Join(byKind[k], " "), strconv.Itoa(combos[k])})
	}
	return rows
}

func sampleBox(r *handrange.Range, rng *rand.Rand, n int) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hands := make([]string, n)
	for i := range hands {
		a, b := r.Draw(rng)
		hands[i] = a.String() + " " + b.String()
	}
	return pbox.WithTitle(pterm.LightCyan("|SAMPLE|")).WithTitleTopCenter().Sprint(strings.Join(hands, "\n"))
}

// parseHand reads two cards written back to back, e.g. "AsKd".
func parseHand(s string) (poker.Card, poker.Card, error) {
	if len(s) != 4 {
		return poker.Card{}, poker.Card{}, fmt.Errorf("expected two cards such as AsKd, got %q", s)
	}
	a, err := poker.ParseCard(s[:2])
	if err != nil {
		return poker.Card{}, poker.Card{}, err
	}
	b, err := poker.ParseCard(s[2:])
	if err != nil {
		return poker.Card{}, poker.Card{}, err
	}
	if a == b {
		return poker.Card{}, poker.Card{}, fmt.Errorf("the same card twice in %q", s)
	}
	return a, b, nil
}

func resultText(res report.Result) string {
	return pterm.Sprintfln("Ranges: '%s' vs '%s'", res.RangeA, res.RangeB) +
		pterm.Sprintfln("Range component counts: '%d' vs '%d'", res.ComponentsA, res.ComponentsB) +
		pterm.Sprintfln("Result: %d vs %d", res.WinsA, res.WinsB) +
		pterm.Sprintfln("Draws : %d", res.Draws) +
		pterm.Sprintfln("Percent: %.4f vs %.4f", res.PercentA(), res.PercentB()) +
		pterm.Sprintfln("Equity: %.4f vs %.4f", res.EquityA(), res.EquityB()) +
		pterm.Sprintf("Unresolved collisions: %d", res.Collisions)
}

func printResult(res report.Result) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(resultText(res)))

	bars := pterm.Bars{
		{Label: res.RangeA, Value: res.WinsA},
		{Label: "draw", Value: res.Draws},
		{Label: res.RangeB, Value: res.WinsB},
	}
	if err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Render(); err != nil {
		pterm.Error.Println(err)
	}
}
