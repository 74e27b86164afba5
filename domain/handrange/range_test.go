package handrange

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/hand-range/domain/poker"
)

func card(t *testing.T, s string) poker.Card {
	t.Helper()
	c, err := poker.ParseCard(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func expectContains(t *testing.T, r *Range, a, b string, want bool) {
	t.Helper()
	if got := r.Contains(card(t, a), card(t, b)); got != want {
		t.Fatalf("%q contains %s%s: expected %v, got %v", r.Text(), a, b, want, got)
	}
}

func TestRangePair(t *testing.T) {
	kk := MustNew("KK")
	qq := MustNew("QQ")
	kkqq := MustNew("KK,QQ")

	expectContains(t, kk, "Ks", "Kh", true)
	expectContains(t, qq, "Ks", "Kh", false)
	expectContains(t, kkqq, "Ks", "Kh", true)
	expectContains(t, kkqq, "Qs", "Qh", true)
}

func TestRangePairRange(t *testing.T) {
	r := MustNew("QQ-AA")
	expectContains(t, r, "As", "Ah", true)
	expectContains(t, r, "Ks", "Kh", true)
	expectContains(t, r, "Qs", "Qh", true)
	expectContains(t, r, "Ks", "Qh", false)
	expectContains(t, r, "As", "Kh", false)
	expectContains(t, r, "Js", "Jh", false)

	r2 := MustNew("55-JJ")
	expectContains(t, r2, "Qs", "Qh", false)
	expectContains(t, r2, "Js", "Jh", true)
	expectContains(t, r2, "5c", "5d", true)
	expectContains(t, r2, "4c", "4d", false)
}

func TestRangeTwoCards(t *testing.T) {
	aj := MustNew("AJ")
	aq := MustNew("AQ")
	t9 := MustNew("T9")

	expectContains(t, aj, "As", "Jh", true)
	expectContains(t, aj, "Jh", "As", true)
	expectContains(t, aj, "Ah", "Jh", true)
	expectContains(t, aj, "Ah", "Qh", false)
	expectContains(t, aq, "As", "Qh", true)
	expectContains(t, aq, "As", "Jh", false)
	expectContains(t, t9, "As", "Qh", false)
	expectContains(t, t9, "Qh", "Jh", false)
}

func TestRangeTwoCardsPlus(t *testing.T) {
	j9 := MustNew("J9+")
	expectContains(t, j9, "Jh", "Ts", true)
	expectContains(t, j9, "Jh", "9s", true)
	expectContains(t, j9, "Jh", "9h", true)
	expectContains(t, j9, "Jh", "8h", false)
	expectContains(t, j9, "Jh", "Js", false)

	atu := MustNew("ATu+")
	expectContains(t, atu, "Ah", "Jh", false)
	expectContains(t, atu, "Ah", "Ts", true)

	q9s := MustNew("Q9s+")
	expectContains(t, q9s, "Qh", "Ts", false)
	expectContains(t, q9s, "Qs", "Ts", true)
	expectContains(t, q9s, "Qs", "As", false)
}

func TestRangePairPlus(t *testing.T) {
	r := MustNew("JJ+")
	expectContains(t, r, "Jh", "Js", true)
	expectContains(t, r, "Ah", "As", true)
	expectContains(t, r, "Th", "Ts", false)
	if r.ComponentCount() != 4 {
		t.Fatalf("expected JJ, QQ, KK, AA, got %v", r.Components())
	}
}

func TestRangeSuitedness(t *testing.T) {
	s := MustNew("J9s")
	expectContains(t, s, "Jh", "9h", true)
	expectContains(t, s, "Jh", "9s", false)

	o := MustNew("J9o")
	expectContains(t, o, "Jh", "9h", false)
	expectContains(t, o, "Jh", "9s", true)

	p := MustNew("J9+")
	expectContains(t, p, "Jh", "9h", true)
	expectContains(t, p, "Jh", "9s", true)
	expectContains(t, p, "Jh", "Ts", true)
}

func TestRangeText(t *testing.T) {
	for _, notation := range []string{"AA", "AA,AK+,J9s+", "KK,KK", "22-55,AKo"} {
		r := MustNew(notation)
		if r.Text() != notation {
			t.Fatalf("expected %q, got %q", notation, r.Text())
		}
	}
}

func TestRangeDeduplication(t *testing.T) {
	if n := MustNew("KK,KK").ComponentCount(); n != 1 {
		t.Fatalf("expected 1 component, got %d", n)
	}
	if n := MustNew("AA,AA").ComponentCount(); n != MustNew("AA").ComponentCount() {
		t.Fatalf("expected duplicates to collapse, got %d", n)
	}
	if n := MustNew("AK,AKs,AKo").ComponentCount(); n != 2 {
		t.Fatalf("expected 2 components, got %d", n)
	}
	if n := MustNew("TT+,QQ-KK").ComponentCount(); n != 5 {
		t.Fatalf("expected 5 components, got %d", n)
	}
}

func TestRangeCombinations(t *testing.T) {
	tests := []struct {
		notation string
		want     int
	}{
		{"AA", 6},
		{"AKs", 4},
		{"AKo", 12},
		{"AK", 16},
		{"AA,KK,AKs", 16},
		{"TT+", 30},
		{"ATs+", 16},
		{"KJo+", 24},
		{"22-55", 24},
		{"TT+,AJs+,KQs", 46},
	}
	for _, tt := range tests {
		r, err := New(tt.notation)
		if err != nil {
			t.Fatal(err)
		}
		if r.Combinations() != tt.want {
			t.Fatalf("%q: expected %d combinations, got %d", tt.notation, tt.want, r.Combinations())
		}
	}
}

func TestRangeWeightTable(t *testing.T) {
	r := MustNew("AKo,AA,AKs,72")
	if len(r.table) != r.ComponentCount() {
		t.Fatalf("table has %d entries for %d components", len(r.table), r.ComponentCount())
	}
	prev := 0
	for _, e := range r.table {
		if e.cumulative <= prev {
			t.Fatalf("cumulative weights not increasing: %v", r.table)
		}
		if e.cumulative-prev != e.component.Combinations() {
			t.Fatalf("%v contributes %d", e.component, e.cumulative-prev)
		}
		prev = e.cumulative
	}
	if prev != r.Combinations() {
		t.Fatalf("last cumulative %d, total %d", prev, r.Combinations())
	}
	got := r.Components()
	want := []string{"AA", "72s", "AKs", "72o", "AKo"}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRangeErrors(t *testing.T) {
	tests := []struct {
		notation string
		want     error
	}{
		{"", ErrEmptyRange},
		{",", ErrEmptyRange},
		{",,,", ErrEmptyRange},
		{"JJs+", ErrMalformedToken},
		{"XY", ErrInvalidRankChar},
		{"AKQ", ErrMalformedToken},
		{"AA,KQJ", ErrMalformedToken},
		{"AA, KK", ErrMalformedToken},
		{"AA,KK,ZZ", ErrInvalidRankChar},
	}
	for _, tt := range tests {
		r, err := New(tt.notation)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%q: expected %v, got %v", tt.notation, tt.want, err)
		}
		if r != nil {
			t.Fatalf("%q: expected no range on error", tt.notation)
		}
	}
}

func TestRangeFirstBadTokenReported(t *testing.T) {
	_, err := New("AA,XY,KQJ")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Token != "XY" {
		t.Fatalf("expected XY to be reported, got %q", perr.Token)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew("JJs+")
}

func TestClassify(t *testing.T) {
	if c := Classify(card(t, "9c"), card(t, "9d")); c != Pair(poker.ValueNine) {
		t.Fatalf("expected 99, got %v", c)
	}
	if c := Classify(card(t, "2h"), card(t, "Ah")); c != Suited(poker.ValueAce, poker.ValueTwo) {
		t.Fatalf("expected A2s, got %v", c)
	}
	if c := Classify(card(t, "Ah"), card(t, "2c")); c != Offsuit(poker.ValueAce, poker.ValueTwo) {
		t.Fatalf("expected A2o, got %v", c)
	}
}
