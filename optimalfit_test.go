package textwrap

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptimalFit(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     int
		penalties Penalties
		want      []string
	}{
		{
			name:      "to be or not to be",
			text:      "To be, or not to be: that is the question",
			width:     10,
			penalties: DefaultPenalties(),
			want:      []string{"To be,", "or not to", "be: that", "is the", "question"},
		},
		{
			name:  "to be with higher short line fraction",
			text:  "To be, or not to be: that is the question",
			width: 10,
			penalties: Penalties{
				NLine:                 1000,
				Overflow:              7500,
				ShortLastLineFraction: 0.4,
				ShortLastLine:         100,
				Hyphen:                100,
			},
			want: []string{"To be,", "or not to", "be: that", "is the", "question"},
		},
		{
			name:      "quick fox avoids loose middle line",
			text:      "The quick brown fox jumps over the lazy dog",
			width:     20,
			penalties: DefaultPenalties(),
			want:      []string{"The quick brown", "fox jumps over the", "lazy dog"},
		},
		{
			name:      "quick fox two lines",
			text:      "The quick brown fox jumps over the lazy dog",
			width:     25,
			penalties: DefaultPenalties(),
			want:      []string{"The quick brown fox jumps", "over the lazy dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &Options{
				Width:         tt.width,
				WrapAlgorithm: &OptimalFit{Penalties: tt.penalties},
			}
			got, err := Wrap(tt.text, opts)
			if err != nil {
				t.Fatalf("Wrap returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
		})
	}
}

// First fit packs the first line as full as possible; optimal fit
// accepts an earlier break to even out the lines.
func TestOptimalFitDiffersFromFirstFit(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"

	greedy, err := Wrap(text, &Options{Width: 20, WrapAlgorithm: FirstFit{}})
	if err != nil {
		t.Fatal(err)
	}
	wantGreedy := []string{"The quick brown fox", "jumps over the lazy", "dog"}
	if diff := cmp.Diff(wantGreedy, greedy); diff != "" {
		t.Errorf("first fit mismatch (-want +got):\n%s", diff)
	}

	optimal, err := Wrap(text, NewOptions(20))
	if err != nil {
		t.Fatal(err)
	}
	wantOptimal := []string{"The quick brown", "fox jumps over the", "lazy dog"}
	if diff := cmp.Diff(wantOptimal, optimal); diff != "" {
		t.Errorf("optimal fit mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimalFitHyphenation(t *testing.T) {
	opts := &Options{
		Width:         7,
		WordSplitter:  ExistingHyphen{},
		WrapAlgorithm: &OptimalFit{Penalties: DefaultPenalties()},
	}
	got, err := Wrap("foo-bar baz", opts)
	if err != nil {
		t.Fatal(err)
	}
	// Splitting would cost a hyphen penalty for nothing.
	if diff := cmp.Diff([]string{"foo-bar", "baz"}, got); diff != "" {
		t.Errorf("needless split (-want +got):\n%s", diff)
	}

	opts.Width = 4
	got, err = Wrap("foo-bar", opts)
	if err != nil {
		t.Fatal(err)
	}
	// Here the hyphen penalty beats overflowing by three columns.
	if diff := cmp.Diff([]string{"foo-", "bar"}, got); diff != "" {
		t.Errorf("missing split (-want +got):\n%s", diff)
	}
}

func TestOptimalFitShortLastLine(t *testing.T) {
	text := "aaa bb c"

	got, err := Wrap(text, NewOptions(6))
	if err != nil {
		t.Fatal(err)
	}
	// A lone "c" on the last line is penalized, so the first line
	// stays loose instead.
	if diff := cmp.Diff([]string{"aaa", "bb c"}, got); diff != "" {
		t.Errorf("default penalties (-want +got):\n%s", diff)
	}

	p := DefaultPenalties()
	p.ShortLastLine = 0
	got, err = Wrap(text, &Options{Width: 6, WrapAlgorithm: &OptimalFit{Penalties: p}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"aaa bb", "c"}, got); diff != "" {
		t.Errorf("zero short last line penalty (-want +got):\n%s", diff)
	}
}

func TestOptimalFitBreaksLongWords(t *testing.T) {
	got, err := Wrap("foobarbaz", &Options{Width: 5, BreakWords: true})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"fooba", "rbaz"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = Wrap("foobarbaz", &Options{Width: 5})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"foobarbaz"}, got); diff != "" {
		t.Errorf("overflow mismatch (-want +got):\n%s", diff)
	}
}

// naiveLineBreaks is a quadratic reference for lineBreaks: try every
// predecessor of every boundary, keeping the earliest on ties.
func naiveLineBreaks(p Penalties, frags []Fragment, widths LineWidths) ([]int, float64) {
	n := len(frags)
	cum := make([]int, n+1)
	for k, f := range frags {
		cum[k+1] = cum[k] + f.width + f.spaceWidth
	}

	cost := make([]float64, n+1)
	pred := make([]int, n+1)
	lineNo := make([]int, n+1)
	for j := 1; j <= n; j++ {
		cost[j] = math.Inf(1)
		for i := 0; i < j; i++ {
			if c := cost[i] + p.lineCost(frags, cum, widths, lineNo[i], i, j); c < cost[j] {
				cost[j] = c
				pred[j] = i
			}
		}
		lineNo[j] = lineNo[pred[j]] + 1
	}

	var breaks []int
	for pos := n; pos > 0; pos = pred[pos] {
		breaks = append(breaks, pos)
	}
	for l, r := 0, len(breaks)-1; l < r; l, r = l+1, r-1 {
		breaks[l], breaks[r] = breaks[r], breaks[l]
	}
	return breaks, cost[n]
}

// wrappingCost sums the line costs of a given break sequence.
func wrappingCost(p Penalties, frags []Fragment, widths LineWidths, breaks []int) float64 {
	cum := make([]int, len(frags)+1)
	for k, f := range frags {
		cum[k+1] = cum[k] + f.width + f.spaceWidth
	}
	var total float64
	start := 0
	for lineNo, end := range breaks {
		total += p.lineCost(frags, cum, widths, lineNo, start, end)
		start = end
	}
	return total
}

func randomFragments(r *rand.Rand, n int) []Fragment {
	frags := make([]Fragment, n)
	for i := range frags {
		frags[i] = NewFragment(strings.Repeat("a", 1+r.Intn(8)) + " ")
	}
	return frags
}

func TestLineBreaksMatchNaive(t *testing.T) {
	r := rand.New(rand.NewSource(0x5eed))
	of := &OptimalFit{Penalties: DefaultPenalties()}

	for trial := 0; trial < 50; trial++ {
		frags := randomFragments(r, 5+r.Intn(30))
		target := 8 + r.Intn(20)
		widths := LineWidths{First: target, Rest: target}

		got := of.lineBreaks(frags, widths)
		if got[len(got)-1] != len(frags) {
			t.Fatalf("trial %d: breaks %v do not end at %d", trial, got, len(frags))
		}
		prev := 0
		for _, b := range got {
			if b <= prev {
				t.Fatalf("trial %d: breaks %v not increasing", trial, got)
			}
			prev = b
		}

		_, wantCost := naiveLineBreaks(of.Penalties, frags, widths)
		gotCost := wrappingCost(of.Penalties, frags, widths, got)
		if math.Abs(gotCost-wantCost) > 1e-6 {
			t.Errorf("trial %d (n=%d, target %d): cost %v, naive %v, breaks %v",
				trial, len(frags), target, gotCost, wantCost, got)
		}
	}
}

func TestOptimalFitNeverWorseThanFirstFit(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	of := &OptimalFit{Penalties: DefaultPenalties()}

	for trial := 0; trial < 25; trial++ {
		frags := randomFragments(r, 5+r.Intn(25))
		target := 10 + r.Intn(15)
		widths := LineWidths{First: target, Rest: target}

		optCost := wrappingCost(of.Penalties, frags, widths, of.lineBreaks(frags, widths))

		var breaks []int
		pos := 0
		for _, line := range (FirstFit{}).Wrap(frags, widths, NoSplit{}, false) {
			pos += len(line)
			breaks = append(breaks, pos)
		}
		ffCost := wrappingCost(of.Penalties, frags, widths, breaks)

		if optCost > ffCost+1e-6 {
			t.Errorf("trial %d: optimal cost %v exceeds first fit cost %v", trial, optCost, ffCost)
		}
	}
}
