// Package comention aggregates co-occurrence of country mentions
// across corpus records.
package comention

import (
	"sort"
	"strings"

	"github.com/gprel/comention/internal/corpus"
)

// Pair is an unordered pair of country codes stored in canonical order,
// A < B lexicographically.
type Pair struct {
	A string
	B string
}

// NewPair canonicalizes two codes into a Pair. Codes are uppercased so
// corpora with mixed-case codes aggregate into the same pair.
func NewPair(a, b string) Pair {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// String formats the pair as a chart label.
func (p Pair) String() string {
	return p.A + "-" + p.B
}

// Contains reports whether code (case-insensitively) is a member.
func (p Pair) Contains(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	return p.A == code || p.B == code
}

// PairCount maps canonical pairs to the number of records mentioning
// both members. Built fresh per Aggregate call; never merged
// incrementally.
type PairCount map[Pair]int

// PairWeight pairs a canonical pair with its count, for selection and
// rendering.
type PairWeight struct {
	Pair  Pair
	Count int
}

// Aggregate counts unordered country pairs co-mentioned within single
// records. Codes are deduplicated per record before pairing, so a
// repeated code contributes one increment and self-pairs never occur.
// Records with an empty country list contribute nothing.
func Aggregate(records []corpus.Record) PairCount {
	counts := make(PairCount)
	for _, rec := range records {
		uniq := dedupe(rec.Countries)
		for i := 0; i < len(uniq); i++ {
			for j := i + 1; j < len(uniq); j++ {
				counts[NewPair(uniq[i], uniq[j])]++
			}
		}
	}
	return counts
}

// TopN returns the n highest-count pairs, count descending. Ties break
// lexicographically on the canonical pair, so selection is
// deterministic regardless of map iteration order. n <= 0 or n beyond
// the number of pairs returns everything.
func (pc PairCount) TopN(n int) []PairWeight {
	weights := make([]PairWeight, 0, len(pc))
	for pair, count := range pc {
		weights = append(weights, PairWeight{Pair: pair, Count: count})
	}

	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Count != weights[j].Count {
			return weights[i].Count > weights[j].Count
		}
		if weights[i].Pair.A != weights[j].Pair.A {
			return weights[i].Pair.A < weights[j].Pair.A
		}
		return weights[i].Pair.B < weights[j].Pair.B
	})

	if n > 0 && n < len(weights) {
		weights = weights[:n]
	}
	return weights
}

// dedupe normalizes codes to uppercase, drops empties and duplicates,
// and returns the survivors sorted.
func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	uniq := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		uniq = append(uniq, code)
	}
	sort.Strings(uniq)
	return uniq
}
