package comention

import (
	"sort"
	"strings"

	"github.com/gprel/comention/internal/corpus"
)

// SubjectCount maps a subject-area label to the number of matching
// records carrying it, scoped to one country pair.
type SubjectCount map[string]int

// SubjectWeight pairs a label with its count for sorted output.
type SubjectWeight struct {
	Subject string
	Count   int
}

// SubjectBreakdown counts subject-area labels across records whose
// deduplicated country list contains both members of pair. Labels are
// split on commas and trimmed; empty fragments are dropped.
//
// Returns an empty (non-nil) map when no record matches: the caller is
// expected to surface a diagnostic and skip rendering in that case.
func SubjectBreakdown(records []corpus.Record, pair Pair) SubjectCount {
	counts := make(SubjectCount)
	for _, rec := range records {
		if !mentionsBoth(rec.Countries, pair) {
			continue
		}
		for _, label := range strings.Split(rec.SubjectAreas, ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			counts[label]++
		}
	}
	return counts
}

// TopSubjects returns labels sorted by count descending, ties broken
// lexicographically. n <= 0 returns everything.
func (sc SubjectCount) TopSubjects(n int) []SubjectWeight {
	weights := make([]SubjectWeight, 0, len(sc))
	for subject, count := range sc {
		weights = append(weights, SubjectWeight{Subject: subject, Count: count})
	}

	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Count != weights[j].Count {
			return weights[i].Count > weights[j].Count
		}
		return weights[i].Subject < weights[j].Subject
	})

	if n > 0 && n < len(weights) {
		weights = weights[:n]
	}
	return weights
}

// mentionsBoth reports whether the deduplicated code list contains both
// members of the pair.
func mentionsBoth(codes []string, pair Pair) bool {
	foundA, foundB := false, false
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == pair.A {
			foundA = true
		}
		if code == pair.B {
			foundB = true
		}
	}
	return foundA && foundB
}
