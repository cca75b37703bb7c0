// Package stats reduces scanner findings to per-type counts and density.
package stats

import (
	"cmp"
	"math"
	"slices"

	"ssrfind/internal/ssr"
)

// Statistics summarizes one analysis.
type Statistics struct {
	TotalFindings  int            `json:"total_findings"`
	SequenceLength int            `json:"sequence_length"`
	Density        float64        `json:"density"` // findings per kb, 2 decimals
	TypeCounts     map[string]int `json:"type_counts"`
}

// Aggregate tallies findings over totalSequenceLength bases. Every seed type
// is present in TypeCounts even when nothing of that type was found.
func Aggregate(findings []ssr.Finding, totalSequenceLength int, seedTypes ...string) Statistics {
	counts := make(map[string]int, len(seedTypes))
	for _, t := range seedTypes {
		counts[t] = 0
	}
	for _, f := range findings {
		counts[f.Type]++
	}
	return Statistics{
		TotalFindings:  len(findings),
		SequenceLength: totalSequenceLength,
		Density:        Density(len(findings), totalSequenceLength),
		TypeCounts:     counts,
	}
}

// Density is findings per 1000 bases rounded to two decimals; 0 for an
// empty sequence.
func Density(findings, bases int) float64 {
	if bases <= 0 {
		return 0
	}
	return math.Round(float64(findings)/float64(bases)*1000*100) / 100
}

// SortedTypes returns the TypeCounts keys, shortest motif first. Labels that
// do not name a motif length sort last, alphabetically.
func (s Statistics) SortedTypes() []string {
	keys := make([]string, 0, len(s.TypeCounts))
	for k := range s.TypeCounts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ma, okA := ssr.MotifLength(a)
		mb, okB := ssr.MotifLength(b)
		switch {
		case okA && okB:
			return cmp.Compare(ma, mb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return cmp.Compare(a, b)
	})
	return keys
}
