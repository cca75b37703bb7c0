// internal/ssr/finding.go
package ssr

import (
	"fmt"
	"strconv"
	"strings"
)

// Finding is one tandem repeat run. Coordinates are 1-based and inclusive.
type Finding struct {
	ID            string `json:"id"`
	SequenceID    string `json:"sequence_id"`
	Type          string `json:"type"`
	Motif         string `json:"motif"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Length        int    `json:"length"`
	RepeatCount   int    `json:"repeat_count"`
	MismatchCount int    `json:"mismatch_count"`
}

var typeLabels = [...]string{1: "mono", 2: "di", 3: "tri", 4: "tetra", 5: "penta", 6: "hexa"}

// TypeLabel names a repeat class by motif length: mono, di, … hexa, then
// "<n>-mer" for longer motifs.
func TypeLabel(motifLen int) string {
	if motifLen > 0 && motifLen < len(typeLabels) {
		return typeLabels[motifLen]
	}
	return fmt.Sprintf("%d-mer", motifLen)
}

// MotifLength inverts TypeLabel; ok is false for labels it never produces.
func MotifLength(label string) (int, bool) {
	for m, l := range typeLabels {
		if l != "" && l == label {
			return m, true
		}
	}
	if n, found := strings.CutSuffix(label, "-mer"); found {
		if m, err := strconv.Atoi(n); err == nil && m >= len(typeLabels) {
			return m, true
		}
	}
	return 0, false
}

// IDPrefix starts every finding id.
const IDPrefix = "SSR"

// IDSequence hands out finding ids for one analysis call. The zero value is
// not usable; get one from NewIDSequence and never share it between calls.
type IDSequence struct {
	next int
}

func NewIDSequence() *IDSequence { return &IDSequence{next: 1} }

// Next returns the next id ("SSR1", "SSR2", …).
func (s *IDSequence) Next() string {
	id := IDPrefix + strconv.Itoa(s.next)
	s.next++
	return id
}

// Issued is how many ids have been handed out.
func (s *IDSequence) Issued() int { return s.next - 1 }
