package ssr

import (
	"cmp"
	"slices"

	"ssrfind/internal/fasta"
)

// Scan finds every tandem repeat in bases that satisfies c and assigns ids
// from ids in discovery order: motif length ascending, then start ascending.
//
// Scan never validates c. An empty motif-length range yields nil, and a
// lower bound below 1 is treated as 1.
func Scan(seqID, bases string, c Constraints, ids *IDSequence) []Finding {
	out := ScanSequence(seqID, bases, c)
	AssignIDs(out, ids)
	return out
}

// ScanAll scans each record and returns the findings in canonical order:
// motif length, then start position, then record order. Ids are assigned
// after ordering so they follow the same order.
func ScanAll(records []fasta.Record, c Constraints, ids *IDSequence) []Finding {
	var out []Finding
	for _, r := range records {
		out = append(out, ScanSequence(r.ID, r.Bases, c)...)
	}
	Canonicalize(out, ids)
	return out
}

// Canonicalize puts findings gathered from several sequences (in record
// order) into canonical order and numbers them from ids.
func Canonicalize(fs []Finding, ids *IDSequence) {
	SortCanonical(fs)
	AssignIDs(fs, ids)
}

// SortCanonical orders findings by motif length then start. The sort is
// stable, so findings from earlier sequences stay ahead on ties.
func SortCanonical(fs []Finding) {
	slices.SortStableFunc(fs, func(a, b Finding) int {
		if c := cmp.Compare(len(a.Motif), len(b.Motif)); c != 0 {
			return c
		}
		return cmp.Compare(a.Start, b.Start)
	})
}

// AssignIDs numbers fs in slice order. A nil ids starts a fresh sequence.
func AssignIDs(fs []Finding, ids *IDSequence) {
	if ids == nil {
		ids = NewIDSequence()
	}
	for i := range fs {
		fs[i].ID = ids.Next()
	}
}

// ScanSequence is Scan without id assignment; callers merging several
// sequences sort first and number afterwards.
func ScanSequence(seqID, bases string, c Constraints) []Finding {
	var out []Finding
	for m := max(c.MinRepeatLength, 1); m <= c.MaxRepeatLength; m++ {
		out = scanMotifLength(out, seqID, bases, m, c)
	}
	return out
}

// scanMotifLength appends the runs of period m. After a run is reported the
// walk resumes right past it, so runs of one period never overlap.
func scanMotifLength(out []Finding, seqID, bases string, m int, c Constraints) []Finding {
	n := len(bases)
	budget := c.MaxMismatches(m)
	label := TypeLabel(m)

	for i := 0; i <= n-m; i++ {
		motif := bases[i : i+m]
		repeats, mismatches := 1, 0
		for j := i + m; j <= n-m; j += m {
			mm, ok := windowMismatches(bases[j:j+m], motif, budget)
			if !ok {
				break
			}
			repeats++
			mismatches += mm
		}

		total := repeats * m
		if repeats < c.MinRepeatCount || total < c.MinTandemLength {
			continue
		}
		out = append(out, Finding{
			SequenceID:    seqID,
			Type:          label,
			Motif:         motif,
			Start:         i + 1,
			End:           i + total,
			Length:        total,
			RepeatCount:   repeats,
			MismatchCount: mismatches,
		})
		i += total - 1
	}
	return out
}

// windowMismatches counts byte differences between w and motif, giving up
// as soon as budget is exceeded.
func windowMismatches(w, motif string, budget int) (int, bool) {
	mm := 0
	for k := 0; k < len(motif); k++ {
		if w[k] != motif[k] {
			mm++
			if mm > budget {
				return mm, false
			}
		}
	}
	return mm, mm <= budget
}
