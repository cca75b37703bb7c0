package output

import (
	"fmt"
	"io"

	"ssrfind/internal/ssr"
)

// RegionWithFlanks returns the repeat plus up to flank bases on either side,
// and the 1-based coordinates actually covered.
func RegionWithFlanks(bases string, f ssr.Finding, flank int) (seq string, from, to int) {
	if flank < 0 {
		flank = 0
	}
	from = max(f.Start-flank, 1)
	to = min(f.End+flank, len(bases))
	if from > to {
		return "", from, to
	}
	return bases[from-1 : to], from, to
}

// WriteFASTA writes one record per finding. Findings whose sequence is not
// in bases are skipped.
func WriteFASTA(w io.Writer, list []ssr.Finding, bases map[string]string, flank int) error {
	for _, f := range list {
		b, ok := bases[f.SequenceID]
		if !ok {
			continue
		}
		seq, _, _ := RegionWithFlanks(b, f, flank)
		if seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s sequence=%s motif=%s start=%d end=%d length=%d repeats=%d flank=%d\n%s\n",
			f.ID, f.SequenceID, f.Motif, f.Start, f.End, f.Length, f.RepeatCount, max(flank, 0), seq,
		); err != nil {
			return err
		}
	}
	return nil
}
