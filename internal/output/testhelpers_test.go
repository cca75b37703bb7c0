package output

import "ssrfind/internal/ssr"

func sampleFindings() []ssr.Finding {
	return []ssr.Finding{
		{ID: "SSR1", SequenceID: "chr1", Type: "mono", Motif: "A", Start: 1, End: 12, Length: 12, RepeatCount: 12},
		{ID: "SSR2", SequenceID: "chr1", Type: "di", Motif: "AT", Start: 15, End: 26, Length: 12, RepeatCount: 6, MismatchCount: 1},
	}
}
