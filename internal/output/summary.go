package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// WriteSummary prints a short report: input size, totals, density and the
// per-type table in motif-length order.
func WriteSummary(w io.Writer, s Analysis) error {
	input := "plain sequence"
	if s.IsFasta {
		input = "FASTA"
	}
	c := s.Constraints
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if s.RunID != "" {
		fmt.Fprintf(tw, "run\t%s\n", s.RunID)
	}
	fmt.Fprintf(tw, "input\t%s, %s %s\n", input, humanize.Comma(int64(s.SequenceCount)), plural(s.SequenceCount, "sequence", "sequences"))
	fmt.Fprintf(tw, "total length\t%s bp\n", humanize.Comma(int64(s.Statistics.SequenceLength)))
	fmt.Fprintf(tw, "motif length\t%d-%d\n", c.MinRepeatLength, c.MaxRepeatLength)
	fmt.Fprintf(tw, "min repeats\t%d\n", c.MinRepeatCount)
	fmt.Fprintf(tw, "min tandem length\t%d\n", c.MinTandemLength)
	fmt.Fprintf(tw, "mismatches\t%d%%\n", c.MismatchPercentage)
	fmt.Fprintf(tw, "SSRs found\t%s\n", humanize.Comma(int64(s.Statistics.TotalFindings)))
	fmt.Fprintf(tw, "density\t%.2f per kb\n", s.Statistics.Density)
	for _, t := range s.Statistics.SortedTypes() {
		fmt.Fprintf(tw, "  %s\t%s\n", t, humanize.Comma(int64(s.Statistics.TypeCounts[t])))
	}
	return tw.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
