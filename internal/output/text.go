// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"ssrfind/internal/ssr"
)

// FormatRowTSV returns the TSV columns of f (no trailing newline).
func FormatRowTSV(f ssr.Finding) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d",
		f.ID, f.SequenceID, f.Type, f.Motif,
		f.Start, f.End, f.Length, f.RepeatCount, f.MismatchCount,
	)
}

// WriteText prints one TSV line per finding. When render is non-nil its
// output is written after each row (the pretty block).
func WriteText(w io.Writer, list []ssr.Finding, header bool, render func(ssr.Finding) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, f := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(f)); err != nil {
			return err
		}
		if render == nil {
			continue
		}
		if block := render(f); block != "" {
			if _, err := io.WriteString(w, block); err != nil {
				return err
			}
		}
	}
	return nil
}
