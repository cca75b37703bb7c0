// Package pretty draws an ASCII view of a repeat run: the motif units side
// by side with carets under the bases that differ from the motif.
package pretty

import (
	"fmt"
	"strings"

	"ssrfind/internal/ssr"
)

// Options control the ASCII rendering.
type Options struct {
	// Units shown before the row is cut with an ellipsis. If <=0, use default (30).
	MaxUnits int

	// Draw a caret track under mismatched bases.
	ShowCaret  bool
	CaretGlyph string // default "^"

	// Between units; default " ".
	Separator string
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	MaxUnits:   30,
	ShowCaret:  true,
	CaretGlyph: "^",
	Separator:  " ",
}

const (
	linePrefix = "# "
	prefixPlus = "5'-"
	suffixPlus = "-3'"
)

// Units splits the run of f into motif-length chunks. ok is false when the
// run does not fit inside bases.
func Units(f ssr.Finding, bases string) (units []string, ok bool) {
	m := len(f.Motif)
	if m == 0 || f.Start < 1 || f.End > len(bases) || f.End < f.Start {
		return nil, false
	}
	run := bases[f.Start-1 : f.End]
	for i := 0; i+m <= len(run); i += m {
		units = append(units, run[i:i+m])
	}
	return units, true
}

func caretLine(units []string, motif, sep, glyph string) (string, bool) {
	var b strings.Builder
	pending := 0
	found := false
	for k, u := range units {
		if k > 0 {
			pending += len(sep)
		}
		for j := 0; j < len(u); j++ {
			if u[j] == motif[j] {
				pending++
				continue
			}
			b.WriteString(strings.Repeat(" ", pending))
			b.WriteString(glyph)
			pending = 0
			found = true
		}
	}
	return b.String(), found
}

// RenderFindingWithOptions prints the block for one finding.
func RenderFindingWithOptions(f ssr.Finding, bases string, opt Options) string {
	var b strings.Builder
	units, ok := Units(f, bases)
	if !ok {
		fmt.Fprintf(&b, "%s(pretty not available: run outside sequence)\n#\n", linePrefix)
		return b.String()
	}

	maxUnits := opt.MaxUnits
	if maxUnits <= 0 {
		maxUnits = DefaultOptions.MaxUnits
	}
	sep := opt.Separator
	if sep == "" {
		sep = DefaultOptions.Separator
	}
	glyph := opt.CaretGlyph
	if glyph == "" {
		glyph = DefaultOptions.CaretGlyph
	}

	shown, hidden := units, 0
	if len(units) > maxUnits {
		shown, hidden = units[:maxUnits], len(units)-maxUnits
	}

	fmt.Fprintf(&b, "%s%s %s:%d-%d (%s)x%d %s mm=%d\n",
		linePrefix, f.ID, f.SequenceID, f.Start, f.End, f.Motif, f.RepeatCount, f.Type, f.MismatchCount)

	row := strings.Join(shown, sep)
	if hidden > 0 {
		row += fmt.Sprintf("%s...(+%d)", sep, hidden)
	}
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefixPlus, row, suffixPlus)

	if opt.ShowCaret {
		if carets, anyMM := caretLine(shown, f.Motif, sep, glyph); anyMM {
			fmt.Fprintf(&b, "%s%s%s\n", linePrefix, strings.Repeat(" ", len(prefixPlus)), carets)
		}
	}
	b.WriteString("#\n")
	return b.String()
}

// RenderFinding uses DefaultOptions.
func RenderFinding(f ssr.Finding, bases string) string {
	return RenderFindingWithOptions(f, bases, DefaultOptions)
}
