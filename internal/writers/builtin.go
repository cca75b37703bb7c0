package writers

import (
	"io"

	"ssrfind/internal/output"
	"ssrfind/internal/pretty"
	"ssrfind/internal/ssr"
)

func init() {
	Register(output.FormatCSV, func(w io.Writer, p Payload) error {
		return output.WriteCSV(w, p.Analysis.Findings, p.Header)
	})
	Register(output.FormatText, writeText)
	Register(output.FormatJSON, func(w io.Writer, p Payload) error {
		return output.WriteJSON(w, output.ToAPIAnalysis(p.Analysis))
	})
	Register(output.FormatJSONL, func(w io.Writer, p Payload) error {
		return output.WriteJSONL(w, p.Analysis.Findings)
	})
	Register(output.FormatFASTA, func(w io.Writer, p Payload) error {
		return output.WriteFASTA(w, p.Analysis.Findings, p.Bases, p.Flank)
	})
	Register(output.FormatSummary, func(w io.Writer, p Payload) error {
		return output.WriteSummary(w, p.Analysis)
	})
}

func writeText(w io.Writer, p Payload) error {
	var render func(ssr.Finding) string
	if p.Pretty {
		opt := p.PrettyOptions
		if opt == (pretty.Options{}) {
			opt = pretty.DefaultOptions
		}
		render = func(f ssr.Finding) string {
			return pretty.RenderFindingWithOptions(f, p.Bases[f.SequenceID], opt)
		}
	}
	return output.WriteText(w, p.Analysis.Findings, p.Header, render)
}
