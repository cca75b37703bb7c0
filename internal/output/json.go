// internal/output/json.go
package output

import (
	"io"

	"ssrfind/internal/jsonutil"
	"ssrfind/internal/ssr"
	"ssrfind/internal/stats"
	"ssrfind/pkg/api"
)

// ToAPIFinding converts a domain Finding to the stable wire schema (v1).
func ToAPIFinding(f ssr.Finding) api.FindingV1 {
	return api.FindingV1{
		ID:            f.ID,
		SequenceID:    f.SequenceID,
		Type:          f.Type,
		Motif:         f.Motif,
		Start:         f.Start,
		End:           f.End,
		Length:        f.Length,
		RepeatCount:   f.RepeatCount,
		MismatchCount: f.MismatchCount,
	}
}

// FromAPIFinding is the inverse of ToAPIFinding.
func FromAPIFinding(v api.FindingV1) ssr.Finding {
	return ssr.Finding{
		ID:            v.ID,
		SequenceID:    v.SequenceID,
		Type:          v.Type,
		Motif:         v.Motif,
		Start:         v.Start,
		End:           v.End,
		Length:        v.Length,
		RepeatCount:   v.RepeatCount,
		MismatchCount: v.MismatchCount,
	}
}

// ToAPIFindings never returns nil so JSON shows [] rather than null.
func ToAPIFindings(list []ssr.Finding) []api.FindingV1 {
	out := make([]api.FindingV1, 0, len(list))
	for _, f := range list {
		out = append(out, ToAPIFinding(f))
	}
	return out
}

func ToAPIConstraints(c ssr.Constraints) api.ConstraintsV1 {
	return api.ConstraintsV1{
		MinRepeatLength:    c.MinRepeatLength,
		MaxRepeatLength:    c.MaxRepeatLength,
		MinRepeatCount:     c.MinRepeatCount,
		MinTandemLength:    c.MinTandemLength,
		MismatchPercentage: c.MismatchPercentage,
	}
}

func FromAPIConstraints(v api.ConstraintsV1) ssr.Constraints {
	return ssr.Constraints{
		MinRepeatLength:    v.MinRepeatLength,
		MaxRepeatLength:    v.MaxRepeatLength,
		MinRepeatCount:     v.MinRepeatCount,
		MinTandemLength:    v.MinTandemLength,
		MismatchPercentage: v.MismatchPercentage,
	}
}

func ToAPIStatistics(s stats.Statistics) api.StatisticsV1 {
	counts := make(map[string]int, len(s.TypeCounts))
	for k, v := range s.TypeCounts {
		counts[k] = v
	}
	return api.StatisticsV1{
		TotalFindings:  s.TotalFindings,
		SequenceLength: s.SequenceLength,
		Density:        s.Density,
		TypeCounts:     counts,
	}
}

// WriteJSON writes a single pretty-indented analysis.
func WriteJSON(w io.Writer, a api.AnalysisV1) error {
	return jsonutil.EncodePretty(w, a)
}

// WriteJSONL writes one v1 finding per line.
func WriteJSONL(w io.Writer, list []ssr.Finding) error {
	return jsonutil.EncodeLines(w, list, ToAPIFinding)
}

// Analysis is the writer-side view of one completed run.
type Analysis struct {
	RunID         string
	CreatedAt     string
	IsFasta       bool
	SequenceCount int
	Constraints   ssr.Constraints
	Statistics    stats.Statistics
	Findings      []ssr.Finding
}

func ToAPIAnalysis(a Analysis) api.AnalysisV1 {
	return api.AnalysisV1{
		RunID:         a.RunID,
		CreatedAt:     a.CreatedAt,
		IsFasta:       a.IsFasta,
		SequenceCount: a.SequenceCount,
		Constraints:   ToAPIConstraints(a.Constraints),
		Statistics:    ToAPIStatistics(a.Statistics),
		Findings:      ToAPIFindings(a.Findings),
	}
}

func FromAPIAnalysis(v api.AnalysisV1) Analysis {
	list := make([]ssr.Finding, 0, len(v.Findings))
	for _, f := range v.Findings {
		list = append(list, FromAPIFinding(f))
	}
	counts := make(map[string]int, len(v.Statistics.TypeCounts))
	for k, n := range v.Statistics.TypeCounts {
		counts[k] = n
	}
	return Analysis{
		RunID:         v.RunID,
		CreatedAt:     v.CreatedAt,
		IsFasta:       v.IsFasta,
		SequenceCount: v.SequenceCount,
		Constraints:   FromAPIConstraints(v.Constraints),
		Statistics: stats.Statistics{
			TotalFindings:  v.Statistics.TotalFindings,
			SequenceLength: v.Statistics.SequenceLength,
			Density:        v.Statistics.Density,
			TypeCounts:     counts,
		},
		Findings: list,
	}
}
