// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"ssrfind/internal/fasta"
	"ssrfind/internal/output"
	"ssrfind/internal/ssr"
	"ssrfind/internal/stats"
)

// ScanFunc finds the repeats of one sequence without assigning ids.
type ScanFunc func(seqID, bases string, c ssr.Constraints) []ssr.Finding

// ProgressFunc is called after each sequence is scanned.
type ProgressFunc func(done, total int, seqID string)

// Options tune a single analysis call.
type Options struct {
	Scan     ScanFunc     // nil = ssr.ScanSequence
	Progress ProgressFunc // optional
}

// Result is everything one analysis produced.
type Result struct {
	Findings      []ssr.Finding
	Statistics    stats.Statistics
	SequenceCount int
	IsFasta       bool

	Constraints ssr.Constraints
	Records     []fasta.Record // loaded sequences, for renderers that need bases
}

// Analyze loads raw and analyzes it. See AnalyzeSet.
func Analyze(ctx context.Context, raw string, c ssr.Constraints, opts Options) (Result, error) {
	return AnalyzeSet(ctx, fasta.Load(raw), c, opts)
}

// AnalyzeSet validates c, scans every record in order and aggregates.
// It returns ctx.Err() if the context ends between two sequences.
func AnalyzeSet(ctx context.Context, set fasta.Set, c ssr.Constraints, opts Options) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	scan := opts.Scan
	if scan == nil {
		scan = ssr.ScanSequence
	}

	var findings []ssr.Finding
	for i, rec := range set.Records {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		findings = append(findings, scan(rec.ID, rec.Bases, c)...)
		if opts.Progress != nil {
			opts.Progress(i+1, set.Len(), rec.ID)
		}
	}

	ssr.Canonicalize(findings, ssr.NewIDSequence())

	return Result{
		Findings:      findings,
		Statistics:    stats.Aggregate(findings, set.TotalLength(), c.Types()...),
		SequenceCount: set.Len(),
		IsFasta:       set.IsFasta,
		Constraints:   c,
		Records:       set.Records,
	}, nil
}

// BasesByID indexes the loaded sequences by id.
func (r Result) BasesByID() map[string]string {
	m := make(map[string]string, len(r.Records))
	for _, rec := range r.Records {
		m[rec.ID] = rec.Bases
	}
	return m
}

// Analysis is the writer-side view of r, without run id or timestamp.
func (r Result) Analysis() output.Analysis {
	return output.Analysis{
		IsFasta:       r.IsFasta,
		SequenceCount: r.SequenceCount,
		Constraints:   r.Constraints,
		Statistics:    r.Statistics,
		Findings:      r.Findings,
	}
}
