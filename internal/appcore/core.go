// internal/appcore/core.go
package appcore

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"ssrfind/internal/cli"
	"ssrfind/internal/cmdutil"
	"ssrfind/internal/fasta"
	"ssrfind/internal/output"
	"ssrfind/internal/pipeline"
	"ssrfind/internal/pretty"
	"ssrfind/internal/ssr"
	"ssrfind/internal/store"
	"ssrfind/internal/writers"
)

// Scan loads the inputs, analyzes them, optionally stores the run, and
// writes the result in the configured format.
func Scan(parent context.Context, env *cli.Env, o cli.ScanOptions) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	log := env.Log
	cfg := env.Config
	c := cfg.Scan

	if c.Degenerate() {
		cmdutil.Warnf(log, "--min-repeat-length (%d) exceeds --max-repeat-length (%d); nothing can match",
			c.MinRepeatLength, c.MaxRepeatLength)
	}

	var set fasta.Set
	if o.Sequence != "" {
		set = fasta.Load(o.Sequence)
	} else {
		var err error
		set, err = fasta.LoadFiles(o.Inputs)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitIO
		}
	}
	log.Debug("input loaded", "sequences", set.Len(), "bases", set.TotalLength(), "fasta", set.IsFasta)

	report, finish := cmdutil.Progress(env.Stderr, o.Progress && set.Len() > 0)
	start := time.Now()
	res, err := pipeline.AnalyzeSet(ctx, set, c, pipeline.Options{Progress: report})
	finish()
	if err != nil {
		return errorCode(env.Stderr, err)
	}
	if ctx.Err() != nil {
		return ExitCancelled
	}
	log.Debug("scan finished", "findings", len(res.Findings), "elapsed", time.Since(start))

	a := res.Analysis()
	if o.Save {
		code, ok := save(ctx, env, &a)
		if !ok {
			return code
		}
	}
	if o.Sort == cli.SortPosition {
		a.Findings = byPosition(a.Findings, set)
	}

	code := write(env, cfg.Output, writers.Payload{
		Analysis:      a,
		Bases:         res.BasesByID(),
		Header:        o.Header,
		Pretty:        o.Pretty,
		PrettyOptions: pretty.DefaultOptions,
		Flank:         o.Flank,
	})
	if code != ExitOK {
		return code
	}
	if len(a.Findings) == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// save stamps a with a run id, writes it to the configured store and logs
// the id.
func save(ctx context.Context, env *cli.Env, a *output.Analysis) (int, bool) {
	st, err := store.Open(ctx, env.Config.DB.Driver, env.Config.DB.DSN)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO, false
	}
	defer st.Close()

	v := output.ToAPIAnalysis(*a)
	store.Stamp(&v, time.Now())
	if err := st.Save(ctx, v); err != nil {
		return errorCode(env.Stderr, err), false
	}
	a.RunID, a.CreatedAt = v.RunID, v.CreatedAt
	env.Log.Info("analysis saved", "run_id", v.RunID, "findings", len(v.Findings))
	return ExitOK, true
}

// byPosition orders findings by input sequence, then start, then motif
// length. Ids are left as assigned.
func byPosition(list []ssr.Finding, set fasta.Set) []ssr.Finding {
	rank := make(map[string]int, set.Len())
	for i, r := range set.Records {
		rank[r.ID] = i
	}
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(x, y ssr.Finding) int {
		return cmp.Or(
			cmp.Compare(rank[x.SequenceID], rank[y.SequenceID]),
			cmp.Compare(x.Start, y.Start),
			cmp.Compare(len(x.Motif), len(y.Motif)),
		)
	})
	return out
}

// write renders p to stdout through a buffer. A closed pipe is not an error.
func write(env *cli.Env, format string, p writers.Payload) int {
	outw := bufio.NewWriter(env.Stdout)
	if err := writers.Write(format, outw, p); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO
	}
	return ExitOK
}

// errorCode reports err on w and maps it to an exit code.
func errorCode(w io.Writer, err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCancelled
	case errors.Is(err, ssr.ErrConstraint):
		fmt.Fprintln(w, err)
		return ExitUsage
	default:
		fmt.Fprintln(w, err)
		return ExitIO
	}
}
