package appcore

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"ssrfind/internal/cli"
	"ssrfind/internal/output"
	"ssrfind/internal/store"
	"ssrfind/internal/writers"
)

// History lists stored runs, or prints one run in the configured format.
func History(ctx context.Context, env *cli.Env, o cli.HistoryOptions) int {
	if o.RunID != "" && env.Config.Output == output.FormatFASTA {
		fmt.Fprintln(env.Stderr, "error: fasta output needs the input sequences, which are not stored")
		return ExitUsage
	}
	st, err := store.Open(ctx, env.Config.DB.Driver, env.Config.DB.DSN)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO
	}
	defer st.Close()

	if o.RunID == "" {
		list, err := st.List(ctx, o.Limit)
		if err != nil {
			return errorCode(env.Stderr, err)
		}
		tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
		if o.Header {
			fmt.Fprintln(tw, "RUN_ID\tCREATED\tSEQUENCES\tBASES\tSSRS\tDENSITY")
		}
		for _, r := range list {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%.2f\n",
				r.RunID, r.CreatedAt, r.SequenceCount,
				humanize.Comma(int64(r.SequenceLength)), humanize.Comma(int64(r.TotalFindings)), r.Density)
		}
		if err := tw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
			fmt.Fprintln(env.Stderr, err)
			return ExitIO
		}
		return ExitOK
	}

	a, err := st.Get(ctx, o.RunID)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(env.Stderr, err)
		return ExitNotFound
	} else if err != nil {
		return errorCode(env.Stderr, err)
	}
	return write(env, env.Config.Output, writers.Payload{
		Analysis: output.FromAPIAnalysis(a),
		Header:   o.Header,
	})
}

// Delete removes one stored run.
func Delete(ctx context.Context, env *cli.Env, o cli.DeleteOptions) int {
	st, err := store.Open(ctx, env.Config.DB.Driver, env.Config.DB.DSN)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO
	}
	defer st.Close()

	if err := st.Delete(ctx, o.RunID); errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(env.Stderr, err)
		return ExitNotFound
	} else if err != nil {
		return errorCode(env.Stderr, err)
	}
	env.Log.Info("analysis deleted", "run_id", o.RunID)
	return ExitOK
}
