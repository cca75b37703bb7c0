package appcore

import (
	"context"
	"fmt"

	"ssrfind/internal/cli"
	"ssrfind/internal/server"
	"ssrfind/internal/store"
)

// Serve runs the HTTP API until ctx ends.
func Serve(ctx context.Context, env *cli.Env, o cli.ServeOptions) int {
	cfg := env.Config
	opts := server.Options{
		Config:   cfg.Server,
		Defaults: cfg.Scan,
		Log:      env.Log,
	}
	if !o.NoStore {
		st, err := store.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitIO
		}
		defer st.Close()
		opts.Repo = st
		env.Log.Info("store ready", "driver", cfg.DB.Driver)
	}
	if err := server.New(opts).ListenAndServe(ctx); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitIO
	}
	if ctx.Err() != nil {
		return ExitCancelled
	}
	return ExitOK
}
