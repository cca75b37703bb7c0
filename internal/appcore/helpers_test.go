package appcore

import (
	"io"

	"ssrfind/internal/cli"
	"ssrfind/internal/cmdutil"
)

func testEnv(stdout, stderr io.Writer) *cli.Env {
	return &cli.Env{
		Stdout: stdout,
		Stderr: stderr,
		Log:    cmdutil.NewLogger(io.Discard, "info", false),
	}
}
