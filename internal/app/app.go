// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"ssrfind/internal/appcore"
	"ssrfind/internal/cli"
)

// Handlers wires the command tree to the run loops.
var Handlers = cli.Handlers{
	Scan:    appcore.Scan,
	History: appcore.History,
	Delete:  appcore.Delete,
	Serve:   appcore.Serve,
}

// RunContext executes argv and returns the process exit code: 0 success,
// 1 (or --no-match-exit-code) nothing found, 2 usage or configuration
// errors, 3 I/O errors, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.New(Handlers, stdout, stderr)
	cmd.Root.SetArgs(argv)
	if err := cmd.Root.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintln(stderr, "Run 'ssrfind --help' for usage.")
		return appcore.ExitUsage
	}
	return cmd.Code()
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
