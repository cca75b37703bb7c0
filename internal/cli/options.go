// internal/cli/options.go
package cli

import (
	"context"
	"io"
	"log/slog"

	"ssrfind/internal/config"
)

// Presentation orders for --sort.
const (
	SortCanonical = "canonical" // motif length, start, sequence (id order)
	SortPosition  = "position"  // sequence, start, motif length
)

// Env is what every command gets once flags, config file and environment
// have been merged.
type Env struct {
	Config config.Config
	Log    *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// ScanOptions holds the scan-only flags and arguments.
type ScanOptions struct {
	Inputs   []string // expanded paths, "-" = stdin
	Sequence string   // inline text instead of files

	Header          bool // true unless --no-header
	Pretty          bool
	Flank           int
	Sort            string
	Save            bool
	Progress        bool
	NoMatchExitCode int
}

type HistoryOptions struct {
	RunID  string // empty: list
	Limit  int
	Header bool
}

type DeleteOptions struct {
	RunID string
}

type ServeOptions struct {
	NoStore bool
}

// Handlers run the commands and return the process exit code.
type Handlers struct {
	Scan    func(ctx context.Context, env *Env, o ScanOptions) int
	History func(ctx context.Context, env *Env, o HistoryOptions) int
	Delete  func(ctx context.Context, env *Env, o DeleteOptions) int
	Serve   func(ctx context.Context, env *Env, o ServeOptions) int
}
