package writers

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"ssrfind/internal/output"
	"ssrfind/internal/pretty"
)

// Payload is everything a format may need. Bases maps sequence id to its
// normalized bases; only fasta and pretty text read it.
type Payload struct {
	Analysis      output.Analysis
	Bases         map[string]string
	Header        bool
	Pretty        bool
	PrettyOptions pretty.Options
	Flank         int
}

// WriterFunc serializes one payload.
type WriterFunc func(w io.Writer, p Payload) error

// Writers is the format → handler registry. Built-ins register in init().
var Writers = map[string]WriterFunc{}

// Register adds or replaces a format (last wins).
func Register(format string, fn WriterFunc) { Writers[strings.ToLower(format)] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := Writers[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := Writers[strings.ToLower(format)]
	return ok
}

// Registered lists the registered formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(Writers))
	for k := range Writers {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
