// Package pipeline runs one analysis: load sequences, scan each of them, put
// the findings in canonical order with fresh ids, and aggregate statistics.
//
// The scanner is swappable through Options.Scan so the orchestration can be
// tested with fakes. Cancellation is checked between sequences only; a single
// sequence is always scanned to completion.
package pipeline
