// Package ssr contains the simple sequence repeat scanner. It never imports
// pipeline, writers, output, cli, store or server; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
//
// Scan and ScanAll are the entry points for callers holding records in
// memory. The analysis pipeline drives ScanSequence record by record so it
// can stop and report progress between sequences, then finishes with the
// same Canonicalize step as ScanAll.
package ssr
