// Package writers turns a finished analysis into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (pretty blocks, CSV/JSON/FASTA).
//   • ssr stays domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
