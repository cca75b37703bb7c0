// internal/fasta/loader.go
package fasta

import "strings"

// PlainID is the record id given to input that carries no FASTA header.
const PlainID = "Sequence"

// Record is one named sequence. Bases keep the caller's case; nothing is
// validated against the nucleotide alphabet.
type Record struct {
	ID    string
	Bases string
}

// Set is the ordered result of Load. Records appear in the order their id was
// first seen.
type Set struct {
	Records []Record
	IsFasta bool
}

// Len returns the number of records.
func (s Set) Len() int { return len(s.Records) }

// TotalLength is the sum of all record lengths in bases.
func (s Set) TotalLength() int {
	n := 0
	for _, r := range s.Records {
		n += len(r.Bases)
	}
	return n
}

// Get looks a record up by id.
func (s Set) Get(id string) (Record, bool) {
	for _, r := range s.Records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Load turns raw text into named sequences.
//
// Text whose first non-blank character is '>' is parsed as FASTA; anything
// else becomes a single record named PlainID with all whitespace removed.
// Empty input yields an empty Set.
func Load(raw string) Set {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Set{}
	}
	if strings.HasPrefix(trimmed, ">") {
		return Set{Records: parseFASTA(raw), IsFasta: true}
	}
	return Set{Records: []Record{{ID: PlainID, Bases: stripSpace(raw)}}}
}

// Merge appends the records of other into s. A duplicate id replaces the
// earlier bases in place, the same rule Load applies within one document.
func (s Set) Merge(other Set) Set {
	b := newBuilder()
	for _, r := range s.Records {
		b.put(r.ID, r.Bases)
	}
	for _, r := range other.Records {
		b.put(r.ID, r.Bases)
	}
	return Set{Records: b.records(), IsFasta: s.IsFasta || other.IsFasta}
}

func parseFASTA(raw string) []Record {
	b := newBuilder()
	var (
		id  string
		seq strings.Builder
	)
	flush := func() {
		// headers without an id or without sequence lines are dropped
		if id != "" && seq.Len() > 0 {
			b.put(id, seq.String())
		}
		seq.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id = headerID(line[1:])
			continue
		}
		seq.WriteString(stripSpace(line))
	}
	flush()
	return b.records()
}

func headerID(hdr string) string {
	f := strings.Fields(hdr)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// stripSpace drops whitespace and keeps every other byte as is, including
// bytes that are not valid UTF-8.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// builder keeps first-seen order while letting later duplicates win.
type builder struct {
	order []string
	bases map[string]string
}

func newBuilder() *builder { return &builder{bases: map[string]string{}} }

func (b *builder) put(id, bases string) {
	if _, ok := b.bases[id]; !ok {
		b.order = append(b.order, id)
	}
	b.bases[id] = bases
}

func (b *builder) records() []Record {
	out := make([]Record, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, Record{ID: id, Bases: b.bases[id]})
	}
	return out
}
