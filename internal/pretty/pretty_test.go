package pretty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ssrfind/internal/ssr"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

func TestRenderMismatchCarets(t *testing.T) {
	f := ssr.Finding{
		ID: "SSR1", SequenceID: "s", Type: "di", Motif: "AT",
		Start: 1, End: 12, Length: 12, RepeatCount: 6, MismatchCount: 3,
	}
	got := RenderFinding(f, "ATACATACATAC")
	want := "# SSR1 s:1-12 (AT)x6 di mm=3\n" +
		"# 5'-AT AC AT AC AT AC-3'\n" +
		"#        ^     ^     ^\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderExactRunHasNoCaretLine(t *testing.T) {
	f := ssr.Finding{ID: "SSR4", SequenceID: "chr1", Type: "tri", Motif: "CAG", Start: 3, End: 11, RepeatCount: 3}
	got := RenderFinding(f, "GGCAGCAGCAGTT")
	want := "# SSR4 chr1:3-11 (CAG)x3 tri mm=0\n" +
		"# 5'-CAG CAG CAG-3'\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderTruncatesLongRuns(t *testing.T) {
	f := ssr.Finding{ID: "SSR1", SequenceID: "s", Type: "mono", Motif: "A", Start: 1, End: 10, RepeatCount: 10}
	got := RenderFindingWithOptions(f, strings.Repeat("A", 10), Options{MaxUnits: 4})
	if !strings.Contains(got, "# 5'-A A A A ...(+6)-3'\n") {
		t.Fatalf("unexpected block:\n%s", got)
	}
}

func TestRenderOutsideSequence(t *testing.T) {
	f := ssr.Finding{ID: "SSR1", Motif: "AT", Start: 5, End: 20}
	got := RenderFinding(f, "ATAT")
	if !strings.Contains(got, "pretty not available") {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestRenderLongMotif_Golden(t *testing.T) {
	f := ssr.Finding{
		ID: "SSR7", SequenceID: "contig_9", Type: "hexa", Motif: "AATGGC",
		Start: 4, End: 27, Length: 24, RepeatCount: 4, MismatchCount: 2,
	}
	got := RenderFinding(f, "TTT"+"AATGGC"+"AATGCC"+"AATGGC"+"TATGGC"+"GG")
	path := filepath.Join("testdata", "hexa.golden")
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}
