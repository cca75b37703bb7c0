package pipeline

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"ssrfind/internal/ssr"
)

func TestAnalyzeFASTA(t *testing.T) {
	raw := ">chr1 desc\n" + strings.Repeat("A", 20) + "\n\n>chr2\n  ATATAT\n ATATAT \n"
	c := ssr.Constraints{MinRepeatLength: 1, MaxRepeatLength: 2, MinRepeatCount: 3, MinTandemLength: 10, MismatchPercentage: 0}
	res, err := Analyze(context.Background(), raw, c, Options{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.IsFasta || res.SequenceCount != 2 {
		t.Fatalf("IsFasta=%v SequenceCount=%d", res.IsFasta, res.SequenceCount)
	}
	// mono chr1, di chr1 (AA x10), di chr2 (AT x6)
	if len(res.Findings) != 3 {
		t.Fatalf("want 3 findings, got %+v", res.Findings)
	}
	ids := []string{res.Findings[0].ID, res.Findings[1].ID, res.Findings[2].ID}
	if !reflect.DeepEqual(ids, []string{"SSR1", "SSR2", "SSR3"}) {
		t.Fatalf("ids = %v", ids)
	}
	if res.Findings[2].SequenceID != "chr2" || res.Findings[2].Motif != "AT" {
		t.Fatalf("third finding %+v", res.Findings[2])
	}
	st := res.Statistics
	if st.TotalFindings != 3 || st.SequenceLength != 32 {
		t.Fatalf("statistics %+v", st)
	}
	if st.TypeCounts["mono"] != 1 || st.TypeCounts["di"] != 2 || len(st.TypeCounts) != 2 {
		t.Fatalf("type counts %v", st.TypeCounts)
	}
	if st.Density != 93.75 {
		t.Fatalf("density = %v, want 93.75", st.Density)
	}
	if res.BasesByID()["chr2"] != "ATATATATATAT" {
		t.Fatalf("records not carried through: %+v", res.Records)
	}
}

func TestAnalyzeDegenerateRange(t *testing.T) {
	c := ssr.Constraints{MinRepeatLength: 5, MaxRepeatLength: 2, MinRepeatCount: 1, MinTandemLength: 1}
	res, err := Analyze(context.Background(), strings.Repeat("AT", 40), c, Options{})
	if err != nil {
		t.Fatalf("degenerate range must not error: %v", err)
	}
	if len(res.Findings) != 0 || res.Statistics.TotalFindings != 0 || res.Statistics.Density != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if len(res.Statistics.TypeCounts) != 0 {
		t.Fatalf("no type can occur, got %v", res.Statistics.TypeCounts)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res, err := Analyze(context.Background(), "  \n", ssr.DefaultConstraints(), Options{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.SequenceCount != 0 || res.Statistics.SequenceLength != 0 || res.Statistics.Density != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Statistics.TypeCounts["hexa"] != 0 || len(res.Statistics.TypeCounts) != 6 {
		t.Fatalf("stable schema expected, got %v", res.Statistics.TypeCounts)
	}
}

func TestAnalyzeRejectsInvalidConstraints(t *testing.T) {
	c := ssr.DefaultConstraints()
	c.MismatchPercentage = 120
	_, err := Analyze(context.Background(), "ACGT", c, Options{})
	if !errors.Is(err, ssr.ErrConstraint) {
		t.Fatalf("want constraint error, got %v", err)
	}
}

func TestAnalyzeUsesScanFuncAndReportsProgress(t *testing.T) {
	fake := func(seqID, bases string, c ssr.Constraints) []ssr.Finding {
		return []ssr.Finding{{SequenceID: seqID, Type: "di", Motif: "XY", Start: 10 - len(bases)}}
	}
	var seen []string
	res, err := Analyze(context.Background(), ">a\nAAA\n>b\nCCCCC\n", ssr.DefaultConstraints(), Options{
		Scan: fake,
		Progress: func(done, total int, id string) {
			if total != 2 {
				t.Errorf("total = %d", total)
			}
			seen = append(seen, id)
		},
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Fatalf("progress ids %v", seen)
	}
	// b starts earlier (5 < 7), so it sorts first and gets SSR1
	if res.Findings[0].SequenceID != "b" || res.Findings[0].ID != "SSR1" {
		t.Fatalf("canonical order not applied: %+v", res.Findings)
	}
}

func TestAnalyzeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Analyze(ctx, ">a\nACGT\n", ssr.DefaultConstraints(), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestAnalyzeCallsAreIndependent(t *testing.T) {
	c := ssr.Constraints{MinRepeatLength: 1, MaxRepeatLength: 1, MinRepeatCount: 5, MinTandemLength: 5}
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := Analyze(context.Background(), strings.Repeat("G", 50), c, Options{})
			if err != nil || len(res.Findings) != 1 {
				done <- "bad"
				return
			}
			done <- res.Findings[0].ID
		}()
	}
	for i := 0; i < 8; i++ {
		if id := <-done; id != "SSR1" {
			t.Fatalf("concurrent call got id %q", id)
		}
	}
}

func TestAnalyzeForeignBytesAreLiteral(t *testing.T) {
	raw := "ACGT\xff\xff\xff\xff\xff\xff\xfeTTTTTTTTT"
	c := ssr.Constraints{MinRepeatLength: 1, MaxRepeatLength: 1, MinRepeatCount: 3, MinTandemLength: 3}
	res, err := Analyze(context.Background(), raw, c, Options{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Statistics.SequenceLength != len(raw) {
		t.Fatalf("SequenceLength = %d, want %d", res.Statistics.SequenceLength, len(raw))
	}
	// the 0xfe byte must not extend the run of 0xff
	if len(res.Findings) != 2 {
		t.Fatalf("want 2 findings, got %+v", res.Findings)
	}
	ff, tt := res.Findings[0], res.Findings[1]
	if ff.Motif != "\xff" || ff.Start != 5 || ff.End != 10 {
		t.Fatalf("first finding %+v", ff)
	}
	if tt.Motif != "T" || tt.Start != 12 || tt.End != len(raw) {
		t.Fatalf("second finding %+v", tt)
	}
}
