package ssr

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		c     Constraints
		field string
	}{
		{"defaults", DefaultConstraints(), ""},
		{"degenerate range is allowed", Constraints{5, 2, 1, 1, 0}, ""},
		{"long motifs", Constraints{7, 100, 2, 10, 100}, ""},
		{"zero min length", Constraints{0, 6, 3, 10, 0}, "min-repeat-length"},
		{"max length too large", Constraints{1, 101, 3, 10, 0}, "max-repeat-length"},
		{"zero repeat count", Constraints{1, 6, 0, 10, 0}, "min-repeat-count"},
		{"zero tandem length", Constraints{1, 6, 3, 0, 0}, "min-tandem-length"},
		{"negative mismatch", Constraints{1, 6, 3, 10, -1}, "mismatch-percentage"},
		{"mismatch over 100", Constraints{1, 6, 3, 10, 101}, "mismatch-percentage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ce *ConstraintError
			if !errors.As(err, &ce) {
				t.Fatalf("want *ConstraintError, got %v", err)
			}
			if ce.Field != tt.field {
				t.Fatalf("field = %q, want %q", ce.Field, tt.field)
			}
			if !errors.Is(err, ErrConstraint) {
				t.Fatalf("errors.Is(err, ErrConstraint) = false")
			}
		})
	}
}

func TestNewConstraintsFailsFast(t *testing.T) {
	if _, err := NewConstraints(1, 6, 3, 10, 150); err == nil {
		t.Fatalf("expected error for 150%% mismatches")
	}
	c, err := NewConstraints(2, 4, 3, 12, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MinRepeatLength != 2 || c.MaxRepeatLength != 4 || c.MinTandemLength != 12 {
		t.Fatalf("fields not copied: %+v", c)
	}
}

func TestMaxMismatches(t *testing.T) {
	c := Constraints{MismatchPercentage: 34}
	for m, want := range map[int]int{1: 0, 2: 0, 3: 1, 5: 1, 6: 2} {
		if got := c.MaxMismatches(m); got != want {
			t.Errorf("MaxMismatches(%d) = %d, want %d", m, got, want)
		}
	}
}

func TestTypes(t *testing.T) {
	got := Constraints{MinRepeatLength: 2, MaxRepeatLength: 7}.Types()
	want := []string{"di", "tri", "tetra", "penta", "hexa", "7-mer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	if got := (Constraints{MinRepeatLength: 5, MaxRepeatLength: 2}).Types(); len(got) != 0 {
		t.Fatalf("degenerate range should have no types, got %v", got)
	}
}

func TestTypeLabels_Stable(t *testing.T) {
	want := map[int]string{1: "mono", 2: "di", 3: "tri", 4: "tetra", 5: "penta", 6: "hexa", 7: "7-mer", 12: "12-mer"}
	for m, label := range want {
		if got := TypeLabel(m); got != label {
			t.Errorf("TypeLabel(%d) = %q, want %q", m, got, label)
		}
		if back, ok := MotifLength(label); !ok || back != m {
			t.Errorf("MotifLength(%q) = %d,%v", label, back, ok)
		}
	}
	if _, ok := MotifLength("4-mer"); ok {
		t.Errorf("4-mer is spelled tetra and must not parse")
	}
	if _, ok := MotifLength("bogus"); ok {
		t.Errorf("unexpected parse of bogus label")
	}
}
