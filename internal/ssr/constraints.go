package ssr

import (
	"errors"
	"fmt"
)

// Field limits enforced by Validate.
const (
	MinMotifLength = 1
	MaxMotifLength = 100
)

// Defaults used by the website's SSR tool.
const (
	DefaultMinRepeatLength    = 1
	DefaultMaxRepeatLength    = 6
	DefaultMinRepeatCount     = 3
	DefaultMinTandemLength    = 10
	DefaultMismatchPercentage = 0
)

// ErrConstraint is matched (errors.Is) by every *ConstraintError.
var ErrConstraint = errors.New("invalid constraint")

// ConstraintError names the offending field.
type ConstraintError struct {
	Field string
	Value int
	Rule  string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s = %d: must be %s", ErrConstraint, e.Field, e.Value, e.Rule)
}

func (e *ConstraintError) Unwrap() error { return ErrConstraint }

// Constraints bound what Scan reports.
//
// MinRepeatLength > MaxRepeatLength is allowed; the range is simply empty and
// a scan reports nothing.
type Constraints struct {
	MinRepeatLength    int `json:"min_repeat_length" mapstructure:"min-repeat-length"`
	MaxRepeatLength    int `json:"max_repeat_length" mapstructure:"max-repeat-length"`
	MinRepeatCount     int `json:"min_repeat_count" mapstructure:"min-repeat-count"`
	MinTandemLength    int `json:"min_tandem_length" mapstructure:"min-tandem-length"`
	MismatchPercentage int `json:"mismatch_percentage" mapstructure:"mismatch-percentage"`
}

// DefaultConstraints returns the website defaults.
func DefaultConstraints() Constraints {
	return Constraints{
		MinRepeatLength:    DefaultMinRepeatLength,
		MaxRepeatLength:    DefaultMaxRepeatLength,
		MinRepeatCount:     DefaultMinRepeatCount,
		MinTandemLength:    DefaultMinTandemLength,
		MismatchPercentage: DefaultMismatchPercentage,
	}
}

// NewConstraints builds a validated Constraints.
func NewConstraints(minLen, maxLen, minCount, minTandem, mismatchPct int) (Constraints, error) {
	c := Constraints{
		MinRepeatLength:    minLen,
		MaxRepeatLength:    maxLen,
		MinRepeatCount:     minCount,
		MinTandemLength:    minTandem,
		MismatchPercentage: mismatchPct,
	}
	if err := c.Validate(); err != nil {
		return Constraints{}, err
	}
	return c, nil
}

// Validate checks each field against its range and returns the first
// violation as a *ConstraintError.
func (c Constraints) Validate() error {
	rangeRule := fmt.Sprintf("between %d and %d", MinMotifLength, MaxMotifLength)
	switch {
	case c.MinRepeatLength < MinMotifLength || c.MinRepeatLength > MaxMotifLength:
		return &ConstraintError{Field: "min-repeat-length", Value: c.MinRepeatLength, Rule: rangeRule}
	case c.MaxRepeatLength < MinMotifLength || c.MaxRepeatLength > MaxMotifLength:
		return &ConstraintError{Field: "max-repeat-length", Value: c.MaxRepeatLength, Rule: rangeRule}
	case c.MinRepeatCount < 1:
		return &ConstraintError{Field: "min-repeat-count", Value: c.MinRepeatCount, Rule: "≥ 1"}
	case c.MinTandemLength < 1:
		return &ConstraintError{Field: "min-tandem-length", Value: c.MinTandemLength, Rule: "≥ 1"}
	case c.MismatchPercentage < 0 || c.MismatchPercentage > 100:
		return &ConstraintError{Field: "mismatch-percentage", Value: c.MismatchPercentage, Rule: "between 0 and 100"}
	}
	return nil
}

// Degenerate reports an empty motif-length range.
func (c Constraints) Degenerate() bool { return c.MinRepeatLength > c.MaxRepeatLength }

// MaxMismatches is the per-window mismatch budget for a motif of length m.
func (c Constraints) MaxMismatches(m int) int {
	return m * c.MismatchPercentage / 100
}

// Types lists the type labels the motif-length range can produce, shortest
// motif first.
func (c Constraints) Types() []string {
	lo := max(c.MinRepeatLength, MinMotifLength)
	var out []string
	for m := lo; m <= c.MaxRepeatLength; m++ {
		out = append(out, TypeLabel(m))
	}
	return out
}
