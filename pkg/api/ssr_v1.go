// pkg/api/ssr_v1.go
package api

// FindingV1 is the stable JSON/JSONL schema for one repeat run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FindingV1 struct {
	ID            string `json:"id"`
	SequenceID    string `json:"sequence_id"`
	Type          string `json:"type"` // "mono" | "di" | … | "hexa" | "<n>-mer"
	Motif         string `json:"motif"`
	Start         int    `json:"start"` // 1-based, inclusive
	End           int    `json:"end"`   // 1-based, inclusive
	Length        int    `json:"length"`
	RepeatCount   int    `json:"repeat_count"`
	MismatchCount int    `json:"mismatch_count"`
}

// ConstraintsV1 echoes the constraints an analysis ran with.
type ConstraintsV1 struct {
	MinRepeatLength    int `json:"min_repeat_length"`
	MaxRepeatLength    int `json:"max_repeat_length"`
	MinRepeatCount     int `json:"min_repeat_count"`
	MinTandemLength    int `json:"min_tandem_length"`
	MismatchPercentage int `json:"mismatch_percentage"`
}

// StatisticsV1 summarizes an analysis. Density is findings per kb.
type StatisticsV1 struct {
	TotalFindings  int            `json:"total_findings"`
	SequenceLength int            `json:"sequence_length"`
	Density        float64        `json:"density"`
	TypeCounts     map[string]int `json:"type_counts"`
}

// AnalysisV1 is a complete analysis result.
type AnalysisV1 struct {
	RunID         string        `json:"run_id,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"` // RFC 3339, UTC
	IsFasta       bool          `json:"is_fasta"`
	SequenceCount int           `json:"sequence_count"`
	Constraints   ConstraintsV1 `json:"constraints"`
	Statistics    StatisticsV1  `json:"statistics"`
	Findings      []FindingV1   `json:"findings"`
}

// AnalysisSummaryV1 is the list view of a stored analysis.
type AnalysisSummaryV1 struct {
	RunID          string  `json:"run_id"`
	CreatedAt      string  `json:"created_at"`
	SequenceCount  int     `json:"sequence_count"`
	SequenceLength int     `json:"sequence_length"`
	TotalFindings  int     `json:"total_findings"`
	Density        float64 `json:"density"`
}

// AnalyzeRequestV1 is the body of POST /analyses. Nil Constraints means the
// server defaults.
type AnalyzeRequestV1 struct {
	Sequence    string         `json:"sequence"`
	Constraints *ConstraintsV1 `json:"constraints,omitempty"`
	Save        bool           `json:"save,omitempty"`
}

// ErrorV1 is returned by the HTTP API on failure.
type ErrorV1 struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
