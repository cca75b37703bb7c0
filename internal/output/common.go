package output

// Output formats understood by the writers registry.
const (
	FormatCSV     = "csv"
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatFASTA   = "fasta"
	FormatSummary = "summary"
)

// Formats lists every format, in help-text order.
func Formats() []string {
	return []string{FormatCSV, FormatText, FormatJSON, FormatJSONL, FormatFASTA, FormatSummary}
}

// CSVHeader is the export column order. MismatchCount is deliberately absent.
const CSVHeader = "ID,SequenceId,Type,Motif,Start,End,Length,RepeatCount"

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tsequence_id\ttype\tmotif\tstart\tend\tlength\trepeat_count\tmismatch_count"
