// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"ssrfind/internal/ssr"
)

var csvColumns = strings.Split(CSVHeader, ",")

// CSVRecord returns the export columns of f, verbatim.
func CSVRecord(f ssr.Finding) []string {
	return []string{
		f.ID, f.SequenceID, f.Type, f.Motif,
		strconv.Itoa(f.Start), strconv.Itoa(f.End),
		strconv.Itoa(f.Length), strconv.Itoa(f.RepeatCount),
	}
}

// WriteCSV writes one row per finding, with the header unless header=false.
func WriteCSV(w io.Writer, list []ssr.Finding, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(csvColumns); err != nil {
			return err
		}
	}
	for _, f := range list {
		if err := cw.Write(CSVRecord(f)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
