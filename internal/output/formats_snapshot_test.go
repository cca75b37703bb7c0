package output

import (
	"reflect"
	"testing"
)

func TestFormats_Stable(t *testing.T) {
	want := []string{"csv", "text", "json", "jsonl", "fasta", "summary"}
	if got := Formats(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
}
