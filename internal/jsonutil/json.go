// Package jsonutil holds the two JSON shapes the tool emits: one indented
// document, or one compact value per line.
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeLines writes conv(item) for each item as one JSON line. It stops at
// the first write error.
func EncodeLines[T, U any](w io.Writer, items []T, conv func(T) U) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(conv(it)); err != nil {
			return err
		}
	}
	return nil
}
