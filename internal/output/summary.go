// Package output provides formatting utilities for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// SheetSummary describes one rendered sheet.
type SheetSummary struct {
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// RenderSummary is the user-visible result of a catalog render.
type RenderSummary struct {
	File      string         `json:"file"`
	Sheets    []SheetSummary `json:"sheets"`
	TotalRows int            `json:"totalRows"`
}

// Writer handles formatted output to a destination.
type Writer struct {
	dest io.Writer
	json bool
}

// NewWriter creates an output writer. When jsonOut is set, summaries are
// emitted as pretty-printed JSON instead of text.
func NewWriter(jsonOut bool) *Writer {
	return &Writer{dest: os.Stdout, json: jsonOut}
}

// WriteSummary prints a render summary in the configured format.
func (w *Writer) WriteSummary(s *RenderSummary) error {
	if w.json {
		enc := json.NewEncoder(w.dest)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(w.dest, "Wrote %s\n", s.File); err != nil {
		return err
	}
	for i, sheet := range s.Sheets {
		if _, err := fmt.Fprintf(w.dest, "  %d. %-22s %d rows, %d columns\n",
			i+1, sheet.Name, sheet.Rows, sheet.Columns); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w.dest, "%d sheets, %d rows total\n", len(s.Sheets), s.TotalRows)
	return err
}

// WriteError writes an error message to stderr.
func WriteError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
