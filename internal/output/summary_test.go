package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sample() *RenderSummary {
	return &RenderSummary{
		File: "out.xlsx",
		Sheets: []SheetSummary{
			{Name: "STL Algorithms", Rows: 12, Columns: 17},
			{Name: "Vector Methods", Rows: 8, Columns: 17},
		},
		TotalRows: 20,
	}
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{dest: &buf, json: false}

	if err := w.WriteSummary(sample()); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"out.xlsx", "STL Algorithms", "12 rows", "2 sheets, 20 rows total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{dest: &buf, json: true}

	if err := w.WriteSummary(sample()); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	var got RenderSummary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.File != "out.xlsx" || len(got.Sheets) != 2 || got.TotalRows != 20 {
		t.Errorf("round-tripped summary mismatch: %+v", got)
	}
}
