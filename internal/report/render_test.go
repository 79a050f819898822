package report

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func demoWorkbook() *Workbook {
	return &Workbook{
		Tables: []Table{
			{
				Name:    "Demo",
				Columns: []string{"Name", "Value"},
				Records: []Record{
					{"Name": "a", "Value": 1},
					{"Name": "b", "Value": 2},
				},
			},
		},
	}
}

// fillColor returns the fill colors of a cell, uppercased and joined, so
// tests can assert on the hex regardless of alpha prefixes.
func fillColor(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s) failed: %v", cell, err)
	}
	style, err := f.GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle(%d) failed: %v", id, err)
	}
	return strings.ToUpper(strings.Join(style.Fill.Color, ","))
}

func TestRenderDemoScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.xlsx")

	if err := Render(demoWorkbook(), nil, path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered file: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Demo" {
		t.Fatalf("expected single sheet Demo, got %v", got)
	}

	rows, err := f.GetRows("Demo")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	want := [][]string{{"Name", "Value"}, {"a", "1"}, {"b", "2"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected rows %v, got %v", want, rows)
	}

	// Header carries the default header fill.
	if c := fillColor(t, f, "Demo", "A1"); !strings.Contains(c, "4472C4") {
		t.Errorf("expected header fill 4472C4, got %q", c)
	}

	// Second data row is banded, first is not.
	if c := fillColor(t, f, "Demo", "A3"); !strings.Contains(c, "F2F2F2") {
		t.Errorf("expected band fill on row 3, got %q", c)
	}
	if c := fillColor(t, f, "Demo", "A2"); strings.Contains(c, "F2F2F2") {
		t.Errorf("row 2 should not be banded, got fill %q", c)
	}

	panes, err := f.GetPanes("Demo")
	if err != nil {
		t.Fatalf("GetPanes failed: %v", err)
	}
	if !panes.Freeze || panes.TopLeftCell != "B2" {
		t.Errorf("expected frozen pane at B2, got %+v", panes)
	}
}

func TestRenderSheetOrderAndHeaders(t *testing.T) {
	wb := &Workbook{
		Tables: []Table{
			{Name: "Third", Columns: []string{"C"}},
			{Name: "First", Columns: []string{"A", "B"}},
			{Name: "Second", Columns: []string{"X"}},
		},
	}
	path := filepath.Join(t.TempDir(), "order.xlsx")

	if err := Render(wb, nil, path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered file: %v", err)
	}
	defer f.Close()

	want := []string{"Third", "First", "Second"}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected sheet order %v, got %v", want, got)
	}

	rows, err := f.GetRows("First")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 || !reflect.DeepEqual(rows[0], []string{"A", "B"}) {
		t.Errorf("expected header-only sheet with [A B], got %v", rows)
	}
}

func TestRenderColumnOrderAndAbsentFields(t *testing.T) {
	wb := &Workbook{
		Tables: []Table{
			{
				Name:    "Mixed",
				Columns: []string{"One", "Two", "Three"},
				Records: []Record{
					{"Three": "z", "One": "x"}, // Two absent
					{"One": "1", "Two": "2", "Three": "3"},
				},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "mixed.xlsx")

	if err := Render(wb, nil, path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered file: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Mixed", "B2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "" {
		t.Errorf("absent field should render empty, got %q", got)
	}

	for cell, want := range map[string]string{"A2": "x", "C2": "z", "A3": "1", "B3": "2", "C3": "3"} {
		v, err := f.GetCellValue("Mixed", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if v != want {
			t.Errorf("cell %s: expected %q, got %q", cell, want, v)
		}
	}
}

func TestRenderEmptyTable(t *testing.T) {
	wb := &Workbook{
		Tables: []Table{
			{Name: "Empty", Columns: []string{"Only", "Header"}},
		},
	}
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := Render(wb, nil, path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Empty")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly the header row, got %d rows", len(rows))
	}

	panes, err := f.GetPanes("Empty")
	if err != nil {
		t.Fatalf("GetPanes failed: %v", err)
	}
	if !panes.Freeze {
		t.Error("expected frozen pane on header-only sheet")
	}
}

func TestRenderDuplicateSheetName(t *testing.T) {
	wb := &Workbook{
		Tables: []Table{
			{Name: "Dup", Columns: []string{"A"}},
			{Name: "Dup", Columns: []string{"B"}},
		},
	}
	path := filepath.Join(t.TempDir(), "dup.xlsx")

	err := Render(wb, nil, path)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created on schema failure")
	}
}

func TestRenderUndeclaredField(t *testing.T) {
	wb := &Workbook{
		Tables: []Table{
			{
				Name:    "Bad",
				Columns: []string{"A"},
				Records: []Record{{"A": 1, "Rogue": 2}},
			},
		},
	}

	err := Render(wb, nil, filepath.Join(t.TempDir(), "bad.xlsx"))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}

func TestRenderIdempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.xlsx")
	second := filepath.Join(dir, "two.xlsx")

	if err := Render(demoWorkbook(), nil, first); err != nil {
		t.Fatalf("first Render failed: %v", err)
	}
	if err := Render(demoWorkbook(), nil, second); err != nil {
		t.Fatalf("second Render failed: %v", err)
	}

	readAll := func(path string) map[string][][]string {
		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("could not open %s: %v", path, err)
		}
		defer f.Close()
		out := make(map[string][][]string)
		for _, name := range f.GetSheetList() {
			rows, err := f.GetRows(name)
			if err != nil {
				t.Fatalf("GetRows(%s) failed: %v", name, err)
			}
			out[name] = rows
		}
		return out
	}

	if a, b := readAll(first), readAll(second); !reflect.DeepEqual(a, b) {
		t.Errorf("two renders of the same workbook differ: %v vs %v", a, b)
	}
}

func TestRenderIOFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deep", "out.xlsx")

	err := Render(demoWorkbook(), nil, path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if ioErr.Path != path {
		t.Errorf("expected path %q in error, got %q", path, ioErr.Path)
	}
}

func TestRenderWidthCap(t *testing.T) {
	long := strings.Repeat("x", 200)
	wb := &Workbook{
		Tables: []Table{
			{
				Name:    "Wide",
				Columns: []string{"Col"},
				Records: []Record{{"Col": long}},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "wide.xlsx")

	if err := Render(wb, nil, path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered file: %v", err)
	}
	defer f.Close()

	// Width is capped but the value is stored untruncated.
	w, err := f.GetColWidth("Wide", "A")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if w > 60 {
		t.Errorf("expected width capped at 60, got %f", w)
	}
	v, err := f.GetCellValue("Wide", "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if v != long {
		t.Errorf("cell value was truncated: %d chars", len(v))
	}
}

func TestRenderPerSheetHeaderColor(t *testing.T) {
	wb := &Workbook{
		Tables: []Table{
			{Name: "Green", Columns: []string{"A"}},
			{Name: "Plain", Columns: []string{"A"}},
		},
	}
	policy := DefaultStyle()
	policy.HeaderColors = map[string]string{"Green": "70AD47"}

	path := filepath.Join(t.TempDir(), "colors.xlsx")
	if err := Render(wb, policy, path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered file: %v", err)
	}
	defer f.Close()

	if c := fillColor(t, f, "Green", "A1"); !strings.Contains(c, "70AD47") {
		t.Errorf("expected configured header color, got %q", c)
	}
	if c := fillColor(t, f, "Plain", "A1"); !strings.Contains(c, "4472C4") {
		t.Errorf("expected default header color, got %q", c)
	}
}
