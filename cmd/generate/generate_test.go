package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRenderCatalogFunctions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpp.xlsx")

	summary, err := RenderCatalog("functions", path, "")
	if err != nil {
		t.Fatalf("RenderCatalog failed: %v", err)
	}

	if summary.File != path {
		t.Errorf("expected summary file %q, got %q", path, summary.File)
	}
	if len(summary.Sheets) != 5 {
		t.Fatalf("expected 5 sheets in summary, got %d", len(summary.Sheets))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not open rendered catalog: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 5 || sheets[0] != "STL Algorithms" {
		t.Errorf("unexpected sheet list: %v", sheets)
	}

	for i, sheet := range summary.Sheets {
		rows, err := f.GetRows(sheets[i])
		if err != nil {
			t.Fatalf("GetRows(%s) failed: %v", sheets[i], err)
		}
		if got := len(rows) - 1; got != sheet.Rows {
			t.Errorf("sheet %s: summary says %d rows, file has %d", sheet.Name, sheet.Rows, got)
		}
	}
}

func TestRenderCatalogStyleOverride(t *testing.T) {
	dir := t.TempDir()
	stylePath := filepath.Join(dir, "style.yaml")
	if err := os.WriteFile(stylePath, []byte("header_color: \"1F4E79\"\nheader_colors: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "ds.xlsx")
	if _, err := RenderCatalog("structures", path, stylePath); err != nil {
		t.Fatalf("RenderCatalog with style failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRenderCatalogUnknown(t *testing.T) {
	if _, err := RenderCatalog("nope", "", ""); err == nil {
		t.Error("expected error for unknown catalog")
	}
}

func TestRenderCatalogAppendsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noext")

	summary, err := RenderCatalog("structures", path, "")
	if err != nil {
		t.Fatalf("RenderCatalog failed: %v", err)
	}
	if summary.File != path+".xlsx" {
		t.Errorf("expected .xlsx appended, got %q", summary.File)
	}
	if _, err := os.Stat(path + ".xlsx"); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestGenerateCommandRejectsOutputWithAll(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"--output", "x.xlsx"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when --output is used without naming a single catalog")
	}
}
