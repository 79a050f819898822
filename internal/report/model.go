// Package report renders an in-memory workbook of uniform tables into a
// styled multi-sheet .xlsx file.
package report

import (
	"fmt"
	"strings"
)

// maxSheetTitleLen is the xlsx limit on sheet title length.
const maxSheetTitleLen = 31

// forbiddenTitleChars are characters xlsx rejects in sheet titles.
const forbiddenTitleChars = `[]:*?/\`

// Record holds one row's worth of named field values. Values are scalars
// (string or number); a missing field renders as an empty cell.
type Record map[string]any

// Table is one logical sheet: a name, an ordered column set, and rows.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Workbook is an ordered collection of tables, one sheet each.
type Workbook struct {
	Tables []Table `json:"tables"`
}

// RowCount returns the number of data rows (header not counted).
func (t *Table) RowCount() int {
	return len(t.Records)
}

// Validate checks the whole workbook before any write begins so that a
// schema problem never produces partial output.
func (wb *Workbook) Validate() error {
	if len(wb.Tables) == 0 {
		return &SchemaError{Reason: "workbook has no tables"}
	}

	seen := make(map[string]bool, len(wb.Tables))
	for i := range wb.Tables {
		t := &wb.Tables[i]

		if err := validateSheetTitle(t.Name); err != nil {
			return err
		}
		if seen[t.Name] {
			return &SchemaError{Sheet: t.Name, Reason: "duplicate sheet name"}
		}
		seen[t.Name] = true

		if len(t.Columns) == 0 {
			return &SchemaError{Sheet: t.Name, Reason: "table declares no columns"}
		}

		cols := make(map[string]bool, len(t.Columns))
		for _, c := range t.Columns {
			if cols[c] {
				return &SchemaError{Sheet: t.Name, Reason: fmt.Sprintf("duplicate column %q", c)}
			}
			cols[c] = true
		}

		for ri, rec := range t.Records {
			for field := range rec {
				if !cols[field] {
					return &SchemaError{
						Sheet:  t.Name,
						Reason: fmt.Sprintf("record %d has field %q not declared in columns", ri+1, field),
					}
				}
			}
		}
	}

	return nil
}

func validateSheetTitle(name string) error {
	if name == "" {
		return &SchemaError{Reason: "empty sheet name"}
	}
	if len(name) > maxSheetTitleLen {
		return &SchemaError{Sheet: name, Reason: fmt.Sprintf("sheet name longer than %d characters", maxSheetTitleLen)}
	}
	if i := strings.IndexAny(name, forbiddenTitleChars); i >= 0 {
		return &SchemaError{Sheet: name, Reason: fmt.Sprintf("sheet name contains forbidden character %q", name[i])}
	}
	return nil
}
