package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Render writes the workbook to a single .xlsx file at path, one sheet per
// table in input order, and applies the style policy to every sheet.
//
// The workbook is validated in full before anything is written, so a
// *SchemaError never leaves a partial file behind. A save failure is
// reported as *IOError. Record order is preserved as given; sorting is the
// caller's job.
func Render(wb *Workbook, policy *StylePolicy, path string) error {
	if err := wb.Validate(); err != nil {
		return err
	}
	if policy == nil {
		policy = DefaultStyle()
	}

	f := excelize.NewFile()
	defer f.Close()

	for i := range wb.Tables {
		t := &wb.Tables[i]

		if i == 0 {
			// Rename default sheet
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return fmt.Errorf("could not rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return fmt.Errorf("could not create sheet %q: %w", t.Name, err)
			}
		}

		widths, err := writeTable(f, t)
		if err != nil {
			return err
		}
		if err := formatSheet(f, t, policy, widths); err != nil {
			return fmt.Errorf("could not format sheet %q: %w", t.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &IOError{Path: path, Err: err}
	}

	return nil
}

// writeTable fills one sheet with the header row and all records, and
// returns the maximum textual width seen per column (header included).
func writeTable(f *excelize.File, t *Table) ([]float64, error) {
	widths := make([]float64, len(t.Columns))

	for ci, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return nil, fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetCellValue(t.Name, cell, col); err != nil {
			return nil, fmt.Errorf("could not set cell %s: %w", cell, err)
		}
		widths[ci] = float64(utf8.RuneCountInString(col))
	}

	for ri, rec := range t.Records {
		for ci, col := range t.Columns {
			val, ok := rec[col]
			if !ok || val == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, fmt.Errorf("invalid cell coordinates: %w", err)
			}
			if err := f.SetCellValue(t.Name, cell, val); err != nil {
				return nil, fmt.Errorf("could not set cell %s: %w", cell, err)
			}
			if w := float64(utf8.RuneCountInString(fmt.Sprint(val))); w > widths[ci] {
				widths[ci] = w
			}
		}
	}

	return widths, nil
}

// formatSheet applies the style policy to a fully written sheet: header
// fill and font, borders on every populated cell, banding on even data
// rows, auto-filter, frozen panes, and capped column widths.
func formatSheet(f *excelize.File, t *Table, policy *StylePolicy, widths []float64) error {
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{policy.headerColorFor(t.Name)}},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thin,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return err
	}
	bandStyle, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{policy.BandColor}},
		Border: thin,
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(t.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	// Band every second data row; the header style above is never touched
	// because banding starts at sheet row 3.
	for ri := range t.Records {
		row := ri + 2
		style := dataStyle
		if (ri+1)%2 == 0 {
			style = bandStyle
		}
		ref := fmt.Sprintf("%d", row)
		if err := f.SetCellStyle(t.Name, "A"+ref, lastCol+ref, style); err != nil {
			return err
		}
	}

	lastRow := len(t.Records) + 1
	filterRange := fmt.Sprintf("A1:%s%d", lastCol, lastRow)
	if err := f.AutoFilter(t.Name, filterRange, nil); err != nil {
		return err
	}

	if policy.FreezeHeader {
		err := f.SetPanes(t.Name, &excelize.Panes{
			Freeze:      true,
			XSplit:      1,
			YSplit:      1,
			TopLeftCell: "B2",
			ActivePane:  "bottomRight",
		})
		if err != nil {
			return err
		}
	}

	for ci, w := range widths {
		col, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return err
		}
		width := w + policy.WidthMargin
		if width > policy.MaxWidth {
			width = policy.MaxWidth
		}
		if err := f.SetColWidth(t.Name, col, col, width); err != nil {
			return err
		}
	}

	return nil
}
