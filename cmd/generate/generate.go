// Package generate provides the "refcat generate" command that renders the
// built-in catalogs to .xlsx workbooks.
package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klytics/refcat/internal/catalog"
	"github.com/klytics/refcat/internal/config"
	"github.com/klytics/refcat/internal/output"
	"github.com/klytics/refcat/internal/report"
)

// NewCommand returns the generate command.
func NewCommand() *cobra.Command {
	var (
		outputPath string
		stylePath  string
	)

	cmd := &cobra.Command{
		Use:   "generate [catalog...]",
		Short: "Render reference catalogs to styled .xlsx workbooks",
		Long: `Renders one or more built-in catalogs. With no arguments, every
catalog is generated into the configured output directory.

Catalogs:
  functions    C++ STL algorithms and container member functions
  structures   Cross-language data structure comparison

Example:
  refcat generate
  refcat generate functions --output /tmp/cpp.xlsx
  refcat generate structures --style mystyle.yaml`,
		ValidArgs: catalog.Names(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			names := args
			if len(names) == 0 {
				names = catalog.Names()
			}
			if outputPath != "" && len(names) != 1 {
				return fmt.Errorf("--output applies to a single catalog — got %s", strings.Join(names, ", "))
			}

			writer := output.NewWriter(jsonFlag)
			for _, name := range names {
				summary, err := RenderCatalog(name, outputPath, stylePath)
				if err != nil {
					return err
				}
				if err := writer.WriteSummary(summary); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "Output .xlsx path (single catalog only)")
	cmd.Flags().StringVar(&stylePath, "style", "", "YAML style file overriding the catalog's style policy")

	return cmd
}

// RenderCatalog renders one named catalog and returns its summary. An empty
// outPath falls back to the catalog's default file name in the configured
// output directory; an empty stylePath falls back to the configured style
// file, if any.
func RenderCatalog(name, outPath, stylePath string) (*output.RenderSummary, error) {
	cat, err := catalog.ByName(name)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	if stylePath == "" {
		stylePath = cfg.Style.File
	}
	style := cat.Style
	if stylePath != "" {
		style, err = report.LoadStyleFile(stylePath, cat.Style)
		if err != nil {
			return nil, err
		}
	}

	if outPath == "" {
		outPath = filepath.Join(cfg.Output.Dir, cat.DefaultOutput)
	}
	if !strings.HasSuffix(strings.ToLower(outPath), ".xlsx") {
		outPath += ".xlsx"
	}

	if err := report.Render(cat.Workbook, style, outPath); err != nil {
		return nil, err
	}

	return summarize(cat.Workbook, outPath), nil
}

func summarize(wb *report.Workbook, path string) *output.RenderSummary {
	s := &output.RenderSummary{File: path}
	for i := range wb.Tables {
		t := &wb.Tables[i]
		s.Sheets = append(s.Sheets, output.SheetSummary{
			Name:    t.Name,
			Rows:    t.RowCount(),
			Columns: len(t.Columns),
		})
		s.TotalRows += t.RowCount()
	}
	return s
}
