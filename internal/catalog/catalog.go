// Package catalog holds the built-in reference catalogs as static table
// data, ready to be rendered by the report package.
package catalog

import (
	"fmt"

	"github.com/klytics/refcat/internal/report"
)

// Catalog bundles a workbook with the style policy it ships with and the
// file name it is written to when no output path is given.
type Catalog struct {
	Name          string
	DefaultOutput string
	Workbook      *report.Workbook
	Style         *report.StylePolicy
}

// ByName resolves a catalog by its CLI name.
func ByName(name string) (*Catalog, error) {
	switch name {
	case "functions":
		return Functions(), nil
	case "structures":
		return Structures(), nil
	default:
		return nil, fmt.Errorf("unknown catalog %q — available: functions, structures", name)
	}
}

// Names lists the available catalogs in CLI order.
func Names() []string {
	return []string{"functions", "structures"}
}
