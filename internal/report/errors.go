package report

import "fmt"

// SchemaError indicates that the workbook itself is malformed: duplicate or
// illegal sheet names, a table without columns, or a record carrying a field
// its table never declared. It is always raised before any file is created.
type SchemaError struct {
	Sheet  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Sheet == "" {
		return "schema: " + e.Reason
	}
	return fmt.Sprintf("schema: sheet %q: %s", e.Sheet, e.Reason)
}

// IOError indicates that the destination could not be written. The
// underlying cause is available via errors.Unwrap.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
