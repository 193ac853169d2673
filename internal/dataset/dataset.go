package dataset

import (
	"fmt"
	"strings"
)

// Row maps column name to cell text. Missing cells are "".
type Row map[string]string

// Dataset is an ordered set of rows sharing one column list.
type Dataset struct {
	Columns  []string       // Unique column names, in file order
	Rows     []Row          // Data rows, fully empty rows removed
	Source   string         // File name or other origin label
	Warnings []ParseWarning // Non-fatal issues found while parsing
}

// Options controls parsing.
type Options struct {
	HasHeader bool   // First non-empty row holds column names
	Comma     rune   // Field delimiter for CSV; 0 means ','
	Sheet     string // Worksheet name for workbooks; "" means the first sheet
}

// ParseWarning is a row-level problem that did not stop parsing.
type ParseWarning struct {
	Line    int    // 1-based record number in the source (0 if not tied to a line)
	Message string // Human-readable description
}

// String implements fmt.Stringer
func (w ParseWarning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the row at index i, or nil when out of range.
func (d *Dataset) Row(i int) Row {
	if d == nil || i < 0 || i >= len(d.Rows) {
		return nil
	}
	return d.Rows[i]
}

// Summary returns a one-line description like the loader's status line.
func (d *Dataset) Summary() string {
	return fmt.Sprintf("Loaded %d rows with %d columns: %s",
		len(d.Rows), len(d.Columns), strings.Join(d.Columns, ", "))
}

// record is a raw row plus its source line for warnings.
type record struct {
	line   int
	fields []string
	// sparse records may omit trailing empty cells (workbook rows)
	sparse bool
}

// build turns raw records into a Dataset according to opts.
func build(records []record, opts Options) *Dataset {
	ds := &Dataset{}

	var data []record
	for _, r := range records {
		if isBlank(r.fields) {
			continue
		}
		data = append(data, r)
	}

	if opts.HasHeader {
		if len(data) == 0 {
			return ds
		}
		var warns []ParseWarning
		ds.Columns, warns = headerColumns(data[0])
		ds.Warnings = append(ds.Warnings, warns...)
		data = data[1:]
	} else {
		width := 0
		for _, r := range data {
			if len(r.fields) > width {
				width = len(r.fields)
			}
		}
		ds.Columns = generatedColumns(width)
	}

	ds.Rows = make([]Row, 0, len(data))
	for _, r := range data {
		if opts.HasHeader && ragged(r, len(ds.Columns)) {
			ds.Warnings = append(ds.Warnings, ParseWarning{
				Line:    r.line,
				Message: fmt.Sprintf("expected %d fields, found %d", len(ds.Columns), len(r.fields)),
			})
		}

		row := make(Row, len(ds.Columns))
		for i, col := range ds.Columns {
			if i < len(r.fields) {
				row[col] = r.fields[i]
			} else {
				row[col] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds
}

// headerColumns derives unique column names from a header record.
func headerColumns(r record) ([]string, []ParseWarning) {
	cols := make([]string, len(r.fields))
	taken := make(map[string]bool, len(r.fields))
	suffix := make(map[string]int)
	var warns []ParseWarning

	for i, f := range r.fields {
		name := strings.TrimSpace(f)
		if name == "" {
			name = fmt.Sprintf("col%d", i+1)
		}

		if taken[name] {
			n := suffix[name]
			renamed := name
			for taken[renamed] {
				n++
				renamed = fmt.Sprintf("%s_%d", name, n)
			}
			suffix[name] = n
			warns = append(warns, ParseWarning{
				Line:    r.line,
				Message: fmt.Sprintf("duplicate header %q renamed to %q", name, renamed),
			})
			name = renamed
		}

		taken[name] = true
		cols[i] = name
	}

	return cols, warns
}

func generatedColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("col%d", i+1)
	}
	return cols
}

func ragged(r record, width int) bool {
	if r.sparse {
		return len(r.fields) > width
	}
	return len(r.fields) != width
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
