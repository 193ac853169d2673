package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how a file is parsed.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks a parser from the file extension. Unknown extensions
// are treated as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".tsv", ".tab":
		return FormatTSV
	default:
		return FormatCSV
	}
}

// Load opens path and parses it according to its extension. A TSV file
// always uses a tab delimiter regardless of opts.Comma.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var ds *Dataset
	switch DetectFormat(path) {
	case FormatXLSX:
		ds, err = ParseXLSX(f, opts)
	case FormatTSV:
		opts.Comma = '\t'
		ds, err = Parse(f, opts)
	default:
		ds, err = Parse(f, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	ds.Source = filepath.Base(path)
	return ds, nil
}
