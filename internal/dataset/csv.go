package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var utf8BOM = []byte("\xef\xbb\xbf")

const msgUnterminatedQuote = "unterminated quoted field"

// Parse reads delimited text from r.
//
// Quotes are parsed strictly. A record with a stray quote inside an
// unquoted field is re-read leniently and kept. Any other malformed record,
// including a quoted field still open at end of input, is reported as a
// warning and skipped. Only an I/O failure aborts the parse.
func Parse(r io.Reader, opts Options) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := newCSVReader(bytes.NewReader(raw), opts, false)

	var (
		records []record
		warns   []ParseWarning
		lines   [][]byte
	)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("failed to parse csv: %w", err)
			}
			if lines == nil {
				lines = bytes.SplitAfter(raw, []byte("\n"))
			}
			if errors.Is(perr.Err, csv.ErrBareQuote) {
				if fields, ok := reparseLenient(lines, perr, opts); ok {
					records = append(records, record{line: perr.StartLine, fields: fields})
					continue
				}
			}
			msg := perr.Err.Error()
			if errors.Is(perr.Err, csv.ErrQuote) && openAtEOF(lines, perr, reader.InputOffset() == int64(len(raw))) {
				msg = msgUnterminatedQuote
			}
			warns = append(warns, ParseWarning{Line: perr.StartLine, Message: msg})
			continue
		}

		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, fields: fields})
	}

	ds := build(records, opts)
	ds.Warnings = append(warns, ds.Warnings...)
	return ds, nil
}

func newCSVReader(r io.Reader, opts Options, lazy bool) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled by build
	reader.LazyQuotes = lazy
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	return reader
}

// reparseLenient re-reads the physical lines of a record rejected for a
// bare quote, accepting the stray quote as data.
func reparseLenient(lines [][]byte, perr *csv.ParseError, opts Options) ([]string, bool) {
	start, end := perr.StartLine-1, perr.Line
	if start < 0 || end > len(lines) || start >= end {
		return nil, false
	}
	reader := newCSVReader(bytes.NewReader(bytes.Join(lines[start:end], nil)), opts, true)
	fields, err := reader.Read()
	if err != nil {
		return nil, false
	}
	if _, err := reader.Read(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return fields, true
}

// openAtEOF reports whether a quote error is a quoted field left open at
// end of input: the reader consumed everything and the record's lines hold
// an odd number of quotes.
func openAtEOF(lines [][]byte, perr *csv.ParseError, atEOF bool) bool {
	start := perr.StartLine - 1
	if !atEOF || start < 0 || start >= len(lines) {
		return false
	}
	quotes := 0
	for _, l := range lines[start:] {
		quotes += bytes.Count(l, []byte{'"'})
	}
	return quotes%2 == 1
}
