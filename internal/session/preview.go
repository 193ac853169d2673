package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/muurk/csvtext/internal/dataset"
)

// Preview is everything the presentation layer shows for the current row.
type Preview struct {
	Index   int    // 0-based row index
	Total   int    // Number of rows
	Phone   string // Sanitized phone number, "" when empty
	Message string // Rendered message body
	RawRow  string // Row as indented JSON, keys in column order
}

// RowNumber returns the 1-based row number.
func (p Preview) RowNumber() int {
	return p.Index + 1
}

// Progress returns "i / n".
func (p Preview) Progress() string {
	return fmt.Sprintf("%d / %d", p.Index+1, p.Total)
}

// Percent returns progress as a rounded percentage.
func (p Preview) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(math.Round(float64(p.Index+1) / float64(p.Total) * 100))
}

// Fraction returns progress in [0, 1] for progress bars.
func (p Preview) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Index+1) / float64(p.Total)
}

// AtFirst reports whether Prev would be a no-op.
func (p Preview) AtFirst() bool {
	return p.Index == 0
}

// AtLast reports whether Next would be a no-op.
func (p Preview) AtLast() bool {
	return p.Index >= p.Total-1
}

// PhoneDisplay returns the phone or a placeholder when empty.
func (p Preview) PhoneDisplay() string {
	if p.Phone == "" {
		return "(empty)"
	}
	return p.Phone
}

// rowJSON renders row as two-space indented JSON with keys in column
// order. encoding/json would sort map keys. Cell text is not HTML-escaped.
func rowJSON(columns []string, row dataset.Row) string {
	if row == nil {
		return "null"
	}
	if len(columns) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, col := range columns {
		b.WriteString("  ")
		b.WriteString(jsonString(col))
		b.WriteString(": ")
		b.WriteString(jsonString(row[col]))
		if i < len(columns)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
