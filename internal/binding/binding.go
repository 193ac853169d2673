// Package binding tracks which dataset column feeds each template variable,
// plus the column that holds the recipient's phone number.
package binding

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for binding failures. Match with errors.Is.
var (
	ErrInvalidColumn   = errors.New("column not present in dataset")
	ErrUnknownVariable = errors.New("variable not present in template")
)

// Error describes a rejected binding.
type Error struct {
	Variable string // Variable being bound (empty for the phone slot)
	Column   string // Rejected column
	Err      error  // ErrInvalidColumn or ErrUnknownVariable
}

// Error implements the error interface
func (e *Error) Error() string {
	target := "phone"
	if e.Variable != "" {
		target = "{{" + e.Variable + "}}"
	}
	if e.Column == "" {
		return fmt.Sprintf("cannot bind %s: %v", target, e.Err)
	}
	return fmt.Sprintf("cannot bind %s to %q: %v", target, e.Column, e.Err)
}

// Unwrap returns the sentinel for errors.Is
func (e *Error) Unwrap() error {
	return e.Err
}

// phoneColumnHints are the words AutoBind looks for in a column name when
// filling the phone slot, in priority order. A hint must be a whole word:
// "tel" matches "Tel No" but not "Hotel".
var phoneColumnHints = []string{"phone", "mobile", "cell", "cellphone", "telephone", "tel", "sms"}

// phoneColumnFallback is accepted only as the entire column name, since
// "Order Number" and the like are common.
const phoneColumnFallback = "number"

// Map is the variable → column mapping for one session.
//
// Keys are exactly the variables of the current template (see Sync).
// When a column set is known (see SetColumns) every bound column is a
// member of it. The zero value is not usable; call New.
type Map struct {
	vars     []string          // detected variables, first-occurrence order
	columns  []string          // dataset columns, nil until a dataset is loaded
	bindings map[string]string // variable -> column; absent means unset
	phone    string            // phone column; "" means unset
}

// New creates an empty Map.
func New() *Map {
	return &Map{bindings: make(map[string]string)}
}

// Variables returns the detected variables in display order.
func (m *Map) Variables() []string {
	return append([]string(nil), m.vars...)
}

// Columns returns the column set bindings are validated against.
func (m *Map) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Sync replaces the detected variable set. Bindings for variables that are
// still present survive; bindings for removed variables are dropped and
// their names returned. New variables start unset.
func (m *Map) Sync(vars []string) (dropped []string) {
	keep := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		keep[v] = struct{}{}
	}

	for _, v := range m.vars {
		if _, ok := keep[v]; ok {
			continue
		}
		if _, bound := m.bindings[v]; bound {
			dropped = append(dropped, v)
		}
		delete(m.bindings, v)
	}

	m.vars = append(m.vars[:0:0], vars...)
	return dropped
}

// SetColumns installs the column set of a freshly loaded dataset. Bindings
// pointing at columns that no longer exist are cleared; the returned slice
// names the affected variables, with "" standing for the phone slot.
func (m *Map) SetColumns(columns []string) (cleared []string) {
	m.columns = append(columns[:0:0], columns...)

	for _, v := range m.vars {
		col, ok := m.bindings[v]
		if ok && !m.hasColumn(col) {
			delete(m.bindings, v)
			cleared = append(cleared, v)
		}
	}

	if m.phone != "" && !m.hasColumn(m.phone) {
		m.phone = ""
		cleared = append(cleared, "")
	}

	return cleared
}

// Set binds variable to column, overwriting any earlier choice. An empty
// column unsets the variable.
func (m *Map) Set(variable, column string) error {
	if !m.hasVariable(variable) {
		return &Error{Variable: variable, Column: column, Err: ErrUnknownVariable}
	}
	if column == "" {
		m.Unset(variable)
		return nil
	}
	if m.columns != nil && !m.hasColumn(column) {
		return &Error{Variable: variable, Column: column, Err: ErrInvalidColumn}
	}
	m.bindings[variable] = column
	return nil
}

// Unset clears the binding for variable.
func (m *Map) Unset(variable string) {
	delete(m.bindings, variable)
}

// SetPhone designates the phone column. Empty unsets it.
func (m *Map) SetPhone(column string) error {
	if column == "" {
		m.UnsetPhone()
		return nil
	}
	if m.columns != nil && !m.hasColumn(column) {
		return &Error{Column: column, Err: ErrInvalidColumn}
	}
	m.phone = column
	return nil
}

// UnsetPhone clears the phone binding.
func (m *Map) UnsetPhone() {
	m.phone = ""
}

// Phone returns the phone column and whether it is set.
func (m *Map) Phone() (string, bool) {
	return m.phone, m.phone != ""
}

// Lookup returns the column bound to variable. It satisfies
// template.Bindings.
func (m *Map) Lookup(variable string) (string, bool) {
	col, ok := m.bindings[variable]
	return col, ok
}

// Unbound returns the detected variables that have no column, in display
// order.
func (m *Map) Unbound() []string {
	var out []string
	for _, v := range m.vars {
		if _, ok := m.bindings[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// IsComplete reports whether every detected variable is bound and the
// phone column is set.
func (m *Map) IsComplete() bool {
	return len(m.Unbound()) == 0 && m.phone != ""
}

// AutoBind fills unset bindings from columns whose name matches the
// variable case-insensitively, and the phone slot from the first column
// that looks like a phone number. Existing choices are never overwritten.
// It returns the number of bindings it made.
func (m *Map) AutoBind() int {
	made := 0

	for _, v := range m.vars {
		if _, ok := m.bindings[v]; ok {
			continue
		}
		for _, col := range m.columns {
			if strings.EqualFold(col, v) {
				m.bindings[v] = col
				made++
				break
			}
		}
	}

	if m.phone == "" {
		if col, ok := m.guessPhoneColumn(); ok {
			m.phone = col
			made++
		}
	}

	return made
}

func (m *Map) guessPhoneColumn() (string, bool) {
	words := make([][]string, len(m.columns))
	for i, col := range m.columns {
		words[i] = nameWords(col)
	}
	for _, hint := range phoneColumnHints {
		for i, col := range m.columns {
			for _, w := range words[i] {
				if w == hint {
					return col, true
				}
			}
		}
	}
	for i, col := range m.columns {
		if len(words[i]) == 1 && words[i][0] == phoneColumnFallback {
			return col, true
		}
	}
	return "", false
}

// nameWords splits a column name into lower-case words at punctuation,
// spaces and camelCase boundaries: "MobilePhone #2" -> [mobile phone 2].
func nameWords(name string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range name {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, unicode.ToLower(r))
		default:
			cur = append(cur, unicode.ToLower(r))
		}
		prev = r
	}
	flush()
	return words
}

// Snapshot returns a copy of the variable bindings.
func (m *Map) Snapshot() map[string]string {
	out := make(map[string]string, len(m.bindings))
	for k, v := range m.bindings {
		out[k] = v
	}
	return out
}

func (m *Map) hasVariable(variable string) bool {
	for _, v := range m.vars {
		if v == variable {
			return true
		}
	}
	return false
}

func (m *Map) hasColumn(column string) bool {
	for _, c := range m.columns {
		if c == column {
			return true
		}
	}
	return false
}
