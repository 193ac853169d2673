package template

// Bindings resolves a variable name to the column that feeds it.
// ok is false when the variable is unbound.
type Bindings interface {
	Lookup(variable string) (column string, ok bool)
}

// Render substitutes every placeholder in tpl with the value of its bound
// column in row. Unbound variables, and columns missing from the row,
// render as the empty string. Text outside placeholders is copied verbatim.
//
// Render never mutates row or bindings; a nil bindings renders every
// placeholder empty.
func Render(tpl string, row map[string]string, bindings Bindings) string {
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		if len(sub) < 2 || bindings == nil {
			return ""
		}

		column, ok := bindings.Lookup(sub[1])
		if !ok || column == "" {
			return ""
		}

		// Missing key yields "" which is exactly what we want
		return row[column]
	})
}

// MapBindings adapts a plain map to Bindings. An empty string value counts
// as unbound.
type MapBindings map[string]string

// Lookup implements Bindings.
func (m MapBindings) Lookup(variable string) (string, bool) {
	col, ok := m[variable]
	if !ok || col == "" {
		return "", false
	}
	return col, true
}
