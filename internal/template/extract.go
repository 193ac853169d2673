package template

import "regexp"

// placeholderPattern matches {{ name }} where name is [\w.-]+
var placeholderPattern = regexp.MustCompile(`\{\{\s*([\w.\-]+)\s*\}\}`)

// Placeholder is a single occurrence of a variable in a template.
type Placeholder struct {
	Name  string // Variable name without braces or whitespace
	Start int    // Byte offset of the first '{'
	End   int    // Byte offset just past the last '}'
}

// Extract returns the distinct variable names referenced in tpl, in order of
// first occurrence. An empty template or one without placeholders yields an
// empty slice.
func Extract(tpl string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(tpl, -1)
	vars := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}

	return vars
}

// Placeholders returns every placeholder occurrence in tpl, including
// repeats, in the order they appear.
func Placeholders(tpl string) []Placeholder {
	locs := placeholderPattern.FindAllStringSubmatchIndex(tpl, -1)
	out := make([]Placeholder, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Placeholder{
			Name:  tpl[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return out
}
