// Package phone normalises phone numbers for the sms: URI scheme.
package phone

import "strings"

// Sanitize trims surrounding whitespace, keeps a single leading '+' and
// drops every other non-digit character. Blank input yields "".
//
//	Sanitize(" +1 (555) 123-4567 ") == "+15551234567"
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	if s[0] == '+' {
		b.WriteByte('+')
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	return b.String()
}
