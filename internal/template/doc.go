// Package template implements the {{variable}} placeholder syntax used by
// message templates.
//
// A placeholder is two open braces, optional whitespace, one or more word
// characters, dots or hyphens, optional whitespace and two close braces:
//
//	Hi {{first_name}}, your order {{ order.id }} is ready.
//
// Extract lists the distinct variable names a template references and
// Render substitutes them from a row through a Bindings lookup. Both share
// a single pattern so detection and substitution can never disagree.
package template
