// Package cql provides the primitive value types consumed by the query
// builder: identifiers with CQL quoting and escaping rules, and the opaque
// Term model for right-hand-side expressions (bind markers, raw fragments,
// literals, tuples). Everything in this package is an immutable value.
package cql

import "strings"

// Identifier is an immutable CQL identifier. It stores the raw ("internal")
// name exactly as supplied, case-sensitive; quoting and escaping happen only
// when the identifier is rendered.
type Identifier struct {
	name string
}

// NewIdentifier creates an identifier from its raw internal name. The name
// is taken verbatim: "Foo" and "foo" are different identifiers.
func NewIdentifier(name string) Identifier {
	return Identifier{name: name}
}

// Identifiers converts raw names into identifiers, preserving order.
func Identifiers(names ...string) []Identifier {
	ids := make([]Identifier, len(names))
	for i, name := range names {
		ids[i] = NewIdentifier(name)
	}
	return ids
}

// Name returns the raw internal name, without any quoting.
func (id Identifier) Name() string {
	return id.name
}

// AsCQL renders the identifier. The canonical ("ugly") form always
// double-quotes the name and doubles any embedded quote character. The
// pretty form drops the quotes when they are not required, that is when the
// raw name is already in the unquoted-identifier shape ([a-z][a-z0-9_]*) and
// is not a reserved keyword; otherwise it falls back to the quoted form.
func (id Identifier) AsCQL(pretty bool) string {
	if pretty && !needsQuotes(id.name) {
		return id.name
	}
	return `"` + strings.ReplaceAll(id.name, `"`, `""`) + `"`
}

// String returns the canonical quoted form.
func (id Identifier) String() string {
	return id.AsCQL(false)
}

func needsQuotes(name string) bool {
	if name == "" {
		return true
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		case r == '_' && i > 0:
		default:
			return true
		}
	}
	return reservedKeywords[name]
}

// reservedKeywords lists the CQL reserved words, which must stay quoted even
// when they otherwise have the unquoted-identifier shape.
var reservedKeywords = map[string]bool{
	"add":          true,
	"allow":        true,
	"alter":        true,
	"and":          true,
	"apply":        true,
	"asc":          true,
	"authorize":    true,
	"batch":        true,
	"begin":        true,
	"by":           true,
	"columnfamily": true,
	"create":       true,
	"delete":       true,
	"desc":         true,
	"describe":     true,
	"drop":         true,
	"entries":      true,
	"execute":      true,
	"from":         true,
	"full":         true,
	"grant":        true,
	"if":           true,
	"in":           true,
	"index":        true,
	"infinity":     true,
	"insert":       true,
	"into":         true,
	"is":           true,
	"keyspace":     true,
	"limit":        true,
	"materialized": true,
	"modify":       true,
	"nan":          true,
	"norecursive":  true,
	"not":          true,
	"null":         true,
	"of":           true,
	"on":           true,
	"or":           true,
	"order":        true,
	"primary":      true,
	"rename":       true,
	"replace":      true,
	"revoke":       true,
	"schema":       true,
	"select":       true,
	"set":          true,
	"table":        true,
	"to":           true,
	"token":        true,
	"truncate":     true,
	"unlogged":     true,
	"update":       true,
	"use":          true,
	"using":        true,
	"view":         true,
	"where":        true,
	"with":         true,
}
