package query

import "github.com/haoshijing/go-cqlbuilder/core/cql"

type selectorKind int

const (
	selectorAllColumns selectorKind = iota
	selectorCountAll
	selectorColumn
	selectorRaw
)

// Selector describes one projected output column: the star selector,
// count(*), a named column, or a raw CQL fragment, optionally aliased.
// Selector values are immutable; As returns a modified copy.
type Selector struct {
	kind     selectorKind
	column   cql.Identifier
	raw      string
	alias    cql.Identifier
	hasAlias bool
}

// AllColumns selects every column (`*`). The bare star selector never
// carries an alias.
func AllColumns() Selector {
	return Selector{kind: selectorAllColumns}
}

// CountAll selects `count(*)`. Unlike the bare star it may be aliased,
// since it produces a single named output column.
func CountAll() Selector {
	return Selector{kind: selectorCountAll}
}

// Column selects a single named column.
func Column(name string) Selector {
	return Selector{kind: selectorColumn, column: cql.NewIdentifier(name)}
}

// Raw selects a verbatim CQL fragment, emitted without quoting.
func Raw(raw string) Selector {
	return Selector{kind: selectorRaw, raw: raw}
}

// As returns a copy of the selector with the alias set; a later call
// replaces the previous alias. The alias is ignored at render time on the
// bare star selector, which cannot be aliased (Select.As reports that case
// as an error).
func (s Selector) As(alias string) Selector {
	s.alias = cql.NewIdentifier(alias)
	s.hasAlias = true
	return s
}

// isStarLike reports whether the selector must be the sole member of a
// statement's projection.
func (s Selector) isStarLike() bool {
	return s.kind == selectorAllColumns || s.kind == selectorCountAll
}

// RenderCQL produces the selector's textual form, including the alias
// suffix when one is set.
func (s Selector) RenderCQL(pretty bool) string {
	var out string
	switch s.kind {
	case selectorAllColumns:
		return "*"
	case selectorCountAll:
		out = "count(*)"
	case selectorColumn:
		out = s.column.AsCQL(pretty)
	case selectorRaw:
		out = s.raw
	}
	if s.hasAlias {
		out += " AS " + s.alias.AsCQL(pretty)
	}
	return out
}
