// Package query implements an immutable, fluent builder for CQL SELECT
// statements: selectors, filtering relations, limits and modifiers, and the
// deterministic renderer that turns a finished statement into query text.
//
// Every mutating method on Select returns a new statement snapshot derived
// from its receiver; the receiver is never modified. Snapshots taken at any
// point in a chain therefore stay valid and can be extended or rendered
// independently, from any goroutine, without coordination.
package query

import (
	"fmt"
	"strings"

	"github.com/haoshijing/go-cqlbuilder/core/cql"
)

// Select is an immutable snapshot of a SELECT statement under construction.
// The zero value is not usable; start from SelectFrom or SelectFromKeyspace.
type Select struct {
	keyspace       cql.Identifier
	hasKeyspace    bool
	table          cql.Identifier
	selectors      []Selector
	relations      []Relation
	limit          cql.Term
	allowFiltering bool
}

// SelectFrom starts a SELECT statement against the given table.
func SelectFrom(table string) Select {
	return Select{table: cql.NewIdentifier(table)}
}

// SelectFromKeyspace starts a SELECT statement against a keyspace-qualified
// table, rendered as `"keyspace"."table"`.
func SelectFromKeyspace(keyspace, table string) Select {
	return Select{
		keyspace:    cql.NewIdentifier(keyspace),
		hasKeyspace: true,
		table:       cql.NewIdentifier(table),
	}
}

// withSelector appends a regular selector. A star-like projection currently
// in place is discarded first: the most recent selector-adding call wins.
func (s Select) withSelector(sel Selector) Select {
	if len(s.selectors) == 1 && s.selectors[0].isStarLike() {
		s.selectors = []Selector{sel}
		return s
	}
	selectors := make([]Selector, len(s.selectors), len(s.selectors)+1)
	copy(selectors, s.selectors)
	s.selectors = append(selectors, sel)
	return s
}

// All replaces the entire projection with the star selector.
func (s Select) All() Select {
	s.selectors = []Selector{AllColumns()}
	return s
}

// CountAll replaces the entire projection with count(*).
func (s Select) CountAll() Select {
	s.selectors = []Selector{CountAll()}
	return s
}

// Column adds a named column to the projection, discarding a previous
// star-like projection.
func (s Select) Column(name string) Select {
	return s.withSelector(Column(name))
}

// Raw adds a verbatim fragment to the projection, discarding a previous
// star-like projection.
func (s Select) Raw(raw string) Select {
	return s.withSelector(Raw(raw))
}

// Selectors appends several selectors at once. A star-like selector
// (* or count(*)) cannot be mixed with other selectors in a single call;
// passed alone it replaces the projection like All or CountAll would.
func (s Select) Selectors(sels ...Selector) (Select, error) {
	for _, sel := range sels {
		if sel.isStarLike() && len(sels) > 1 {
			return Select{}, fmt.Errorf("%w: can't pass the * or count(*) selector together with other selectors", ErrInvalidArgument)
		}
	}
	if len(sels) == 1 && sels[0].isStarLike() {
		s.selectors = []Selector{sels[0]}
		return s, nil
	}
	out := s
	for _, sel := range sels {
		out = out.withSelector(sel)
	}
	return out, nil
}

// As sets the alias on the most recently added selector, replacing any
// previous alias. It fails if no selector has been added yet, or if the
// most recent selector is the bare star; count(*) may be aliased.
func (s Select) As(alias string) (Select, error) {
	if len(s.selectors) == 0 {
		return Select{}, fmt.Errorf("%w: no selector to alias", ErrIllegalState)
	}
	last := s.selectors[len(s.selectors)-1]
	if last.kind == selectorAllColumns {
		return Select{}, fmt.Errorf("%w: can't alias the * selector", ErrIllegalState)
	}
	selectors := make([]Selector, len(s.selectors))
	copy(selectors, s.selectors)
	selectors[len(selectors)-1] = last.As(alias)
	s.selectors = selectors
	return s, nil
}

// Where appends relations to the statement, ANDed together at render time
// in the order they were added. Relations from successive calls
// concatenate; nothing is deduplicated or reordered.
func (s Select) Where(relations ...Relation) Select {
	combined := make([]Relation, len(s.relations), len(s.relations)+len(relations))
	copy(combined, s.relations)
	s.relations = append(combined, relations...)
	return s
}

// Limit sets the LIMIT clause to a literal row count, replacing any
// previous limit. The count must be non-negative.
func (s Select) Limit(limit int) Select {
	s.limit = cql.Literal(limit)
	return s
}

// LimitTerm sets the LIMIT clause to a term, typically a bind marker,
// replacing any previous limit.
func (s Select) LimitTerm(limit cql.Term) Select {
	s.limit = limit
	return s
}

// AllowFiltering sets the ALLOW FILTERING flag. Repeated calls collapse to
// one; the clause is emitted at most once.
func (s Select) AllowFiltering() Select {
	s.allowFiltering = true
	return s
}

// AsCQL renders the statement as query text. Clause order is fixed:
// SELECT, FROM, WHERE, LIMIT, ALLOW FILTERING. The pretty flag changes
// identifier quoting cosmetics only, never clause presence, order or
// operators. Rendering never fails and does not modify the statement.
func (s Select) AsCQL(pretty bool) string {
	var sb strings.Builder
	sb.WriteString("SELECT")
	for i, sel := range s.selectors {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(sel.RenderCQL(pretty))
	}
	sb.WriteString(" FROM ")
	if s.hasKeyspace {
		sb.WriteString(s.keyspace.AsCQL(pretty))
		sb.WriteString(".")
	}
	sb.WriteString(s.table.AsCQL(pretty))
	if len(s.relations) > 0 {
		sb.WriteString(" WHERE ")
		for i, rel := range s.relations {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString(rel.RenderCQL(pretty))
		}
	}
	if s.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(s.limit.RenderCQL(pretty))
	}
	if s.allowFiltering {
		sb.WriteString(" ALLOW FILTERING")
	}
	return sb.String()
}

// String returns the canonical (ugly) rendering.
func (s Select) String() string {
	return s.AsCQL(false)
}
