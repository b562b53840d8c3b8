package query

import (
	"fmt"

	"github.com/haoshijing/go-cqlbuilder/core/cql"
)

// leftHandSide is the subject of a relation: a bare column, a column with a
// component access, a tuple of columns, or a token() call over columns. The
// variant set is closed; rendering dispatches on the concrete type.
type leftHandSide interface {
	renderCQL(pretty bool) string
}

type columnLeftHandSide struct {
	id cql.Identifier
}

func (l columnLeftHandSide) renderCQL(pretty bool) string {
	return l.id.AsCQL(pretty)
}

type columnComponentLeftHandSide struct {
	id        cql.Identifier
	component cql.Term
}

func (l columnComponentLeftHandSide) renderCQL(pretty bool) string {
	return l.id.AsCQL(pretty) + "[" + l.component.RenderCQL(pretty) + "]"
}

type multiColumnLeftHandSide struct {
	ids []cql.Identifier
}

func (l multiColumnLeftHandSide) renderCQL(pretty bool) string {
	return "(" + JoinWithComma(l.ids, pretty) + ")"
}

type tokenLeftHandSide struct {
	ids []cql.Identifier
}

func (l tokenLeftHandSide) renderCQL(pretty bool) string {
	return "token(" + JoinWithComma(l.ids, pretty) + ")"
}

// Relation is a single WHERE predicate, an immutable
// {left, operator, right} triple. Relations can only be obtained through the
// relation builders below and are never modified after construction.
type Relation struct {
	lhs      leftHandSide
	operator string
	rhs      cql.Term // nil for self-contained operators such as IS NOT NULL
}

// RenderCQL produces the textual form of the relation.
func (r Relation) RenderCQL(pretty bool) string {
	if r.rhs == nil {
		return r.lhs.renderCQL(pretty) + " " + r.operator
	}
	return r.lhs.renderCQL(pretty) + " " + r.operator + " " + r.rhs.RenderCQL(pretty)
}

// inRightHandSide builds the right-hand side of an IN relation. A single
// term is used directly, since one bind marker may bind a whole list;
// several terms become a tuple.
func inRightHandSide(first cql.Term, rest []cql.Term) cql.Term {
	if len(rest) == 0 {
		return first
	}
	return cql.Tuple(append([]cql.Term{first}, rest...)...)
}

// ColumnRelationBuilder builds relations whose left-hand side is a single
// column.
type ColumnRelationBuilder struct {
	id cql.Identifier
}

// IsColumn starts a relation on a single column.
func IsColumn(name string) ColumnRelationBuilder {
	return ColumnRelationBuilder{id: cql.NewIdentifier(name)}
}

// Build assembles the relation from an arbitrary operator and right-hand
// side.
func (b ColumnRelationBuilder) Build(operator string, rhs cql.Term) Relation {
	return Relation{lhs: columnLeftHandSide{id: b.id}, operator: operator, rhs: rhs}
}

// Eq builds an equality relation.
func (b ColumnRelationBuilder) Eq(rhs cql.Term) Relation { return b.Build("=", rhs) }

// Neq builds an inequality relation.
func (b ColumnRelationBuilder) Neq(rhs cql.Term) Relation { return b.Build("!=", rhs) }

// Lt builds a less-than relation.
func (b ColumnRelationBuilder) Lt(rhs cql.Term) Relation { return b.Build("<", rhs) }

// Lte builds a less-than-or-equal relation.
func (b ColumnRelationBuilder) Lte(rhs cql.Term) Relation { return b.Build("<=", rhs) }

// Gt builds a greater-than relation.
func (b ColumnRelationBuilder) Gt(rhs cql.Term) Relation { return b.Build(">", rhs) }

// Gte builds a greater-than-or-equal relation.
func (b ColumnRelationBuilder) Gte(rhs cql.Term) Relation { return b.Build(">=", rhs) }

// In builds an IN relation. With a single term the term itself is the
// right-hand side (`k IN ?`); with several terms they are grouped into a
// tuple (`k IN (?,?)`).
func (b ColumnRelationBuilder) In(first cql.Term, rest ...cql.Term) Relation {
	return b.Build("IN", inRightHandSide(first, rest))
}

// NotNull builds an IS NOT NULL relation, which has no right-hand side.
func (b ColumnRelationBuilder) NotNull() Relation {
	return Relation{lhs: columnLeftHandSide{id: b.id}, operator: "IS NOT NULL"}
}

// ColumnComponentRelationBuilder builds relations on a collection or map
// component of a column, such as `"user"['name']`.
type ColumnComponentRelationBuilder struct {
	id        cql.Identifier
	component cql.Term
}

// IsColumnComponent starts a relation on an index or key access into a
// column. The component term is emitted inside the brackets.
func IsColumnComponent(name string, component cql.Term) ColumnComponentRelationBuilder {
	return ColumnComponentRelationBuilder{id: cql.NewIdentifier(name), component: component}
}

// Build assembles the relation from an arbitrary operator and right-hand
// side.
func (b ColumnComponentRelationBuilder) Build(operator string, rhs cql.Term) Relation {
	return Relation{
		lhs:      columnComponentLeftHandSide{id: b.id, component: b.component},
		operator: operator,
		rhs:      rhs,
	}
}

// Eq builds an equality relation.
func (b ColumnComponentRelationBuilder) Eq(rhs cql.Term) Relation { return b.Build("=", rhs) }

// Neq builds an inequality relation.
func (b ColumnComponentRelationBuilder) Neq(rhs cql.Term) Relation { return b.Build("!=", rhs) }

// Lt builds a less-than relation.
func (b ColumnComponentRelationBuilder) Lt(rhs cql.Term) Relation { return b.Build("<", rhs) }

// Lte builds a less-than-or-equal relation.
func (b ColumnComponentRelationBuilder) Lte(rhs cql.Term) Relation { return b.Build("<=", rhs) }

// Gt builds a greater-than relation.
func (b ColumnComponentRelationBuilder) Gt(rhs cql.Term) Relation { return b.Build(">", rhs) }

// Gte builds a greater-than-or-equal relation.
func (b ColumnComponentRelationBuilder) Gte(rhs cql.Term) Relation { return b.Build(">=", rhs) }

// MultiColumnRelationBuilder builds relations whose left-hand side is a
// tuple of columns, for multi-column comparisons such as `(a,b) IN ...`.
type MultiColumnRelationBuilder struct {
	ids []cql.Identifier
}

// IsColumns starts a relation on a tuple of columns. Order is significant
// and preserved.
func IsColumns(names ...string) MultiColumnRelationBuilder {
	return MultiColumnRelationBuilder{ids: cql.Identifiers(names...)}
}

// Build assembles the relation from an arbitrary operator and right-hand
// side. It fails if the column list is empty.
func (b MultiColumnRelationBuilder) Build(operator string, rhs cql.Term) (Relation, error) {
	if len(b.ids) == 0 {
		return Relation{}, fmt.Errorf("%w: a multi-column relation requires at least one column", ErrInvalidArgument)
	}
	return Relation{lhs: multiColumnLeftHandSide{ids: b.ids}, operator: operator, rhs: rhs}, nil
}

// Eq builds an equality relation.
func (b MultiColumnRelationBuilder) Eq(rhs cql.Term) (Relation, error) { return b.Build("=", rhs) }

// Lt builds a less-than relation.
func (b MultiColumnRelationBuilder) Lt(rhs cql.Term) (Relation, error) { return b.Build("<", rhs) }

// Lte builds a less-than-or-equal relation.
func (b MultiColumnRelationBuilder) Lte(rhs cql.Term) (Relation, error) { return b.Build("<=", rhs) }

// Gt builds a greater-than relation.
func (b MultiColumnRelationBuilder) Gt(rhs cql.Term) (Relation, error) { return b.Build(">", rhs) }

// Gte builds a greater-than-or-equal relation.
func (b MultiColumnRelationBuilder) Gte(rhs cql.Term) (Relation, error) { return b.Build(">=", rhs) }

// In builds a multi-column IN relation, following the same single term
// versus tuple rule as ColumnRelationBuilder.In.
func (b MultiColumnRelationBuilder) In(first cql.Term, rest ...cql.Term) (Relation, error) {
	return b.Build("IN", inRightHandSide(first, rest))
}

// TokenRelationBuilder builds relations on a token() call over partition
// key columns.
type TokenRelationBuilder struct {
	ids []cql.Identifier
}

// IsToken starts a relation on token() over the given columns. Order is
// significant and preserved.
func IsToken(names ...string) TokenRelationBuilder {
	return TokenRelationBuilder{ids: cql.Identifiers(names...)}
}

// Build assembles the relation from an arbitrary operator and right-hand
// side. It fails if the column list is empty.
func (b TokenRelationBuilder) Build(operator string, rhs cql.Term) (Relation, error) {
	if len(b.ids) == 0 {
		return Relation{}, fmt.Errorf("%w: a token relation requires at least one column", ErrInvalidArgument)
	}
	return Relation{lhs: tokenLeftHandSide{ids: b.ids}, operator: operator, rhs: rhs}, nil
}

// Eq builds an equality relation.
func (b TokenRelationBuilder) Eq(rhs cql.Term) (Relation, error) { return b.Build("=", rhs) }

// Lt builds a less-than relation.
func (b TokenRelationBuilder) Lt(rhs cql.Term) (Relation, error) { return b.Build("<", rhs) }

// Lte builds a less-than-or-equal relation.
func (b TokenRelationBuilder) Lte(rhs cql.Term) (Relation, error) { return b.Build("<=", rhs) }

// Gt builds a greater-than relation.
func (b TokenRelationBuilder) Gt(rhs cql.Term) (Relation, error) { return b.Build(">", rhs) }

// Gte builds a greater-than-or-equal relation.
func (b TokenRelationBuilder) Gte(rhs cql.Term) (Relation, error) { return b.Build(">=", rhs) }
