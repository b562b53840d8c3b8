package query

import (
	"testing"

	"github.com/haoshijing/go-cqlbuilder/core/cql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnRelationBuilder(t *testing.T) {
	tests := []struct {
		name     string
		relation Relation
		expected string
	}{
		{"eq", IsColumn("k").Eq(cql.BindMarker()), `"k" = ?`},
		{"eq_named_marker", IsColumn("k").Eq(cql.NamedBindMarker("value")), `"k" = :"value"`},
		{"neq", IsColumn("k").Neq(cql.Literal(1)), `"k" != 1`},
		{"lt", IsColumn("k").Lt(cql.BindMarker()), `"k" < ?`},
		{"lte", IsColumn("k").Lte(cql.BindMarker()), `"k" <= ?`},
		{"gt", IsColumn("k").Gt(cql.BindMarker()), `"k" > ?`},
		{"gte", IsColumn("k").Gte(cql.BindMarker()), `"k" >= ?`},
		{"custom_operator", IsColumn("k").Build("CONTAINS", cql.BindMarker()), `"k" CONTAINS ?`},
		{"not_null", IsColumn("k").NotNull(), `"k" IS NOT NULL`},
		{"in_single_marker", IsColumn("k").In(cql.BindMarker()), `"k" IN ?`},
		{"in_multiple_markers", IsColumn("k").In(cql.BindMarker(), cql.BindMarker()), `"k" IN (?,?)`},
		{"in_literals", IsColumn("k").In(cql.Literal(1), cql.Literal(2), cql.Literal(3)), `"k" IN (1,2,3)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.relation.RenderCQL(false))
		})
	}
}

func TestColumnComponentRelationBuilder(t *testing.T) {
	rel := IsColumnComponent("user", cql.RawTerm("'name'")).Eq(cql.BindMarker())
	assert.Equal(t, `"user"['name'] = ?`, rel.RenderCQL(false))

	rel = IsColumnComponent("scores", cql.Literal(0)).Gt(cql.Literal(10))
	assert.Equal(t, `"scores"[0] > 10`, rel.RenderCQL(false))
}

func TestMultiColumnRelationBuilder(t *testing.T) {
	rel, err := IsColumns("a", "b").In(cql.BindMarker())
	require.NoError(t, err)
	assert.Equal(t, `("a","b") IN ?`, rel.RenderCQL(false))

	rel, err = IsColumns("a", "b").Eq(cql.Tuple(cql.BindMarker(), cql.BindMarker()))
	require.NoError(t, err)
	assert.Equal(t, `("a","b") = (?,?)`, rel.RenderCQL(false))

	rel, err = IsColumns("a", "b").Gt(cql.BindMarker())
	require.NoError(t, err)
	assert.Equal(t, `("a","b") > ?`, rel.RenderCQL(false))
}

func TestMultiColumnRelationBuilder_EmptyColumns(t *testing.T) {
	_, err := IsColumns().Eq(cql.BindMarker())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTokenRelationBuilder(t *testing.T) {
	rel, err := IsToken("k1", "k2").Eq(cql.NamedBindMarker("t"))
	require.NoError(t, err)
	assert.Equal(t, `token("k1","k2") = :"t"`, rel.RenderCQL(false))

	rel, err = IsToken("pk").Gt(cql.BindMarker())
	require.NoError(t, err)
	assert.Equal(t, `token("pk") > ?`, rel.RenderCQL(false))
}

func TestTokenRelationBuilder_EmptyColumns(t *testing.T) {
	_, err := IsToken().Eq(cql.BindMarker())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = IsToken().Build("=", cql.BindMarker())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// The token column list is joined compactly even when the relation itself is
// rendered in pretty mode.
func TestTokenRelation_PrettyJoinStaysCompact(t *testing.T) {
	rel, err := IsToken("k1", "k2").Eq(cql.BindMarker())
	require.NoError(t, err)
	assert.Equal(t, "token(k1,k2) = ?", rel.RenderCQL(true))
}
