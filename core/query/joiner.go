package query

import (
	"strings"

	"github.com/haoshijing/go-cqlbuilder/core/cql"
)

// JoinWithComma renders each identifier and concatenates the results with a
// bare comma, preserving input order. The pretty flag is forwarded to the
// per-identifier rendering; the separator itself never carries spaces, in
// either mode. An empty input yields an empty string.
func JoinWithComma(ids []cql.Identifier, pretty bool) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.AsCQL(pretty)
	}
	return strings.Join(parts, ",")
}
