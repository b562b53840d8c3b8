package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/haoshijing/go-cqlbuilder/core/cql"
	"github.com/haoshijing/go-cqlbuilder/core/query"
)

// A short walkthrough of the builder: projections, relations, limits and
// both rendering modes. See examples/ for more involved scenarios.
func main() {
	// Simplest possible statement.
	fmt.Println(query.SelectFrom("users").All())

	// Named columns with aliases.
	s, err := query.SelectFrom("users").Column("id").Column("email").As("contact")
	if err != nil {
		log.Fatalf("failed to alias selector: %v", err)
	}
	fmt.Println(s)

	// Filtering: a bind marker for the id, a literal for the flag.
	s = query.SelectFrom("users").
		Column("email").
		Where(
			query.IsColumn("id").Eq(cql.BindMarker()),
			query.IsColumn("active").Eq(cql.Literal(true)),
		).
		Limit(20)
	fmt.Println(s)

	// Token relations for partition-range scans.
	token, err := query.IsToken("bucket", "day").Gt(cql.NamedBindMarker("start"))
	if err != nil {
		log.Fatalf("failed to build token relation: %v", err)
	}
	scan := query.SelectFromKeyspace("analytics", "events").
		Column("payload").
		Where(token).
		AllowFiltering()
	fmt.Println(scan.AsCQL(false))
	fmt.Println(scan.AsCQL(true))

	// Literals understand common Go types, including UUIDs.
	fmt.Println(query.SelectFrom("sessions").
		CountAll().
		Where(query.IsColumn("owner").Eq(cql.Literal(uuid.MustParse("c7f0ab0d-81e4-4f82-b82f-90cfbb50a101")))))
}
