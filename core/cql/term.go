package cql

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Term is an opaque right-hand-side expression: a bind marker, a raw CQL
// fragment or a literal value. Terms are immutable leaves; the query builder
// consumes them without inspecting their contents.
type Term interface {
	// RenderCQL produces the textual form of the term. The pretty flag
	// affects identifier cosmetics only, never structure.
	RenderCQL(pretty bool) string
}

type bindMarker struct{}

// BindMarker returns the anonymous positional bind marker, rendered as `?`.
func BindMarker() Term {
	return bindMarker{}
}

func (bindMarker) RenderCQL(bool) string { return "?" }

type namedBindMarker struct {
	name Identifier
}

// NamedBindMarker returns a named bind marker. The name follows identifier
// rendering rules, so the canonical form is `:"name"`.
func NamedBindMarker(name string) Term {
	return namedBindMarker{name: NewIdentifier(name)}
}

func (m namedBindMarker) RenderCQL(pretty bool) string {
	return ":" + m.name.AsCQL(pretty)
}

type rawTerm struct {
	raw string
}

// RawTerm returns a term emitted verbatim, with no quoting or escaping.
// The caller is responsible for the fragment's syntactic validity.
func RawTerm(raw string) Term {
	return rawTerm{raw: raw}
}

func (t rawTerm) RenderCQL(bool) string { return t.raw }

type literalTerm struct {
	value any
}

// Literal returns a term that renders a Go value as a CQL literal:
// strings are single-quoted with embedded quotes doubled, integers and
// floats render in decimal, booleans as true/false, uuid.UUID values as
// bare hex, []byte as a 0x... blob, and nil as NULL. Values of any other
// type fall back to fmt.Sprint.
func Literal(value any) Term {
	return literalTerm{value: value}
}

func (t literalTerm) RenderCQL(bool) string {
	switch v := t.value.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case uuid.UUID:
		return v.String()
	case []byte:
		return "0x" + hex.EncodeToString(v)
	default:
		return fmt.Sprint(v)
	}
}

type tupleTerm struct {
	terms []Term
}

// Tuple groups terms into a parenthesized tuple, joined with a bare comma.
func Tuple(terms ...Term) Term {
	copied := make([]Term, len(terms))
	copy(copied, terms)
	return tupleTerm{terms: copied}
}

func (t tupleTerm) RenderCQL(pretty bool) string {
	parts := make([]string, len(t.terms))
	for i, term := range t.terms {
		parts[i] = term.RenderCQL(pretty)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
