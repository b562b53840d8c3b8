package cql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBindMarker(t *testing.T) {
	assert.Equal(t, "?", BindMarker().RenderCQL(false))
	assert.Equal(t, "?", BindMarker().RenderCQL(true))
}

func TestNamedBindMarker(t *testing.T) {
	assert.Equal(t, `:"value"`, NamedBindMarker("value").RenderCQL(false))
	assert.Equal(t, ":value", NamedBindMarker("value").RenderCQL(true))
	assert.Equal(t, `:"Value"`, NamedBindMarker("Value").RenderCQL(true))
}

func TestRawTerm(t *testing.T) {
	assert.Equal(t, "'name'", RawTerm("'name'").RenderCQL(false))
	assert.Equal(t, "now()", RawTerm("now()").RenderCQL(true))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "NULL"},
		{"string", "hello", "'hello'"},
		{"string_with_quote", "it's", "'it''s'"},
		{"bool_true", true, "true"},
		{"bool_false", false, "false"},
		{"int", 42, "42"},
		{"negative_int", -7, "-7"},
		{"int64", int64(9000000000), "9000000000"},
		{"uint16", uint16(65535), "65535"},
		{"float64", 1.5, "1.5"},
		{"float32", float32(0.25), "0.25"},
		{"uuid", uuid.MustParse("c7f0ab0d-81e4-4f82-b82f-90cfbb50a101"), "c7f0ab0d-81e4-4f82-b82f-90cfbb50a101"},
		{"bytes", []byte{0xca, 0xfe}, "0xcafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Literal(tt.value).RenderCQL(false))
		})
	}
}

func TestTuple(t *testing.T) {
	tuple := Tuple(BindMarker(), Literal(1), NamedBindMarker("t"))
	assert.Equal(t, `(?,1,:"t")`, tuple.RenderCQL(false))
	assert.Equal(t, "(?,1,:t)", tuple.RenderCQL(true))

	assert.Equal(t, "()", Tuple().RenderCQL(false))
}
