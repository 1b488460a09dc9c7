package typemap

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireStatus string

type wirePoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type clickKind string

func (clickKind) LiteralValues() []any { return []any{"left", "right", "middle"} }

func fromGo(t *testing.T, v any, enums EnumSet) string {
	t.Helper()
	return Render(FromGoType(reflect.TypeOf(v), enums))
}

func TestFromGoTypeScalars(t *testing.T) {
	assert.Equal(t, "string", fromGo(t, "", nil))
	assert.Equal(t, "number", fromGo(t, 0, nil))
	assert.Equal(t, "number", fromGo(t, int64(0), nil))
	assert.Equal(t, "number", fromGo(t, 0.0, nil))
	assert.Equal(t, "boolean", fromGo(t, false, nil))
	assert.Equal(t, "string", fromGo(t, time.Time{}, nil))
	assert.Equal(t, "string", fromGo(t, uuid.UUID{}, nil))
}

func TestFromGoTypePointerIsOptional(t *testing.T) {
	assert.Equal(t, "string | null", fromGo(t, (*string)(nil), nil))
	assert.Equal(t, "number[] | null", fromGo(t, (*[]int)(nil), nil))
}

func TestFromGoTypeSlices(t *testing.T) {
	assert.Equal(t, "string[]", fromGo(t, []string{}, nil))
	assert.Equal(t, "number[][]", fromGo(t, [][]float64{}, nil))
	// Byte payloads travel as base64 strings.
	assert.Equal(t, "string", fromGo(t, []byte{}, nil))
	assert.Equal(t, "number[]", fromGo(t, [2]int{}, nil))
}

func TestFromGoTypeMapCollapsesValueType(t *testing.T) {
	assert.Equal(t, "Record<string, any>", fromGo(t, map[string]any{}, nil))
	assert.Equal(t, "Record<string, any>", fromGo(t, map[string]int{}, nil))
	assert.Equal(t, "Record<string, any>", fromGo(t, map[string][]wirePoint{}, nil))
}

func TestFromGoTypeInterfaceIsAny(t *testing.T) {
	var v any
	assert.Equal(t, "any", Render(FromGoType(reflect.TypeOf(&v).Elem(), nil)))
}

func TestFromGoTypeNamedReferences(t *testing.T) {
	// A struct type is a named reference to another declaration.
	assert.Equal(t, "wirePoint", fromGo(t, wirePoint{}, nil))

	// A named string type is an enum reference only when the batch
	// registered it; otherwise it stays an opaque named reference.
	d := FromGoType(reflect.TypeOf(wireStatus("")), NewEnumSet("wireStatus"))
	require.Equal(t, KindEnumRef, d.Kind)
	d = FromGoType(reflect.TypeOf(wireStatus("")), nil)
	require.Equal(t, KindNamedRef, d.Kind)
	assert.Equal(t, "wireStatus", Render(d))
}

type literalCarrier interface {
	Literaler
}

func TestFromGoTypeLiteraler(t *testing.T) {
	d := FromGoType(reflect.TypeOf(clickKind("")), nil)
	require.Equal(t, KindLiteral, d.Kind)
	assert.Equal(t, `"left" | "right" | "middle"`, Render(d))
}

func TestFromGoTypeLiteralerInterfaceDegradesToAny(t *testing.T) {
	// An interface type satisfies Implements but its zero value is nil, so
	// there is no value to read literals from.
	it := reflect.TypeOf((*literalCarrier)(nil)).Elem()
	assert.NotPanics(t, func() {
		assert.Equal(t, "any", Render(FromGoType(it, nil)))
	})
}

func TestFromGoTypeNilDegradesToAny(t *testing.T) {
	assert.Equal(t, "any", Render(FromGoType(nil, nil)))
}

func TestResolveDispatch(t *testing.T) {
	enums := NewEnumSet("Color")

	assert.Equal(t, "string[]", Render(Resolve(GoType(reflect.TypeOf([]string{})), enums)))
	assert.Equal(t, "string[] | null", Render(Resolve(Expr("list[str] | None"), enums)))
	assert.Equal(t, `"a" | "b"`, Render(Resolve(Explicit(LiteralOf("a", "b")), enums)))
	assert.Equal(t, "any", Render(Resolve(TypeInfo{}, enums)))
}
