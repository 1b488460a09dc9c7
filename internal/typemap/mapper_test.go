package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrimitiveTable(t *testing.T) {
	// Every table entry must come out exactly as spelled in the table.
	for name, want := range primitiveTable {
		assert.Equal(t, want, Render(Primitive(name)), "primitive %q", name)
	}
}

func TestRenderUnknownPrimitivePassesThrough(t *testing.T) {
	assert.Equal(t, "Decimal", Render(Primitive("Decimal")))
}

func TestRenderIdempotent(t *testing.T) {
	d := Optional(ListOf(Union(Primitive("str"), ListOf(Primitive("int")))))
	first := Render(d)
	second := Render(d)
	require.Equal(t, first, second)
}

func TestRenderOptionalWrapping(t *testing.T) {
	for _, inner := range []Descriptor{
		Primitive("str"),
		ListOf(Primitive("int")),
		MapOfAny(),
		Ref("Widget", nil),
	} {
		assert.Equal(t, Render(inner)+" | null", Render(Optional(inner)))
	}
}

func TestRenderListWrapping(t *testing.T) {
	for _, elem := range []Descriptor{
		Primitive("str"),
		Optional(Primitive("float")),
		Ref("Widget", nil),
	} {
		assert.Equal(t, Render(elem)+"[]", Render(ListOf(elem)))
	}
}

func TestRenderMapCollapsesValueType(t *testing.T) {
	assert.Equal(t, "Record<string, any>", Render(MapOfAny()))
}

func TestRenderUnionPreservesOrderAndDuplicates(t *testing.T) {
	a := Ref("A", nil)
	b := Ref("B", nil)
	// Duplicates and declaration order survive: consumers rely on
	// first-member-wins disambiguation.
	assert.Equal(t, "A | B | A", Render(Union(a, b, a)))
}

func TestUnionNormalizesNullMembers(t *testing.T) {
	assert.Equal(t, "string | null",
		Render(Union(Primitive("str"), Primitive("None"))))
	assert.Equal(t, "string | number | null",
		Render(Union(Primitive("str"), Primitive("int"), Primitive("None"))))
	assert.Equal(t, "null", Render(Union(Primitive("None"))))
}

func TestRenderLiterals(t *testing.T) {
	assert.Equal(t, `"image" | "region"`, Render(LiteralOf("image", "region")))
	assert.Equal(t, "1 | 2 | 3", Render(LiteralOf(1, 2, 3)))
}

func TestRenderLiteralUsesUnderlyingEnumValue(t *testing.T) {
	type status string
	const statusRunning status = "running"
	// The member's underlying value goes on the wire, never its
	// symbolic name.
	assert.Equal(t, `"running"`, Render(LiteralOf(statusRunning)))
}

func TestEnumVsNamedDisambiguation(t *testing.T) {
	known := NewEnumSet("Status")

	asEnum := Ref("Status", known)
	require.Equal(t, KindEnumRef, asEnum.Kind)

	asNamed := Ref("Status", nil)
	require.Equal(t, KindNamedRef, asNamed.Kind)

	// Both variants render identically as the bare name.
	assert.Equal(t, "Status", Render(asEnum))
	assert.Equal(t, "Status", Render(asNamed))
}

func TestRenderDegradesEmptyShapes(t *testing.T) {
	assert.Equal(t, "any", Render(Descriptor{Kind: KindUnion}))
	assert.Equal(t, "any", Render(Descriptor{Kind: KindLiteral}))
	assert.Equal(t, "any | null", Render(Descriptor{Kind: KindOptional}))
	assert.Equal(t, "any[]", Render(Descriptor{Kind: KindList}))
	assert.Equal(t, "any", Render(Descriptor{Kind: Kind(99)}))
}
