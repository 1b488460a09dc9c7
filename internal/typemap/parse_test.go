package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// renderExpr is shorthand for the full textual pipeline.
func renderExpr(t *testing.T, expr string, enums EnumSet) string {
	t.Helper()
	return Render(ParseExpr(expr, enums))
}

func TestParseExprPrimitives(t *testing.T) {
	cases := map[string]string{
		"str":      "string",
		"int":      "number",
		"float":    "number",
		"bool":     "boolean",
		"None":     "null",
		"Any":      "any",
		"datetime": "string",
		"UUID":     "string",
		"dict":     "Record<string, any>",
	}
	for expr, want := range cases {
		assert.Equal(t, want, renderExpr(t, expr, nil), "expr %q", expr)
	}
}

func TestParseExprQualifiedNameStripping(t *testing.T) {
	assert.Equal(t, "string", renderExpr(t, "uuid.UUID", nil))
	assert.Equal(t, "string", renderExpr(t, "datetime.datetime", nil))
	// Unknown qualified names pass through with the qualifier removed.
	assert.Equal(t, "Color", renderExpr(t, "models.Color", nil))
}

func TestParseExprQualifierStrippingIsBracketAware(t *testing.T) {
	// The outer-level rule must not slice "list[module.Type]" at its
	// last dot; the interior is stripped by the recursive list rule.
	assert.Equal(t, "Type[]", renderExpr(t, "list[module.Type]", nil))
}

func TestParseExprUnionBeforeListDetection(t *testing.T) {
	// A list-typed union member must split before list detection runs,
	// otherwise it parses as a list of "str] | None".
	assert.Equal(t, "string[] | null", renderExpr(t, "list[str] | None", nil))
}

func TestParseExprUnions(t *testing.T) {
	assert.Equal(t, "string | null", renderExpr(t, "str | None", nil))
	assert.Equal(t, "string | number", renderExpr(t, "str | int", nil))
	assert.Equal(t, "A | B | A", renderExpr(t, "A | B | A", nil))
	// Qualified members are stripped individually.
	assert.Equal(t, "A | B", renderExpr(t, "mod.A | mod.B", nil))
}

func TestParseExprLists(t *testing.T) {
	assert.Equal(t, "string[]", renderExpr(t, "list[str]", nil))
	assert.Equal(t, "string[]", renderExpr(t, "List[str]", nil))
	assert.Equal(t, "number[][]", renderExpr(t, "list[list[int]]", nil))
	assert.Equal(t, "Widget[]", renderExpr(t, "list[Widget]", nil))
}

func TestParseExprDictAlwaysCollapses(t *testing.T) {
	for _, expr := range []string{
		"dict[str, Any]",
		"Dict[str, int]",
		"dict[str, list[CustomModel]]",
	} {
		assert.Equal(t, "Record<string, any>", renderExpr(t, expr, nil), "expr %q", expr)
	}
}

func TestParseExprOptional(t *testing.T) {
	assert.Equal(t, "string | null", renderExpr(t, "Optional[str]", nil))
	assert.Equal(t, "string[] | null", renderExpr(t, "Optional[list[str]]", nil))
	assert.Equal(t, "Widget | null", renderExpr(t, "Optional[Widget]", nil))
}

func TestParseExprOpaquePassthrough(t *testing.T) {
	assert.Equal(t, "Widget", renderExpr(t, "Widget", nil))
	// Quoted literal members survive verbatim.
	assert.Equal(t, `"image"`, renderExpr(t, `"image"`, nil))
	assert.Equal(t, `"time" | "target"`, renderExpr(t, `"time" | "target"`, nil))
}

func TestParseExprEnumClassification(t *testing.T) {
	known := NewEnumSet("Status")
	assert.Equal(t, KindEnumRef, ParseExpr("Status", known).Kind)
	assert.Equal(t, KindNamedRef, ParseExpr("Status", nil).Kind)
}

func TestParseExprEmptyDegradesToAny(t *testing.T) {
	assert.Equal(t, "any", renderExpr(t, "", nil))
	assert.Equal(t, "any", renderExpr(t, "   ", nil))
}

// The textual parser does fixed-offset slicing, not delimiter matching.
// These tests pin the current best-effort behavior on malformed input so a
// future change is a conscious one, not an accident.
func TestParseExprMalformedBracketsBestEffort(t *testing.T) {
	// Unclosed list: falls through every rule and passes through opaque.
	assert.Equal(t, "list[str", renderExpr(t, "list[str", nil))
	// Empty interior recurses on the empty string and degrades to any.
	assert.Equal(t, "any[]", renderExpr(t, "list[]", nil))
	// Stray closing bracket passes through as an opaque reference.
	assert.Equal(t, "str]", renderExpr(t, "str]", nil))
}
