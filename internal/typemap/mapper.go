package typemap

import (
	"fmt"
	"reflect"
	"strings"
)

// primitiveTable maps source scalar names to their TypeScript spellings.
// Datetime-ish and identifier-ish scalars all travel as ISO strings on the
// wire, so they collapse to "string" here.
var primitiveTable = map[string]string{
	"str":         "string",
	"int":         "number",
	"float":       "number",
	"bool":        "boolean",
	"None":        "null",
	"NoneType":    "null",
	"Any":         "any",
	"datetime":    "string",
	"date":        "string",
	"UTCDateTime": "string",
	"UUID":        "string",
	"bytes":       "string",
	"dict":        "Record<string, any>",
}

// IsPrimitiveName reports whether name is in the primitive table.
func IsPrimitiveName(name string) bool {
	_, ok := primitiveTable[name]
	return ok
}

// Render lowers a descriptor to a TypeScript type expression. It is a pure
// function of the descriptor structure: no side effects, identical output
// on repeated calls, and no failure mode. Shapes it cannot classify come
// back as "any", so one malformed field never blocks the rest of a batch.
func Render(d Descriptor) string {
	switch d.Kind {
	case KindPrimitive:
		if ts, ok := primitiveTable[d.Name]; ok {
			return ts
		}
		// Unknown scalar names pass through unchanged; this is how
		// forward references to not-yet-defined aliases survive.
		return d.Name
	case KindOptional:
		if d.Elem == nil {
			return "any | null"
		}
		return Render(*d.Elem) + " | null"
	case KindList:
		if d.Elem == nil {
			return "any[]"
		}
		return Render(*d.Elem) + "[]"
	case KindMap:
		return "Record<string, any>"
	case KindLiteral:
		if len(d.Values) == 0 {
			return "any"
		}
		parts := make([]string, 0, len(d.Values))
		for _, v := range d.Values {
			parts = append(parts, literalToken(v))
		}
		return strings.Join(parts, " | ")
	case KindUnion:
		if len(d.Members) == 0 {
			return "any"
		}
		// Member order is preserved as declared: no sorting and no
		// de-duplication, since consumers rely on first-member-wins
		// disambiguation.
		parts := make([]string, 0, len(d.Members))
		for _, m := range d.Members {
			parts = append(parts, Render(m))
		}
		return strings.Join(parts, " | ")
	case KindEnumRef, KindNamedRef:
		return d.Name
	default:
		return "any"
	}
}

// literalToken renders one literal value. String-kinded values, including
// enum members, are quoted using their underlying value rather than any
// symbolic name; everything else falls back to its plain representation.
func literalToken(v any) string {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return fmt.Sprintf("%q", rv.String())
	}
	return fmt.Sprintf("%v", v)
}
