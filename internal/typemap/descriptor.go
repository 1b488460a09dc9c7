// Package typemap holds the normalized, structure-only representation of a
// field type, independent of both the annotation grammar schemas are written
// in and the TypeScript syntax the emitter produces. The two front-ends
// (FromGoType and ParseExpr) both target the same Descriptor, so the mapper
// and the emitters have exactly one type representation to deal with.
package typemap

// Kind discriminates the descriptor variants.
type Kind int

const (
	KindPrimitive Kind = iota
	KindOptional
	KindList
	KindMap
	KindLiteral
	KindUnion
	KindEnumRef
	KindNamedRef
)

// Descriptor is a tagged variant; Kind selects which of the remaining
// fields carry meaning.
type Descriptor struct {
	Kind    Kind
	Name    string       // primitive name or referenced declaration name
	Elem    *Descriptor  // inner descriptor for Optional and List
	Members []Descriptor // union members, in declaration order
	Values  []any        // literal values, in declaration order
}

// Primitive names a scalar from the primitive table. Names outside the
// table are allowed; they pass through the mapper unchanged so forward
// references to custom scalar aliases keep working.
func Primitive(name string) Descriptor { return Descriptor{Kind: KindPrimitive, Name: name} }

// Optional wraps a descriptor as nullable.
func Optional(inner Descriptor) Descriptor { return Descriptor{Kind: KindOptional, Elem: &inner} }

// ListOf wraps a descriptor as a homogeneous ordered sequence.
func ListOf(elem Descriptor) Descriptor { return Descriptor{Kind: KindList, Elem: &elem} }

// MapOfAny is the single map shape the generator knows: declared value
// types are collapsed and not preserved in the output.
func MapOfAny() Descriptor { return Descriptor{Kind: KindMap} }

// LiteralOf declares a closed set of literal values.
func LiteralOf(values ...any) Descriptor { return Descriptor{Kind: KindLiteral, Values: values} }

// Union builds a union descriptor from the given members, preserving their
// order. Null members never survive as union members: they collapse into an
// Optional wrapper around whatever remains, so "X | None" and "Optional[X]"
// produce the same descriptor.
func Union(members ...Descriptor) Descriptor {
	rest := make([]Descriptor, 0, len(members))
	nullable := false
	for _, m := range members {
		if isNull(m) {
			nullable = true
			continue
		}
		rest = append(rest, m)
	}
	switch {
	case !nullable:
		return Descriptor{Kind: KindUnion, Members: rest}
	case len(rest) == 0:
		return Primitive("None")
	case len(rest) == 1:
		return Optional(rest[0])
	default:
		return Optional(Descriptor{Kind: KindUnion, Members: rest})
	}
}

func isNull(d Descriptor) bool {
	if d.Kind != KindPrimitive {
		return false
	}
	return d.Name == "None" || d.Name == "NoneType" || d.Name == "null"
}

// Ref classifies a bare type name against the batch enum registry. Both
// variants render as the bare name; the distinction exists so a later
// verification step can check enum references against the registry.
func Ref(name string, enums EnumSet) Descriptor {
	if enums.Has(name) {
		return Descriptor{Kind: KindEnumRef, Name: name}
	}
	return Descriptor{Kind: KindNamedRef, Name: name}
}

// EnumSet is the set of enum names visible within one generation batch. It
// is built once per batch and only read afterwards.
type EnumSet map[string]struct{}

// NewEnumSet builds a set from the given names.
func NewEnumSet(names ...string) EnumSet {
	s := make(EnumSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is a registered enum.
func (s EnumSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
