package typemap

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Literaler is implemented by catalog types whose wire contract is a closed
// set of literal values rather than an open scalar, typically the "type"
// discriminator on a target or request variant.
type Literaler interface {
	LiteralValues() []any
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	uuidType      = reflect.TypeOf(uuid.UUID{})
	literalerType = reflect.TypeOf((*Literaler)(nil)).Elem()
)

// FromGoType interrogates a Go type and produces a Descriptor. It is the
// structured front-end, the preferred path when a live type is available,
// and the only place in the generator that touches reflection on field
// types. It never panics; shapes it cannot classify degrade to Any.
func FromGoType(t reflect.Type, enums EnumSet) Descriptor {
	if t == nil {
		return Primitive("Any")
	}

	switch t {
	case timeType:
		return Primitive("datetime")
	case uuidType:
		return Primitive("UUID")
	}

	if t.Implements(literalerType) {
		// The zero value of an interface type that embeds Literaler is a nil
		// interface, not a Literaler; only concrete types carry values.
		if lit, ok := reflect.New(t).Elem().Interface().(Literaler); ok {
			return LiteralOf(lit.LiteralValues()...)
		}
		return Primitive("Any")
	}

	switch t.Kind() {
	case reflect.Pointer:
		return Optional(FromGoType(t.Elem(), enums))
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			// JSON encodes byte payloads as base64 strings.
			return Primitive("bytes")
		}
		return ListOf(FromGoType(t.Elem(), enums))
	case reflect.Map:
		// Value types are collapsed; the output map shape is always
		// string-keyed with unconstrained values.
		return MapOfAny()
	case reflect.Interface:
		return Primitive("Any")
	case reflect.Struct:
		if t.Name() != "" {
			return Ref(t.Name(), enums)
		}
		return Primitive("Any")
	case reflect.String:
		if t.Name() != "" && t.Name() != "string" {
			return Ref(t.Name(), enums)
		}
		return Primitive("str")
	case reflect.Bool:
		return Primitive("bool")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Primitive("int")
	case reflect.Float32, reflect.Float64:
		return Primitive("float")
	default:
		return Primitive("Any")
	}
}
