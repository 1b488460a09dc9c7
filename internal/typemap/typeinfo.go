package typemap

import "reflect"

// TypeInfo carries a field's type information from whichever source the
// catalog had available: a live Go type (preferred), a textual annotation
// (fallback), or an explicit descriptor. Exactly one of the three is set.
type TypeInfo struct {
	Go   reflect.Type
	Expr string
	Desc *Descriptor
}

// GoType wraps a live Go type for the structured front-end.
func GoType(t reflect.Type) TypeInfo { return TypeInfo{Go: t} }

// Expr wraps a textual annotation for the string front-end.
func Expr(s string) TypeInfo { return TypeInfo{Expr: s} }

// Explicit wraps a descriptor that was built by hand.
func Explicit(d Descriptor) TypeInfo { return TypeInfo{Desc: &d} }

// Resolve dispatches the type information to the matching front-end. A
// TypeInfo with nothing usable resolves to Any; resolution never fails, so
// a single malformed field cannot block emission of the rest of the batch.
func Resolve(ti TypeInfo, enums EnumSet) Descriptor {
	switch {
	case ti.Desc != nil:
		return *ti.Desc
	case ti.Expr != "":
		return ParseExpr(ti.Expr, enums)
	case ti.Go != nil:
		return FromGoType(ti.Go, enums)
	default:
		return Primitive("Any")
	}
}
