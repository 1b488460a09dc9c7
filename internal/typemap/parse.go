package typemap

import "strings"

// ParseExpr converts a textual type annotation into a Descriptor. It is the
// fallback front-end for fields whose wire type cannot be expressed as a Go
// type (unions, annotations carried over from serialized schemas).
//
// The rules run in a fixed order and the order is load-bearing: a union
// member such as "list[str] | None" must split on the union separator
// before list detection sees it, and qualified-name stripping must not
// touch names that appear inside generic brackets.
//
// Unbalanced brackets and generics nested beyond what the slicing assumes
// are not validated; they degrade to "any" or pass through as opaque
// reference strings. Parsing never fails.
func ParseExpr(expr string, enums EnumSet) Descriptor {
	s := strings.TrimSpace(expr)
	if s == "" {
		return Primitive("Any")
	}

	// 1. Direct table lookup, stripping a trailing module qualifier
	// ("uuid.UUID" -> "UUID"). Only for bracket-free strings, so
	// "list[module.Type]" is left for the recursive rule below.
	if !strings.ContainsAny(s, "[]") {
		base := s
		if i := strings.LastIndex(base, "."); i >= 0 {
			base = base[i+1:]
		}
		if IsPrimitiveName(base) {
			return Primitive(base)
		}
	}

	// 2. Union split, before list/dict detection.
	if strings.Contains(s, " | ") {
		parts := strings.Split(s, " | ")
		members := make([]Descriptor, 0, len(parts))
		for _, p := range parts {
			members = append(members, ParseExpr(strings.TrimSpace(p), enums))
		}
		return Union(members...)
	}

	lower := strings.ToLower(s)

	// 3. list[...] recurses on the bracket interior.
	if strings.HasPrefix(lower, "list[") && strings.HasSuffix(s, "]") {
		return ListOf(ParseExpr(s[len("list[") : len(s)-1], enums))
	}

	// 4. dict[...]: declared value types are collapsed, matching the
	// structured path.
	if strings.HasPrefix(lower, "dict[") && strings.HasSuffix(s, "]") {
		return MapOfAny()
	}

	// 5. Optional[...]
	if strings.HasPrefix(s, "Optional[") && strings.HasSuffix(s, "]") {
		return Optional(ParseExpr(s[len("Optional[") : len(s)-1], enums))
	}

	// 6. Anything left is an opaque named or enum reference, preserved
	// verbatim apart from a trailing module qualifier on bracket-free
	// names. Forward-declared interface names round-trip through here.
	if !strings.ContainsAny(s, "[]") {
		if i := strings.LastIndex(s, "."); i >= 0 {
			s = s[i+1:]
		}
	}
	return Ref(s, enums)
}
