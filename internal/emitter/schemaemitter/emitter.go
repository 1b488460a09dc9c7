// Package schemaemitter lowers declaration batches into JSON Schema
// documents, the machine-readable sibling of the TypeScript output.
// The lowering is independent of the TypeScript mapper and keeps
// distinctions that mapper collapses, such as integer versus number.
package schemaemitter

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/qontinui/qontinui-schemas/internal/registry"
	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

// primitives maps source primitive names to their schema type and
// format. Primitives not listed lower to an unconstrained schema.
var primitives = map[string]Schema{
	"str":         {Type: "string"},
	"int":         {Type: "integer"},
	"float":       {Type: "number"},
	"bool":        {Type: "boolean"},
	"None":        {Type: "null"},
	"NoneType":    {Type: "null"},
	"datetime":    {Type: "string", Format: "date-time"},
	"date":        {Type: "string", Format: "date"},
	"UTCDateTime": {Type: "string", Format: "date-time"},
	"UUID":        {Type: "string", Format: "uuid"},
	"bytes":       {Type: "string", Format: "byte"},
	"dict":        {Type: "object"},
}

// Lower converts a Type Descriptor into a schema. Like the TypeScript
// mapper it is total: shapes it cannot classify lower to the
// unconstrained schema.
func Lower(d typemap.Descriptor) *Schema {
	switch d.Kind {
	case typemap.KindPrimitive:
		if s, ok := primitives[d.Name]; ok {
			out := s
			return &out
		}
		return &Schema{}
	case typemap.KindOptional:
		inner := &Schema{}
		if d.Elem != nil {
			inner = Lower(*d.Elem)
		}
		return &Schema{AnyOf: []*Schema{inner, {Type: "null"}}}
	case typemap.KindList:
		items := &Schema{}
		if d.Elem != nil {
			items = Lower(*d.Elem)
		}
		return &Schema{Type: "array", Items: items}
	case typemap.KindMap:
		return &Schema{Type: "object"}
	case typemap.KindLiteral:
		return &Schema{Enum: append([]any(nil), d.Values...)}
	case typemap.KindUnion:
		members := make([]*Schema, 0, len(d.Members))
		for _, m := range d.Members {
			members = append(members, Lower(m))
		}
		return &Schema{AnyOf: members}
	case typemap.KindEnumRef, typemap.KindNamedRef:
		return &Schema{Ref: "#/schemas/" + d.Name}
	default:
		return &Schema{}
	}
}

// Build lowers one batch into a combined document.
func Build(b *registry.Batch) *Document {
	enums := b.EnumNames()
	doc := &Document{Schemas: make(map[string]*Schema, len(b.Decls))}
	for _, d := range b.Decls {
		if d.Kind == registry.DeclEnum {
			doc.Schemas[d.Name] = enumSchema(d)
			continue
		}
		doc.Schemas[d.Name] = modelSchema(d, enums)
	}
	return doc
}

func enumSchema(d registry.Decl) *Schema {
	values := make([]any, 0, len(d.Members))
	for _, m := range d.Members {
		values = append(values, m.Value)
	}
	return &Schema{Title: d.Name, Type: "string", Enum: values}
}

func modelSchema(d registry.Decl, enums typemap.EnumSet) *Schema {
	s := &Schema{Title: d.Name, Type: "object", Properties: map[string]*Schema{}}
	for _, f := range d.Fields {
		name := f.Name
		if f.Alias != "" {
			name = f.Alias
		}
		prop := Lower(typemap.Resolve(f.Type, enums))
		prop.Description = f.Doc
		s.Properties[name] = prop
		if f.Required {
			s.Required = append(s.Required, name)
		}
	}
	return s
}

// Files renders one <batch>.schema.json per batch.
func Files(batches []*registry.Batch) (map[string][]byte, error) {
	files := make(map[string][]byte, len(batches))
	for _, b := range batches {
		data, err := json.MarshalIndent(Build(b), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal %s schema document: %w", b.Name, err)
		}
		files[b.Name+".schema.json"] = append(data, '\n')
	}
	return files, nil
}
