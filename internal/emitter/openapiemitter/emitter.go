// Package openapiemitter assembles all declaration batches into a
// single OpenAPI 3.0 document with every DTO under components.schemas.
// Consumers that already speak OpenAPI can pick up the shared models
// from this file instead of the per-domain schema documents.
package openapiemitter

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/qontinui/qontinui-schemas/internal/registry"
	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

const (
	docTitle   = "Qontinui shared schemas"
	docVersion = "1.0.0"
)

// Lower converts a Type Descriptor into an OpenAPI schema reference.
// Optionality uses the 3.0 nullable flag rather than a null union.
func Lower(d typemap.Descriptor) *openapi3.SchemaRef {
	switch d.Kind {
	case typemap.KindPrimitive:
		return primitiveSchema(d.Name)
	case typemap.KindOptional:
		inner := openapi3.NewSchemaRef("", openapi3.NewSchema())
		if d.Elem != nil {
			inner = Lower(*d.Elem)
		}
		if inner.Value != nil {
			inner.Value.Nullable = true
		}
		return inner
	case typemap.KindList:
		items := openapi3.NewSchemaRef("", openapi3.NewSchema())
		if d.Elem != nil {
			items = Lower(*d.Elem)
		}
		s := openapi3.NewArraySchema()
		s.Items = items
		return openapi3.NewSchemaRef("", s)
	case typemap.KindMap:
		return openapi3.NewSchemaRef("", openapi3.NewObjectSchema())
	case typemap.KindLiteral:
		s := openapi3.NewStringSchema()
		s.Enum = append([]interface{}(nil), d.Values...)
		return openapi3.NewSchemaRef("", s)
	case typemap.KindUnion:
		s := openapi3.NewSchema()
		for _, m := range d.Members {
			s.AnyOf = append(s.AnyOf, Lower(m))
		}
		return openapi3.NewSchemaRef("", s)
	case typemap.KindEnumRef, typemap.KindNamedRef:
		return openapi3.NewSchemaRef("#/components/schemas/"+d.Name, nil)
	default:
		return openapi3.NewSchemaRef("", openapi3.NewSchema())
	}
}

func primitiveSchema(name string) *openapi3.SchemaRef {
	var s *openapi3.Schema
	switch name {
	case "str":
		s = openapi3.NewStringSchema()
	case "int":
		s = openapi3.NewIntegerSchema()
	case "float":
		s = openapi3.NewFloat64Schema()
	case "bool":
		s = openapi3.NewBoolSchema()
	case "None", "NoneType":
		s = openapi3.NewSchema()
		s.Nullable = true
	case "datetime", "UTCDateTime":
		s = openapi3.NewDateTimeSchema()
	case "date":
		s = openapi3.NewStringSchema()
		s.Format = "date"
	case "UUID":
		s = openapi3.NewUUIDSchema()
	case "bytes":
		s = openapi3.NewBytesSchema()
	case "dict":
		s = openapi3.NewObjectSchema()
	default:
		s = openapi3.NewSchema()
	}
	return openapi3.NewSchemaRef("", s)
}

// Build assembles one document spanning every batch. Duplicate names
// across batches keep the last occurrence.
func Build(batches []*registry.Batch) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: docTitle, Version: docVersion},
		Paths:   openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}
	for _, b := range batches {
		enums := b.EnumNames()
		for _, d := range b.Decls {
			if d.Kind == registry.DeclEnum {
				doc.Components.Schemas[d.Name] = enumSchema(d)
				continue
			}
			doc.Components.Schemas[d.Name] = modelSchema(d, enums)
		}
	}
	return doc
}

func enumSchema(d registry.Decl) *openapi3.SchemaRef {
	s := openapi3.NewStringSchema()
	s.Title = d.Name
	for _, m := range d.Members {
		s.Enum = append(s.Enum, m.Value)
	}
	return openapi3.NewSchemaRef("", s)
}

func modelSchema(d registry.Decl, enums typemap.EnumSet) *openapi3.SchemaRef {
	s := openapi3.NewObjectSchema()
	s.Title = d.Name
	s.Properties = openapi3.Schemas{}
	for _, f := range d.Fields {
		name := f.Name
		if f.Alias != "" {
			name = f.Alias
		}
		prop := Lower(typemap.Resolve(f.Type, enums))
		if f.Doc != "" && prop.Value != nil {
			prop.Value.Description = f.Doc
		}
		s.Properties[name] = prop
		if f.Required {
			s.Required = append(s.Required, name)
		}
	}
	return openapi3.NewSchemaRef("", s)
}

// Files renders the combined openapi.json.
func Files(batches []*registry.Batch) (map[string][]byte, error) {
	data, err := json.MarshalIndent(Build(batches), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return map[string][]byte{"openapi.json": append(data, '\n')}, nil
}
