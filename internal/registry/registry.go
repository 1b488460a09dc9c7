// Package registry models the emit unit: a named batch of enum and model
// declarations in a fixed order. Batches are assembled by the catalog
// packages and consumed by the emitters.
package registry

import (
	"reflect"
	"strings"

	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

// DeclKind distinguishes enum declarations from model declarations.
type DeclKind int

const (
	DeclEnum DeclKind = iota
	DeclModel
)

// EnumMember is one member of an enum declaration. Value is the
// underlying wire value, not the member name.
type EnumMember struct {
	Name  string
	Value string
}

// Field is one field of a model declaration. Name is the internal field
// name; Alias, when set, is the wire name the emitters prefer.
type Field struct {
	Name     string
	Alias    string
	Type     typemap.TypeInfo
	Required bool
	Doc      string
}

// Decl is a single declaration inside a batch: either an enum with
// ordered members or a model with ordered fields.
type Decl struct {
	Kind    DeclKind
	Name    string
	Doc     string
	Members []EnumMember
	Fields  []Field
}

// Batch is a named, ordered list of declarations. Order is emission
// order: enums that models reference must be declared first.
type Batch struct {
	Name  string
	Decls []Decl
}

// NewBatch builds a batch from declarations in emission order.
func NewBatch(name string, decls ...Decl) *Batch {
	return &Batch{Name: name, Decls: decls}
}

// Add appends declarations to the batch.
func (b *Batch) Add(decls ...Decl) {
	b.Decls = append(b.Decls, decls...)
}

// EnumNames collects the names of the batch's enum declarations. The
// emitters resolve field types against this set so that named string
// types registered as enums classify as enum references.
func (b *Batch) EnumNames() typemap.EnumSet {
	set := typemap.EnumSet{}
	for _, d := range b.Decls {
		if d.Kind == DeclEnum {
			set[d.Name] = struct{}{}
		}
	}
	return set
}

// Enums returns the enum declarations in batch order.
func (b *Batch) Enums() []Decl {
	var out []Decl
	for _, d := range b.Decls {
		if d.Kind == DeclEnum {
			out = append(out, d)
		}
	}
	return out
}

// Models returns the model declarations in batch order.
func (b *Batch) Models() []Decl {
	var out []Decl
	for _, d := range b.Decls {
		if d.Kind == DeclModel {
			out = append(out, d)
		}
	}
	return out
}

// Member builds one enum member.
func Member(name, value string) EnumMember {
	return EnumMember{Name: name, Value: value}
}

// EnumDecl builds an enum declaration with members in listed order.
func EnumDecl(name string, members ...EnumMember) Decl {
	return Decl{Kind: DeclEnum, Name: name, Members: members}
}

// ModelDecl reflects over a struct value and builds a model
// declaration from its tagged fields:
//
//	json:"name"           internal field name; ",omitempty" marks the
//	                      field optional; "-" or a missing tag skips it
//	alias:"wireName"      wire alias preferred by the emitters
//	doc:"..."             field doc comment
//	typeexpr:"..."        route the field type through the textual
//	                      parser instead of the Go type
//
// Embedded anonymous structs are flattened into the declaration in
// source order, before the embedding struct's own fields follow.
func ModelDecl(v any) Decl {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return Decl{Kind: DeclModel}
	}
	return Decl{Kind: DeclModel, Name: t.Name(), Fields: structFields(t)}
}

func structFields(t reflect.Type) []Field {
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, structFields(ft)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		name, required, ok := parseJSONTag(f.Tag.Get("json"))
		if !ok {
			continue
		}
		fld := Field{
			Name:     name,
			Alias:    f.Tag.Get("alias"),
			Required: required,
			Doc:      f.Tag.Get("doc"),
		}
		if expr, ok := f.Tag.Lookup("typeexpr"); ok {
			fld.Type = typemap.Expr(expr)
		} else {
			fld.Type = typemap.GoType(f.Type)
		}
		fields = append(fields, fld)
	}
	return fields
}

func parseJSONTag(tag string) (name string, required, ok bool) {
	if tag == "" || tag == "-" {
		return "", false, false
	}
	name, rest, _ := strings.Cut(tag, ",")
	if name == "" {
		return "", false, false
	}
	required = true
	for _, opt := range strings.Split(rest, ",") {
		if opt == "omitempty" {
			required = false
		}
	}
	return name, required, true
}
