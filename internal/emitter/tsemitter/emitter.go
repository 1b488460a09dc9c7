// Package tsemitter renders batches of schema declarations as
// TypeScript enum and interface blocks.
package tsemitter

import (
	"fmt"
	"strings"

	"github.com/qontinui/qontinui-schemas/internal/registry"
	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

// Banner heads every generated declaration file.
const Banner = "// Code generated by schemagen. DO NOT EDIT.\n// Regenerate with: schemagen generate"

// Render assembles one declaration blob for a batch: the banner, then
// enum blocks in declaration order, then interface blocks in
// declaration order, each block separated by one blank line.
func Render(b *registry.Batch) string {
	enums := b.EnumNames()

	blocks := []string{Banner}
	for _, d := range b.Enums() {
		blocks = append(blocks, renderEnum(d))
	}
	for _, d := range b.Models() {
		blocks = append(blocks, renderInterface(d, enums))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func renderEnum(d registry.Decl) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export enum %s {\n", d.Name)
	for _, m := range d.Members {
		fmt.Fprintf(&sb, "  %s = %q,\n", m.Name, m.Value)
	}
	sb.WriteString("}")
	return sb.String()
}

func renderInterface(d registry.Decl, enums typemap.EnumSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export interface %s {\n", d.Name)
	for _, f := range d.Fields {
		if f.Doc != "" {
			fmt.Fprintf(&sb, "  /** %s */\n", f.Doc)
		}
		name := f.Name
		if f.Alias != "" {
			name = f.Alias
		}
		marker := ""
		if !f.Required {
			marker = "?"
		}
		ts := typemap.Render(typemap.Resolve(f.Type, enums))
		fmt.Fprintf(&sb, "  %s%s: %s;\n", name, marker, ts)
	}
	sb.WriteString("}")
	return sb.String()
}

// Files renders one <batch>.ts per batch.
func Files(batches []*registry.Batch) map[string][]byte {
	files := make(map[string][]byte, len(batches))
	for _, b := range batches {
		files[b.Name+".ts"] = []byte(Render(b))
	}
	return files
}
