package tsemitter

import (
	"strings"
	"testing"

	"github.com/qontinui/qontinui-schemas/internal/registry"
	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

func field(name, expr string, required bool) registry.Field {
	return registry.Field{Name: name, Type: typemap.Expr(expr), Required: required}
}

func TestRenderEndToEnd(t *testing.T) {
	b := registry.NewBatch("widgets",
		registry.EnumDecl("Color",
			registry.Member("RED", "red"),
			registry.Member("BLUE", "blue"),
		),
		registry.Decl{Kind: registry.DeclModel, Name: "Widget", Fields: []registry.Field{
			field("id", "str", true),
			field("label", "Optional[str]", false),
			field("tags", "List[str]", true),
			field("color", "Color", true),
		}},
	)

	want := Banner + `

export enum Color {
  RED = "red",
  BLUE = "blue",
}

export interface Widget {
  id: string;
  label?: string | null;
  tags: string[];
  color: Color;
}
`
	got := Render(b)
	if got != want {
		t.Fatalf("unexpected output:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderAliasAndDoc(t *testing.T) {
	b := registry.NewBatch("capture",
		registry.Decl{Kind: registry.DeclModel, Name: "CaptureRequest", Fields: []registry.Field{
			{Name: "session_id", Alias: "sessionId", Type: typemap.Expr("str"), Required: true},
			{Name: "notes", Type: typemap.Expr("Optional[str]"), Doc: "Free-form operator notes"},
		}},
	)
	got := Render(b)
	if !strings.Contains(got, "  sessionId: string;\n") {
		t.Fatalf("alias not preferred over internal name:\n%s", got)
	}
	if !strings.Contains(got, "  /** Free-form operator notes */\n  notes?: string | null;\n") {
		t.Fatalf("doc line missing or misplaced:\n%s", got)
	}
}

func TestRenderEnumsPrecedeInterfaces(t *testing.T) {
	// Declaration order interleaves; output groups enums first.
	b := registry.NewBatch("mixed",
		registry.Decl{Kind: registry.DeclModel, Name: "A", Fields: []registry.Field{field("s", "Status", true)}},
		registry.EnumDecl("Status", registry.Member("OK", "ok")),
	)
	got := Render(b)
	enumAt := strings.Index(got, "export enum Status")
	ifaceAt := strings.Index(got, "export interface A")
	if enumAt < 0 || ifaceAt < 0 || enumAt > ifaceAt {
		t.Fatalf("expected enum block before interface block:\n%s", got)
	}
	// The same-batch registry classifies Status as an enum reference.
	if !strings.Contains(got, "  s: Status;\n") {
		t.Fatalf("enum reference not rendered as bare name:\n%s", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	b := registry.NewBatch("widgets",
		registry.EnumDecl("Color", registry.Member("RED", "red")),
		registry.Decl{Kind: registry.DeclModel, Name: "Widget", Fields: []registry.Field{
			field("color", "Color", true),
		}},
	)
	if Render(b) != Render(b) {
		t.Fatal("render is not deterministic")
	}
}

func TestFilesNaming(t *testing.T) {
	files := Files([]*registry.Batch{
		registry.NewBatch("rag"),
		registry.NewBatch("task_run"),
	})
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	for _, name := range []string{"rag.ts", "task_run.ts"} {
		if _, ok := files[name]; !ok {
			t.Fatalf("missing %s in %v", name, files)
		}
	}
}
