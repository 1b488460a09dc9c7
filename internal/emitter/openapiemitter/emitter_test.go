package openapiemitter

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qontinui/qontinui-schemas/internal/registry"
	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

func TestLowerShapes(t *testing.T) {
	s := Lower(typemap.ParseExpr("list[int]", nil))
	require.NotNil(t, s.Value)
	assert.Equal(t, "array", s.Value.Type)
	require.NotNil(t, s.Value.Items)
	assert.Equal(t, "integer", s.Value.Items.Value.Type)

	s = Lower(typemap.ParseExpr("Optional[str]", nil))
	require.NotNil(t, s.Value)
	assert.Equal(t, "string", s.Value.Type)
	assert.True(t, s.Value.Nullable)

	s = Lower(typemap.ParseExpr("dict[str, Any]", nil))
	assert.Equal(t, "object", s.Value.Type)

	s = Lower(typemap.ParseExpr("Widget", nil))
	assert.Equal(t, "#/components/schemas/Widget", s.Ref)
}

func TestBuildDocument(t *testing.T) {
	batches := []*registry.Batch{
		registry.NewBatch("widgets",
			registry.EnumDecl("Color", registry.Member("RED", "red"), registry.Member("BLUE", "blue")),
			registry.Decl{Kind: registry.DeclModel, Name: "Widget", Fields: []registry.Field{
				{Name: "id", Type: typemap.Expr("str"), Required: true},
				{Name: "color", Type: typemap.Expr("Color"), Required: true},
				{Name: "label", Type: typemap.Expr("Optional[str]"), Doc: "Display label"},
			}},
		),
		registry.NewBatch("rag",
			registry.Decl{Kind: registry.DeclModel, Name: "SearchRequest", Fields: []registry.Field{
				{Name: "query", Type: typemap.Expr("str"), Required: true},
			}},
		),
	}

	doc := Build(batches)
	require.NotNil(t, doc.Components)
	require.Len(t, doc.Components.Schemas, 3)

	color := doc.Components.Schemas["Color"]
	require.NotNil(t, color)
	assert.Equal(t, []interface{}{"red", "blue"}, color.Value.Enum)

	widget := doc.Components.Schemas["Widget"]
	require.NotNil(t, widget)
	assert.Equal(t, []string{"id", "color"}, widget.Value.Required)
	assert.Equal(t, "#/components/schemas/Color", widget.Value.Properties["color"].Ref)
	assert.Equal(t, "Display label", widget.Value.Properties["label"].Value.Description)
}

func TestFilesOutput(t *testing.T) {
	files, err := Files([]*registry.Batch{registry.NewBatch("widgets")})
	require.NoError(t, err)
	data, ok := files["openapi.json"]
	require.True(t, ok)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "3.0.3", raw["openapi"])
}
