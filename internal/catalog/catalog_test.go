package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qontinui/qontinui-schemas/internal/emitter/tsemitter"
	"github.com/qontinui/qontinui-schemas/internal/registry"
	"github.com/qontinui/qontinui-schemas/internal/typemap"
)

func TestBatchOrderIsFixed(t *testing.T) {
	assert.Equal(t, []string{"testing", "rag", "task_run", "template_capture"}, Names())
}

func TestEnumsPrecedeReferencingModels(t *testing.T) {
	for _, b := range Batches() {
		enums := typemap.EnumSet{}
		for _, d := range b.Decls {
			if d.Kind == registry.DeclEnum {
				enums[d.Name] = struct{}{}
				continue
			}
			for _, f := range d.Fields {
				desc := typemap.Resolve(f.Type, b.EnumNames())
				if desc.Kind == typemap.KindEnumRef {
					assert.True(t, enums.Has(desc.Name),
						"batch %s: model %s references enum %s before its declaration", b.Name, d.Name, desc.Name)
				}
			}
		}
	}
}

func TestCatalogRendersDeterministically(t *testing.T) {
	for _, b := range Batches() {
		first := tsemitter.Render(b)
		second := tsemitter.Render(b)
		require.Equal(t, first, second, "batch %s", b.Name)
		require.True(t, strings.HasPrefix(first, tsemitter.Banner), "batch %s missing banner", b.Name)
	}
}

func TestTaskRunBatchShapes(t *testing.T) {
	for _, b := range Batches() {
		if b.Name != "task_run" {
			continue
		}
		out := tsemitter.Render(b)
		// Nested model reference and optional enum pointer.
		assert.Contains(t, out, "  runs: TaskRunResponse[];\n")
		assert.Contains(t, out, "  status?: TaskRunStatus | null;\n")
		// Wire alias wins over the internal field name.
		assert.Contains(t, out, "  ai_summary?: string | null;\n")
		return
	}
	t.Fatal("task_run batch not found")
}

func TestTemplateCaptureCamelCaseAliases(t *testing.T) {
	for _, b := range Batches() {
		if b.Name != "template_capture" {
			continue
		}
		out := tsemitter.Render(b)
		assert.Contains(t, out, "  sessionId: string;\n")
		assert.Contains(t, out, "  primaryBoundary: CandidateBoundingBox;\n")
		// Textual overrides pass through the annotation parser.
		assert.Contains(t, out, "  strategyRankings?: tuple[str, float][];\n")
		assert.Contains(t, out, "  clickOffset?: tuple[int, int] | null;\n")
		return
	}
	t.Fatal("template_capture batch not found")
}
