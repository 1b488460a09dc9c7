// Package catalog aggregates the domain DTO batches the generator
// emits.
package catalog

import (
	"github.com/qontinui/qontinui-schemas/internal/catalog/rag"
	"github.com/qontinui/qontinui-schemas/internal/catalog/taskrun"
	"github.com/qontinui/qontinui-schemas/internal/catalog/templatecapture"
	domtesting "github.com/qontinui/qontinui-schemas/internal/catalog/testing"
	"github.com/qontinui/qontinui-schemas/internal/registry"
)

// Batches returns every domain batch in a fixed order. Each batch
// carries its own enum registry, so batches are independent of each
// other.
func Batches() []*registry.Batch {
	return []*registry.Batch{
		domtesting.Batch(),
		rag.Batch(),
		taskrun.Batch(),
		templatecapture.Batch(),
	}
}

// Names lists the batch names in the same order as Batches.
func Names() []string {
	batches := Batches()
	names := make([]string, 0, len(batches))
	for _, b := range batches {
		names = append(names, b.Name)
	}
	return names
}
