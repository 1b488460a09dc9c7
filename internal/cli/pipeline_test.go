package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()
	fn()
	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestGeneratePipeline_DryRun(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--out", outDir, "--dry-run"})

	out := captureStdout(func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	})
	if !strings.Contains(out, "Planned writes to") {
		t.Fatalf("expected dry-run plan output, got: %s", out)
	}
	if !strings.Contains(out, "task_run.ts") {
		t.Fatalf("expected task_run.ts in plan, got: %s", out)
	}
	if !strings.Contains(out, "openapi.json") {
		t.Fatalf("expected openapi.json in plan, got: %s", out)
	}
	// Dry-run should not create the directory
	if _, err := os.Stat(outDir); err == nil {
		t.Fatalf("expected no writes on dry-run")
	}
}

func TestGeneratePipeline_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--out", outDir, "--domains", "task_run", "--format", "ts,jsonschema"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	tsData, err := os.ReadFile(filepath.Join(outDir, "task_run.ts"))
	if err != nil {
		t.Fatalf("read task_run.ts: %v", err)
	}
	ts := string(tsData)
	if !strings.HasPrefix(ts, "// Code generated by schemagen.") {
		t.Fatalf("missing banner: %s", ts[:80])
	}
	if !strings.Contains(ts, "export interface TaskRunResponse {") {
		t.Fatalf("missing TaskRunResponse interface")
	}

	schemaData, err := os.ReadFile(filepath.Join(outDir, "task_run.schema.json"))
	if err != nil {
		t.Fatalf("read task_run.schema.json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(schemaData, &doc); err != nil {
		t.Fatalf("schema document is not valid JSON: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "openapi.json")); err == nil {
		t.Fatalf("openapi.json written despite format filter")
	}
}

func TestGeneratePipeline_NonEmptyOutDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "existing.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("prewrite: %v", err)
	}

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--out", outDir, "--format", "ts"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error for non-empty output directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Fatalf("unexpected error: %v", err)
	}

	// Retry with --force succeeds.
	root = NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--out", outDir, "--format", "ts", "--force"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute with --force: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "rag.ts")); err != nil {
		t.Fatalf("expected rag.ts after forced write: %v", err)
	}
}
