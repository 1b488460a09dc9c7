package e2e

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	cli "github.com/qontinui/qontinui-schemas/internal/cli"
)

func runCLI(t *testing.T, args ...string) {
	t.Helper()
	root := cli.NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("cli execute %v: %v", args, err)
	}
}

func digestDir(t *testing.T, dir string) (files []string, sum string) {
	t.Helper()
	var list []string
	h := sha256.New()
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, rerr := filepath.Rel(dir, path)
		if rerr != nil {
			return rerr
		}
		rel = filepath.ToSlash(rel)
		list = append(list, rel)
		// hash path + contents to be robust
		_, _ = h.Write([]byte(rel))
		b, rerr := os.ReadFile(path)
		if rerr != nil {
			return rerr
		}
		_, _ = h.Write(b)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
	sort.Strings(list)
	return list, hex.EncodeToString(h.Sum(nil))
}

func TestE2E_Generate_Deterministic(t *testing.T) {
	t.Parallel()
	dir1 := t.TempDir()
	dir2 := t.TempDir()

	runCLI(t, "generate", "--out", dir1, "--force")
	runCLI(t, "generate", "--out", dir2, "--force")

	files1, sum1 := digestDir(t, dir1)
	files2, sum2 := digestDir(t, dir2)
	if !slicesEqual(files1, files2) || sum1 != sum2 {
		t.Fatalf("generated outputs differ between runs\nfiles1=%v\nfiles2=%v\nsum1=%s\nsum2=%s", files1, files2, sum1, sum2)
	}

	// Every domain yields one .ts file and one .schema.json, plus the shared
	// OpenAPI document.
	for _, domain := range []string{"rag", "task_run", "template_capture", "testing"} {
		mustExist(t, filepath.Join(dir1, domain+".ts"))
		mustExist(t, filepath.Join(dir1, domain+".schema.json"))
	}
	mustExist(t, filepath.Join(dir1, "openapi.json"))
}

func TestE2E_Generate_TypeScriptContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	runCLI(t, "generate", "--out", dir, "--domains", "task_run", "--format", "ts")

	data, err := os.ReadFile(filepath.Join(dir, "task_run.ts"))
	if err != nil {
		t.Fatalf("read task_run.ts: %v", err)
	}
	s := string(data)

	if !strings.HasPrefix(s, "// Code generated by schemagen. DO NOT EDIT.") {
		t.Fatalf("missing generated banner: %s", s[:120])
	}
	for _, want := range []string{
		"export enum TaskRunStatus {",
		"  RUNNING = \"running\",",
		"export interface TaskRunResponse {",
		"  id: string;",
		"  status?: TaskRunStatus | null;",
		"export interface TaskRunListResponse {",
		"  runs: TaskRunResponse[];",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("task_run.ts missing %q", want)
		}
	}

	// Enum declarations come before the interfaces that reference them.
	enumIdx := strings.Index(s, "export enum TaskRunStatus {")
	ifaceIdx := strings.Index(s, "export interface TaskRunResponse {")
	if enumIdx < 0 || ifaceIdx < 0 || enumIdx > ifaceIdx {
		t.Fatalf("enum block does not precede interface block (enum=%d iface=%d)", enumIdx, ifaceIdx)
	}
}

func TestE2E_Generate_SchemaDocuments(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	runCLI(t, "generate", "--out", dir, "--format", "jsonschema,openapi", "--force")

	var doc struct {
		Schemas map[string]json.RawMessage `json:"schemas"`
	}
	data, err := os.ReadFile(filepath.Join(dir, "rag.schema.json"))
	if err != nil {
		t.Fatalf("read rag.schema.json: %v", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse rag.schema.json: %v", err)
	}
	if len(doc.Schemas) == 0 {
		t.Fatalf("rag.schema.json has no schemas")
	}
	if _, ok := doc.Schemas["JobStatus"]; !ok {
		t.Fatalf("rag.schema.json missing JobStatus enum schema")
	}

	var openapi struct {
		OpenAPI    string `json:"openapi"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	data, err = os.ReadFile(filepath.Join(dir, "openapi.json"))
	if err != nil {
		t.Fatalf("read openapi.json: %v", err)
	}
	if err := json.Unmarshal(data, &openapi); err != nil {
		t.Fatalf("parse openapi.json: %v", err)
	}
	if openapi.OpenAPI != "3.0.3" {
		t.Fatalf("unexpected openapi version %q", openapi.OpenAPI)
	}
	if _, ok := openapi.Components.Schemas["TaskRunResponse"]; !ok {
		t.Fatalf("openapi.json missing TaskRunResponse component")
	}
}

func TestE2E_Generate_DomainFilters(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	runCLI(t, "generate", "--out", dir, "--exclude-domains", "testing,template_capture", "--format", "ts")

	mustExist(t, filepath.Join(dir, "rag.ts"))
	mustExist(t, filepath.Join(dir, "task_run.ts"))
	if _, err := os.Stat(filepath.Join(dir, "testing.ts")); err == nil {
		t.Fatalf("testing.ts should have been excluded")
	}
	if _, err := os.Stat(filepath.Join(dir, "template_capture.ts")); err == nil {
		t.Fatalf("template_capture.ts should have been excluded")
	}
}

func mustExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %s: %v", path, err)
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
