package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/qontinui/qontinui-schemas/internal/catalog"
	"github.com/qontinui/qontinui-schemas/internal/emitter"
	"github.com/qontinui/qontinui-schemas/internal/emitter/openapiemitter"
	"github.com/qontinui/qontinui-schemas/internal/emitter/schemaemitter"
	"github.com/qontinui/qontinui-schemas/internal/emitter/tsemitter"
	"github.com/qontinui/qontinui-schemas/internal/logger"
	"github.com/qontinui/qontinui-schemas/internal/registry"
)

const defaultOutDir = "generated"

var allFormats = []string{"ts", "jsonschema", "openapi"}

// GenerateConfig captures all inputs that influence the generate command after
// merging defaults, config file values, and CLI overrides.
type GenerateConfig struct {
	Out            string
	Domains        []string
	ExcludeDomains []string
	Formats        []string
	ConfigPath     string
	DryRun         bool
	Force          bool
	Verbose        bool
}

func defaultGenerateConfig() GenerateConfig {
	return GenerateConfig{Out: defaultOutDir}
}

var generateRunner = runGenerate

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the DTO catalogs into their generated outputs",
		Long: "Render the DTO catalogs into TypeScript declarations, JSON Schema documents, " +
			"and an OpenAPI components file. Options can be provided via flags, config files, or defaults.",
		Example: strings.TrimSpace(`  schemagen generate --out ./generated
  schemagen generate --domains rag,task_run --format ts --dry-run
  schemagen --config schemagen.yaml generate --force`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveGenerateConfig(cmd)
			if err != nil {
				return err
			}
			return generateRunner(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("out", "", "Output directory (defaults to ./generated)")
	flags.StringSlice("domains", nil, "Only generate these domain batches")
	flags.StringSlice("exclude-domains", nil, "Skip these domain batches")
	flags.StringSlice("format", nil, "Output formats to emit (ts|jsonschema|openapi); defaults to all")
	flags.Bool("dry-run", false, "Preview planned outputs without writing files")
	flags.Bool("force", false, "Overwrite existing output when set")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available domain batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range catalog.Batches() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d declarations\n", b.Name, len(b.Decls))
			}
			return nil
		},
	}
}

func resolveGenerateConfig(cmd *cobra.Command) (*GenerateConfig, error) {
	cfg := defaultGenerateConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	configPath = strings.TrimSpace(configPath)
	if configPath != "" {
		cfg.ConfigPath = configPath
		if err := applyGenerateConfigFromFile(&cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := applyGenerateFlagOverrides(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyGenerateFlagOverrides(flags *pflag.FlagSet, cfg *GenerateConfig) error {
	if flags.Changed("out") {
		value, err := flags.GetString("out")
		if err != nil {
			return err
		}
		cfg.Out = strings.TrimSpace(value)
	}
	if flags.Changed("domains") {
		value, err := flags.GetStringSlice("domains")
		if err != nil {
			return err
		}
		cfg.Domains = sanitizeNames(value)
	}
	if flags.Changed("exclude-domains") {
		value, err := flags.GetStringSlice("exclude-domains")
		if err != nil {
			return err
		}
		cfg.ExcludeDomains = sanitizeNames(value)
	}
	if flags.Changed("format") {
		value, err := flags.GetStringSlice("format")
		if err != nil {
			return err
		}
		cfg.Formats = sanitizeNames(value)
	}
	if flags.Changed("dry-run") {
		value, err := flags.GetBool("dry-run")
		if err != nil {
			return err
		}
		cfg.DryRun = value
	}
	if flags.Changed("force") {
		value, err := flags.GetBool("force")
		if err != nil {
			return err
		}
		cfg.Force = value
	}
	if flags.Changed("verbose") {
		value, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		cfg.Verbose = value
	}

	return nil
}

func (c *GenerateConfig) normalize() {
	c.Out = strings.TrimSpace(c.Out)
	if c.Out == "" {
		c.Out = defaultOutDir
	}
	c.Domains = sanitizeNames(c.Domains)
	c.ExcludeDomains = sanitizeNames(c.ExcludeDomains)
	c.Formats = sanitizeNames(c.Formats)
	for i, f := range c.Formats {
		c.Formats[i] = strings.ToLower(f)
	}
	if len(c.Formats) == 0 {
		c.Formats = append([]string(nil), allFormats...)
	}
}

func (c *GenerateConfig) validate() error {
	known := map[string]struct{}{}
	for _, name := range catalog.Names() {
		known[name] = struct{}{}
	}
	for _, d := range append(append([]string(nil), c.Domains...), c.ExcludeDomains...) {
		if _, ok := known[d]; !ok {
			return newUsageError(fmt.Sprintf("generate: unknown domain %q (available: %s)", d, strings.Join(catalog.Names(), ", ")))
		}
	}

	overlap := intersect(c.Domains, c.ExcludeDomains)
	if len(overlap) > 0 {
		return newUsageError(fmt.Sprintf("generate: domains/exclude-domains overlap: %s", strings.Join(overlap, ", ")))
	}

	for _, f := range c.Formats {
		switch f {
		case "ts", "jsonschema", "openapi":
		default:
			return newUsageError(fmt.Sprintf("generate: unsupported --format %q (allowed: ts, jsonschema, openapi)", f))
		}
	}

	return nil
}

func runGenerate(ctx context.Context, cfg *GenerateConfig) error {
	_ = ctx
	if err := logger.Initialize(cfg.Verbose); err != nil {
		return err
	}
	defer logger.Cleanup()

	batches := selectBatches(catalog.Batches(), cfg.Domains, cfg.ExcludeDomains)
	if len(batches) == 0 {
		return newUsageError("generate: no domain batches selected")
	}

	files := map[string][]byte{}
	for _, format := range cfg.Formats {
		switch format {
		case "ts":
			for rel, content := range tsemitter.Files(batches) {
				files[rel] = content
			}
		case "jsonschema":
			rendered, err := schemaemitter.Files(batches)
			if err != nil {
				return err
			}
			for rel, content := range rendered {
				files[rel] = content
			}
		case "openapi":
			rendered, err := openapiemitter.Files(batches)
			if err != nil {
				return err
			}
			for rel, content := range rendered {
				files[rel] = content
			}
		}
	}

	planned := emitter.Plan(files)
	absOut := cfg.Out
	if ap, err := filepath.Abs(cfg.Out); err == nil {
		absOut = ap
	}

	if cfg.DryRun {
		printPlan(absOut, len(planned), func() []string {
			paths := make([]string, 0, len(planned))
			for _, p := range planned {
				paths = append(paths, p.RelPath)
			}
			return paths
		}())
		return nil
	}

	if err := emitter.Write(cfg.Out, files, cfg.Force); err != nil {
		return wrapOutputError(err, absOut)
	}
	logger.Infow("generated schema outputs",
		"out", absOut,
		"batches", len(batches),
		"files", len(planned),
		"formats", strings.Join(cfg.Formats, ","))
	return nil
}

func selectBatches(all []*registry.Batch, include, exclude []string) []*registry.Batch {
	includeSet := map[string]struct{}{}
	for _, name := range include {
		includeSet[name] = struct{}{}
	}
	excludeSet := map[string]struct{}{}
	for _, name := range exclude {
		excludeSet[name] = struct{}{}
	}

	var out []*registry.Batch
	for _, b := range all {
		if len(includeSet) > 0 {
			if _, ok := includeSet[b.Name]; !ok {
				continue
			}
		}
		if _, ok := excludeSet[b.Name]; ok {
			continue
		}
		out = append(out, b)
	}
	return out
}

func printPlan(outDir string, count int, relPaths []string) {
	fmt.Fprintf(os.Stdout, "Planned writes to %s (%d files):\n", outDir, count)
	for _, p := range relPaths {
		fmt.Fprintf(os.Stdout, "- %s\n", p)
	}
}

func wrapOutputError(err error, outDir string) error {
	// Provide clearer guidance for common FS failures.
	msg := err.Error()
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "permission") || strings.Contains(lower, "read-only") || strings.Contains(lower, "mkdir") || strings.Contains(lower, "rename") || strings.Contains(lower, "output directory") {
		return newUsageError(fmt.Sprintf("output error for %s: %s\nHint: choose a different --out or use --force when appropriate.", outDir, msg))
	}
	return err
}

func sanitizeNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	var result []string
	for _, item := range b {
		if _, ok := set[item]; ok {
			result = append(result, item)
		}
	}
	return result
}

func applyGenerateConfigFromFile(cfg *GenerateConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newUsageError(fmt.Sprintf("read config file %q: %v", path, err))
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newUsageError(fmt.Sprintf("parse config file %q: %v", path, err))
	}

	for key, value := range raw {
		normalized := normalizeKey(key)
		switch normalized {
		case "out":
			str, err := valueAsString(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Out = str
		case "domains":
			list, err := valueAsStringSlice(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Domains = sanitizeNames(list)
		case "excludedomains":
			list, err := valueAsStringSlice(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.ExcludeDomains = sanitizeNames(list)
		case "format", "formats":
			list, err := valueAsStringSlice(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Formats = sanitizeNames(list)
		case "dryrun":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.DryRun = val
		case "force":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Force = val
		case "verbose":
			val, err := valueAsBool(value)
			if err != nil {
				return newUsageError(fmt.Sprintf("config field %q: %v", key, err))
			}
			cfg.Verbose = val
		default:
			return newUsageError(fmt.Sprintf("config file %q: unknown field %q", path, key))
		}
	}

	return nil
}

func normalizeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	lowered = strings.ReplaceAll(lowered, "-", "")
	lowered = strings.ReplaceAll(lowered, "_", "")
	return lowered
}

func valueAsString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func valueAsStringSlice(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil, nil
		}
		return splitAndTrim(val), nil
	case []any:
		items := make([]string, 0, len(val))
		for idx, elem := range val {
			str, err := valueAsString(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", idx, err)
			}
			if str != "" {
				items = append(items, str)
			}
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected string or list, got %T", v)
	}
}

func valueAsBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(val))
		switch trimmed {
		case "true", "t", "1", "yes", "y":
			return true, nil
		case "false", "f", "0", "no", "n":
			return false, nil
		case "":
			return false, nil
		default:
			return false, fmt.Errorf("invalid boolean value %q", val)
		}
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}

func splitAndTrim(csv string) []string {
	parts := strings.Split(csv, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
