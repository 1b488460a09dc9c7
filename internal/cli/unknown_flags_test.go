package cli

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestUnknownFlag_ShowsHelpAndUsageError(t *testing.T) {
	t.Parallel()
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--formats", "ts"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error for unknown flag")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %T: %v", err, err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown flag") || !strings.Contains(msg, "--formats") {
		t.Fatalf("unexpected error text: %v", err)
	}
	// The wrapped usage text must describe this command's own flags.
	for _, want := range []string{"Usage:", "schemagen generate", "--format", "--domains", "--exclude-domains"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("usage text missing %q: %v", want, err)
		}
	}
}

func TestUnknownFlag_RootCommand(t *testing.T) {
	t.Parallel()
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--out", "./generated"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected error: --out belongs to generate, not the root command")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "unknown flag") {
		t.Fatalf("unexpected error text: %v", err)
	}
}
