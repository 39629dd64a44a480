package scaffold

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/moriware/rncreate/internal/templates"
)

func TestRegistryHasEveryKind(t *testing.T) {
	r, _ := newTestRegistry(afero.NewMemMapFs())

	for _, k := range Kinds() {
		g, ok := r.Lookup(k)
		if !ok {
			t.Errorf("no generator registered for %s", k)
			continue
		}
		if g.Label() == "" {
			t.Errorf("generator for %s has no label", k)
		}
	}
	if _, ok := r.Lookup(Kind("widget")); ok {
		t.Error("Lookup(widget) succeeded, want miss")
	}
}

func TestRegistryBasePaths(t *testing.T) {
	r, _ := newTestRegistry(afero.NewMemMapFs())

	tests := []struct {
		kind Kind
		want string
	}{
		{KindComponent, "/work/src/components/demo"},
		{KindScreen, "/work/src/screens/demo"},
		{KindHook, "/work/src/hooks/demo"},
		{KindNavigation, "/work/src/navigation"},
	}
	for _, tt := range tests {
		g, _ := r.Lookup(tt.kind)
		if got := g.BasePath("demo"); got != filepath.FromSlash(tt.want) {
			t.Errorf("%s BasePath = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRegistryCustomSrcDir(t *testing.T) {
	r := NewRegistry(Options{Fs: afero.NewMemMapFs(), WorkDir: "/work", SrcDir: "app"})

	g, _ := r.Lookup(KindHook)
	if got := g.BasePath("x"); got != filepath.FromSlash("/work/app/hooks/x") {
		t.Errorf("BasePath = %q", got)
	}
}

func TestHandleCreationUnsupportedKind(t *testing.T) {
	fs := afero.NewMemMapFs()
	r, _ := newTestRegistry(fs)

	_, err := r.HandleCreation(context.Background(), "unknown", "x")

	var unsupported *UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("HandleCreation() error = %v, want *UnsupportedKindError", err)
	}
	if unsupported.Kind != "unknown" {
		t.Errorf("Kind = %q, want %q", unsupported.Kind, "unknown")
	}
	if !strings.Contains(err.Error(), `"unknown"`) {
		t.Errorf("error message %q does not name the kind", err.Error())
	}
	if ok, _ := afero.Exists(fs, "/work/src"); ok {
		t.Error("unsupported kind touched the filesystem")
	}
}

func TestHandleCreationNormalizesName(t *testing.T) {
	fs := afero.NewMemMapFs()
	r, out := newTestRegistry(fs)

	result, err := r.HandleCreation(context.Background(), "component", "  DemoName \n")
	if err != nil {
		t.Fatalf("HandleCreation() error: %v", err)
	}

	base := filepath.FromSlash("/work/src/components/demoName")
	if result.BasePath != base {
		t.Errorf("BasePath = %q, want %q", result.BasePath, base)
	}

	for _, f := range templates.ComponentFiles("demoName") {
		if got := readGenerated(t, fs, filepath.Join(base, f.Filename)); got != f.Content {
			t.Errorf("%s content mismatch", f.Filename)
		}
	}
	if got := readGenerated(t, fs, filepath.Join(base, "index.ts")); got != IndexContent("demoName", KindComponent) {
		t.Errorf("index.ts = %q", got)
	}

	output := out.String()
	if !strings.Contains(output, "✨ Component DemoName ready at src/components/demoName") {
		t.Errorf("missing success message:\n%s", output)
	}
	if !strings.HasSuffix(output, "› Returning to main menu...\n") {
		t.Errorf("output does not end with the return step:\n%s", output)
	}
}

func TestHandleCreationNavigation(t *testing.T) {
	fs := afero.NewMemMapFs()
	r, out := newTestRegistry(fs)

	if _, err := r.HandleCreation(context.Background(), "navigation", "journey"); err != nil {
		t.Fatalf("HandleCreation() error: %v", err)
	}

	assertExists(t, fs, filepath.FromSlash("/work/src/navigation/JourneyNavigation.tsx"))
	assertNotExists(t, fs, filepath.FromSlash("/work/src/navigation/index.ts"))
	if !strings.Contains(out.String(), "ready at src/navigation/JourneyNavigation.tsx") {
		t.Errorf("missing success message:\n%s", out.String())
	}
}

func TestRegisterReplacesGenerator(t *testing.T) {
	fs := afero.NewMemMapFs()
	r, _ := newTestRegistry(fs)

	r.register(KindHook, Config{
		ResolveBasePath: func(name string) string { return "/custom/" + name },
		BuildFiles:      templates.HookFiles,
	})

	if _, err := r.HandleCreation(context.Background(), "hook", "amazing"); err != nil {
		t.Fatalf("HandleCreation() error: %v", err)
	}
	assertExists(t, fs, "/custom/amazing/amazing.tsx")
}

func TestParseKind(t *testing.T) {
	for _, name := range KindNames() {
		k, err := ParseKind(name)
		if err != nil || string(k) != name {
			t.Errorf("ParseKind(%q) = %q, %v", name, k, err)
		}
	}
	if IsKind("Component") {
		t.Error("IsKind is expected to be case sensitive")
	}
}
