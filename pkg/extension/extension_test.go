package extension

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pindex-dev/pindex/pkg/errors"
	"github.com/pindex-dev/pindex/pkg/lockfile"
	"github.com/pindex-dev/pindex/pkg/registry"
)

func newExtension(t *testing.T) *Extension {
	t.Helper()
	ext, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return ext
}

func TestExtension_Name(t *testing.T) {
	if got := newExtension(t).Name(); got != "python" {
		t.Errorf("Name() = %q, want %q", got, "python")
	}
}

func TestExtension_Registries(t *testing.T) {
	got := newExtension(t).Registries()
	if len(got) != 1 || got[0] != "pypi.org" {
		t.Errorf("Registries() = %v, want [pypi.org]", got)
	}
}

func TestExtension_FileDependencies(t *testing.T) {
	root := t.TempDir()
	leaf := filepath.Join(root, "src", "app")
	if err := os.MkdirAll(leaf, 0755); err != nil {
		t.Fatal(err)
	}

	content := `{
  "default": {"requests": {"version": "==2.28.1"}},
  "develop": {"pytest": {"version": "==7.1.2"}}
}`
	lockPath := filepath.Join(root, "Pipfile.lock")
	if err := os.WriteFile(lockPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := newExtension(t).FileDependencies(leaf)
	if err != nil {
		t.Fatalf("FileDependencies failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 file, got %d", len(got))
	}
	if got[0].File.Path != lockPath {
		t.Errorf("File.Path = %q, want %q", got[0].File.Path, lockPath)
	}
	if got[0].File.Type != lockfile.TypePipfileLock {
		t.Errorf("File.Type = %v, want TypePipfileLock", got[0].File.Type)
	}
	if len(got[0].Dependencies) != 2 {
		t.Errorf("expected 2 dependencies, got %d", len(got[0].Dependencies))
	}
}

func TestExtension_FileDependencies_NoneFound(t *testing.T) {
	got, err := newExtension(t).FileDependencies(t.TempDir())
	if err != nil {
		t.Fatalf("FileDependencies failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for no dependency files, got %v", got)
	}
}

func TestExtension_FileDependencies_RelativeDir(t *testing.T) {
	_, err := newExtension(t).FileDependencies("some/relative/dir")
	if err == nil {
		t.Fatal("expected error for relative directory")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestExtension_FileDependencies_MalformedLockfile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Pipfile.lock"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := newExtension(t).FileDependencies(dir)
	if err == nil {
		t.Fatal("expected error for malformed lockfile")
	}
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("expected MALFORMED_INPUT, got %v", err)
	}
}

func TestExtension_PackageMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pypi/flask/json" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"info": map[string]any{"name": "Flask", "version": "2.0.0"},
			"releases": map[string]any{
				"2.0.0": []map[string]any{
					{"python_version": "source", "url": "https://files.test/Flask-2.0.0.tar.gz"},
				},
			},
		})
	}))
	defer server.Close()

	ext, err := NewWithConfig(registry.Config{
		Host:                "pypi.org",
		MetadataURLTemplate: server.URL + "/pypi/{{.Package}}/json",
		HumanURLTemplate:    server.URL + "/pypi/{{.Package}}/{{.Version}}/",
	})
	if err != nil {
		t.Fatal(err)
	}

	meta, err := ext.PackageMetadata(context.Background(), "flask", "")
	if err != nil {
		t.Fatalf("PackageMetadata failed: %v", err)
	}
	if len(meta) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(meta))
	}
	if meta[0].Version != "2.0.0" {
		t.Errorf("Version = %q, want %q", meta[0].Version, "2.0.0")
	}
	if meta[0].ArtifactURL != "https://files.test/Flask-2.0.0.tar.gz" {
		t.Errorf("ArtifactURL = %q", meta[0].ArtifactURL)
	}
}
