package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pindex-dev/pindex/pkg/extension"
	"github.com/pindex-dev/pindex/pkg/lockfile"
)

const flaskDocJSON = `{
	"info": {"name": "flask", "version": "1.0.0"},
	"releases": {
		"1.0.0": [
			{"filename": "flask-1.0.0-py3-none-any.whl", "packagetype": "bdist_wheel", "python_version": "py3", "url": "https://files.example/flask-1.0.0-py3-none-any.whl"},
			{"filename": "flask-1.0.0.tar.gz", "packagetype": "sdist", "python_version": "source", "url": "https://files.example/flask-1.0.0.tar.gz"}
		]
	}
}`

// testExtension returns an extension wired to a local metadata server that
// knows flask and 404s everything else.
func testExtension(t *testing.T) *extension.Extension {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pypi/flask/json":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, flaskDocJSON)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := config{Registry: registrySettings{
		Host:                "test.registry",
		MetadataURLTemplate: server.URL + "/pypi/{{.Package}}/json",
		HumanURLTemplate:    server.URL + "/pypi/{{.Package}}/{{.Version}}/",
	}}

	ext, err := extension.NewWithConfig(c.registryConfig())
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	return ext
}

func TestResolveAll(t *testing.T) {
	ext := testExtension(t)

	fileDeps := []lockfile.FileDependencies{{
		File: lockfile.File{Type: lockfile.TypePipfileLock, Path: "/srv/app/Pipfile.lock"},
		Dependencies: []lockfile.Dependency{
			{Name: "flask", Version: "1.0.0", RegistryHost: "pypi.org"},
			{Name: "ghost", Version: "1.0.0", RegistryHost: "pypi.org"},
		},
	}}

	reports, failed := resolveAll(context.Background(), ext, fileDeps, 4)

	if len(reports) != 1 {
		t.Fatalf("len(reports) = %d, want 1", len(reports))
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}

	rep := reports[0]
	if rep.Lockfile != "/srv/app/Pipfile.lock" {
		t.Errorf("Lockfile = %q", rep.Lockfile)
	}
	if len(rep.Dependencies) != 2 {
		t.Fatalf("len(Dependencies) = %d, want 2", len(rep.Dependencies))
	}

	// Row order matches the lockfile order regardless of completion order.
	flask := rep.Dependencies[0]
	if flask.Package != "flask" || flask.Error != "" {
		t.Errorf("flask row = %+v, want success", flask)
	}
	if flask.Artifact != "https://files.example/flask-1.0.0.tar.gz" {
		t.Errorf("flask Artifact = %q, want the sdist URL", flask.Artifact)
	}

	ghost := rep.Dependencies[1]
	if ghost.Package != "ghost" || ghost.Error == "" {
		t.Errorf("ghost row = %+v, want captured error", ghost)
	}
}

func TestResolveAllConcurrencyFloor(t *testing.T) {
	ext := testExtension(t)

	fileDeps := []lockfile.FileDependencies{{
		File:         lockfile.File{Type: lockfile.TypePipfileLock, Path: "/srv/app/Pipfile.lock"},
		Dependencies: []lockfile.Dependency{{Name: "flask", Version: "1.0.0"}},
	}}

	// A non-positive limit must not deadlock.
	reports, failed := resolveAll(context.Background(), ext, fileDeps, 0)
	if failed != 0 {
		t.Errorf("failed = %d, want 0", failed)
	}
	if reports[0].Dependencies[0].Package != "flask" {
		t.Errorf("row = %+v", reports[0].Dependencies[0])
	}
}

func TestSelectFilesSingle(t *testing.T) {
	files := []lockfile.File{{Type: lockfile.TypePipfileLock, Path: "/srv/app/Pipfile.lock"}}

	got, err := selectFiles(files, false)
	if err != nil {
		t.Fatalf("selectFiles() error = %v", err)
	}
	if len(got) != 1 || got[0].Path != files[0].Path {
		t.Errorf("selectFiles() = %v, want the single file unchanged", got)
	}
}

func TestSelectFilesAllFlag(t *testing.T) {
	got, err := selectFiles(pickerFiles(), true)
	if err != nil {
		t.Fatalf("selectFiles() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 with --all", len(got))
	}
}

func TestSelectFilesNonInteractive(t *testing.T) {
	// Test binaries run with piped output, so multiple files resolve
	// without launching the picker.
	got, err := selectFiles(pickerFiles(), false)
	if err != nil {
		t.Fatalf("selectFiles() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want all files in non-interactive mode", len(got))
	}
}
