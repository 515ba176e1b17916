package lockfile

import (
	"testing"

	"github.com/pindex-dev/pindex/pkg/errors"
)

func TestType_FileName(t *testing.T) {
	if got := TypePipfileLock.FileName(); got != "Pipfile.lock" {
		t.Errorf("FileName() = %q, want %q", got, "Pipfile.lock")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypePipfileLock, "pipfile"},
		{Type(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestType_RegistryHost(t *testing.T) {
	if got := TypePipfileLock.RegistryHost(); got != "pypi.org" {
		t.Errorf("RegistryHost() = %q, want %q", got, "pypi.org")
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	if len(types) != 1 {
		t.Fatalf("Types() returned %d types, want 1", len(types))
	}
	if types[0] != TypePipfileLock {
		t.Errorf("Types()[0] = %v, want TypePipfileLock", types[0])
	}

	// Every type must carry complete metadata.
	for _, typ := range types {
		if typ.FileName() == "" {
			t.Errorf("type %v has no file name", typ)
		}
		if typ.RegistryHost() == "" {
			t.Errorf("type %v has no registry host", typ)
		}
		if typ.String() == "unknown" {
			t.Errorf("type %v has no name", typ)
		}
	}
}

func TestType_Parse_Unsupported(t *testing.T) {
	_, err := Type(99).Parse("/tmp/whatever")
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("expected UNSUPPORTED, got %v", err)
	}
}
