package pypi

import (
	"context"
	"strings"
	"text/template"
	"time"

	"github.com/pindex-dev/pindex/pkg/buildinfo"
	"github.com/pindex-dev/pindex/pkg/errors"
	"github.com/pindex-dev/pindex/pkg/observability"
	"github.com/pindex-dev/pindex/pkg/registry"
)

// DefaultConfig returns the standard configuration for pypi.org.
func DefaultConfig() registry.Config {
	return registry.Config{
		Host:                "pypi.org",
		MetadataURLTemplate: "https://pypi.org/pypi/{{.Package}}/json",
		HumanURLTemplate:    "https://pypi.org/pypi/{{.Package}}/{{.Version}}/",
		UserAgent:           "pindex/" + buildinfo.Version,
	}
}

// Resolver resolves package names against a PyPI-compatible registry.
//
// Every Resolve call fetches fresh metadata; nothing is cached between
// calls. All methods are safe for concurrent use by multiple goroutines.
type Resolver struct {
	*registry.Client
	cfg       registry.Config
	metadataT *template.Template
	humanT    *template.Template
}

// New creates a Resolver from the given configuration.
// Both URL templates are parsed once here; a malformed template returns
// [errors.ErrCodeURLConstruction].
func New(cfg registry.Config) (*Resolver, error) {
	metadataT, err := registry.ParseURLTemplate("metadata", cfg.MetadataURLTemplate)
	if err != nil {
		return nil, err
	}
	humanT, err := registry.ParseURLTemplate("human", cfg.HumanURLTemplate)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		Client:    registry.NewClient(cfg.HTTPClient, cfg.UserAgent),
		cfg:       cfg,
		metadataT: metadataT,
		humanT:    humanT,
	}, nil
}

// Resolve maps a package name and optional version onto registry metadata.
//
// The name is normalized per PEP 503 before use. An empty version selects
// the latest published plain version (see [SelectLatest]); a non-empty
// version is used verbatim with no validation and no existence check at
// the selection step.
//
// The returned slice contains exactly one entry, for the configured
// registry with IsPrimary set. The slice shape is the contract for future
// multi-registry fan-out.
//
// Errors:
//   - [errors.ErrCodeInvalidPackage]: name fails PEP 508 validation
//   - [errors.ErrCodeVersionNotFound]: no published version is selectable
//   - [errors.ErrCodeArtifactNotFound]: no source distribution for the version
//   - [errors.ErrCodeURLConstruction]: a URL template renders invalid
//   - [errors.ErrCodeRegistryUnavailable]: transport failure or bad status
//   - [errors.ErrCodeMalformedResponse]: undecodable payload (carries body)
func (r *Resolver) Resolve(ctx context.Context, name, version string) ([]registry.Metadata, error) {
	name = NormalizeName(name)
	observability.Resolve().OnResolveStart(ctx, name, version)
	start := time.Now()

	meta, err := r.resolve(ctx, name, version)

	resolved := ""
	if len(meta) > 0 {
		resolved = meta[0].Version
	}
	observability.Resolve().OnResolveComplete(ctx, name, resolved, time.Since(start), err)
	return meta, err
}

func (r *Resolver) resolve(ctx context.Context, name, version string) ([]registry.Metadata, error) {
	if err := errors.ValidatePythonPackageName(name); err != nil {
		return nil, err
	}

	metadataURL, err := registry.RenderURL(r.metadataT, name, "")
	if err != nil {
		return nil, err
	}

	var doc packageDocument
	if err := r.GetJSON(ctx, metadataURL, &doc); err != nil {
		return nil, err
	}

	selected := version
	if selected == "" {
		selected, err = SelectLatest(releaseVersions(doc.Releases))
		if err != nil {
			return nil, err
		}
	}

	humanURL, err := registry.RenderURL(r.humanT, name, selected)
	if err != nil {
		return nil, err
	}

	artifactURL, err := sourceArtifact(doc.Releases, selected)
	if err != nil {
		return nil, err
	}

	return []registry.Metadata{{
		HostName:    r.cfg.Host,
		HumanURL:    humanURL,
		ArtifactURL: artifactURL,
		IsPrimary:   true,
		Version:     selected,
	}}, nil
}

// NormalizeName converts a package name to its canonical form.
// Applies lowercase and replaces underscores with hyphens, following PEP 503
// normalization rules used by PyPI.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// releaseVersions collects the published version identifiers.
func releaseVersions(releases map[string][]releaseArtifact) []string {
	versions := make([]string, 0, len(releases))
	for v := range releases {
		versions = append(versions, v)
	}
	return versions
}

// sourceArtifact finds the download URL of the source distribution among
// the artifacts published for version. Position in the list is irrelevant.
func sourceArtifact(releases map[string][]releaseArtifact, version string) (string, error) {
	for _, a := range releases[version] {
		if a.PythonVersion == "source" {
			return a.URL, nil
		}
	}
	return "", errors.New(errors.ErrCodeArtifactNotFound, "no source distribution published for version %s", version)
}

type packageDocument struct {
	Info     packageInfo                  `json:"info"`
	Releases map[string][]releaseArtifact `json:"releases"`
}

type packageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type releaseArtifact struct {
	Filename      string `json:"filename"`
	PackageType   string `json:"packagetype"`
	PythonVersion string `json:"python_version"`
	URL           string `json:"url"`
}
