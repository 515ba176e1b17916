package registry

import "net/http"

// Config describes a package registry. Resolvers receive it at
// construction; none of the endpoint knowledge is hard-coded into the
// resolution logic itself.
type Config struct {
	// Host is the registry's host name as reported in resolved metadata
	// (e.g., "pypi.org").
	Host string

	// MetadataURLTemplate renders the package metadata endpoint.
	// It receives {{.Package}}.
	MetadataURLTemplate string

	// HumanURLTemplate renders the browsable package page.
	// It receives {{.Package}} and {{.Version}}.
	HumanURLTemplate string

	// HTTPClient overrides the transport. Nil means [NewHTTPClient].
	HTTPClient *http.Client

	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// Metadata is the resolved view of a package on a single registry.
type Metadata struct {
	// HostName is the registry host the package was resolved against.
	HostName string

	// HumanURL is the browsable page for the package at the resolved
	// version.
	HumanURL string

	// ArtifactURL is the download location of the published source
	// artifact for the resolved version.
	ArtifactURL string

	// IsPrimary reports whether the registry is the primary source for
	// this package. With a single configured registry it is always true.
	IsPrimary bool

	// Version is the resolved version in its original published spelling.
	Version string
}
