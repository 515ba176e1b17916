package registry

import (
	"bytes"
	"net/url"
	"text/template"

	"github.com/pindex-dev/pindex/pkg/errors"
)

// urlVars is the data passed to URL templates.
type urlVars struct {
	Package string
	Version string
}

// ParseURLTemplate parses a URL template string.
// Templates reference {{.Package}} and {{.Version}}; a syntax error returns
// [errors.ErrCodeURLConstruction].
func ParseURLTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeURLConstruction, err, "parse %s URL template", name)
	}
	return tmpl, nil
}

// RenderURL executes tmpl with the given package name and version and
// validates that the result is an absolute http(s) URL.
// A render failure or an invalid result returns
// [errors.ErrCodeURLConstruction].
func RenderURL(tmpl *template.Template, pkg, version string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, urlVars{Package: pkg, Version: version}); err != nil {
		return "", errors.Wrap(errors.ErrCodeURLConstruction, err, "render %s URL template", tmpl.Name())
	}

	rendered := buf.String()
	u, err := url.ParseRequestURI(rendered)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeURLConstruction, err, "rendered URL is not valid: %q", rendered)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return "", errors.New(errors.ErrCodeURLConstruction, "rendered URL is not valid: %q", rendered)
	}
	return rendered, nil
}
