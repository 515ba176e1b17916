package lockfile

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pindex-dev/pindex/pkg/errors"
)

// ParsePipfileLock parses a pipenv Pipfile.lock file.
//
// Both the "default" and "develop" sections are read and merged into a
// single list. Pinned specifiers have their "==" operator stripped; other
// specifier text is kept verbatim. Every entry carries "pypi.org" as its
// registry host.
//
// Entries without a version are rejected with
// [errors.ErrCodeMalformedInput], as is content that does not decode as
// JSON.
func ParsePipfileLock(path string) ([]Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lock pipfileLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode %s", path)
	}

	host := TypePipfileLock.RegistryHost()
	deps := make([]Dependency, 0, len(lock.Default)+len(lock.Develop))
	for _, section := range []map[string]pipfileEntry{lock.Default, lock.Develop} {
		for name, entry := range section {
			if entry.Version == "" {
				return nil, errors.New(errors.ErrCodeMalformedInput, "dependency %q has no version in %s", name, path)
			}
			deps = append(deps, Dependency{
				Name:         name,
				Version:      strings.TrimPrefix(entry.Version, "=="),
				RegistryHost: host,
			})
		}
	}
	return deps, nil
}

// pipfileLock mirrors the top-level structure of a Pipfile.lock file.
// The _meta section is ignored.
type pipfileLock struct {
	Default map[string]pipfileEntry `json:"default"`
	Develop map[string]pipfileEntry `json:"develop"`
}

type pipfileEntry struct {
	Version string `json:"version"`
}
