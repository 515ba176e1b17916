package pypi

import (
	"unicode"

	"golang.org/x/mod/semver"

	"github.com/pindex-dev/pindex/pkg/errors"
)

// plainVersion reports whether s consists solely of digits and dot
// separators. Pre-releases, post-releases, and local version labels all
// contain letters or other punctuation and are excluded from "latest"
// selection.
func plainVersion(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return true
}

// SelectLatest returns the highest version among candidates.
//
// Only plain dotted-numeric candidates are considered, and of those only
// the ones that parse as (possibly partial) semantic versions. Candidates
// failing either check are dropped silently. The winner keeps its original
// spelling: "2.0" stays "2.0".
//
// Returns [errors.ErrCodeVersionNotFound] when nothing is selectable.
func SelectLatest(candidates []string) (string, error) {
	var best string
	for _, c := range candidates {
		if !plainVersion(c) {
			continue
		}
		if !semver.IsValid("v" + c) {
			continue
		}
		if best == "" || semver.Compare("v"+c, "v"+best) > 0 {
			best = c
		}
	}
	if best == "" {
		return "", errors.New(errors.ErrCodeVersionNotFound, "no selectable version among %d published versions", len(candidates))
	}
	return best, nil
}
