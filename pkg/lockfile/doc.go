// Package lockfile locates and parses dependency files for Python projects.
//
// # Overview
//
// This package implements the filesystem half of pindex:
//
//   - [Locate] walks upward from a directory looking for recognized
//     dependency files (currently Pipfile.lock)
//   - [Type.Parse] decodes a located file into declared dependencies
//
// # Location
//
// Locate starts at an absolute directory and climbs toward the filesystem
// root. The first level containing at least one recognized file wins, and
// every recognized file at that level is returned:
//
//	files, err := lockfile.Locate("/home/user/project/src")
//	if err != nil {
//	    return err
//	}
//	if files == nil {
//	    // no dependency files anywhere up the tree; not an error
//	}
//
// # Parsing
//
// Each [Type] knows its well-known file name and how to decode it:
//
//	deps, err := files[0].Parse()
//	for _, d := range deps {
//	    fmt.Println(d.Name, d.Version, d.RegistryHost)
//	}
//
// Parsing is read-only and makes no network calls; registry resolution is
// handled by [github.com/pindex-dev/pindex/pkg/registry/pypi].
package lockfile
