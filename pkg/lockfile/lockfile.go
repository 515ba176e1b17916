package lockfile

import (
	"github.com/pindex-dev/pindex/pkg/errors"
)

// Type identifies a recognized dependency file format.
//
// The set of types is closed: each variant maps to exactly one well-known
// file name and one parser. Adding a format means adding a variant here,
// its metadata in the tables below, and a case in [Type.Parse].
type Type int

const (
	// TypePipfileLock is a pipenv Pipfile.lock file.
	TypePipfileLock Type = iota
)

// typeNames maps each Type to its short identifier.
var typeNames = map[Type]string{
	TypePipfileLock: "pipfile",
}

// typeFileNames maps each Type to the well-known file name it is located by.
var typeFileNames = map[Type]string{
	TypePipfileLock: "Pipfile.lock",
}

// typeRegistryHosts maps each Type to the registry its entries resolve
// against. Every dependency parsed from a file of this type carries this
// host as its registry hint.
var typeRegistryHosts = map[Type]string{
	TypePipfileLock: "pypi.org",
}

// Types returns all recognized dependency file types.
func Types() []Type {
	return []Type{TypePipfileLock}
}

// String returns the short identifier for the type (e.g., "pipfile").
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// FileName returns the well-known file name for the type (e.g., "Pipfile.lock").
func (t Type) FileName() string {
	return typeFileNames[t]
}

// RegistryHost returns the registry host dependencies of this type resolve
// against (e.g., "pypi.org").
func (t Type) RegistryHost() string {
	return typeRegistryHosts[t]
}

// Parse decodes the dependency file at path into declared dependencies.
//
// The declared order of entries in the file is not preserved; callers must
// not rely on output order.
//
// Returns [errors.ErrCodeMalformedInput] if the content cannot be decoded
// or a record is missing a required field, and
// [errors.ErrCodeUnsupported] for an unrecognized type.
func (t Type) Parse(path string) ([]Dependency, error) {
	switch t {
	case TypePipfileLock:
		return ParsePipfileLock(path)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported dependency file type: %d", int(t))
	}
}

// File is a dependency file located on disk.
type File struct {
	Type Type   // file format
	Path string // absolute path
}

// Parse decodes the file into declared dependencies. See [Type.Parse].
func (f File) Parse() ([]Dependency, error) {
	return f.Type.Parse(f.Path)
}

// Dependency is a single dependency declaration read from a lockfile.
//
// Version is the declared version with any pin operator stripped
// (e.g., "==2.28.1" becomes "2.28.1"). RegistryHost is fixed per file type
// and names the registry the dependency resolves against.
type Dependency struct {
	Name         string
	Version      string
	RegistryHost string
}

// FileDependencies pairs a located file with its parsed dependencies.
type FileDependencies struct {
	File         File
	Dependencies []Dependency
}
