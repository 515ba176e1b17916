// Package pypi resolves Python packages against the Python Package Index.
//
// # Overview
//
// [Resolver] maps a package name plus optional version onto the registry
// metadata for its published source artifact:
//
//	res, err := pypi.New(pypi.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	meta, err := res.Resolve(ctx, "numpy", "")
//	fmt.Println(meta[0].Version, meta[0].ArtifactURL)
//
// An empty version means "latest": the resolver picks the highest plain
// dotted-numeric version among the published releases. A caller-supplied
// version is used verbatim.
//
// # Resolution Steps
//
// Each Resolve call runs four steps against a single metadata fetch:
//
//  1. Select a version (verbatim, or latest via [SelectLatest])
//  2. Render the human-facing package page URL
//  3. Find the source distribution among the release's artifacts
//  4. Assemble [registry.Metadata] for the configured host
//
// Results come back as a single-element slice; the slice shape leaves room
// for resolving one package against several registries.
package pypi
