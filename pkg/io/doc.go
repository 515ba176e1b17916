// Package io encodes resolution reports for files and pipes.
//
// # Overview
//
// This package serializes resolution results produced by the resolver into
// machine-readable formats. The formats are designed for:
//
//   - Feeding resolved artifact URLs into download or audit tooling
//   - Diffing resolution results between lockfile revisions
//   - Storing a resolution run next to the lockfile it describes
//
// # Formats
//
// Two encodings are supported:
//
//   - JSON via [WriteJSON]: indented, stable field order, suited to jq-style
//     post-processing
//   - YAML via [WriteYAML]: suited to human review and config-style storage
//
// Both take any value carrying the appropriate struct tags; the CLI passes
// its report types through unchanged.
//
// # Concurrency
//
// Functions in this package are stateless and safe for concurrent use with
// distinct writers.
package io
