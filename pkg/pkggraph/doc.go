// SPDX-License-Identifier: MPL-2.0

// Package pkggraph defines the read-only dependency-graph boundary the
// virtual module synthesizer consumes, plus two implementations of it.
//
// The synthesizer never walks a filesystem itself; it asks a Graph which
// package owns a file and reads that package's declared metadata. Two
// Graph implementations are provided:
//   - MemoryGraph: packages assembled in memory, used by tests and by
//     embedders that already hold a resolved graph
//   - LoadTree: a loader that reads an installed npm tree's package.json
//     manifests, for running the CLI against a real app directory
//
// All metadata fields are optional. Absent fields keep their zero values,
// which are exactly the defaults the aggregation algorithm assumes
// (order-index 0, no renames, no implicit modules).
package pkggraph
