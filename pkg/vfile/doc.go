// SPDX-License-Identifier: MPL-2.0

// Package vfile synthesizes module source text for virtual filenames.
//
// A build-time resolver sometimes needs to satisfy an import with a
// module that has no backing file on disk: a shim for a runtime-provided
// global, a component assembled from a template/behavior pair, a
// fastboot/browser switch, or the aggregation of every implicit module
// an app's addons declare. The resolver encodes such a request into a
// specially-shaped filename; when that filename is later "read", this
// package decodes it back into a structured request and renders the
// corresponding source text.
//
// Encoding and decoding are pure functions of the filename string (plus,
// for implicit modules, a read-only pkggraph snapshot), so the process
// that resolves a request need not be the process that loads its
// content, and callers may cache results keyed on the filename.
//
// The filename grammar is a stable textual contract. Four shapes exist,
// tried in fixed priority order:
//
//	/@quilter/external/<module name>
//	<hbs module>/<urlencoded relative js path>/quilter-pair-component
//	<original path>/quilter_fastboot_switch[?names=a,b,default]
//	<from file>/#quilter-implicit-modules      (and -test-modules)
//
// A decoder that does not recognize a filename reports a miss, never an
// error; misses just mean "try the next shape".
package vfile
