// SPDX-License-Identifier: MPL-2.0

package pkggraph

type (
	// DependencyCategory classifies how a package declares one of its
	// dependencies. The synthesizer only needs to distinguish peer
	// dependencies from everything else, but the loader records the full
	// category for diagnostics.
	DependencyCategory string

	// Meta is the v2-package metadata block declared by a dependency
	// (the "ember-addon" section of its package.json). Every field is
	// optional; zero values are the defaults the aggregation algorithm
	// expects.
	Meta struct {
		// Version is the metadata schema version. Version 2 marks a
		// v2-format package.
		Version int `json:"version"`

		// Type distinguishes "addon" packages from "app" packages.
		Type string `json:"type"`

		// ImplicitModules lists modules the addon wants registered in
		// every consuming app, relative to the addon root.
		ImplicitModules []string `json:"implicit-modules"`

		// ImplicitTestModules is the test-suite counterpart of
		// ImplicitModules.
		ImplicitTestModules []string `json:"implicit-test-modules"`

		// RenamedModules maps legacy (classic) module names to the real
		// module paths that now provide them.
		RenamedModules map[string]string `json:"renamed-modules"`

		// RenamedPackages maps a package's new name to the old name it
		// replaces.
		RenamedPackages map[string]string `json:"renamed-packages"`

		// OrderIndex reproduces legacy addon load order. Lower values
		// load first; ties keep declaration order.
		OrderIndex int `json:"order-index"`
	}

	// Package is the read-only view of one node in the dependency graph.
	// Implementations are expected to be cheap to query; the synthesizer
	// may call these methods many times per render.
	Package interface {
		// Name is the package name as declared in its manifest.
		Name() string

		// Root is the absolute directory the package lives in.
		Root() string

		// Meta returns the v2 metadata block, or nil for packages that
		// carry none.
		Meta() *Meta

		// IsV2Ember reports whether the package conforms to the v2
		// metadata schema (addon or app).
		IsV2Ember() bool

		// IsV2Addon reports whether the package is a v2-format addon.
		IsV2Addon() bool

		// IsEngine reports whether the package is an engine boundary.
		// Engines aggregate their own implicit modules.
		IsEngine() bool

		// Dependencies returns the package's declared dependencies in
		// declaration order.
		Dependencies() []Package

		// CategorizeDependency reports how this package declares the
		// named dependency.
		CategorizeDependency(name string) DependencyCategory
	}

	// Graph resolves file paths to the packages that own them.
	Graph interface {
		// OwnerOfFile returns the package whose root contains path, or
		// nil when no known package owns it.
		OwnerOfFile(path string) Package
	}
)

const (
	// CategoryDependencies marks a regular runtime dependency.
	CategoryDependencies DependencyCategory = "dependencies"
	// CategoryDevDependencies marks a development-only dependency.
	CategoryDevDependencies DependencyCategory = "devDependencies"
	// CategoryPeerDependencies marks a peer dependency. Peers are
	// excluded from implicit-module aggregation.
	CategoryPeerDependencies DependencyCategory = "peerDependencies"
)

// EngineKeyword is the manifest keyword that marks a package as an engine.
const EngineKeyword = "ember-engine"
