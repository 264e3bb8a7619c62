// SPDX-License-Identifier: MPL-2.0

package pkggraph

import (
	"slices"
	"strings"

	"github.com/quilter-build/quilter/pkg/fspath"
)

type (
	// MemoryPackage is a Package held entirely in memory. It is the
	// concrete type produced by the npm loader and by test fixtures;
	// embedders that already computed a graph can construct it directly.
	MemoryPackage struct {
		// PkgName is the declared package name.
		PkgName string
		// PkgRoot is the absolute directory of the package.
		PkgRoot string
		// PkgMeta is the optional v2 metadata block.
		PkgMeta *Meta
		// PkgKeywords are the manifest keywords (engine detection).
		PkgKeywords []string
		// Deps are the declared dependencies in declaration order.
		Deps []Package
		// Categories maps dependency name to its declared category.
		// Missing entries default to CategoryDependencies.
		Categories map[string]DependencyCategory
	}

	// MemoryGraph is a Graph over a fixed set of MemoryPackages. File
	// ownership is decided by the longest package root that prefixes the
	// queried path.
	MemoryGraph struct {
		packages []*MemoryPackage
	}
)

// Name implements Package.
func (p *MemoryPackage) Name() string { return p.PkgName }

// Root implements Package.
func (p *MemoryPackage) Root() string { return p.PkgRoot }

// Meta implements Package.
func (p *MemoryPackage) Meta() *Meta { return p.PkgMeta }

// IsV2Ember implements Package.
func (p *MemoryPackage) IsV2Ember() bool {
	return p.PkgMeta != nil && p.PkgMeta.Version == 2
}

// IsV2Addon implements Package.
func (p *MemoryPackage) IsV2Addon() bool {
	return p.IsV2Ember() && p.PkgMeta.Type == "addon"
}

// IsEngine implements Package.
func (p *MemoryPackage) IsEngine() bool {
	return slices.Contains(p.PkgKeywords, EngineKeyword)
}

// Dependencies implements Package.
func (p *MemoryPackage) Dependencies() []Package { return p.Deps }

// CategorizeDependency implements Package.
func (p *MemoryPackage) CategorizeDependency(name string) DependencyCategory {
	if cat, ok := p.Categories[name]; ok {
		return cat
	}
	return CategoryDependencies
}

// NewMemoryGraph builds a graph over the given packages.
func NewMemoryGraph(packages ...*MemoryPackage) *MemoryGraph {
	return &MemoryGraph{packages: packages}
}

// Add registers another package with the graph.
func (g *MemoryGraph) Add(p *MemoryPackage) {
	g.packages = append(g.packages, p)
}

// PackageByName returns the registered package with the given name, or nil.
func (g *MemoryGraph) PackageByName(name string) *MemoryPackage {
	for _, p := range g.packages {
		if p.PkgName == name {
			return p
		}
	}
	return nil
}

// OwnerOfFile implements Graph. Nested package roots are handled by
// preferring the longest matching root, so a file inside
// app/node_modules/dep belongs to dep, not to app.
func (g *MemoryGraph) OwnerOfFile(path string) Package {
	posix := fspath.ToPosix(path)
	var best *MemoryPackage
	for _, p := range g.packages {
		root := strings.TrimSuffix(fspath.ToPosix(p.PkgRoot), "/")
		if posix != root && !strings.HasPrefix(posix, root+"/") {
			continue
		}
		if best == nil || len(root) > len(strings.TrimSuffix(fspath.ToPosix(best.PkgRoot), "/")) {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	return best
}
