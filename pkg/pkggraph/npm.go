// SPDX-License-Identifier: MPL-2.0

package pkggraph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// packageJSON is the subset of an npm manifest the loader cares about.
type packageJSON struct {
	Name             string            `json:"name"`
	Keywords         []string          `json:"keywords"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	EmberAddon       *Meta             `json:"ember-addon"`
}

// LoadTree builds a MemoryGraph from an installed npm tree rooted at the
// directory containing the app's package.json. Only the root package and
// the first level of node_modules (including scoped packages) are read;
// that is sufficient for implicit-module aggregation, which never crosses
// more than one dependency hop per render.
//
// Packages with unreadable or malformed manifests are skipped with a log
// line rather than failing the whole load, matching how installers
// tolerate stray directories under node_modules.
func LoadTree(root string, logger *log.Logger) (*MemoryGraph, error) {
	if logger == nil {
		logger = log.Default()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving tree root: %w", err)
	}

	rootPkg, err := readManifest(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading root manifest: %w", err)
	}

	graph := NewMemoryGraph()
	rootMem := toMemoryPackage(absRoot, rootPkg)
	graph.Add(rootMem)

	modulesDir := filepath.Join(absRoot, "node_modules")
	entries, err := os.ReadDir(modulesDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no node_modules directory", "root", absRoot)
			return graph, nil
		}
		return nil, fmt.Errorf("reading node_modules: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if strings.HasPrefix(entry.Name(), "@") {
			scopeDir := filepath.Join(modulesDir, entry.Name())
			scoped, err := os.ReadDir(scopeDir)
			if err != nil {
				logger.Warn("skipping unreadable scope", "dir", scopeDir, "err", err)
				continue
			}
			for _, sub := range scoped {
				if sub.IsDir() {
					loadOne(graph, filepath.Join(scopeDir, sub.Name()), logger)
				}
			}
			continue
		}
		loadOne(graph, filepath.Join(modulesDir, entry.Name()), logger)
	}

	link(graph)
	return graph, nil
}

func loadOne(graph *MemoryGraph, dir string, logger *log.Logger) {
	manifest, err := readManifest(dir)
	if err != nil {
		logger.Debug("skipping package", "dir", dir, "err", err)
		return
	}
	graph.Add(toMemoryPackage(dir, manifest))
	logger.Debug("loaded package", "name", manifest.Name, "v2", manifest.EmberAddon != nil)
}

func readManifest(dir string) (*packageJSON, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, err
	}
	var manifest packageJSON
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Join(dir, "package.json"), err)
	}
	if manifest.Name == "" {
		return nil, fmt.Errorf("%s: missing package name", filepath.Join(dir, "package.json"))
	}
	return &manifest, nil
}

func toMemoryPackage(dir string, manifest *packageJSON) *MemoryPackage {
	categories := make(map[string]DependencyCategory)
	for name := range manifest.Dependencies {
		categories[name] = CategoryDependencies
	}
	for name := range manifest.DevDependencies {
		categories[name] = CategoryDevDependencies
	}
	for name := range manifest.PeerDependencies {
		categories[name] = CategoryPeerDependencies
	}
	return &MemoryPackage{
		PkgName:     manifest.Name,
		PkgRoot:     dir,
		PkgMeta:     manifest.EmberAddon,
		PkgKeywords: manifest.Keywords,
		Categories:  categories,
	}
}

// link resolves each package's declared dependency names against the
// loaded set. JSON maps lose manifest declaration order, so dependencies
// are linked in sorted-name order; the aggregation's stable order-index
// sort keeps the observable ordering deterministic regardless.
func link(graph *MemoryGraph) {
	for _, p := range graph.packages {
		names := make([]string, 0, len(p.Categories))
		for name := range p.Categories {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if dep := graph.PackageByName(name); dep != nil {
				p.Deps = append(p.Deps, dep)
			}
		}
	}
}
