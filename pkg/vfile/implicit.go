// SPDX-License-Identifier: MPL-2.0

package vfile

import (
	"cmp"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/quilter-build/quilter/pkg/fspath"
	"github.com/quilter-build/quilter/pkg/pkggraph"
)

const (
	implicitModulesSuffix     = "/#quilter-implicit-modules"
	implicitTestModulesSuffix = "/#quilter-implicit-test-modules"
)

// ErrInvalidOwnerPackage signals that an implicit-modules filename points
// into a package that is not a recognized v2 package. A correct resolver
// never produces such a filename, so this is a defect signal rather than
// a user-facing failure.
var ErrInvalidOwnerPackage = errors.New("invalid owning package for implicit modules")

type (
	// ImplicitModuleEntry is one lazily-registered module in an
	// aggregation manifest.
	ImplicitModuleEntry struct {
		// Runtime is the name the module is registered under for lookup
		// by legacy code: package name + module name, extension
		// stripped, renames applied.
		Runtime string
		// Buildtime is the specifier the build resolves when the module
		// is first accessed: package name + module name, untouched.
		Buildtime string
	}

	// ImplicitManifests is the aggregation result consumed by the
	// implicit-modules generator.
	ImplicitManifests struct {
		// LazyModules are registered under their runtime names and
		// loaded on first access.
		LazyModules []ImplicitModuleEntry
		// EagerModules are imported at the top level of the generated
		// entry module, chaining into nested aggregations.
		EagerModules []string
	}
)

// ImplicitModulesFilename returns the virtual filename aggregating the
// implicit modules of the package owning fromFile.
func ImplicitModulesFilename(fromFile string, kind ImplicitKind) string {
	return fromFile + kind.suffix()
}

func (k ImplicitKind) suffix() string {
	if k == ImplicitTest {
		return implicitTestModulesSuffix
	}
	return implicitModulesSuffix
}

func decodeImplicitModules(filename string) (VirtualFile, bool) {
	// The test suffix is checked first; it is the longer shape.
	if from, ok := strings.CutSuffix(filename, implicitTestModulesSuffix); ok {
		return &ImplicitModules{Kind: ImplicitTest, FromFile: from}, true
	}
	if from, ok := strings.CutSuffix(filename, implicitModulesSuffix); ok {
		return &ImplicitModules{Kind: ImplicitRuntime, FromFile: from}, true
	}
	return nil, false
}

// AggregateImplicitModules walks the dependencies of the package owning
// im.FromFile and builds the lazy and eager manifests for the requested
// kind. Dependencies are stably ordered by their order-index metadata,
// reproducing legacy addon load order. Peer dependencies never
// contribute, and engine dependencies contribute only an eager reference
// to their own aggregation: engines own their implicit modules.
func AggregateImplicitModules(graph pkggraph.Graph, im *ImplicitModules, extensions []string) (*ImplicitManifests, error) {
	owner := graph.OwnerOfFile(im.FromFile)
	if owner == nil || !owner.IsV2Ember() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOwnerPackage, im.FromFile)
	}

	deps := slices.Clone(owner.Dependencies())
	slices.SortStableFunc(deps, func(a, b pkggraph.Package) int {
		return cmp.Compare(orderIndex(a), orderIndex(b))
	})

	manifests := &ImplicitManifests{}
	for _, dep := range deps {
		if !dep.IsV2Addon() {
			continue
		}
		if owner.CategorizeDependency(dep.Name()) == pkggraph.CategoryPeerDependencies {
			continue
		}

		meta := dep.Meta()
		var declared []string
		switch im.Kind {
		case ImplicitTest:
			declared = meta.ImplicitTestModules
		default:
			declared = meta.ImplicitModules
		}

		if len(declared) > 0 {
			pkgName := renamedPackageName(dep)
			classicByReal := invertRenames(meta.RenamedModules)
			for _, name := range declared {
				runtime := fspath.ToPosix(fspath.StripResolvableExtension(path.Join(pkgName, name), extensions))
				if classic, ok := classicByReal[runtime]; ok {
					runtime = classic
				}
				manifests.LazyModules = append(manifests.LazyModules, ImplicitModuleEntry{
					Runtime:   runtime,
					Buildtime: path.Join(pkgName, fspath.ToPosix(name)),
				})
			}
		}

		if !dep.IsEngine() {
			manifests.EagerModules = append(manifests.EagerModules, dep.Name()+im.Kind.suffix())
		}
	}
	return manifests, nil
}

// orderIndex reads a dependency's declared order-index. Anything that is
// not a v2 addon, or declares no index, sorts at zero.
func orderIndex(p pkggraph.Package) int {
	if !p.IsV2Addon() {
		return 0
	}
	if meta := p.Meta(); meta != nil {
		return meta.OrderIndex
	}
	return 0
}

// renamedPackageName applies a dependency's renamed-packages declaration
// (new name -> old name) to its own name. Keys are visited in sorted
// order so the result is deterministic even for malformed metadata that
// maps several new names onto the same old one.
func renamedPackageName(dep pkggraph.Package) string {
	meta := dep.Meta()
	name := dep.Name()
	if meta == nil || len(meta.RenamedPackages) == 0 {
		return name
	}
	newNames := make([]string, 0, len(meta.RenamedPackages))
	for newName := range meta.RenamedPackages {
		newNames = append(newNames, newName)
	}
	slices.Sort(newNames)
	for _, newName := range newNames {
		if meta.RenamedPackages[newName] == name {
			return newName
		}
	}
	return name
}

// invertRenames flips a renamed-modules declaration (classic -> real)
// into a real -> classic lookup table keyed by posix paths. The double
// indirection keeps the build on canonical paths while legacy code keeps
// the names it has always used.
func invertRenames(renames map[string]string) map[string]string {
	if len(renames) == 0 {
		return nil
	}
	inverted := make(map[string]string, len(renames))
	for classic, real := range renames {
		inverted[fspath.ToPosix(real)] = classic
	}
	return inverted
}
