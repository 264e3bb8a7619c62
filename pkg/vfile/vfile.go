// SPDX-License-Identifier: MPL-2.0

package vfile

type (
	// VirtualFile is the decoded form of a virtual filename. Exactly four
	// variants exist; each is fully reconstructible from the filename
	// string alone.
	VirtualFile interface {
		virtualFile()
	}

	// ExternalShim re-exports a global, runtime-provided module under the
	// given name.
	ExternalShim struct {
		// ModuleName is the runtime name to look up, e.g. "require" or
		// "jquery".
		ModuleName string
	}

	// PairedComponent combines a template module with an optional
	// companion behavior module into one component definition.
	PairedComponent struct {
		// RelativeHBSModule is the explicit relative path from the
		// virtual file's directory to the template module.
		RelativeHBSModule string
		// RelativeJSModule is the explicit relative path to the behavior
		// module, or "" when the component is template-only.
		RelativeJSModule string
		// DebugName tags template-only components in developer tooling.
		DebugName string
	}

	// FastbootSwitch re-exports bindings from one of two sibling modules
	// chosen by the fastboot environment flag.
	FastbootSwitch struct {
		// OriginalPath is the absolute path of the module being switched.
		OriginalPath string
		// Names are the named bindings to re-export.
		Names []string
		// HasDefaultExport reports whether the default export is
		// re-exported too.
		HasDefaultExport bool
	}

	// ImplicitModules aggregates every implicit module declared by the
	// dependencies of the package owning FromFile.
	ImplicitModules struct {
		// Kind selects runtime or test-suite implicit modules.
		Kind ImplicitKind
		// FromFile is the file whose owning package is aggregated.
		FromFile string
	}

	// ImplicitKind distinguishes the two implicit-module flavors.
	ImplicitKind string
)

const (
	// ImplicitRuntime aggregates "implicit-modules" declarations.
	ImplicitRuntime ImplicitKind = "runtime"
	// ImplicitTest aggregates "implicit-test-modules" declarations.
	ImplicitTest ImplicitKind = "test"
)

func (*ExternalShim) virtualFile()    {}
func (*PairedComponent) virtualFile() {}
func (*FastbootSwitch) virtualFile()  {}
func (*ImplicitModules) virtualFile() {}

// decoders holds the per-variant matchers in priority order. The order
// matters: the external prefix is the most specific shape and must win
// before the looser suffix patterns get a chance to misread it.
var decoders = []func(string) (VirtualFile, bool){
	decodeExternal,
	decodePairedComponent,
	decodeFastbootSwitch,
	decodeImplicitModules,
}

// Decode classifies a filename, trying each variant's decoder in priority
// order. It returns false for filenames that match no variant; that is a
// normal outcome, not an error, since most filenames a resolver handles
// are real files.
func Decode(filename string) (VirtualFile, bool) {
	for _, decode := range decoders {
		if vf, ok := decode(filename); ok {
			return vf, true
		}
	}
	return nil, false
}
