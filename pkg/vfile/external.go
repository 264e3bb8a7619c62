// SPDX-License-Identifier: MPL-2.0

package vfile

import "strings"

// externalPrefix is the sentinel prefix that marks external-shim virtual
// filenames. Everything after the prefix is the raw module name.
const externalPrefix = "/@quilter/external/"

// EncodeExternal returns the virtual filename whose content re-exports
// the named global module.
func EncodeExternal(moduleName string) string {
	return externalPrefix + moduleName
}

func decodeExternal(filename string) (VirtualFile, bool) {
	name, ok := strings.CutPrefix(filename, externalPrefix)
	if !ok {
		return nil, false
	}
	// No further validation: the module name is opaque to the build and
	// only meaningful to the runtime loader.
	return &ExternalShim{ModuleName: name}, true
}
