// SPDX-License-Identifier: MPL-2.0

package vfile

import (
	"regexp"
	"slices"
	"strings"

	"github.com/quilter-build/quilter/pkg/fspath"
)

// fastbootSwitchSuffix terminates every fastboot-switch virtual filename.
// Requested binding names ride along in a query-style tail.
const fastbootSwitchSuffix = "/quilter_fastboot_switch"

var fastbootSwitchPattern = regexp.MustCompile(`^(.+)` + fastbootSwitchSuffix + `(?:\?names=(.+))?$`)

// EncodeFastbootSwitch returns the virtual filename that re-exports the
// given bindings from the module the specifier resolves to (relative to
// fromFile's directory). The literal name "default" requests the default
// export rather than a named binding. Names are treated as a set: they
// are deduplicated and sorted so the filename is canonical.
func EncodeFastbootSwitch(specifier, fromFile string, names []string) string {
	filename := fspath.ResolveAgainst(fromFile, specifier) + fastbootSwitchSuffix
	if len(names) == 0 {
		return filename
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return filename + "?names=" + strings.Join(sorted, ",")
}

func decodeFastbootSwitch(filename string) (VirtualFile, bool) {
	m := fastbootSwitchPattern.FindStringSubmatch(filename)
	if m == nil {
		return nil, false
	}

	names := []string{}
	hasDefault := false
	if m[2] != "" {
		for _, name := range strings.Split(m[2], ",") {
			switch name {
			case "":
			case "default":
				hasDefault = true
			default:
				names = append(names, name)
			}
		}
	}

	return &FastbootSwitch{
		OriginalPath:     m[1],
		Names:            names,
		HasDefaultExport: hasDefault,
	}, true
}
