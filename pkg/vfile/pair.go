// SPDX-License-Identifier: MPL-2.0

package vfile

import (
	"net/url"
	"path"
	"regexp"

	"github.com/quilter-build/quilter/pkg/fspath"
)

// pairComponentMarker terminates every paired-component virtual filename.
const pairComponentMarker = "quilter-pair-component"

var pairComponentPattern = regexp.MustCompile(`^(.*)/([^/]*)/` + pairComponentMarker + `$`)

// EncodePairedComponent returns the virtual filename that combines the
// template module at hbsModule with the behavior module at jsModule
// (pass "" for a template-only component).
//
// The behavior path is recorded relative to the synthetic sibling
// directory hbsModule+"/j/". That directory never exists; it only has the
// same depth as the directory the virtual filename itself will occupy
// (hbsModule/<encoded segment>/), so the recorded path stays valid when
// imported from the virtual file.
func EncodePairedComponent(hbsModule, jsModule string) string {
	relativeJS := ""
	if jsModule != "" {
		relativeJS = fspath.ExplicitRelative(hbsModule+"/j/", jsModule)
	}
	return hbsModule + "/" + url.PathEscape(relativeJS) + "/" + pairComponentMarker
}

func decodePairedComponent(filename string) (VirtualFile, bool) {
	m := pairComponentPattern.FindStringSubmatch(fspath.ToPosix(filename))
	if m == nil {
		return nil, false
	}
	hbsModule, encoded := m[1], m[2]

	relativeJS, err := url.PathUnescape(encoded)
	if err != nil {
		return nil, false
	}

	return &PairedComponent{
		// Recomputed against the virtual file's own directory, not the
		// encode-time location: imports in the generated source resolve
		// from where the virtual file lives.
		RelativeHBSModule: fspath.ExplicitRelative(path.Dir(fspath.ToPosix(filename)), hbsModule),
		RelativeJSModule:  relativeJS,
		DebugName:         fspath.StripResolvableExtension(path.Base(hbsModule), nil),
	}, true
}
