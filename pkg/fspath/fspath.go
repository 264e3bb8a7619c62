// SPDX-License-Identifier: MPL-2.0

// Package fspath provides path arithmetic for module specifiers. Module
// paths are always forward-slash separated, regardless of host OS, so the
// helpers here work on posix-style strings and normalize OS separators on
// the way in.
package fspath

import (
	"path"
	"strings"
)

// DefaultResolvableExtensions lists the source-file extensions the build
// treats as resolvable. Stripping one of these from a module path yields
// the extensionless name modules are registered under at runtime.
var DefaultResolvableExtensions = []string{
	".mjs", ".cjs", ".js", ".ts", ".gjs", ".gts", ".hbs", ".json",
}

// ToPosix normalizes any backslash separators in p to forward slashes.
func ToPosix(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// ExplicitRelative returns the relative path from the directory fromDir to
// the target to, always prefixed so it is unambiguously relative: the
// result starts with "./" or "..". Both arguments must be rooted the same
// way (typically both absolute). Separators in the result are posix.
func ExplicitRelative(fromDir, to string) string {
	fromParts := splitClean(fromDir)
	toParts := splitClean(to)

	common := 0
	for common < len(fromParts) && common < len(toParts) && fromParts[common] == toParts[common] {
		common++
	}

	parts := make([]string, 0, len(fromParts)-common+len(toParts)-common)
	for range fromParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, toParts[common:]...)

	rel := strings.Join(parts, "/")
	switch {
	case rel == "":
		return "."
	case strings.HasPrefix(rel, "."):
		return rel
	default:
		return "./" + rel
	}
}

// ResolveAgainst resolves a (possibly relative) import specifier against
// the directory containing fromFile, returning a cleaned posix path.
// Absolute specifiers are cleaned and returned as-is.
func ResolveAgainst(fromFile, specifier string) string {
	spec := ToPosix(specifier)
	if path.IsAbs(spec) {
		return path.Clean(spec)
	}
	return path.Join(path.Dir(ToPosix(fromFile)), spec)
}

// StripResolvableExtension removes the first matching extension in exts
// from the end of p. When exts is nil, DefaultResolvableExtensions is used.
// Paths with no recognized extension are returned unchanged.
func StripResolvableExtension(p string, exts []string) string {
	if exts == nil {
		exts = DefaultResolvableExtensions
	}
	for _, ext := range exts {
		if strings.HasSuffix(p, ext) {
			return strings.TrimSuffix(p, ext)
		}
	}
	return p
}

// splitClean cleans p and splits it into path segments. The leading empty
// segment of absolute paths is preserved so that absolute and relative
// inputs never compare as sharing a prefix.
func splitClean(p string) []string {
	cleaned := path.Clean(ToPosix(p))
	if cleaned == "." {
		return nil
	}
	return strings.Split(cleaned, "/")
}
