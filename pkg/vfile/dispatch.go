// SPDX-License-Identifier: MPL-2.0

package vfile

import (
	"errors"
	"fmt"

	"github.com/quilter-build/quilter/pkg/pkggraph"
)

// ErrUnrecognizedVirtualFile signals that a filename reached content
// generation without matching any virtual-file shape. The resolver only
// routes filenames it produced itself here, so callers usually surface
// this by aborting the build with the filename attached.
var ErrUnrecognizedVirtualFile = errors.New("unrecognized virtual file")

// Template identifiers passed to the Renderer, one per variant.
const (
	TemplateExternalShim    = "external-shim"
	TemplatePairedComponent = "paired-component"
	TemplateFastbootSwitch  = "fastboot-switch"
	TemplateImplicitModules = "implicit-modules"
)

type (
	// Renderer turns a template identifier plus structured parameters
	// into module source text. The rendering mechanism is deliberately
	// opaque: generator logic is testable against a fake, and template
	// text stays a swappable resource.
	Renderer interface {
		Render(template string, params any) (string, error)
	}

	// Synthesizer generates module source text for virtual filenames.
	// It holds no mutable state; one value may serve concurrent renders,
	// and outputs are cacheable keyed on the filename (plus the graph
	// snapshot identity for implicit-modules filenames).
	Synthesizer struct {
		// Graph resolves implicit-modules aggregation. It may be nil for
		// deployments that never synthesize implicit modules.
		Graph pkggraph.Graph
		// Renderer produces the final source text.
		Renderer Renderer
		// ResolvableExtensions overrides the default extension list used
		// when computing runtime module names. Nil means the default.
		ResolvableExtensions []string
	}
)

// SourceFromFilename decodes filename and renders the matching module
// source. It fails with ErrUnrecognizedVirtualFile when no decoder
// matches, and with ErrInvalidOwnerPackage when an implicit-modules
// filename points into a non-v2 package.
func (s *Synthesizer) SourceFromFilename(filename string) (string, error) {
	vf, ok := Decode(filename)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedVirtualFile, filename)
	}
	return s.Source(vf)
}

// Source renders the module source for an already-decoded virtual file.
func (s *Synthesizer) Source(vf VirtualFile) (string, error) {
	switch v := vf.(type) {
	case *ExternalShim:
		return s.Renderer.Render(TemplateExternalShim, v)
	case *PairedComponent:
		return s.Renderer.Render(TemplatePairedComponent, v)
	case *FastbootSwitch:
		return s.Renderer.Render(TemplateFastbootSwitch, v)
	case *ImplicitModules:
		if s.Graph == nil {
			return "", fmt.Errorf("%w: no package graph configured for %s", ErrInvalidOwnerPackage, v.FromFile)
		}
		manifests, err := AggregateImplicitModules(s.Graph, v, s.ResolvableExtensions)
		if err != nil {
			return "", err
		}
		return s.Renderer.Render(TemplateImplicitModules, manifests)
	default:
		return "", fmt.Errorf("%w: unhandled variant %T", ErrUnrecognizedVirtualFile, vf)
	}
}
