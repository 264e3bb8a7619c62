// SPDX-License-Identifier: MPL-2.0

// Package render provides the default vfile.Renderer backed by embedded
// text templates. Template text lives in templates/ as data, not code, so
// the synthesized module shapes can be reviewed and changed without
// touching generator logic.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateRenderer renders generator templates by identifier. It is
// immutable after construction and safe for concurrent use.
type TemplateRenderer struct {
	set *template.Template
}

// NewTemplateRenderer parses the embedded template set.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	set, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return &TemplateRenderer{set: set}, nil
}

// Render implements vfile.Renderer.
func (r *TemplateRenderer) Render(name string, params any) (string, error) {
	var buf strings.Builder
	if err := r.set.ExecuteTemplate(&buf, name+".tmpl", params); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
