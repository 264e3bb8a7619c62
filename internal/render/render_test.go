// SPDX-License-Identifier: MPL-2.0

package render_test

import (
	"strings"
	"testing"

	"github.com/quilter-build/quilter/internal/render"
	"github.com/quilter-build/quilter/pkg/vfile"
)

func TestNewTemplateRenderer(t *testing.T) {
	t.Parallel()

	if _, err := render.NewTemplateRenderer(); err != nil {
		t.Fatalf("NewTemplateRenderer() error = %v", err)
	}
}

func TestRender_ExternalShim(t *testing.T) {
	t.Parallel()

	r, err := render.NewTemplateRenderer()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("plain module", func(t *testing.T) {
		t.Parallel()
		src, err := r.Render(vfile.TemplateExternalShim, &vfile.ExternalShim{ModuleName: "jquery"})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(src, `window.require("jquery")`) {
			t.Errorf("source should look up jquery via the loader:\n%s", src)
		}
		if !strings.Contains(src, "m.__esModule = true") {
			t.Errorf("source should normalize the __esModule marker:\n%s", src)
		}
		if !strings.Contains(src, "module.exports = m") {
			t.Errorf("source should re-export the module wholesale:\n%s", src)
		}
	})

	t.Run("require is special-cased", func(t *testing.T) {
		t.Parallel()
		src, err := r.Render(vfile.TemplateExternalShim, &vfile.ExternalShim{ModuleName: "require"})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(src, "window.requirejs") {
			t.Errorf("require shim should reference the loader itself:\n%s", src)
		}
		if strings.Contains(src, `window.require("require")`) {
			t.Errorf("require shim must not do a plain lookup:\n%s", src)
		}
	})

	t.Run("module name is escaped", func(t *testing.T) {
		t.Parallel()
		src, err := r.Render(vfile.TemplateExternalShim, &vfile.ExternalShim{ModuleName: `we"ird`})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if strings.Contains(src, `require("we"ird")`) {
			t.Errorf("quote in module name must be escaped:\n%s", src)
		}
	})
}

func TestRender_UnknownTemplate(t *testing.T) {
	t.Parallel()

	r, err := render.NewTemplateRenderer()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render("no-such-template", nil); err == nil {
		t.Error("Render() with unknown template should fail")
	}
}
