// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if valid, errs := cs.IsValid(); !valid {
			t.Errorf("IsValid(%q) = false, errs = %v", cs, errs)
		}
	}

	valid, errs := ColorScheme("neon").IsValid()
	if valid {
		t.Error("IsValid(neon) = true, want false")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("errs = %v, want InvalidColorSchemeError", errs)
	}
}

func TestExtension_IsValid(t *testing.T) {
	tests := []struct {
		ext  Extension
		want bool
	}{
		{".js", true},
		{".gts", true},
		{"js", false},
		{".", false},
		{"", false},
	}

	for _, tt := range tests {
		valid, errs := tt.ext.IsValid()
		if valid != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.ext, valid, tt.want)
		}
		if !tt.want && !errors.Is(errs[0], ErrInvalidExtension) {
			t.Errorf("errs = %v, want InvalidExtensionError", errs)
		}
	}
}

func TestConfig_IsValid(t *testing.T) {
	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Errorf("DefaultConfig().IsValid() = false, errs = %v", errs)
	}

	bad := Config{
		ResolvableExtensions: []Extension{"js"},
		UI:                   UIConfig{ColorScheme: "neon"},
	}
	valid, errs := bad.IsValid()
	if valid {
		t.Fatal("IsValid() = true for invalid config")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidConfig) {
		t.Fatalf("errs = %v, want a single InvalidConfigError", errs)
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatal("errs[0] should be an *InvalidConfigError")
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %v, want extension and UI errors", cfgErr.FieldErrors)
	}
}

func TestConfig_ExtensionStrings(t *testing.T) {
	if got := (Config{}).ExtensionStrings(); got != nil {
		t.Errorf("ExtensionStrings() on empty config = %v, want nil", got)
	}

	cfg := Config{ResolvableExtensions: []Extension{".js", ".hbs"}}
	got := cfg.ExtensionStrings()
	if len(got) != 2 || got[0] != ".js" || got[1] != ".hbs" {
		t.Errorf("ExtensionStrings() = %v", got)
	}
}
