// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quilter-build/quilter/internal/testutil"
)

// execute runs the root command with the given args, capturing output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := execute(t, "decode", "/@quilter/external/jquery")
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !strings.Contains(out, "external-shim") {
		t.Errorf("output should name the variant:\n%s", out)
	}
	if !strings.Contains(out, "jquery") {
		t.Errorf("output should include the module name:\n%s", out)
	}
}

func TestDecodeCommand_Miss(t *testing.T) {
	out, err := execute(t, "decode", "/srv/app/components/widget.js")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("decode of a regular file should exit non-zero, got %v", err)
	}
	if !strings.Contains(out, "not a virtual file") {
		t.Errorf("output = %q", out)
	}
}

func TestEncodeCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "external",
			args: []string{"encode", "external", "lodash"},
			want: "/@quilter/external/lodash",
		},
		{
			name: "implicit",
			args: []string{"encode", "implicit", "/srv/app/entry.js"},
			want: "/srv/app/entry.js/#quilter-implicit-modules",
		},
		{
			name: "implicit test flavor",
			args: []string{"encode", "implicit", "--test", "/srv/app/entry.js"},
			want: "/srv/app/entry.js/#quilter-implicit-test-modules",
		},
		{
			name: "fastboot",
			args: []string{"encode", "fastboot", "./clock", "--from", "/srv/app/utils/index.js", "--names", "now,default"},
			want: "/srv/app/utils/clock/quilter_fastboot_switch?names=default,now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			implicitTestKind = false
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("encode error = %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("output = %q, want %q", strings.TrimSpace(out), tt.want)
			}
		})
	}
}

func TestEncodePairCommand_RoundTrips(t *testing.T) {
	out, err := execute(t, "encode", "pair", "/srv/app/components/x.hbs", "/srv/app/components/x.js")
	if err != nil {
		t.Fatalf("encode pair error = %v", err)
	}
	filename := strings.TrimSpace(out)

	decoded, err := execute(t, "decode", filename)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !strings.Contains(decoded, "paired-component") {
		t.Errorf("round-trip should decode as paired-component:\n%s", decoded)
	}
}

func TestRenderCommand_ExternalShim(t *testing.T) {
	renderGraphRoot = ""
	out, err := execute(t, "render", "/@quilter/external/moment")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `window.require("moment")`) {
		t.Errorf("rendered source = %q", out)
	}
}

func TestRenderCommand_Unrecognized(t *testing.T) {
	renderGraphRoot = ""
	_, err := execute(t, "render", "/srv/app/plain.js")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("render of a regular file should exit non-zero, got %v", err)
	}
}

func TestRenderCommand_ImplicitModules(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackageManifest(t, root, map[string]any{
		"name":         "my-app",
		"dependencies": map[string]any{"my-addon": "^1.0.0"},
		"ember-addon":  map[string]any{"version": 2, "type": "app"},
	})
	testutil.WritePackageManifest(t, filepath.Join(root, "node_modules", "my-addon"), map[string]any{
		"name": "my-addon",
		"ember-addon": map[string]any{
			"version":          2,
			"type":             "addon",
			"implicit-modules": []string{"./initializers/setup.js"},
		},
	})

	out, err := execute(t, "render",
		"--root", root,
		filepath.ToSlash(filepath.Join(root, "entry.js"))+"/#quilter-implicit-modules")
	renderGraphRoot = ""
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `d("my-addon/initializers/setup"`) {
		t.Errorf("rendered source = %q", out)
	}
}

func TestExplainCommand_List(t *testing.T) {
	out, err := execute(t, "explain")
	if err != nil {
		t.Fatalf("explain error = %v", err)
	}
	if !strings.Contains(out, "Unrecognized virtual file") {
		t.Errorf("list should include issue titles:\n%s", out)
	}
}

func TestExplainCommand_UnknownId(t *testing.T) {
	if _, err := execute(t, "explain", "9999"); err == nil {
		t.Error("explain with unknown id should fail")
	}
}

func TestConfigShowCommand(t *testing.T) {
	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "ui:") {
		t.Errorf("output should contain the ui block:\n%s", out)
	}
}
